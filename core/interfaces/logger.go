// Package interfaces defines the contracts between the core services and
// their collaborators. Concrete implementations live under infrastructure/.
package interfaces

// Logger defines the interface for logging throughout the application.
// Fields are emitted as structured key/value pairs by the concrete logger.
//
// Example usage:
//
//	logger.Info("Article extracted", map[string]interface{}{
//		"url":    "https://www.gamespot.com/articles/example/",
//		"engine": "readability",
//	})
//
//	logger.Error("Upstream listing failed", map[string]interface{}{
//		"status": 502,
//		"error":  err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
