// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds the external dependencies shared by core services
type Dependencies struct {
	// Fetcher retrieves article pages from the allowlisted publisher
	Fetcher Fetcher

	// Logger provides structured logging
	Logger Logger
}
