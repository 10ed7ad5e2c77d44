// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies failures as invalid requests, upstream failures or extraction failures

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a bad or missing request input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// DomainNotAllowedError is returned when a URL's host is outside the allowlist.
// It is raised before any network call is made.
type DomainNotAllowedError struct {
	Host    string
	Allowed []string
}

// Error implements the error interface
func (e *DomainNotAllowedError) Error() string {
	return fmt.Sprintf("host %q is not on the allowed domain list (%s)", e.Host, strings.Join(e.Allowed, ", "))
}

// ExternalAPIError represents a network or upstream failure.
// StatusCode is 0 when no HTTP response was received.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
	Err        error
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error, if any
func (e *ExternalAPIError) Unwrap() error {
	return e.Err
}

// ExtractionError is returned when no plausible content block was found
type ExtractionError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("unable to extract article content: %s", e.Reason)
	}
	return fmt.Sprintf("unable to extract article content from %s: %s", e.URL, e.Reason)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDomainNotAllowed checks if an error is a DomainNotAllowedError
func IsDomainNotAllowed(err error) bool {
	var domainErr *DomainNotAllowedError
	return errors.As(err, &domainErr)
}

// IsInvalidRequest reports whether err should be surfaced as a client error
func IsInvalidRequest(err error) bool {
	return IsValidation(err) || IsDomainNotAllowed(err)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
