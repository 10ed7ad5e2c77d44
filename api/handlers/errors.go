// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses shaped as {"error": message}

package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"gmn-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorModel is the JSON body of every error response
type ErrorModel struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Human readable error message"`
}

// Error implements the error interface
func (e *ErrorModel) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorModel) GetStatus() int {
	return e.Status
}

func init() {
	huma.NewError = newError
}

// newError replaces huma's problem+json errors. Request validation failures,
// which huma reports as 422, are client input errors and answered with 400.
func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
		if details := errorDetails(errs); details != "" {
			msg = "Invalid request: " + details
		}
	}
	return &ErrorModel{Status: status, Message: msg}
}

func errorDetails(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		if d, ok := err.(*huma.ErrorDetail); ok && d.Location != "" {
			parts = append(parts, d.Location+": "+d.Message)
			continue
		}
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// toReaderError maps reader pipeline failures to HTTP errors
func toReaderError(err error) error {
	if err == nil {
		return nil
	}

	var domainErr *errors.DomainNotAllowedError
	switch {
	case stderrors.As(err, &domainErr):
		return huma.Error400BadRequest("Only " + strings.Join(domainErr.Allowed, ", ") + " URLs are allowed")
	case errors.IsValidation(err):
		return huma.Error400BadRequest("Invalid url param")
	case errors.IsExtraction(err):
		return huma.Error500InternalServerError("Unable to parse article")
	case errors.IsExternalAPI(err):
		return huma.Error500InternalServerError("Failed to fetch article")
	default:
		return huma.Error500InternalServerError("Reader failed")
	}
}

// toListingError maps listing failures to HTTP errors
func toListingError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *errors.ValidationError
	switch {
	case stderrors.As(err, &validationErr):
		return huma.Error400BadRequest("Invalid " + validationErr.Field + " param: " + validationErr.Message)
	case errors.IsExternalAPI(err):
		return huma.Error500InternalServerError("Failed to fetch")
	default:
		return huma.Error500InternalServerError("Internal server error")
	}
}
