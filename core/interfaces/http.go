// ABOUTME: Outbound HTTP contract used by the reader pipeline and the listing proxy
// ABOUTME: Implementations enforce a domain allowlist, identifying header and timeout

package interfaces

import "context"

// FetchResult is the decoded response of a single GET request
type FetchResult struct {
	// StatusCode is the HTTP status of the final response
	StatusCode int

	// Body is the response body decoded to UTF-8 text
	Body string

	// ContentType is the Content-Type header value
	ContentType string

	// FinalURL is the URL after redirects
	FinalURL string
}

// Fetcher retrieves a URL with exactly one outbound request and no retries.
//
// Implementations must reject hosts outside their allowlist with
// errors.DomainNotAllowedError before touching the network, and report
// transport or upstream failures as errors.ExternalAPIError. Cancelling ctx
// abandons the request.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*FetchResult, error)
}
