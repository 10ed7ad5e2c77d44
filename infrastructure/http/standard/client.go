// ABOUTME: Allowlisted HTTP fetcher with an identifying User-Agent and bounded timeout
// ABOUTME: Makes exactly one request per call and decodes the body to UTF-8

package standard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	coreerrors "gmn-api/core/errors"
	"gmn-api/core/interfaces"

	"golang.org/x/net/html/charset"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultUserAgent    = "GMN-Reader/1.0 (+https://gmn.news)"
	defaultMaxBodyBytes = 5 << 20
	maxRedirects        = 10
)

// Options configures a StandardHTTPClient
type Options struct {
	// API labels upstream errors, e.g. "reader" or "gamespot"
	API string

	// AllowedDomains lists hosts that may be fetched. A URL is allowed when its
	// hostname equals an entry or is a subdomain of one.
	AllowedDomains []string

	// UserAgent identifies this service to the upstream site
	UserAgent string

	// Timeout bounds the whole request including the body read
	Timeout time.Duration

	// MaxBodyBytes caps the response body size
	MaxBodyBytes int64

	// Transport overrides http.DefaultTransport
	Transport http.RoundTripper
}

// StandardHTTPClient implements interfaces.Fetcher on net/http
type StandardHTTPClient struct {
	client  *http.Client
	api     string
	domains []string
	ua      string
	timeout time.Duration
	maxBody int64
}

var _ interfaces.Fetcher = (*StandardHTTPClient)(nil)

// NewStandardHTTPClient creates a fetcher. Zero option values select defaults;
// an empty allowlist rejects every URL.
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	c := &StandardHTTPClient{
		api:     opts.API,
		domains: normalizeDomains(opts.AllowedDomains),
		ua:      opts.UserAgent,
		timeout: opts.Timeout,
		maxBody: opts.MaxBodyBytes,
	}
	if c.api == "" {
		c.api = "upstream"
	}
	if c.ua == "" {
		c.ua = defaultUserAgent
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.maxBody <= 0 {
		c.maxBody = defaultMaxBodyBytes
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	c.client = &http.Client{
		Transport:     transport,
		CheckRedirect: c.checkRedirect,
	}
	return c
}

// Fetch performs a single GET of rawURL
func (c *StandardHTTPClient) Fetch(ctx context.Context, rawURL string) (*interfaces.FetchResult, error) {
	u, err := c.validate(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: err.Error()}
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		if coreerrors.IsDomainNotAllowed(err) {
			return nil, err
		}
		return nil, &coreerrors.ExternalAPIError{API: c.api, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &coreerrors.ExternalAPIError{
			API:        c.api,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := c.readBody(resp.Body, contentType)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: c.api, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	return &interfaces.FetchResult{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: contentType,
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

// Allowed reports whether host is on the allowlist
func (c *StandardHTTPClient) Allowed(host string) bool {
	return HostAllowed(host, c.domains)
}

// HostAllowed reports whether host equals, or is a subdomain of, one of domains
func HostAllowed(host string, domains []string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return false
	}
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func (c *StandardHTTPClient) validate(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "not a valid URL"}
	}
	if !u.IsAbs() || u.Hostname() == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "scheme must be http or https"}
	}
	if !c.Allowed(u.Hostname()) {
		return nil, &coreerrors.DomainNotAllowedError{Host: u.Hostname(), Allowed: c.domains}
	}
	return u, nil
}

func (c *StandardHTTPClient) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errors.New("stopped after too many redirects")
	}
	if !c.Allowed(req.URL.Hostname()) {
		return &coreerrors.DomainNotAllowedError{Host: req.URL.Hostname(), Allowed: c.domains}
	}
	return nil
}

func (c *StandardHTTPClient) readBody(body io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, c.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(raw)) > c.maxBody {
		return "", fmt.Errorf("response body exceeds %d bytes", c.maxBody)
	}

	reader, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(data), nil
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
