// ABOUTME: GameSpot articles API client backing the listing endpoint
// ABOUTME: Builds the upstream query, decodes the envelope and maps results to summaries

package gamespot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gmn-api/core/domain"
	coreerrors "gmn-api/core/errors"
	"gmn-api/core/interfaces"
)

const apiName = "gamespot"

// Client implements interfaces.ArticleSource
type Client struct {
	fetcher interfaces.Fetcher
	logger  interfaces.Logger
	baseURL string
	apiKey  string
}

var _ interfaces.ArticleSource = (*Client)(nil)

// NewClient creates a client for the articles endpoint at baseURL
func NewClient(fetcher interfaces.Fetcher, logger interfaces.Logger, baseURL, apiKey string) *Client {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Client{
		fetcher: fetcher,
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// FetchArticles returns one page of the newest articles
func (c *Client) FetchArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error) {
	endpoint, err := c.buildURL(limit, offset)
	if err != nil {
		return nil, err
	}

	result, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		c.logger.Error("GameSpot request failed", map[string]interface{}{
			"url":   redact(endpoint),
			"error": redactError(err, c.apiKey),
		})
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal([]byte(result.Body), &resp); err != nil {
		c.logger.Error("GameSpot response is not valid JSON", map[string]interface{}{
			"url":   redact(endpoint),
			"error": err.Error(),
		})
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: result.StatusCode,
			Message:    "invalid JSON response",
			Err:        err,
		}
	}

	if resp.StatusCode != statusOK {
		c.logger.Error("GameSpot reported an error", map[string]interface{}{
			"url":         redact(endpoint),
			"status_code": resp.StatusCode,
			"error":       resp.Error,
		})
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: result.StatusCode,
			Message:    fmt.Sprintf("status_code %d: %s", resp.StatusCode, resp.Error),
		}
	}

	articles := make([]domain.ArticleSummary, 0, len(resp.Results))
	for _, a := range resp.Results {
		articles = append(articles, a.Summary())
	}

	c.logger.Debug("GameSpot page fetched", map[string]interface{}{
		"limit":  limit,
		"offset": offset,
		"count":  len(articles),
		"total":  resp.NumberOfTotalResults,
	})

	return &domain.ArticlePage{
		Articles: articles,
		Total:    resp.NumberOfTotalResults,
	}, nil
}

func (c *Client) buildURL(limit, offset int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid GameSpot base URL: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("format", "json")
	q.Set("sort", "publish_date:desc")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redact hides the api_key query value
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func redactError(err error, key string) string {
	msg := err.Error()
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, key, "REDACTED")
}
