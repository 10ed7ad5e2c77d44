// ABOUTME: Service layer implementation for the single-article reader
// ABOUTME: Runs fetch, parse, extract, sanitize and assemble as one linear pipeline

package reader

import (
	"context"
	"time"

	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/errors"
	"gmn-api/core/interfaces"
)

// Service implements interfaces.ReaderService
type Service struct {
	fetcher   interfaces.Fetcher
	extractor interfaces.Extractor
	sanitizer interfaces.Sanitizer
	logger    interfaces.Logger
	siteName  string
}

var _ interfaces.ReaderService = (*Service)(nil)

// Options configures a reader Service
type Options struct {
	Extractor interfaces.Extractor
	Sanitizer interfaces.Sanitizer
	// SiteName is used when the page declares none
	SiteName string
}

// NewService creates a reader service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	siteName := opts.SiteName
	if siteName == "" {
		siteName = DefaultSiteName
	}
	return &Service{
		fetcher:   deps.Fetcher,
		extractor: opts.Extractor,
		sanitizer: opts.Sanitizer,
		logger:    logger,
		siteName:  siteName,
	}
}

// Read extracts the article at articleURL. Nothing partial is returned: the
// result is either a complete response or an error classified by core/errors.
func (s *Service) Read(ctx context.Context, articleURL string) (*domain.ReaderResponse, error) {
	start := time.Now()

	fetched, err := s.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		s.logFailure("fetch", articleURL, err)
		return nil, err
	}

	baseURL := fetched.FinalURL
	if baseURL == "" {
		baseURL = articleURL
	}
	doc, err := document.Parse(fetched.Body, baseURL)
	if err != nil {
		s.logFailure("parse", articleURL, err)
		return nil, errors.WrapError(err, "parse document")
	}

	result, err := s.extractor.Extract(doc)
	if err != nil {
		s.logFailure("extract", articleURL, err)
		return nil, err
	}

	resp := Assemble(result, s.sanitizer.Sanitize(result.ContentHTML), LeadImage(doc), s.siteName)

	s.logger.Info("Article extracted", map[string]interface{}{
		"url":         articleURL,
		"engine":      result.Engine,
		"length":      result.Length,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return resp, nil
}

func (s *Service) logFailure(stage, articleURL string, err error) {
	fields := map[string]interface{}{
		"url":   articleURL,
		"stage": stage,
		"error": err.Error(),
	}
	if errors.IsInvalidRequest(err) {
		s.logger.Warn("Reader request rejected", fields)
		return
	}
	s.logger.Error("Reader pipeline failed", fields)
}
