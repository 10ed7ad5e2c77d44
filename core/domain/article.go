// ABOUTME: Article listing domain models derived from the upstream content API
// ABOUTME: Defines image candidate sets, article summaries and paging metadata

package domain

import (
	"strings"

	"gmn-api/core/fallback"
)

// ImageCandidateSet holds the named size variants the upstream API offers for
// an article image. Any variant may be absent.
type ImageCandidateSet struct {
	Original     *string
	Super        *string
	Medium       *string
	Small        *string
	SquareMedium *string
	SquareSmall  *string
	Thumb        *string
	Tiny         *string
}

// Best returns the largest available variant. The square tier is tried after
// small and before the thumbnail sizes. A nil set yields nil.
func (s *ImageCandidateSet) Best() *string {
	if s == nil {
		return nil
	}
	return fallback.Pointer(
		s.Original,
		s.Super,
		s.Medium,
		s.Small,
		s.SquareMedium,
		s.SquareSmall,
		s.Thumb,
		s.Tiny,
	)
}

// ArticleSummary is a single entry of the article listing
type ArticleSummary struct {
	Title *string
	Link  *string
	Date  *string
	Deck  *string
	Image *string
}

// PublishDate returns the calendar date portion (first 10 characters) of an
// upstream timestamp, or nil when the timestamp is blank. Invalid UTF-8 is
// replaced so the result always encodes cleanly.
func PublishDate(timestamp string) *string {
	ts := strings.TrimSpace(timestamp)
	if ts == "" {
		return nil
	}
	ts = strings.ToValidUTF8(ts, "\uFFFD")
	if runes := []rune(ts); len(runes) > 10 {
		ts = string(runes[:10])
	}
	return &ts
}

// Paging describes the window of a listing response.
//
// HasMore is exact when the upstream reports a total, otherwise it is the
// approximation count == limit, which is wrong when the remaining total is an
// exact multiple of limit.
type Paging struct {
	Limit   int
	Offset  int
	Count   int
	HasMore bool
}

// ArticlePage is one upstream page of articles before paging is computed
type ArticlePage struct {
	Articles []ArticleSummary
	// Total is the upstream total result count, 0 when unknown
	Total int
}

// ArticleList is the listing response payload
type ArticleList struct {
	Articles []ArticleSummary
	Paging   Paging
}
