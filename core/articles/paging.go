// ABOUTME: Paging rules for the article listing
// ABOUTME: Validates limit/offset bounds and decides whether more results exist

package articles

import (
	"fmt"

	"gmn-api/core/errors"
)

const (
	// DefaultLimit is used when the caller passes limit=0
	DefaultLimit = 20
	// MaxLimit is the largest page the upstream is asked for
	MaxLimit = 100
)

// Bounds holds the listing window limits
type Bounds struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultBounds returns the standard listing bounds
func DefaultBounds() Bounds {
	return Bounds{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}
}

// Normalize applies the default limit and rejects values outside the window
func (b Bounds) Normalize(limit, offset int) (int, int, error) {
	if limit == 0 {
		limit = b.DefaultLimit
	}
	if limit < 1 || limit > b.MaxLimit {
		return 0, 0, &errors.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", b.MaxLimit),
		}
	}
	if offset < 0 {
		return 0, 0, &errors.ValidationError{Field: "offset", Message: "must be non-negative"}
	}
	return limit, offset, nil
}

// HasMore reports whether another page follows. With a known total the answer
// is exact; otherwise a full page is taken to mean more results exist.
func HasMore(limit, offset, count, total int) bool {
	if total > 0 {
		return offset+count < total
	}
	return count == limit
}
