// ABOUTME: Ordered fallback selection over optional candidate values
// ABOUTME: Used for image variant selection and lead image selection

package fallback

import "strings"

// First returns the first candidate that is present according to present.
// The second return value is false when no candidate qualifies.
func First[T any](present func(T) bool, candidates ...T) (T, bool) {
	for _, c := range candidates {
		if present(c) {
			return c, true
		}
	}
	var zero T
	return zero, false
}

// String returns a pointer to the first non-blank candidate, or nil when
// every candidate is empty or whitespace.
func String(candidates ...string) *string {
	v, ok := First(notBlank, candidates...)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	return &v
}

// Pointer returns the first non-nil, non-blank candidate, or nil.
func Pointer(candidates ...*string) *string {
	v, ok := First(func(p *string) bool { return p != nil && notBlank(*p) }, candidates...)
	if !ok {
		return nil
	}
	return String(*v)
}

// OrDefault returns the first non-blank candidate, or def when none qualify.
func OrDefault(def string, candidates ...string) string {
	if v := String(candidates...); v != nil {
		return *v
	}
	return def
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
