package reader

import (
	"testing"

	"gmn-api/core/document"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *document.Document {
	t.Helper()
	doc, err := document.Parse(raw, "https://www.gamespot.com/articles/test/")
	require.NoError(t, err)
	return doc
}
