package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title> Review: Test Game </title>
<meta property="og:image" content="/uploads/lead.jpg">
<meta name="author" content="Jane Doe">
</head>
<body><article id="main"><p>Hello <b>world</b></p></article></body>
</html>`

func TestParse_QueriesAndAttributes(t *testing.T) {
	doc, err := Parse(page, "https://www.gamespot.com/reviews/test-game/")
	require.NoError(t, err)

	assert.Equal(t, "Review: Test Game", doc.Text("title"))
	assert.Equal(t, "Jane Doe", doc.Attr(`meta[name="author"]`, "content"))
	assert.Equal(t, "", doc.Attr(`meta[name="twitter:image"]`, "content"))

	out, err := doc.OuterHTML("#main")
	require.NoError(t, err)
	assert.Equal(t, `<article id="main"><p>Hello <b>world</b></p></article>`, out)

	out, err = doc.OuterHTML("#missing")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParse_ResolvesRelativeURLs(t *testing.T) {
	doc, err := Parse(page, "https://www.gamespot.com/reviews/test-game/")
	require.NoError(t, err)

	assert.Equal(t, "https://www.gamespot.com/uploads/lead.jpg", doc.ResolveURL(doc.Attr(`meta[property="og:image"]`, "content")))
	assert.Equal(t, "https://cdn.example.com/a.png", doc.ResolveURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "", doc.ResolveURL("  "))
}

func TestParse_ToleratesMalformedHTML(t *testing.T) {
	doc, err := Parse(`<div><p>unclosed <b>bold<div>trailing`, "https://www.gamespot.com/")
	require.NoError(t, err)
	assert.Contains(t, doc.Text("body"), "unclosed")
}

func TestParse_BinaryInputYieldsEmptyBody(t *testing.T) {
	doc, err := Parse("\x00\xff\xfe binary", "https://www.gamespot.com/")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Query("body").Length())
	assert.Empty(t, doc.Text("body"))
}

func TestParse_RejectsRelativeBaseURL(t *testing.T) {
	_, err := Parse(page, "/relative/path")
	assert.Error(t, err)

	_, err = Parse(page, "://bad")
	assert.Error(t, err)
}

func TestBaseURL_ReturnsCopy(t *testing.T) {
	doc, err := Parse(page, "https://www.gamespot.com/a")
	require.NoError(t, err)

	u := doc.BaseURL()
	u.Host = "evil.example.com"
	assert.Equal(t, "www.gamespot.com", doc.BaseURL().Host)
}
