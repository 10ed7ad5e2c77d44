// ABOUTME: HTML sanitizer for extracted article content
// ABOUTME: Applies a prose allowlist with bluemonday and forces safe anchor targets

package sanitize

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// proseElements is the standard safe-prose vocabulary plus image and figure markup
var proseElements = []string{
	"address", "article", "aside", "footer", "header",
	"h1", "h2", "h3", "h4", "h5", "h6", "hgroup", "main", "nav", "section",
	"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure", "hr", "li", "ol", "p", "pre", "ul",
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn", "em", "i", "kbd", "mark",
	"q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp", "small", "span", "strong", "sub", "sup",
	"time", "u", "var", "wbr",
	"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
	"img",
}

// inlineStyle admits declarations without parentheses, quotes or angle
// brackets, which rules out url(), expression() and attribute breakouts.
var inlineStyle = regexp.MustCompile(`^[a-zA-Z0-9\s#%,.:;!/_+-]*$`)

// Sanitizer rewrites untrusted HTML into the allowlisted vocabulary.
// It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the article policy
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(proseElements...)

	p.AllowAttrs("href", "name", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowAttrs("id", "class").Globally()
	p.AllowAttrs("style").Matching(inlineStyle).Globally()

	// URL attributes must parse and use a non-executable scheme
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "ftp", "mailto", "tel")

	return &Sanitizer{policy: p}
}

// Sanitize returns the safe rendition of rawHTML. Scripts, event handlers and
// javascript: URLs never survive, and every anchor opens in a new browsing
// context without an opener reference. Sanitize is idempotent.
func (s *Sanitizer) Sanitize(rawHTML string) string {
	clean := s.policy.Sanitize(rawHTML)
	return rewriteAnchors(clean)
}

// rewriteAnchors forces target="_blank" rel="noopener" on every anchor start
// tag. Tokens other than anchors are copied byte for byte.
func rewriteAnchors(in string) string {
	if !strings.Contains(in, "<a") {
		return in
	}

	var out bytes.Buffer
	z := html.NewTokenizer(strings.NewReader(in))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF, or truncated input; keep what was already written
			break
		}

		raw := z.Raw()
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(raw)
			continue
		}

		rawCopy := append([]byte(nil), raw...)
		tok := z.Token()
		if tok.Data != "a" {
			out.Write(rawCopy)
			continue
		}

		tok.Attr = forceAttr(tok.Attr, "target", "_blank")
		tok.Attr = forceAttr(tok.Attr, "rel", "noopener")
		out.WriteString(tok.String())
	}

	return out.String()
}

// forceAttr sets key to val, replacing the first occurrence in place and
// dropping duplicates, or appending when absent.
func forceAttr(attrs []html.Attribute, key, val string) []html.Attribute {
	out := attrs[:0]
	found := false
	for _, a := range attrs {
		if a.Namespace == "" && a.Key == key {
			if found {
				continue
			}
			a.Val = val
			found = true
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, html.Attribute{Key: key, Val: val})
	}
	return out
}
