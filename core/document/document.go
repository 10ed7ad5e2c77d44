// ABOUTME: Parsed HTML document owned by a single reader pipeline invocation
// ABOUTME: Wraps goquery with selector, attribute and subtree serialization helpers

package document

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const emptyDocument = "<html><head></head><body></body></html>"

// Document is a parsed HTML page plus the URL it was fetched from.
// It is not safe for concurrent mutation and must not be shared across requests.
type Document struct {
	doc     *goquery.Document
	baseURL *url.URL
}

// Parse builds a Document from raw HTML. Malformed markup never fails; input
// that is not text at all (invalid UTF-8 or NUL bytes) yields an empty-body
// document. An error is returned only when baseURL is not an absolute URL.
func Parse(rawHTML string, baseURL string) (*Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", baseURL)
	}

	if !isText(rawHTML) {
		rawHTML = emptyDocument
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// html.Parse only fails on reader errors; fall back to an empty tree
		doc, err = goquery.NewDocumentFromReader(strings.NewReader(emptyDocument))
		if err != nil {
			return nil, err
		}
	}
	doc.Url = base

	return &Document{doc: doc, baseURL: base}, nil
}

func isText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// BaseURL returns the page URL the document was parsed with
func (d *Document) BaseURL() *url.URL {
	u := *d.baseURL
	return &u
}

// Root returns the document node. Callers that mutate the tree must clone it first.
func (d *Document) Root() *html.Node {
	return d.doc.Nodes[0]
}

// Query returns the first element matching selector
func (d *Document) Query(selector string) *goquery.Selection {
	return d.doc.Find(selector).First()
}

// Attr returns the trimmed attribute value of the first element matching
// selector, or "" when no element matches.
func (d *Document) Attr(selector, attr string) string {
	return strings.TrimSpace(d.Query(selector).AttrOr(attr, ""))
}

// Text returns the trimmed text content of the first element matching selector
func (d *Document) Text(selector string) string {
	return strings.TrimSpace(d.Query(selector).Text())
}

// OuterHTML serializes the first element matching selector including the element itself
func (d *Document) OuterHTML(selector string) (string, error) {
	sel := d.Query(selector)
	if sel.Length() == 0 {
		return "", nil
	}
	return goquery.OuterHtml(sel)
}

// ResolveURL resolves ref against the document URL. Unparseable refs are
// returned unchanged.
func (d *Document) ResolveURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return d.baseURL.ResolveReference(u).String()
}
