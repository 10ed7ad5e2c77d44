// ABOUTME: Removal of non-content elements from extracted HTML fragments
// ABOUTME: Drops scripts, styles, landmarks, form controls and hidden elements

package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// nonContentSelector matches elements that are never part of article prose
const nonContentSelector = "script, style, noscript, template, link, meta, iframe, object, embed, " +
	"form, input, button, select, textarea, nav, aside, " +
	`[hidden], [aria-hidden="true"], [role="navigation"], [role="complementary"], [role="banner"]`

// Stripped is an extracted fragment after non-content removal
type Stripped struct {
	HTML string
	// Text is the whitespace-normalized text of HTML
	Text string
	// LinkTextLength counts the characters of Text that sit inside anchors
	LinkTextLength int
}

// StripNonContent removes non-content elements from fragment and returns the
// cleaned HTML together with its text and anchor text length.
func StripNonContent(fragment string) (*Stripped, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	body := doc.Find("body")
	body.Find(nonContentSelector).Remove()
	body.Find("[style]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return isHiddenStyle(s.AttrOr("style", ""))
	}).Remove()

	cleaned, err := body.Html()
	if err != nil {
		return nil, err
	}

	var linked int
	body.Find("a").Each(func(_ int, a *goquery.Selection) {
		linked += textLength(normalizeSpace(a.Text()))
	})

	return &Stripped{
		HTML:           strings.TrimSpace(cleaned),
		Text:           normalizeSpace(body.Text()),
		LinkTextLength: linked,
	}, nil
}

func isHiddenStyle(style string) bool {
	compact := strings.ToLower(strings.Join(strings.Fields(style), ""))
	return strings.Contains(compact, "display:none") || strings.Contains(compact, "visibility:hidden")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func textLength(s string) int {
	return utf8.RuneCountInString(s)
}
