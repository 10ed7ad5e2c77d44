// ABOUTME: Text-density content extraction engine built on goquery
// ABOUTME: Scores block containers by paragraph text, commas and link density

package density

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/fallback"
	"gmn-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

var _ interfaces.Extractor = (*Extractor)(nil)

const (
	// minParagraphLength is the shortest paragraph that contributes to a score
	minParagraphLength = 25

	// classWeight is added or subtracted for positive or negative class/id hints
	classWeight = 25.0
	// maxLinkDensity is the largest anchor text share a winning block may have
	maxLinkDensity = 0.5
)

var (
	unlikelyCandidates = regexp.MustCompile(`(?i)banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|promo|share|newsletter|subscribe|cookie`)
	maybeCandidate     = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)
	positiveHints      = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	negativeHints      = regexp.MustCompile(`(?i)-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)
)

// Extractor picks the block container with the highest paragraph density score
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the engine identifier
func (e *Extractor) Name() string {
	return "density"
}

type candidate struct {
	node  *html.Node
	score float64
}

// Extract scores a private clone of doc. Ties resolve to the candidate that
// appears first in document order, so results are deterministic.
func (e *Extractor) Extract(doc *document.Document) (*domain.ExtractionResult, error) {
	root := goquery.NewDocumentFromNode(dom.Clone(doc.Root(), true))
	body := root.Find("body")
	if body.Length() == 0 {
		return nil, errors.New("document has no body")
	}

	body.Find("script, style, noscript, template, nav, aside, footer, header, form, iframe").Remove()
	body.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		hint := s.AttrOr("class", "") + " " + s.AttrOr("id", "")
		return unlikelyCandidates.MatchString(hint) && !maybeCandidate.MatchString(hint) && !s.Is("body, article, main")
	}).Remove()

	index := make(map[*html.Node]int)
	var candidates []*candidate

	addScore := func(n *html.Node, score float64) {
		if n == nil || n.Type != html.ElementNode || n.Data == "html" {
			return
		}
		i, ok := index[n]
		if !ok {
			i = len(candidates)
			index[n] = i
			candidates = append(candidates, &candidate{node: n, score: initialScore(n)})
		}
		candidates[i].score += score
	}

	body.Find("p, pre, td, blockquote, li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		length := utf8.RuneCountInString(text)
		if length < minParagraphLength {
			return
		}

		score := 1.0 + float64(strings.Count(text, ",")) + minFloat(float64(length)/100.0, 3.0)
		parent := s.Nodes[0].Parent
		addScore(parent, score)
		if parent != nil {
			addScore(parent.Parent, score/2)
		}
	})

	if len(candidates) == 0 {
		return nil, errors.New("no candidate content blocks")
	}

	var best *candidate
	var bestDensity float64
	for _, c := range candidates {
		density := linkDensity(goquery.NewDocumentFromNode(c.node).Selection)
		c.score *= 1 - density
		if best == nil || c.score > best.score {
			best = c
			bestDensity = density
		}
	}
	if best.score <= 0 || bestDensity > maxLinkDensity {
		return nil, errors.New("no candidate content blocks")
	}

	sel := goquery.NewDocumentFromNode(best.node).Selection
	contentHTML, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, err
	}

	title := fallback.String(
		doc.Text("h1"),
		doc.Text("title"),
	)

	return &domain.ExtractionResult{
		Title:       title,
		ContentHTML: contentHTML,
		TextContent: strings.TrimSpace(sel.Text()),
	}, nil
}

// initialScore seeds a container by tag and class/id hints
func initialScore(n *html.Node) float64 {
	var score float64
	switch n.Data {
	case "article", "main":
		score += 10
	case "div", "section":
		score += 5
	case "pre", "td", "blockquote":
		score += 3
	case "ol", "ul", "dl", "dd", "dt", "li", "form":
		score -= 3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		score -= 5
	}

	hint := dom.GetAttribute(n, "class") + " " + dom.GetAttribute(n, "id")
	if negativeHints.MatchString(hint) {
		score -= classWeight
	}
	if positiveHints.MatchString(hint) {
		score += classWeight
	}
	return score
}

// linkDensity is the share of a selection's text that sits inside anchors
func linkDensity(s *goquery.Selection) float64 {
	total := utf8.RuneCountInString(strings.TrimSpace(s.Text()))
	if total == 0 {
		return 0
	}
	var linked int
	s.Find("a").Each(func(_ int, a *goquery.Selection) {
		linked += utf8.RuneCountInString(strings.TrimSpace(a.Text()))
	})
	return float64(linked) / float64(total)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
