// ABOUTME: Wire types for the GameSpot articles API response
// ABOUTME: Absent JSON fields decode to nil so the boundary never sees undefined values

package gamespot

import "gmn-api/core/domain"

// statusOK is the upstream status_code for a successful call
const statusOK = 1

// Response is the envelope returned by the articles endpoint
type Response struct {
	Error                string    `json:"error"`
	StatusCode           int       `json:"status_code"`
	Limit                int       `json:"limit"`
	Offset               int       `json:"offset"`
	NumberOfPageResults  int       `json:"number_of_page_results"`
	NumberOfTotalResults int       `json:"number_of_total_results"`
	Results              []Article `json:"results"`
}

// Article is a single upstream article record
type Article struct {
	Title         *string `json:"title"`
	SiteDetailURL *string `json:"site_detail_url"`
	PublishDate   *string `json:"publish_date"`
	Deck          *string `json:"deck"`
	Image         *Image  `json:"image"`
}

// Image lists the upstream image variants
type Image struct {
	Original     *string `json:"original"`
	SuperURL     *string `json:"super_url"`
	MediumURL    *string `json:"medium_url"`
	SmallURL     *string `json:"small_url"`
	SquareMedium *string `json:"square_medium"`
	SquareSmall  *string `json:"square_small"`
	ThumbURL     *string `json:"thumb_url"`
	TinyURL      *string `json:"tiny_url"`
}

// Candidates converts the wire image into the domain candidate set
func (i *Image) Candidates() *domain.ImageCandidateSet {
	if i == nil {
		return nil
	}
	return &domain.ImageCandidateSet{
		Original:     i.Original,
		Super:        i.SuperURL,
		Medium:       i.MediumURL,
		Small:        i.SmallURL,
		SquareMedium: i.SquareMedium,
		SquareSmall:  i.SquareSmall,
		Thumb:        i.ThumbURL,
		Tiny:         i.TinyURL,
	}
}

// Summary maps the upstream record to an ArticleSummary
func (a Article) Summary() domain.ArticleSummary {
	var date *string
	if a.PublishDate != nil {
		date = domain.PublishDate(*a.PublishDate)
	}
	return domain.ArticleSummary{
		Title: a.Title,
		Link:  a.SiteDetailURL,
		Date:  date,
		Deck:  a.Deck,
		Image: a.Image.Candidates().Best(),
	}
}
