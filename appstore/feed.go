package appstore

import (
	"strconv"
	"strings"

	"appstore-scraper/lib/arity"
)

// The feed API wraps every scalar in a {label, attributes} object, and
// serializes plural fields as a bare object when there is exactly one
// value. All arity handling goes through arity.OneOrMany.

type feedLabel struct {
	Label string `json:"label"`
}

type feedID struct {
	Label      string `json:"label"`
	Attributes struct {
		ID       string `json:"im:id"`
		BundleID string `json:"im:bundleId"`
	} `json:"attributes"`
}

type feedImage struct {
	Label string `json:"label"`
}

type feedPrice struct {
	Label      string `json:"label"`
	Attributes struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"attributes"`
}

type feedArtist struct {
	Label      string `json:"label"`
	Attributes struct {
		Href string `json:"href"`
	} `json:"attributes"`
}

type feedCategory struct {
	Attributes struct {
		ID    string `json:"im:id"`
		Label string `json:"label"`
	} `json:"attributes"`
}

type feedLink struct {
	Attributes struct {
		Href string `json:"href"`
	} `json:"attributes"`
}

type feedAuthor struct {
	Name feedLabel `json:"name"`
	URI  feedLabel `json:"uri"`
}

// feedEntry carries the union of list-entry and review-entry fields;
// the two feeds share one envelope shape.
type feedEntry struct {
	ID          feedID                     `json:"id"`
	Title       feedLabel                  `json:"title"`
	Name        feedLabel                  `json:"im:name"`
	Images      arity.OneOrMany[feedImage] `json:"im:image"`
	Summary     feedLabel                  `json:"summary"`
	Price       feedPrice                  `json:"im:price"`
	Artist      feedArtist                 `json:"im:artist"`
	Category    feedCategory               `json:"category"`
	ReleaseDate feedLabel                  `json:"im:releaseDate"`
	Links       arity.OneOrMany[feedLink]  `json:"link"`

	Author  feedAuthor `json:"author"`
	Version feedLabel  `json:"im:version"`
	Rating  feedLabel  `json:"im:rating"`
	Content feedLabel  `json:"content"`
	Updated feedLabel  `json:"updated"`
}

type feedBody struct {
	Entry arity.OneOrMany[feedEntry] `json:"entry"`
}

type feedResponse struct {
	// an empty feed serializes without the feed object entirely
	Feed *feedBody `json:"feed"`
}

// entries flattens the optional feed envelope into a uniform slice.
func (r feedResponse) entries() []feedEntry {
	if r.Feed == nil {
		return nil
	}
	return r.Feed.Entry
}

func normalizeListApp(e feedEntry) ListApp {
	price, free := parsePrice(e.Price.Attributes.Amount)

	icon := ""
	if len(e.Images) > 0 {
		// variants are ordered smallest to largest
		icon = e.Images[len(e.Images)-1].Label
	}

	link := ""
	if len(e.Links) > 0 {
		link = e.Links[0].Attributes.Href
	}

	return ListApp{
		ID:           parseInt(e.ID.Attributes.ID),
		AppID:        e.ID.Attributes.BundleID,
		Title:        e.Name.Label,
		URL:          link,
		Description:  e.Summary.Label,
		Icon:         icon,
		Genre:        e.Category.Attributes.Label,
		GenreID:      parseInt(e.Category.Attributes.ID),
		Price:        price,
		Currency:     e.Price.Attributes.Currency,
		Free:         free,
		Developer:    e.Artist.Label,
		DeveloperURL: e.Artist.Attributes.Href,
		DeveloperID:  extractDeveloperID(e.Artist.Attributes.Href),
		Released:     e.ReleaseDate.Label,
	}
}

// parsePrice treats a non-numeric amount (textual free markers) as a
// free app rather than propagating a NaN-like failure.
func parsePrice(amount string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return 0, true
	}
	return price, price == 0
}

func normalizeReview(e feedEntry) Review {
	return Review{
		ID:       e.ID.Label,
		UserName: e.Author.Name.Label,
		UserURL:  e.Author.URI.Label,
		Version:  e.Version.Label,
		Score:    parseReviewScore(e.Rating.Label),
		Title:    e.Title.Label,
		Text:     e.Content.Label,
		Updated:  e.Updated.Label,
	}
}

// parseReviewScore maps a missing or unparseable rating to the 0
// sentinel and clamps everything else into [0, 5].
func parseReviewScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 5 {
		return 5
	}
	return n
}
