package appstore

// App is the canonical detailed record produced by the lookup path.
//
// The four rating fields use 0 as the explicit "no data" sentinel; a
// populated score is always in [1, 5] and counts are never negative.
// Release timestamps are kept as the upstream's opaque strings rather
// than parsed into time values.
type App struct {
	ID                    int64    `json:"id"`
	AppID                 string   `json:"appId"`
	Title                 string   `json:"title"`
	URL                   string   `json:"url"`
	Description           string   `json:"description"`
	Icon                  string   `json:"icon"`
	Genres                []string `json:"genres"`
	GenreIDs              []int64  `json:"genreIds"`
	PrimaryGenre          string   `json:"primaryGenre"`
	PrimaryGenreID        int64    `json:"primaryGenreId"`
	ContentRating         string   `json:"contentRating"`
	Languages             []string `json:"languages"`
	Size                  int64    `json:"size"`
	RequiredOSVersion     string   `json:"requiredOsVersion"`
	Released              string   `json:"released"`
	Updated               string   `json:"updated"`
	ReleaseNotes          string   `json:"releaseNotes"`
	Version               string   `json:"version"`
	Price                 float64  `json:"price"`
	Currency              string   `json:"currency"`
	Free                  bool     `json:"free"`
	DeveloperID           int64    `json:"developerId"`
	Developer             string   `json:"developer"`
	DeveloperURL          string   `json:"developerUrl"`
	DeveloperWebsite      string   `json:"developerWebsite"`
	Score                 float64  `json:"score"`
	Reviews               int64    `json:"reviews"`
	CurrentVersionScore   float64  `json:"currentVersionScore"`
	CurrentVersionReviews int64    `json:"currentVersionReviews"`
	Screenshots           []string `json:"screenshots"`
	IPadScreenshots       []string `json:"ipadScreenshots"`
	AppletvScreenshots    []string `json:"appletvScreenshots"`
	SupportedDevices      []string `json:"supportedDevices"`
	Ratings               *Ratings `json:"ratings,omitempty"`
}

// ListApp is the lighter projection built from feed entries only; it is
// never backfilled from the lookup path.
type ListApp struct {
	ID           int64   `json:"id"`
	AppID        string  `json:"appId"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	Genre        string  `json:"genre"`
	GenreID      int64   `json:"genreId"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Free         bool    `json:"free"`
	Developer    string  `json:"developer"`
	DeveloperURL string  `json:"developerUrl"`
	DeveloperID  int64   `json:"developerId"`
	Released     string  `json:"released"`
}

// Histogram always carries the keys 1 through 5; a star bucket the
// source did not report is 0, not absent.
type Histogram map[int]int64

// Ratings is the total rating count plus the per-star histogram. The
// histogram summing to Total is expected but not enforced; a mismatch
// signals upstream markup drift and is logged, not raised.
type Ratings struct {
	Total     int64     `json:"total"`
	Histogram Histogram `json:"histogram"`
}

// Review is one user review from the reviews feed. Score is 0 when the
// rating was missing or unparseable, otherwise clamped into [1, 5].
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	UserURL  string `json:"userUrl"`
	Version  string `json:"version"`
	Score    int    `json:"score"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Updated  string `json:"updated"`
}

// SimilarLinkType classifies which on-page section a similar app was
// discovered in.
type SimilarLinkType string

const (
	LinkTypeYouMightAlsoLike SimilarLinkType = "you_might_also_like"
	LinkTypeMoreByDeveloper  SimilarLinkType = "more_by_this_developer"
	LinkTypeOther            SimilarLinkType = "other"
)

// SimilarApp pairs a full App with the section it was found under. The
// same app may appear once per distinct section but never twice within
// one section.
type SimilarApp struct {
	App      App             `json:"app"`
	LinkType SimilarLinkType `json:"linkType"`
}

type PrivacyType struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DataCategories []string `json:"dataCategories"`
}

// PrivacyDetails holds the declared privacy-policy URL and data
// collection declarations; an app page without a privacy section yields
// the zero value, not an error.
type PrivacyDetails struct {
	PolicyURL string        `json:"policyUrl"`
	Types     []PrivacyType `json:"types"`
}

// Release is one version-history entry. Entries follow source document
// order, which is assumed (not verified) to be newest-first.
type Release struct {
	Version      string `json:"version"`
	ReleaseDate  string `json:"releaseDate"`
	ReleaseNotes string `json:"releaseNotes"`
}

type Suggestion struct {
	Term string `json:"term"`
}
