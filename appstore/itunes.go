package appstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// lookupResult mirrors one record of the lookup/search JSON API. Every
// field is optional upstream; absence is handled by the normalizer, not
// the decoder.
type lookupResult struct {
	TrackID                            int64    `json:"trackId"`
	BundleID                           string   `json:"bundleId"`
	TrackName                          string   `json:"trackName"`
	TrackViewURL                       string   `json:"trackViewUrl"`
	Description                        string   `json:"description"`
	ArtworkURL512                      string   `json:"artworkUrl512"`
	ArtworkURL100                      string   `json:"artworkUrl100"`
	ArtworkURL60                       string   `json:"artworkUrl60"`
	Genres                             []string `json:"genres"`
	GenreIDs                           []string `json:"genreIds"`
	PrimaryGenreName                   string   `json:"primaryGenreName"`
	PrimaryGenreID                     int64    `json:"primaryGenreId"`
	ContentAdvisoryRating              string   `json:"contentAdvisoryRating"`
	LanguageCodesISO2A                 []string `json:"languageCodesISO2A"`
	FileSizeBytes                      string   `json:"fileSizeBytes"`
	MinimumOsVersion                   string   `json:"minimumOsVersion"`
	ReleaseDate                        string   `json:"releaseDate"`
	CurrentVersionReleaseDate          string   `json:"currentVersionReleaseDate"`
	ReleaseNotes                       string   `json:"releaseNotes"`
	Version                            string   `json:"version"`
	Price                              float64  `json:"price"`
	Currency                           string   `json:"currency"`
	ArtistID                           int64    `json:"artistId"`
	ArtistName                         string   `json:"artistName"`
	ArtistViewURL                      string   `json:"artistViewUrl"`
	SellerURL                          string   `json:"sellerUrl"`
	AverageUserRating                  float64  `json:"averageUserRating"`
	UserRatingCount                    int64    `json:"userRatingCount"`
	AverageUserRatingForCurrentVersion float64  `json:"averageUserRatingForCurrentVersion"`
	UserRatingCountForCurrentVersion   int64    `json:"userRatingCountForCurrentVersion"`
	ScreenshotURLs                     []string `json:"screenshotUrls"`
	IPadScreenshotURLs                 []string `json:"ipadScreenshotUrls"`
	AppletvScreenshotURLs              []string `json:"appletvScreenshotUrls"`
	SupportedDevices                   []string `json:"supportedDevices"`
	WrapperType                        string   `json:"wrapperType"`
}

type lookupResponse struct {
	// pointer so a missing count is distinguishable from zero results
	ResultCount *int64         `json:"resultCount"`
	Results     []lookupResult `json:"results"`
}

func validateLookupResponse(op string, res lookupResponse) error {
	if res.ResultCount == nil {
		return &ValidationError{Op: op, Detail: "missing resultCount field"}
	}
	if res.Results == nil {
		return &ValidationError{Op: op, Detail: "missing results field"}
	}
	return nil
}

// clampScore keeps a rating inside [0, 5]; 0 stays the no-data sentinel.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// parseInt is the radix-10 integer parse used for every integer-like
// upstream string; anything unparseable becomes the 0 sentinel.
func parseInt(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func cleanApp(r lookupResult) App {
	genreIDs := make([]int64, len(r.GenreIDs))
	for i, id := range r.GenreIDs {
		genreIDs[i] = parseInt(id)
	}

	icon := r.ArtworkURL512
	if icon == "" {
		icon = r.ArtworkURL100
	}
	if icon == "" {
		icon = r.ArtworkURL60
	}

	return App{
		ID:                    r.TrackID,
		AppID:                 r.BundleID,
		Title:                 r.TrackName,
		URL:                   r.TrackViewURL,
		Description:           r.Description,
		Icon:                  icon,
		Genres:                r.Genres,
		GenreIDs:              genreIDs,
		PrimaryGenre:          r.PrimaryGenreName,
		PrimaryGenreID:        r.PrimaryGenreID,
		ContentRating:         r.ContentAdvisoryRating,
		Languages:             r.LanguageCodesISO2A,
		Size:                  parseInt(r.FileSizeBytes),
		RequiredOSVersion:     r.MinimumOsVersion,
		Released:              r.ReleaseDate,
		Updated:               r.CurrentVersionReleaseDate,
		ReleaseNotes:          r.ReleaseNotes,
		Version:               r.Version,
		Price:                 r.Price,
		Currency:              r.Currency,
		Free:                  r.Price == 0,
		DeveloperID:           r.ArtistID,
		Developer:             r.ArtistName,
		DeveloperURL:          r.ArtistViewURL,
		DeveloperWebsite:      r.SellerURL,
		Score:                 clampScore(r.AverageUserRating),
		Reviews:               r.UserRatingCount,
		CurrentVersionScore:   clampScore(r.AverageUserRatingForCurrentVersion),
		CurrentVersionReviews: r.UserRatingCountForCurrentVersion,
		Screenshots:           r.ScreenshotURLs,
		IPadScreenshots:       r.IPadScreenshotURLs,
		AppletvScreenshots:    r.AppletvScreenshotURLs,
		SupportedDevices:      r.SupportedDevices,
	}
}

// lookupQuery addresses the lookup endpoint by exactly one identifier
// family.
type lookupQuery struct {
	ids       []int64
	bundleIDs []string
	country   string
	language  string
}

func (c *Client) lookup(ctx context.Context, op string, q lookupQuery) ([]App, error) {
	res, err := c.lookupRaw(ctx, op, q)
	if err != nil {
		return nil, err
	}

	apps := make([]App, 0, len(res.Results))
	for _, r := range res.Results {
		// lookups by artist id interleave non-software records
		if r.WrapperType != "" && r.WrapperType != "software" {
			continue
		}
		apps = append(apps, cleanApp(r))
	}
	return apps, nil
}

func (c *Client) lookupRaw(ctx context.Context, op string, q lookupQuery) (lookupResponse, error) {
	params := url.Values{}
	switch {
	case len(q.ids) > 0:
		strs := make([]string, len(q.ids))
		for i, id := range q.ids {
			strs[i] = strconv.FormatInt(id, 10)
		}
		params.Set("id", strings.Join(strs, ","))
	case len(q.bundleIDs) > 0:
		params.Set("bundleId", strings.Join(q.bundleIDs, ","))
	default:
		return lookupResponse{}, fmt.Errorf("%w: %s: no identifiers to look up", ErrInvalidInput, op)
	}
	params.Set("country", q.country)
	params.Set("entity", "software")
	if q.language != "" {
		params.Set("lang", q.language)
	}

	link := c.itunesBase + "/lookup?" + params.Encode()
	body, err := c.get(ctx, link, nil)
	if err != nil {
		return lookupResponse{}, err
	}

	var res lookupResponse
	if err := decodeJSON(op, body, &res); err != nil {
		return lookupResponse{}, err
	}
	if err := validateLookupResponse(op, res); err != nil {
		return lookupResponse{}, err
	}
	return res, nil
}
