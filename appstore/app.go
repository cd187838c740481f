package appstore

import (
	"context"
	"fmt"

	"appstore-scraper/lib/fetch"

	"go.opentelemetry.io/otel/codes"
)

type AppSpec struct {
	// exactly one of ID or BundleID is required
	ID       int64
	BundleID string

	Country  string
	Language string
	// Ratings augments the result with the scraped ratings histogram.
	Ratings bool
}

// App retrieves the detailed record for a single application. A lookup
// with zero results surfaces as a *fetch.StatusError with code 404 so
// callers can branch the same way as for a missing page. When the
// primary source omits screenshots they are scraped from the web page.
func (c *Client) App(ctx context.Context, spec AppSpec) (App, error) {
	ctx, span := tracer.Start(ctx, "client:App")
	defer span.End()

	if spec.ID == 0 && spec.BundleID == "" {
		return App{}, fmt.Errorf("%w: either ID or BundleID is required", ErrInvalidInput)
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return App{}, err
	}

	q := lookupQuery{country: country, language: c.language(spec.Language)}
	if spec.ID != 0 {
		q.ids = []int64{spec.ID}
	} else {
		q.bundleIDs = []string{spec.BundleID}
	}

	apps, err := c.lookup(ctx, "app", q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return App{}, err
	}
	if len(apps) == 0 {
		err := &fetch.StatusError{
			Code:    404,
			URL:     c.appPageURL(country, spec.ID),
			Message: "app not found",
		}
		span.SetStatus(codes.Error, err.Message)
		return App{}, err
	}
	app := apps[0]

	if len(app.Screenshots) == 0 && len(app.IPadScreenshots) == 0 && len(app.AppletvScreenshots) == 0 {
		screenshots, err := c.scrapeScreenshots(ctx, country, app.ID)
		if err != nil {
			// a missing web page is not a missing app
			if !fetch.IsStatus(err, 404) {
				span.RecordError(err)
				span.SetStatus(codes.Error, "screenshot scrape failed")
				return App{}, err
			}
		} else {
			app.Screenshots = screenshots
		}
	}

	if spec.Ratings {
		ratings, err := c.Ratings(ctx, RatingsSpec{ID: app.ID, Country: country})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "ratings augmentation failed")
			return App{}, err
		}
		app.Ratings = &ratings
	}

	return app, nil
}

func (c *Client) scrapeScreenshots(ctx context.Context, country string, id int64) ([]string, error) {
	doc, err := c.getDocument(ctx, c.appPageURL(country, id), nil)
	if err != nil {
		return nil, err
	}
	return extractScreenshots(doc), nil
}
