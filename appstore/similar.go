package appstore

import (
	"context"
	"fmt"

	"appstore-scraper/lib/fetch"

	"go.opentelemetry.io/otel/codes"
)

type SimilarSpec struct {
	ID       int64
	Country  string
	Language string
}

// Similar scrapes the app's web page for related applications grouped
// by on-page section, then resolves them into full App records. A 404
// on the page means "no page to scrape" and yields an empty result;
// every other failure propagates.
func (c *Client) Similar(ctx context.Context, spec SimilarSpec) ([]SimilarApp, error) {
	ctx, span := tracer.Start(ctx, "client:Similar")
	defer span.End()

	if spec.ID == 0 {
		return nil, fmt.Errorf("%w: ID is required", ErrInvalidInput)
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return nil, err
	}

	doc, err := c.getDocument(ctx, c.appPageURL(country, spec.ID), nil)
	if err != nil {
		if fetch.IsStatus(err, 404) {
			return []SimilarApp{}, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "page fetch failed")
		return nil, err
	}

	refs := parseSimilarSections(doc, spec.ID)
	if len(refs) == 0 {
		return []SimilarApp{}, nil
	}

	unique := make([]int64, 0, len(refs))
	seen := map[int64]struct{}{}
	for _, ref := range refs {
		if _, ok := seen[ref.id]; ok {
			continue
		}
		seen[ref.id] = struct{}{}
		unique = append(unique, ref.id)
	}

	apps, err := c.lookup(ctx, "similar", lookupQuery{
		ids:      unique,
		country:  country,
		language: c.language(spec.Language),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, err
	}

	byID := make(map[int64]App, len(apps))
	for _, app := range apps {
		byID[app.ID] = app
	}

	similar := make([]SimilarApp, 0, len(refs))
	for _, ref := range refs {
		app, ok := byID[ref.id]
		if !ok {
			// linked app not resolvable in this storefront
			continue
		}
		similar = append(similar, SimilarApp{App: app, LinkType: ref.linkType})
	}
	return similar, nil
}
