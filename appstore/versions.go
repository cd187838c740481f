package appstore

import (
	"context"
	"fmt"

	"appstore-scraper/lib/fetch"

	"go.opentelemetry.io/otel/codes"
)

type VersionHistorySpec struct {
	ID      int64
	Country string
}

// VersionHistory scrapes the app page's version-history entries in
// source document order (assumed newest-first). A 404 on the page
// yields an empty history.
func (c *Client) VersionHistory(ctx context.Context, spec VersionHistorySpec) ([]Release, error) {
	ctx, span := tracer.Start(ctx, "client:VersionHistory")
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
			return []Release{}, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "page fetch failed")
		return nil, err
	}

	return parseVersionHistoryItems(doc), nil
}
