package appstore

import (
	"context"
	"fmt"

	"appstore-scraper/lib/fetch"

	"go.opentelemetry.io/otel/codes"
)

type PrivacySpec struct {
	ID      int64
	Country string
}

// Privacy scrapes the app page's privacy declarations. Both a missing
// page (404) and a page without a privacy section yield zero-value
// details: absence of data is not an error here.
func (c *Client) Privacy(ctx context.Context, spec PrivacySpec) (PrivacyDetails, error) {
	ctx, span := tracer.Start(ctx, "client:Privacy")
	defer span.End()

	if spec.ID == 0 {
		return PrivacyDetails{}, fmt.Errorf("%w: ID is required", ErrInvalidInput)
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return PrivacyDetails{}, err
	}

	doc, err := c.getDocument(ctx, c.appPageURL(country, spec.ID), nil)
	if err != nil {
		if fetch.IsStatus(err, 404) {
			return PrivacyDetails{}, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "page fetch failed")
		return PrivacyDetails{}, err
	}

	return parsePrivacyDetails(doc), nil
}
