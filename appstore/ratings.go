package appstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go.opentelemetry.io/otel/codes"
)

type RatingsSpec struct {
	ID      int64
	Country string
}

// Ratings scrapes the total rating count and per-star histogram from
// the legacy customer-reviews document. A 200 response with an empty
// body (the endpoint's way of saying "no such app") surfaces as
// ErrEmptyResponse, deliberately distinguishable from a 404.
func (c *Client) Ratings(ctx context.Context, spec RatingsSpec) (Ratings, error) {
	ctx, span := tracer.Start(ctx, "client:Ratings")
	defer span.End()

	if spec.ID == 0 {
		return Ratings{}, fmt.Errorf("%w: ID is required", ErrInvalidInput)
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return Ratings{}, err
	}
	sf, err := storefront(country)
	if err != nil {
		return Ratings{}, err
	}

	link := fmt.Sprintf("%s/%s/customer-reviews/id%d?displayable-kind=11", c.itunesBase, country, spec.ID)
	body, err := c.get(ctx, link, map[string]string{
		"X-Apple-Store-Front": sf + ",12",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return Ratings{}, err
	}
	if strings.TrimSpace(body) == "" {
		err := fmt.Errorf("ratings for app %d: %w", spec.ID, ErrEmptyResponse)
		span.SetStatus(codes.Error, err.Error())
		return Ratings{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return Ratings{}, fmt.Errorf("parsing ratings page %s: %w", link, err)
	}

	ratings, err := parseRatingsPage(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ratings parse failed")
		return Ratings{}, err
	}
	return ratings, nil
}
