package appstore

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

type ReviewsSpec struct {
	ID      int64
	Country string
	// Page is 1-based; the feed serves at most maxReviewsPage pages.
	Page int
	// Sort defaults to SortRecent.
	Sort Sort
}

// Reviews retrieves one page of user reviews.
//
// The feed's first entry is dropped unconditionally: it is normally the
// app-metadata pseudo-entry, not a review. This is known to empty
// single-review result sets and is kept as-is for behavioral
// compatibility.
func (c *Client) Reviews(ctx context.Context, spec ReviewsSpec) ([]Review, error) {
	ctx, span := tracer.Start(ctx, "client:Reviews")
	defer span.End()

	if spec.ID == 0 {
		return nil, fmt.Errorf("%w: ID is required", ErrInvalidInput)
	}
	page := spec.Page
	if page == 0 {
		page = 1
	}
	if page < 1 || page > maxReviewsPage {
		return nil, fmt.Errorf("%w: page must be in [1, %d], got %d", ErrInvalidInput, maxReviewsPage, page)
	}
	sort := spec.Sort
	if sort == "" {
		sort = SortRecent
	}
	if err := validateSort(sort); err != nil {
		return nil, err
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf(
		"%s/%s/rss/customerreviews/page=%d/id=%d/sortby=%s/json",
		c.itunesBase, country, page, spec.ID, sort,
	)
	body, err := c.get(ctx, link, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}

	var res feedResponse
	if err := decodeJSON("reviews", body, &res); err != nil {
		return nil, err
	}

	entries := res.entries()
	if len(entries) <= 1 {
		return []Review{}, nil
	}

	reviews := make([]Review, 0, len(entries)-1)
	for _, e := range entries[1:] {
		reviews = append(reviews, normalizeReview(e))
	}
	return reviews, nil
}
