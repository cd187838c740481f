package appstore

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

type ListSpec struct {
	// Collection defaults to CollectionTopFreeApps.
	Collection Collection
	// Category narrows the feed to one genre id; 0 means all.
	Category int
	Country  string
	Language string
	// Num is the number of entries to request, 50 by default, capped
	// upstream at 200.
	Num int
}

// List retrieves a curated collection feed as light ListApp projections.
func (c *Client) List(ctx context.Context, spec ListSpec) ([]ListApp, error) {
	ctx, span := tracer.Start(ctx, "client:List")
	defer span.End()

	entries, err := c.listEntries(ctx, spec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list feed failed")
		return nil, err
	}

	apps := make([]ListApp, 0, len(entries))
	for _, e := range entries {
		apps = append(apps, normalizeListApp(e))
	}
	return apps, nil
}

// ListDetail is List resolved through the lookup path: every entry is
// replaced wholesale by its full App record (never merged field-wise
// with the feed projection).
func (c *Client) ListDetail(ctx context.Context, spec ListSpec) ([]App, error) {
	ctx, span := tracer.Start(ctx, "client:ListDetail")
	defer span.End()

	entries, err := c.listEntries(ctx, spec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list feed failed")
		return nil, err
	}
	if len(entries) == 0 {
		return []App{}, nil
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		if id := parseInt(e.ID.Attributes.ID); id != 0 {
			ids = append(ids, id)
		}
	}

	return c.lookup(ctx, "list", lookupQuery{
		ids:      ids,
		country:  c.country(spec.Country),
		language: c.language(spec.Language),
	})
}

func (c *Client) listEntries(ctx context.Context, spec ListSpec) ([]feedEntry, error) {
	collection := spec.Collection
	if collection == "" {
		collection = CollectionTopFreeApps
	}
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	if err := validateCategory(spec.Category); err != nil {
		return nil, err
	}
	num := spec.Num
	if num == 0 {
		num = defaultListNum
	}
	if num < 1 || num > listResultCap {
		return nil, fmt.Errorf("%w: num must be in [1, %d], got %d", ErrInvalidInput, listResultCap, num)
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return nil, err
	}

	genre := ""
	if spec.Category != 0 {
		genre = fmt.Sprintf("/genre=%d", spec.Category)
	}
	link := fmt.Sprintf(
		"%s/%s/rss/%s/limit=%d%s/json",
		c.itunesBase, country, collection, num, genre,
	)

	body, err := c.get(ctx, link, nil)
	if err != nil {
		return nil, err
	}

	var res feedResponse
	if err := decodeJSON("list", body, &res); err != nil {
		return nil, err
	}
	return res.entries(), nil
}
