package appstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/codes"
)

type SearchSpec struct {
	Term string
	// Num is the page size, 50 by default.
	Num int
	// Page is 1-based.
	Page     int
	Country  string
	Language string
	// Device narrows results to a device family; DeviceAll by default.
	Device Device
}

type searchBubble struct {
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}

type searchResponse struct {
	Bubbles []searchBubble `json:"bubbles"`
}

// Search runs a term search and resolves the matched ids into full App
// records. Pagination is client-side: the upstream endpoint has no
// offset and cannot serve more than searchResultCap results, so pages
// past that cap come back empty rather than failing.
func (c *Client) Search(ctx context.Context, spec SearchSpec) ([]App, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()

	ids, err := c.SearchIDs(ctx, spec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "id search failed")
		return nil, err
	}
	if len(ids) == 0 {
		return []App{}, nil
	}

	return c.lookup(ctx, "search", lookupQuery{
		ids:      ids,
		country:  c.country(spec.Country),
		language: c.language(spec.Language),
	})
}

// SearchIDs returns only the matched application ids, skipping the
// lookup round-trip.
func (c *Client) SearchIDs(ctx context.Context, spec SearchSpec) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:SearchIDs")
	defer span.End()

	if spec.Term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}
	num := spec.Num
	if num == 0 {
		num = defaultSearchNum
	}
	page := spec.Page
	if page == 0 {
		page = 1
	}
	if num < 0 || page < 0 {
		return nil, fmt.Errorf("%w: num and page must be positive", ErrInvalidInput)
	}
	device := spec.Device
	if device == "" {
		device = DeviceAll
	}
	if err := validateDevice(device); err != nil {
		return nil, err
	}
	sf, err := storefront(c.country(spec.Country))
	if err != nil {
		return nil, err
	}

	limit := num * page
	if limit > searchResultCap {
		limit = searchResultCap
	}

	params := url.Values{}
	params.Set("clientApplication", "Software")
	params.Set("media", "software")
	params.Set("entity", string(device))
	params.Set("term", spec.Term)
	params.Set("limit", strconv.Itoa(limit))

	link := c.searchBase + "/WebObjects/MZStore.woa/wa/search?" + params.Encode()
	body, err := c.get(ctx, link, map[string]string{
		"X-Apple-Store-Front": sf + ",24 t:native",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}

	var res searchResponse
	if err := decodeJSON("search", body, &res); err != nil {
		return nil, err
	}
	if res.Bubbles == nil {
		return nil, &ValidationError{Op: "search", Detail: "missing bubbles field"}
	}

	var ids []int64
	for _, bubble := range res.Bubbles {
		for _, result := range bubble.Results {
			ids = append(ids, result.ID)
		}
	}

	// slice out the requested page locally; the endpoint has no offset
	offset := (page - 1) * num
	if offset >= len(ids) {
		return []int64{}, nil
	}
	end := offset + num
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end], nil
}
