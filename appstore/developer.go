package appstore

import (
	"context"
	"fmt"

	"appstore-scraper/lib/fetch"

	"go.opentelemetry.io/otel/codes"
)

type DeveloperSpec struct {
	DevID    int64
	Country  string
	Language string
}

// Developer lists the applications published by one developer. The
// lookup response leads with the developer's own artist record, which
// is not an app and is dropped.
func (c *Client) Developer(ctx context.Context, spec DeveloperSpec) ([]App, error) {
	ctx, span := tracer.Start(ctx, "client:Developer")
	defer span.End()

	if spec.DevID == 0 {
		return nil, fmt.Errorf("%w: DevID is required", ErrInvalidInput)
	}
	country, err := validateCountry(c.country(spec.Country))
	if err != nil {
		return nil, err
	}

	res, err := c.lookupRaw(ctx, "developer", lookupQuery{
		ids:      []int64{spec.DevID},
		country:  country,
		language: c.language(spec.Language),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, err
	}
	if *res.ResultCount == 0 {
		err := &fetch.StatusError{
			Code:    404,
			URL:     fmt.Sprintf("%s/lookup?id=%d", c.itunesBase, spec.DevID),
			Message: "developer not found",
		}
		span.SetStatus(codes.Error, err.Message)
		return nil, err
	}

	apps := make([]App, 0, len(res.Results))
	for _, r := range res.Results {
		if r.WrapperType != "software" {
			continue
		}
		apps = append(apps, cleanApp(r))
	}
	return apps, nil
}
