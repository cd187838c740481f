package appstore

import (
	"context"
	"fmt"
	"net/url"

	"appstore-scraper/lib/arity"

	"go.opentelemetry.io/otel/codes"
	"howett.net/plist"
)

type SuggestSpec struct {
	Term string
}

// Suggest retrieves autocomplete terms from the hints endpoint. The
// response is a plist document; it is decoded into a generic tree first
// and shape-checked afterwards, since the hints node may be a single
// dict or an array of dicts.
func (c *Client) Suggest(ctx context.Context, spec SuggestSpec) ([]Suggestion, error) {
	ctx, span := tracer.Start(ctx, "client:Suggest")
	defer span.End()

	if spec.Term == "" {
		return nil, fmt.Errorf("%w: term is required", ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("clientApplication", "Software")
	params.Set("term", spec.Term)

	link := c.searchBase + "/WebObjects/MZSearchHints.woa/wa/hints?" + params.Encode()
	body, err := c.get(ctx, link, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}

	var tree map[string]any
	if _, err := plist.Unmarshal([]byte(body), &tree); err != nil {
		return nil, fmt.Errorf("suggest: decoding hints plist: %w", err)
	}

	hints, ok := tree["hints"]
	if !ok {
		// an empty hint set serializes without the node
		return []Suggestion{}, nil
	}

	var suggestions []Suggestion
	for _, hint := range arity.Coerce(hints) {
		dict, ok := hint.(map[string]any)
		if !ok {
			return nil, &ValidationError{Op: "suggest", Detail: "hint entry is not a dict"}
		}
		term, ok := dict["term"].(string)
		if !ok {
			return nil, &ValidationError{Op: "suggest", Detail: "hint entry is missing a term string"}
		}
		suggestions = append(suggestions, Suggestion{Term: term})
	}
	return suggestions, nil
}
