package appstore

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"appstore-scraper/lib/fetch"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRatings(t *testing.T) {
	var gotStoreFront string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStoreFront = r.Header.Get("X-Apple-Store-Front")
		fmt.Fprint(w, `
			<div class="rating-count">100 Ratings</div>
			<div class="vote"><span class="total">50</span></div>
			<div class="vote"><span class="total">20</span></div>
			<div class="vote"><span class="total">15</span></div>
			<div class="vote"><span class="total">10</span></div>
			<div class="vote"><span class="total">5</span></div>
		`)
	}))

	ratings, err := c.Ratings(context.Background(), RatingsSpec{ID: 553834731})
	require.NoError(t, err)
	require.Equal(t, "143441,12", gotStoreFront)

	expected := Ratings{
		Total:     100,
		Histogram: Histogram{1: 5, 2: 10, 3: 15, 4: 20, 5: 50},
	}
	diff := cmp.Diff(expected, ratings)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestRatingsEmptyBodyIsNotA404(t *testing.T) {
	// the endpoint answers 200 with an empty body for unknown apps
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "  \n")
	}))

	_, err := c.Ratings(context.Background(), RatingsSpec{ID: 42})
	require.ErrorIs(t, err, ErrEmptyResponse)
	require.False(t, fetch.IsStatus(err, 404))
}

func TestRatingsMissingTotalElement(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="vote"><span class="total">5</span></div>`)
	}))

	_, err := c.Ratings(context.Background(), RatingsSpec{ID: 42})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRatingsRequiresID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := c.Ratings(context.Background(), RatingsSpec{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
