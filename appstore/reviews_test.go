package appstore

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const reviewsFixture = `{
	"feed": {"entry": [
		{"im:name": {"label": "Candy Crush Saga"}},
		{
			"id": {"label": "r1"},
			"author": {"name": {"label": "alice"}},
			"im:rating": {"label": "5"},
			"title": {"label": "great"},
			"content": {"label": "love it"}
		},
		{
			"id": {"label": "r2"},
			"author": {"name": {"label": "bob"}},
			"im:rating": {"label": "2"},
			"title": {"label": "meh"},
			"content": {"label": "crashes"}
		}
	]}
}`

func TestReviewsDropsLeadingEntry(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, reviewsFixture)
	}))

	reviews, err := c.Reviews(context.Background(), ReviewsSpec{ID: 553834731})
	require.NoError(t, err)
	require.Equal(t, "/us/rss/customerreviews/page=1/id=553834731/sortby=mostrecent/json", gotPath)

	// the leading app-metadata pseudo-entry never surfaces as a review
	require.Len(t, reviews, 2)
	require.Equal(t, "r1", reviews[0].ID)
	require.Equal(t, "alice", reviews[0].UserName)
	require.Equal(t, 5, reviews[0].Score)
	require.Equal(t, "r2", reviews[1].ID)
}

func TestReviewsSingleEntryFeedIsEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"feed": {"entry": {"id": {"label": "only"}}}}`)
	}))

	reviews, err := c.Reviews(context.Background(), ReviewsSpec{ID: 1})
	require.NoError(t, err)
	require.Empty(t, reviews)
	require.NotNil(t, reviews)
}

func TestReviewsValidation(t *testing.T) {
	var requests int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := c.Reviews(context.Background(), ReviewsSpec{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = c.Reviews(context.Background(), ReviewsSpec{ID: 1, Page: 11})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = c.Reviews(context.Background(), ReviewsSpec{ID: 1, Sort: Sort("random")})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = c.Reviews(context.Background(), ReviewsSpec{ID: 1, Country: "atlantis"})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Zero(t, requests)
}
