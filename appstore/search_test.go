package appstore

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSearchIDsPaging(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bubbles": [{"results": [
			{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4}, {"id": 5}
		]}]}`)
	}))

	ids, err := c.SearchIDs(context.Background(), SearchSpec{Term: "candy", Num: 2, Page: 2})
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, ids)

	ids, err = c.SearchIDs(context.Background(), SearchSpec{Term: "candy", Num: 2, Page: 3})
	require.NoError(t, err)
	require.Equal(t, []int64{5}, ids)
}

func TestSearchIDsCapsLimitAndEmptiesDeepPages(t *testing.T) {
	var gotLimit, gotStoreFront string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		gotStoreFront = r.Header.Get("X-Apple-Store-Front")
		fmt.Fprint(w, `{"bubbles": [{"results": [{"id": 1}, {"id": 2}]}]}`)
	}))

	// page 10 of 50 needs offset 450, past what upstream can serve; the
	// request is still issued with the capped limit and the page is empty
	ids, err := c.SearchIDs(context.Background(), SearchSpec{Term: "candy", Num: 50, Page: 10})
	require.NoError(t, err)
	require.Empty(t, ids)
	require.Equal(t, "200", gotLimit)
	require.Equal(t, "143441,24 t:native", gotStoreFront)
}

func TestSearchIDsRejectsBadInput(t *testing.T) {
	var requests int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := c.SearchIDs(context.Background(), SearchSpec{Term: ""})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = c.SearchIDs(context.Background(), SearchSpec{Term: "x", Num: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = c.SearchIDs(context.Background(), SearchSpec{Term: "x", Device: Device("toaster")})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Zero(t, requests)
}

func TestSearchIDsMissingBubbles(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	_, err := c.SearchIDs(context.Background(), SearchSpec{Term: "candy"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "search", verr.Op)
}

func TestSearchResolvesApps(t *testing.T) {
	var lookupIDs string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "MZStore") {
			fmt.Fprint(w, `{"bubbles": [{"results": [{"id": 553834731}, {"id": 1}]}]}`)
			return
		}
		lookupIDs = r.URL.Query().Get("id")
		fmt.Fprint(w, lookupFixture)
	}))

	apps, err := c.Search(context.Background(), SearchSpec{Term: "candy crush"})
	require.NoError(t, err)
	require.Equal(t, "553834731,1", lookupIDs)
	require.Len(t, apps, 1)
	require.Equal(t, "Candy Crush Saga", apps[0].Title)
}

func TestSearchNoMatches(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "MZStore") {
			fmt.Fprint(w, `{"bubbles": []}`)
			return
		}
		t.Error("lookup must not be called for an empty id set")
	}))

	apps, err := c.Search(context.Background(), SearchSpec{Term: "zzzzzz"})
	require.NoError(t, err)
	diff := cmp.Diff([]App{}, apps)
	if diff != "" {
		t.Fatal(diff)
	}
}
