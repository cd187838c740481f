package appstore

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestVersionHistory(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/us/app/id553834731", r.URL.Path)
		fmt.Fprint(w, `<ul>
			<li class="version-history__item">
				<h4 class="version-history__item__version-number">1.2.3</h4>
				<time datetime="2024-05-01">May 1, 2024</time>
				<div class="version-history__item__release-notes">Bug fixes.</div>
			</li>
			<li class="version-history__item">
				<h4 class="version-history__item__version-number">1.2.2</h4>
				<time datetime="2024-04-01">Apr 1, 2024</time>
				<div class="version-history__item__release-notes">New levels.</div>
			</li>
		</ul>`)
	}))

	releases, err := c.VersionHistory(context.Background(), VersionHistorySpec{ID: 553834731})
	require.NoError(t, err)

	expected := []Release{
		{Version: "1.2.3", ReleaseDate: "2024-05-01", ReleaseNotes: "Bug fixes."},
		{Version: "1.2.2", ReleaseDate: "2024-04-01", ReleaseNotes: "New levels."},
	}
	diff := cmp.Diff(expected, releases)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestVersionHistoryMissingPage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))

	releases, err := c.VersionHistory(context.Background(), VersionHistorySpec{ID: 42})
	require.NoError(t, err)
	require.Empty(t, releases)
	require.NotNil(t, releases)
}

func TestVersionHistoryRequiresID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := c.VersionHistory(context.Background(), VersionHistorySpec{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
