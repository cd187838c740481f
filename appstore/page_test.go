package appstore

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractDeveloperID(t *testing.T) {
	testCases := []struct {
		url      string
		expected int64
	}{
		{url: "https://apps.apple.com/us/developer/king/id526656015", expected: 526656015},
		// "id" embedded in a vanity slug must not match
		{url: "https://apps.apple.com/us/developer/identity-games/id284882218", expected: 284882218},
		{url: "https://apps.apple.com/us/developer/identity-games", expected: 0},
		{url: "https://apps.apple.com/us/app/thing/id123?see-all=reviews", expected: 123},
		{url: "not a url at all ://", expected: 0},
		{url: "", expected: 0},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, extractDeveloperID(test.url), "url %q", test.url)
	}
}

func TestExtractCount(t *testing.T) {
	require.EqualValues(t, 3244, extractCount("3,244 Ratings"))
	require.EqualValues(t, 12, extractCount("12"))
	require.EqualValues(t, 0, extractCount("no ratings yet"))
}

func TestParseRatingsPage(t *testing.T) {
	doc := parseDoc(t, `
		<div class="rating-count">15 Ratings</div>
		<div class="vote"><span class="total">5</span></div>
		<div class="vote"><span class="total">4</span></div>
		<div class="vote"><span class="total">3</span></div>
		<div class="vote"><span class="total">2</span></div>
		<div class="vote"><span class="total">1</span></div>
	`)

	ratings, err := parseRatingsPage(context.Background(), doc)
	require.NoError(t, err)
	require.EqualValues(t, 15, ratings.Total)

	diff := cmp.Diff(Histogram{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}, ratings.Histogram)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParseRatingsPageMissingBars(t *testing.T) {
	// only three bars rendered: the remaining star buckets stay 0 but
	// the keys are still present
	doc := parseDoc(t, `
		<div class="rating-count">60 Ratings</div>
		<div class="vote"><span class="total">30</span></div>
		<div class="vote"><span class="total">20</span></div>
		<div class="vote"><span class="total">10</span></div>
	`)

	ratings, err := parseRatingsPage(context.Background(), doc)
	require.NoError(t, err)

	diff := cmp.Diff(Histogram{1: 0, 2: 0, 3: 10, 4: 20, 5: 30}, ratings.Histogram)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParseRatingsPageExtraBarsIgnored(t *testing.T) {
	doc := parseDoc(t, `
		<div class="rating-count">15 Ratings</div>
		<div class="vote"><span class="total">5</span></div>
		<div class="vote"><span class="total">4</span></div>
		<div class="vote"><span class="total">3</span></div>
		<div class="vote"><span class="total">2</span></div>
		<div class="vote"><span class="total">1</span></div>
		<div class="vote"><span class="total">999</span></div>
		<div class="vote"><span class="total">888</span></div>
	`)

	ratings, err := parseRatingsPage(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, ratings.Histogram, 5)
	require.EqualValues(t, 1, ratings.Histogram[1])
}

func TestParseRatingsPageMissingTotal(t *testing.T) {
	doc := parseDoc(t, `<div class="vote"><span class="total">5</span></div>`)

	_, err := parseRatingsPage(context.Background(), doc)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "ratings", verr.Op)
}

func TestCanonicalScreenshotURL(t *testing.T) {
	testCases := []struct {
		variant  string
		expected string
	}{
		{
			variant:  "https://example.org/img/screen1/300x0w.webp",
			expected: "https://example.org/img/screen1/1286x0w.webp",
		},
		{
			variant:  "https://example.org/img/screen1/643x0w.png",
			expected: "https://example.org/img/screen1/1286x0w.png",
		},
		{
			// no size token: left untouched
			variant:  "https://example.org/img/screen1.png",
			expected: "https://example.org/img/screen1.png",
		},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, canonicalScreenshotURL(test.variant), "variant %q", test.variant)
	}
}

func TestBestVariant(t *testing.T) {
	srcset := "https://example.org/300x0w.webp 300w, https://example.org/643x0w.webp 643w, https://example.org/230x0w.webp 230w"
	require.Equal(t, "https://example.org/643x0w.webp", bestVariant(srcset))

	require.Equal(t, "https://example.org/only.png", bestVariant("https://example.org/only.png"))
	require.Equal(t, "", bestVariant(""))
}

func TestExtractScreenshotsDedupes(t *testing.T) {
	// two <source> elements (webp and png fallback sets for the same
	// image share a path prefix) plus a second distinct image
	doc := parseDoc(t, `
		<picture>
			<source srcset="https://example.org/a/300x0w.webp 300w, https://example.org/a/643x0w.webp 643w">
			<source srcset="https://example.org/a/300x0w.webp 300w, https://example.org/a/643x0w.webp 643w">
		</picture>
		<picture>
			<source srcset="https://example.org/b/643x0w.webp 643w">
		</picture>
	`)

	got := extractScreenshots(doc)
	expected := []string{
		"https://example.org/a/1286x0w.webp",
		"https://example.org/b/1286x0w.webp",
	}
	diff := cmp.Diff(expected, got)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestClassifySection(t *testing.T) {
	require.Equal(t, LinkTypeYouMightAlsoLike, classifySection("You Might Also Like"))
	require.Equal(t, LinkTypeMoreByDeveloper, classifySection("More By King"))
	require.Equal(t, LinkTypeOther, classifySection("Featured In"))
	require.Equal(t, LinkTypeOther, classifySection(""))
}

func TestParseSimilarSections(t *testing.T) {
	doc := parseDoc(t, `<main>
		<section>
			<h2>You Might Also Like</h2>
			<a href="https://apps.apple.com/us/app/one/id111">One</a>
			<a href="https://apps.apple.com/us/app/two/id222">Two</a>
			<a href="https://apps.apple.com/us/app/self/id999">Self</a>
			<a href="https://apps.apple.com/us/app/one/id111">One again</a>
		</section>
		<section>
			<h2>More By King</h2>
			<a href="https://apps.apple.com/us/app/one/id111">One</a>
			<a href="https://apps.apple.com/us/app/three/id333">Three</a>
		</section>
		<section>
			<h2>Information</h2>
			<a href="https://example.org/support">Support</a>
		</section>
	</main>`)

	refs := parseSimilarSections(doc, 999)
	expected := []similarRef{
		{id: 111, linkType: LinkTypeYouMightAlsoLike},
		{id: 222, linkType: LinkTypeYouMightAlsoLike},
		{id: 111, linkType: LinkTypeMoreByDeveloper},
		{id: 333, linkType: LinkTypeMoreByDeveloper},
	}
	diff := cmp.Diff(expected, refs, cmp.AllowUnexported(similarRef{}))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParsePrivacyDetails(t *testing.T) {
	doc := parseDoc(t, `<div class="app-privacy">
		<a href="https://king.com/privacy">Privacy Policy</a>
		<div class="privacy-type">
			<div class="privacy-type__heading">Data Used to Track You</div>
			<div class="privacy-type__description">The following data may be used to track you</div>
			<div class="privacy-type__data-category-heading">Identifiers</div>
			<div class="privacy-type__data-category-heading">Usage Data</div>
		</div>
		<div class="privacy-type">
			<div class="privacy-type__heading">Data Not Linked to You</div>
			<div class="privacy-type__description">The following data may be collected</div>
			<div class="privacy-type__data-category-heading">Diagnostics</div>
		</div>
	</div>`)

	details := parsePrivacyDetails(doc)
	expected := PrivacyDetails{
		PolicyURL: "https://king.com/privacy",
		Types: []PrivacyType{
			{
				Name:           "Data Used to Track You",
				Description:    "The following data may be used to track you",
				DataCategories: []string{"Identifiers", "Usage Data"},
			},
			{
				Name:           "Data Not Linked to You",
				Description:    "The following data may be collected",
				DataCategories: []string{"Diagnostics"},
			},
		},
	}
	diff := cmp.Diff(expected, details)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParsePrivacyDetailsMissingSection(t *testing.T) {
	doc := parseDoc(t, `<main><section><h2>Information</h2></section></main>`)
	require.Equal(t, PrivacyDetails{}, parsePrivacyDetails(doc))
}

func TestParseVersionHistoryItems(t *testing.T) {
	doc := parseDoc(t, `<ul>
		<li class="version-history__item">
			<h4 class="version-history__item__version-number">1.2.3</h4>
			<time datetime="2024-05-01">May 1, 2024</time>
			<div class="version-history__item__release-notes">Bug fixes.</div>
		</li>
		<li class="version-history__item">
			<h4 class="version-history__item__version-number">1.2.2</h4>
			<time>Apr 1, 2024</time>
			<div class="version-history__item__release-notes"></div>
		</li>
	</ul>`)

	releases := parseVersionHistoryItems(doc)
	expected := []Release{
		{Version: "1.2.3", ReleaseDate: "2024-05-01", ReleaseNotes: "Bug fixes."},
		{Version: "1.2.2", ReleaseDate: "", ReleaseNotes: ""},
	}
	diff := cmp.Diff(expected, releases)
	if diff != "" {
		t.Fatal(diff)
	}
}
