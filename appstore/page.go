package appstore

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"appstore-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// pageSelectors pins every CSS selector used against marketplace web
// pages. The markup is a rendered web application, not a documented
// API, so selectors anchor on structural and semantic hooks (element
// nesting, typed attributes such as time[datetime]) rather than
// build-generated class names. When the markup drifts, this table is
// the only place that needs editing.
var pageSelectors = struct {
	// legacy customer-reviews document; histogram bars are rendered in
	// descending star order (5 first). That order is assumed, not
	// verified per row: an upstream flip would silently invert buckets.
	ratingsTotal string
	ratingsBar   string

	section      string
	sectionTitle string
	appLink      string

	privacySection    string
	privacyPolicyLink string
	privacyCard       string
	privacyCardTitle  string
	privacyCardDesc   string
	privacyCardItem   string

	versionItem   string
	versionNumber string
	versionDate   string
	versionNotes  string

	screenshotSource string
}{
	ratingsTotal: ".rating-count",
	ratingsBar:   ".vote .total",

	section:      "main section",
	sectionTitle: "h2",
	appLink:      `a[href*="/app/"]`,

	privacySection:    ".app-privacy",
	privacyPolicyLink: `a[href*="privacy"]`,
	privacyCard:       ".privacy-type",
	privacyCardTitle:  ".privacy-type__heading",
	privacyCardDesc:   ".privacy-type__description",
	privacyCardItem:   ".privacy-type__data-category-heading",

	versionItem:   ".version-history__item",
	versionNumber: ".version-history__item__version-number",
	versionDate:   "time[datetime]",
	versionNotes:  ".version-history__item__release-notes",

	screenshotSource: "picture source[srcset]",
}

func (c *Client) appPageURL(country string, id int64) string {
	return fmt.Sprintf("%s/%s/app/id%d", c.webBase, country, id)
}

func (c *Client) getDocument(ctx context.Context, link string, headers map[string]string) (*goquery.Document, error) {
	body, err := c.get(ctx, link, headers)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing page %s: %w", link, err)
	}
	return doc, nil
}

// idPathPattern anchors on an "id" marker immediately followed by digits
// at the end of the URL path. Anchoring matters: vanity slugs can embed
// the substring "id" (e.g. ".../identity-games/id284882218").
var idPathPattern = regexp.MustCompile(`/id(\d+)$`)

func extractDeveloperID(rawURL string) int64 {
	return idFromURL(rawURL)
}

func idFromURL(rawURL string) int64 {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0
	}
	m := idPathPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return 0
	}
	return parseInt(m[1])
}

var firstNumber = regexp.MustCompile(`\d+`)

// extractCount pulls the leading count out of rendered text like
// "3,244 Ratings".
func extractCount(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	m := firstNumber.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseRatingsPage extracts the total count and the five-bucket
// histogram. Extra bars past five are ignored, missing trailing bars
// stay 0, and a sum/total mismatch is logged as drift rather than
// raised: a best-effort parse is still more useful than failing closed.
func parseRatingsPage(ctx context.Context, doc *goquery.Document) (Ratings, error) {
	totalSel := doc.Find(pageSelectors.ratingsTotal).First()
	if totalSel.Length() == 0 {
		return Ratings{}, &ValidationError{Op: "ratings", Detail: "missing total rating count element"}
	}
	total := extractCount(totalSel.Text())

	histogram := Histogram{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	doc.Find(pageSelectors.ratingsBar).Each(func(i int, bar *goquery.Selection) {
		if i >= 5 {
			return
		}
		histogram[5-i] = extractCount(bar.Text())
	})

	var sum int64
	for _, count := range histogram {
		sum += count
	}
	if sum != total {
		slog.WarnContext(
			ctx, "histogram sum does not match reported total, markup may have drifted",
			"sum", sum,
			"total", total,
		)
	}

	return Ratings{Total: total, Histogram: histogram}, nil
}

// canonicalScreenshotSize is the resolution token every selected
// screenshot variant is rewritten to.
const canonicalScreenshotSize = "1286x0w"

var screenshotSizePattern = regexp.MustCompile(`\d+x\d+[a-z]*(\.[A-Za-z0-9]+)$`)

// canonicalScreenshotURL rewrites the resolution token of a variant URL
// while keeping the original file extension, so no format re-encoding is
// forced upstream.
func canonicalScreenshotURL(variant string) string {
	return screenshotSizePattern.ReplaceAllString(variant, canonicalScreenshotSize+"$1")
}

// bestVariant picks the highest-resolution entry out of a srcset value.
func bestVariant(srcset string) string {
	best := ""
	bestWidth := int64(-1)
	for _, part := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		width := int64(0)
		if len(fields) > 1 {
			width = extractCount(fields[1])
		}
		if width > bestWidth {
			bestWidth = width
			best = fields[0]
		}
	}
	return best
}

// extractScreenshots collects one canonical URL per source image.
// Dedup goes through a set keyed on the final URL: different source
// variants of one image collapse after canonicalization.
func extractScreenshots(doc *goquery.Document) []string {
	seen := map[string]struct{}{}
	var out []string
	doc.Find(pageSelectors.screenshotSource).Each(func(_ int, source *goquery.Selection) {
		variant := bestVariant(source.AttrOr("srcset", ""))
		if variant == "" {
			return
		}
		final := canonicalScreenshotURL(variant)
		if _, ok := seen[final]; ok {
			return
		}
		seen[final] = struct{}{}
		out = append(out, final)
	})
	return out
}

type similarRef struct {
	id       int64
	linkType SimilarLinkType
}

func classifySection(title string) SimilarLinkType {
	title = strings.ToLower(title)
	switch {
	case strings.Contains(title, "might also like"):
		return LinkTypeYouMightAlsoLike
	case strings.Contains(title, "more by"):
		return LinkTypeMoreByDeveloper
	default:
		return LinkTypeOther
	}
}

// parseSimilarSections walks the page sections and collects app links
// classified by their section heading. selfID excludes links back to
// the page's own app. Result is unique per (app id, link type).
func parseSimilarSections(doc *goquery.Document, selfID int64) []similarRef {
	seen := map[similarRef]struct{}{}
	var refs []similarRef

	doc.Find(pageSelectors.section).Each(func(_ int, section *goquery.Selection) {
		title := htmlutil.CleanText(section.Find(pageSelectors.sectionTitle).First().Text())
		linkType := classifySection(title)

		for _, anchor := range htmlutil.GetAnchors(section.Find(pageSelectors.appLink)) {
			id := idFromURL(anchor.Href)
			if id == 0 || id == selfID {
				continue
			}
			ref := similarRef{id: id, linkType: linkType}
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			refs = append(refs, ref)
		}
	})

	return refs
}

// parsePrivacyDetails extracts the privacy declarations; a page without
// the section yields the zero value by contract.
func parsePrivacyDetails(doc *goquery.Document) PrivacyDetails {
	section := doc.Find(pageSelectors.privacySection).First()
	if section.Length() == 0 {
		return PrivacyDetails{}
	}

	details := PrivacyDetails{}
	anchors := htmlutil.GetAnchors(section.Find(pageSelectors.privacyPolicyLink))
	if len(anchors) > 0 {
		details.PolicyURL = anchors[0].Href
	}

	section.Find(pageSelectors.privacyCard).Each(func(_ int, card *goquery.Selection) {
		ptype := PrivacyType{
			Name:        htmlutil.CleanText(card.Find(pageSelectors.privacyCardTitle).First().Text()),
			Description: htmlutil.CleanText(card.Find(pageSelectors.privacyCardDesc).First().Text()),
		}
		card.Find(pageSelectors.privacyCardItem).Each(func(_ int, item *goquery.Selection) {
			category := htmlutil.CleanText(item.Text())
			if category != "" {
				ptype.DataCategories = append(ptype.DataCategories, category)
			}
		})
		details.Types = append(details.Types, ptype)
	})

	return details
}

// parseVersionHistoryItems keeps source document order; release dates
// prefer the machine-readable datetime attribute over rendered text.
func parseVersionHistoryItems(doc *goquery.Document) []Release {
	var releases []Release
	doc.Find(pageSelectors.versionItem).Each(func(_ int, item *goquery.Selection) {
		date := item.Find(pageSelectors.versionDate).First()
		releases = append(releases, Release{
			Version:      htmlutil.CleanText(item.Find(pageSelectors.versionNumber).First().Text()),
			ReleaseDate:  date.AttrOr("datetime", htmlutil.CleanText(date.Text())),
			ReleaseNotes: htmlutil.CleanText(item.Find(pageSelectors.versionNotes).First().Text()),
		})
	})
	return releases
}
