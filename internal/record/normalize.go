package record

import (
	"regexp"
	"strings"

	"github.com/waxworks/stylus/internal/discogs"
)

// nameSuffixRe matches the trailing " (N)" disambiguator Discogs appends
// to same-named but distinct entities ("Bob (2)").
var nameSuffixRe = regexp.MustCompile(`\s*\(\d+\)$`)

// multiSpaceRe collapses runs of whitespace left over from join handling.
var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// defaultArticles are always stripped when building sort keys.
var defaultArticles = []string{"the", "a", "an"}

// ArtistDisplay renders the credited artists of a release as one
// human-readable string. Numeric disambiguators are stripped from each
// contributor and join tokens get exactly one space on each side
// (commas attach to the preceding name). With no structured artist list
// the title stands in, matching what Discogs shows for such entries.
func ArtistDisplay(basic discogs.BasicInformation) string {
	if len(basic.Artists) == 0 {
		return strings.TrimSpace(basic.Title)
	}

	var b strings.Builder
	for i, artist := range basic.Artists {
		b.WriteString(StripNameSuffix(strings.TrimSpace(artist.Name)))

		if i == len(basic.Artists)-1 {
			break
		}
		join := strings.TrimSpace(artist.Join)
		switch join {
		case "", ",":
			b.WriteString(", ")
		default:
			b.WriteString(" " + join + " ")
		}
	}

	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(b.String(), " "))
}

// FormatDescription renders the declared formats of a release, e.g.
// "2xVinyl, LP, Album, 33 1/3 RPM; Box Set". A quantity prefix is added
// when the quantity is present and not "1".
func FormatDescription(basic discogs.BasicInformation) string {
	var entries []string
	for _, f := range basic.Formats {
		var b strings.Builder
		if f.Qty != "" && f.Qty != "1" {
			b.WriteString(f.Qty + "x")
		}
		b.WriteString(f.Name)
		for _, d := range f.Descriptions {
			if d = strings.TrimSpace(d); d != "" {
				b.WriteString(", " + d)
			}
		}
		if s := b.String(); s != "" {
			entries = append(entries, s)
		}
	}
	return strings.Join(entries, "; ")
}

// StripNameSuffix removes a trailing parenthesized disambiguation number.
func StripNameSuffix(name string) string {
	return nameSuffixRe.ReplaceAllString(name, "")
}

// SortKeys derives the comparison keys for an artist display string and
// a title. The artist key is taken from the text before the first "/" or
// "," (multi-artist strings list the primary contributor first), with
// the numeric suffix and any leading article removed; the title key only
// loses its article. Both keys are lower-cased. A key that strips down
// to the empty string stays empty and sorts first.
func SortKeys(artistDisplay, title string, extraArticles []string) (sortArtist, sortTitle string) {
	primary := artistDisplay
	if i := strings.IndexAny(primary, "/,"); i >= 0 {
		primary = primary[:i]
	}
	primary = StripNameSuffix(strings.TrimSpace(primary))

	sortArtist = strings.ToLower(stripLeadingArticle(primary, extraArticles))
	sortTitle = strings.ToLower(stripLeadingArticle(strings.TrimSpace(title), extraArticles))
	return sortArtist, sortTitle
}

// stripLeadingArticle removes one leading article matched
// case-insensitively as a whole word followed by a space or apostrophe.
func stripLeadingArticle(s string, extra []string) string {
	for _, article := range articleList(extra) {
		n := len(article)
		if len(s) <= n || !strings.EqualFold(s[:n], article) {
			continue
		}
		switch s[n] {
		case ' ':
			return strings.TrimLeft(s[n:], " ")
		case '\'':
			return s[n+1:]
		}
	}
	return s
}

func articleList(extra []string) []string {
	if len(extra) == 0 {
		return defaultArticles
	}
	articles := make([]string, 0, len(defaultArticles)+len(extra))
	articles = append(articles, defaultArticles...)
	for _, a := range extra {
		if a = strings.TrimSpace(a); a != "" {
			articles = append(articles, a)
		}
	}
	return articles
}

func labelAndCatalogNumber(basic discogs.BasicInformation) (label, catNo string) {
	if len(basic.Labels) == 0 {
		return "", ""
	}
	return strings.TrimSpace(basic.Labels[0].Name), strings.TrimSpace(basic.Labels[0].CatNo)
}
