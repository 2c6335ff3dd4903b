// Package record builds normalized, sortable shelf records out of raw
// Discogs collection entries. Construction never fails: missing or
// malformed metadata degrades to zero values instead of erroring, so a
// single bad catalog entry cannot abort an import.
package record

import (
	"fmt"
	"strings"

	"github.com/waxworks/stylus/internal/discogs"
)

// Record is one normalized collection item. Records are built once per
// raw entry and treated as immutable afterwards; sorting only reorders
// references. SortArtist/SortTitle are comparison keys derived from the
// display strings and are never shown to the user.
type Record struct {
	ArtistDisplay string
	Title         string
	Year          int // 0 = unknown
	Country       string
	Label         string
	CatalogNumber string
	Format        string
	Notes         string

	SortArtist string
	SortTitle  string

	ReleaseID int
	ThumbURL  string
	CoverURL  string
	URL       string

	// LowestPrice is the marketplace asking price, filled in by the
	// optional price lookup. nil means unknown.
	LowestPrice *float64
}

// New builds a Record from a raw collection release. extraArticles are
// stripped from sort keys in addition to the built-in the/a/an.
func New(release discogs.CollectionRelease, extraArticles []string) *Record {
	basic := release.BasicInformation

	artist := ArtistDisplay(basic)
	title := strings.TrimSpace(basic.Title)
	label, catNo := labelAndCatalogNumber(basic)
	sortArtist, sortTitle := SortKeys(artist, title, extraArticles)

	r := &Record{
		ArtistDisplay: artist,
		Title:         title,
		Year:          basic.Year,
		Country:       basic.Country,
		Label:         label,
		CatalogNumber: catNo,
		Format:        FormatDescription(basic),
		Notes:         joinNotes(release.Notes),
		SortArtist:    sortArtist,
		SortTitle:     sortTitle,
		ThumbURL:      basic.Thumb,
		CoverURL:      basic.CoverImage,
	}

	if basic.ID > 0 {
		r.ReleaseID = basic.ID
		r.URL = fmt.Sprintf("https://www.discogs.com/release/%d", basic.ID)
	}

	return r
}

// IsVariousArtists reports whether this record is a multi-contributor
// compilation credited to the "Various" placeholder artist.
func (r *Record) IsVariousArtists() bool {
	display := strings.ToLower(strings.TrimSpace(r.ArtistDisplay))
	return display == "various" || display == "various artists"
}

func joinNotes(notes []discogs.Note) string {
	var values []string
	for _, n := range notes {
		if v := strings.TrimSpace(n.Value); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " / ")
}
