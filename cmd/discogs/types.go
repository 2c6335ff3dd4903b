package discogs

import "github.com/waxworks/stylus/internal/record"

// ParseParams carries everything an import run needs. Username/Folder
// drive the API path; Input switches to a local CSV export instead.
type ParseParams struct {
	Username string
	// Folder is the Discogs folder id to import. Negative means pick
	// interactively from the user's folders.
	Folder int
	// Input is a Discogs collection CSV export. When set, no API
	// listing is fetched.
	Input string
	// Automated drives a headless browser through the Discogs export
	// flow and imports the downloaded CSV.
	Automated bool
	AutomationOptions

	Output     string
	WriteJSON  bool
	JSONOutput string
	WriteText  bool
	TextOutput string
	WriteCSV   bool
	CSVOutput  string
	Markdown   bool

	SortBy   string
	Various  string
	Dividers bool
	// Lenient relaxes the long-player check for sloppily tagged
	// catalog entries.
	Lenient bool
	// AllFormats disables the long-player filter entirely.
	AllFormats bool

	// Prices enables the marketplace price lookup (needs the API).
	Prices bool
	// Covers downloads cover images next to the markdown notes.
	Covers bool

	Overwrite bool
}

// recordToMap converts a record to the column map inserted into the
// records table.
func recordToMap(r *record.Record) map[string]any {
	row := map[string]any{
		"release_id":     r.ReleaseID,
		"artist":         r.ArtistDisplay,
		"title":          r.Title,
		"year":           nil,
		"label":          r.Label,
		"catalog_number": r.CatalogNumber,
		"country":        r.Country,
		"format":         r.Format,
		"url":            r.URL,
		"notes":          r.Notes,
		"sort_artist":    r.SortArtist,
		"sort_title":     r.SortTitle,
		"lowest_price":   nil,
	}
	if r.Year > 0 {
		row["year"] = r.Year
	}
	if r.LowestPrice != nil {
		row["lowest_price"] = *r.LowestPrice
	}
	return row
}
