package export

import (
	"encoding/json"
	"fmt"

	"github.com/waxworks/stylus/internal/record"
)

// Entry is the machine-readable projection of a record. It carries both
// sort keys so consumers can re-order without re-deriving them; values
// round-trip exactly as produced.
type Entry struct {
	Artist        string `json:"artist"`
	Title         string `json:"title"`
	Year          int    `json:"year,omitempty"`
	Label         string `json:"label"`
	CatalogNumber string `json:"catalogNumber"`
	Country       string `json:"country"`
	Format        string `json:"format"`
	URL           string `json:"url"`
	Notes         string `json:"notes"`
	SortArtist    string `json:"sortArtist"`
	SortTitle     string `json:"sortTitle"`
}

// Entries projects records into export entries, preserving order.
func Entries(records []*record.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Artist:        r.ArtistDisplay,
			Title:         r.Title,
			Year:          r.Year,
			Label:         r.Label,
			CatalogNumber: r.CatalogNumber,
			Country:       r.Country,
			Format:        r.Format,
			URL:           r.URL,
			Notes:         r.Notes,
			SortArtist:    r.SortArtist,
			SortTitle:     r.SortTitle,
		}
	}
	return entries
}

// JSON renders the records as an indented JSON array.
func JSON(records []*record.Record) ([]byte, error) {
	data, err := json.MarshalIndent(Entries(records), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return data, nil
}
