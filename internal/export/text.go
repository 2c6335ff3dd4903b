// Package export renders ordered record sequences into the fixed
// plain-text, CSV and JSON shelf-list formats. The column order and
// quoting rules are a compatibility surface for downstream consumers.
package export

import (
	"fmt"
	"strings"

	"github.com/waxworks/stylus/internal/ordering"
	"github.com/waxworks/stylus/internal/record"
)

// PlainText renders one line per record:
//
//	Artist — Title (Year) [Label CatNo]
//
// The year parenthetical is omitted when unknown and the bracket segment
// when both label and catalog number are empty. With dividers enabled a
// "=== X ===" line is emitted whenever the artist-key section changes,
// using the same first-letter rule as sectioning.
func PlainText(records []*record.Record, withDividers bool) string {
	var b strings.Builder
	currentSection := ""

	for _, r := range records {
		if withDividers {
			section := ordering.SectionLabel(r.SortArtist)
			if section != currentSection {
				currentSection = section
				fmt.Fprintf(&b, "=== %s ===\n", section)
			}
		}
		b.WriteString(formatLine(r))
		b.WriteByte('\n')
	}

	return b.String()
}

func formatLine(r *record.Record) string {
	var b strings.Builder
	b.WriteString(r.ArtistDisplay)
	b.WriteString(" — ")
	b.WriteString(r.Title)

	if r.Year != 0 {
		fmt.Fprintf(&b, " (%d)", r.Year)
	}

	if bracket := strings.TrimSpace(r.Label + " " + r.CatalogNumber); bracket != "" {
		fmt.Fprintf(&b, " [%s]", bracket)
	}

	return b.String()
}
