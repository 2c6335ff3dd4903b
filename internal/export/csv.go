package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/waxworks/stylus/internal/record"
)

// csvHeader is fixed: spreadsheets importing these files depend on the
// exact column order.
var csvHeader = []string{"Artist", "Title", "Year", "Label", "CatNo", "Country", "Format", "URL", "Notes"}

// CSV renders the records as an RFC 4180 delimited table with a header
// row. Fields containing commas, quotes or newlines are quote-wrapped
// with internal quotes doubled, which encoding/csv does for us.
func CSV(records []*record.Record) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		year := ""
		if r.Year != 0 {
			year = strconv.Itoa(r.Year)
		}
		row := []string{
			r.ArtistDisplay,
			r.Title,
			year,
			r.Label,
			r.CatalogNumber,
			r.Country,
			r.Format,
			r.URL,
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return b.String(), nil
}
