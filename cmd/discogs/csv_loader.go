package discogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/waxworks/stylus/internal/csvutil"
	api "github.com/waxworks/stylus/internal/discogs"
)

// loadCSVExport reads a Discogs collection CSV export into the same
// release shape the API returns, so the rest of the pipeline does not
// care where a listing came from.
func loadCSVExport(filename string) ([]api.CollectionRelease, error) {
	releases, err := csvutil.ProcessCSV(filename, parseExportRow, csvutil.ProcessorOptions{
		RequiredColumns: []string{"Artist", "Title"},
		SkipInvalid:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse collection export: %w", err)
	}
	return releases, nil
}

func parseExportRow(row csvutil.Row) (api.CollectionRelease, error) {
	artist := strings.TrimSpace(row.Get("Artist"))
	title := strings.TrimSpace(row.Get("Title"))
	if artist == "" && title == "" {
		return api.CollectionRelease{}, fmt.Errorf("row has neither artist nor title")
	}

	year, _ := strconv.Atoi(strings.TrimSpace(row.Get("Released")))
	releaseID, _ := strconv.Atoi(strings.TrimSpace(row.Get("release_id")))

	basic := api.BasicInformation{
		ID:      releaseID,
		Title:   title,
		Year:    year,
		Artists: []api.Artist{{Name: artist}},
		Formats: parseFormats(row.Get("Format")),
	}

	if label := strings.TrimSpace(row.Get("Label")); label != "" {
		basic.Labels = []api.Label{{
			Name:  label,
			CatNo: strings.TrimSpace(row.Get("Catalog#")),
		}}
	}

	release := api.CollectionRelease{
		ID:               releaseID,
		BasicInformation: basic,
	}

	if notes := strings.TrimSpace(row.Get("Collection Notes")); notes != "" {
		release.Notes = []api.Note{{FieldID: 3, Value: notes}}
	}

	return release, nil
}

// parseFormats parses the export's Format column, e.g.
// "2xVinyl, LP, Album, Gatefold" into a name, quantity and descriptors.
func parseFormats(value string) []api.Format {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 0 || parts[0] == "" {
		return nil
	}

	format := api.Format{Name: parts[0], Qty: "1"}
	if qty, name, ok := strings.Cut(parts[0], "x"); ok {
		if _, err := strconv.Atoi(qty); err == nil && name != "" {
			format.Qty = qty
			format.Name = name
		}
	}

	for _, desc := range parts[1:] {
		if desc != "" {
			format.Descriptions = append(format.Descriptions, desc)
		}
	}

	return []api.Format{format}
}
