package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waxworks/stylus/internal/record"
)

func rec(artist, title string, year int) *record.Record {
	sortArtist, sortTitle := record.SortKeys(artist, title, nil)
	return &record.Record{
		ArtistDisplay: artist,
		Title:         title,
		Year:          year,
		SortArtist:    sortArtist,
		SortTitle:     sortTitle,
	}
}

func TestPlainTextWithDividers(t *testing.T) {
	records := []*record.Record{
		rec("Air", "Moon Safari", 1998),
		rec("Boards of Canada", "Geogaddi", 2002),
		rec("Caribou", "Swim", 2010),
	}
	records[0].Label = "Source"
	records[0].CatalogNumber = "7243 8 44978 1 4"

	got := PlainText(records, true)
	want := strings.Join([]string{
		"=== A ===",
		"Air — Moon Safari (1998) [Source 7243 8 44978 1 4]",
		"=== B ===",
		"Boards of Canada — Geogaddi (2002)",
		"=== C ===",
		"Caribou — Swim (2010)",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPlainTextDividerOnlyOnSectionChange(t *testing.T) {
	records := []*record.Record{
		rec("Autechre", "Amber", 1994),
		rec("Aphex Twin", "Drukqs", 2001),
		rec("Burial", "Untrue", 2007),
	}

	got := PlainText(records, true)
	assert.Equal(t, 2, strings.Count(got, "==="), "expected exactly two divider lines")
	assert.Equal(t, 1, strings.Count(got, "=== A ==="))
	assert.Equal(t, 1, strings.Count(got, "=== B ==="))
}

func TestPlainTextOmissions(t *testing.T) {
	noYear := rec("Mystery Band", "Untitled", 0)
	noYear.Label = "Blank"

	bare := rec("Someone", "Something", 1999)

	got := PlainText([]*record.Record{noYear, bare}, false)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Mystery Band — Untitled [Blank]", lines[0])
	assert.Equal(t, "Someone — Something (1999)", lines[1])
	assert.NotContains(t, got, "===")
}

func TestCSVQuoting(t *testing.T) {
	tricky := rec(`Sharon, Lois & Bram`, `The "Elephant" Show`, 1984)
	tricky.Notes = "line one\nline two"

	out, err := CSV([]*record.Record{tricky})
	require.NoError(t, err)

	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, "Artist,Title,Year,Label,CatNo,Country,Format,URL,Notes", lines[0])
	assert.Contains(t, out, `"Sharon, Lois & Bram"`)
	assert.Contains(t, out, `"The ""Elephant"" Show"`)

	// Must parse back to the same values.
	reader := csv.NewReader(strings.NewReader(out))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `Sharon, Lois & Bram`, rows[1][0])
	assert.Equal(t, `The "Elephant" Show`, rows[1][1])
	assert.Equal(t, "1984", rows[1][2])
	assert.Equal(t, "line one\nline two", rows[1][8])
}

func TestJSONRoundTrip(t *testing.T) {
	r := rec("The Beatles", "Abbey Road", 1969)
	r.Label = "Apple Records"
	r.CatalogNumber = "PCS 7088"
	r.Country = "UK"
	r.Format = "Vinyl, LP, Album"
	r.URL = "https://www.discogs.com/release/1387512"
	r.Notes = "misaligned apple on rear"

	data, err := JSON([]*record.Record{r})
	require.NoError(t, err)

	var parsed []Entry
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)

	assert.Equal(t, Entries([]*record.Record{r})[0], parsed[0])
	assert.Equal(t, "beatles", parsed[0].SortArtist)
	assert.Equal(t, "abbey road", parsed[0].SortTitle)
	assert.Equal(t, "The Beatles", parsed[0].Artist)
}

func TestEntriesPreserveOrder(t *testing.T) {
	records := []*record.Record{
		rec("Zomby", "Dedication", 2011),
		rec("Actress", "R.I.P.", 2012),
	}
	entries := Entries(records)
	require.Len(t, entries, 2)
	assert.Equal(t, "Zomby", entries[0].Artist)
	assert.Equal(t, "Actress", entries[1].Artist)
}
