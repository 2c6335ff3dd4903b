package csvutil

import (
	"testing"

	"github.com/waxworks/stylus/internal/testutil"
)

type row struct {
	Artist string
	Title  string
	Year   string
}

func parseRow(r Row) (row, error) {
	return row{
		Artist: r.Get("Artist"),
		Title:  r.Get("Title"),
		Year:   r.Get("Released"),
	}, nil
}

func TestProcessCSV(t *testing.T) {
	env := testutil.NewTestEnv(t)

	// Column order differs from the struct on purpose.
	csvContent := `Title,Released,Artist
Low-Life,1985,New Order
Closer,1980,Joy Division
`
	env.WriteFileString("export.csv", csvContent)

	rows, err := ProcessCSV(env.Path("export.csv"), parseRow, ProcessorOptions{})
	if err != nil {
		t.Fatalf("ProcessCSV() error = %v", err)
	}

	expected := []row{
		{"New Order", "Low-Life", "1985"},
		{"Joy Division", "Closer", "1980"},
	}
	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(rows))
	}
	for i, r := range rows {
		if r != expected[i] {
			t.Errorf("rows[%d] = %v, want %v", i, r, expected[i])
		}
	}
}

func TestProcessCSV_MissingColumn(t *testing.T) {
	env := testutil.NewTestEnv(t)

	env.WriteFileString("export.csv", "Title\nLow-Life\n")

	_, err := ProcessCSV(env.Path("export.csv"), parseRow, ProcessorOptions{
		RequiredColumns: []string{"Artist"},
	})
	if err == nil {
		t.Error("expected error for missing required column, got nil")
	}
}

func TestProcessCSV_AbsentOptionalColumn(t *testing.T) {
	env := testutil.NewTestEnv(t)

	env.WriteFileString("export.csv", "Artist,Title\nCan,Ege Bamyasi\n")

	rows, err := ProcessCSV(env.Path("export.csv"), parseRow, ProcessorOptions{})
	if err != nil {
		t.Fatalf("ProcessCSV() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Year != "" {
		t.Errorf("expected empty year for absent column, got %v", rows)
	}
}

func TestProcessCSV_EmptyFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	env.WriteFileString("empty.csv", "")

	_, err := ProcessCSV(env.Path("empty.csv"), parseRow, ProcessorOptions{})
	if err == nil {
		t.Error("expected error for empty file, got nil")
	}
}

func TestProcessCSV_FileNotFound(t *testing.T) {
	_, err := ProcessCSV("/nonexistent/file.csv", parseRow, ProcessorOptions{})
	if err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}
