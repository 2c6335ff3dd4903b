package discogs

import (
	"testing"

	"github.com/stretchr/testify/require"

	api "github.com/waxworks/stylus/internal/discogs"
	"github.com/waxworks/stylus/internal/testutil"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []api.Format
	}{
		{
			name:  "plain vinyl LP",
			input: "Vinyl, LP, Album",
			want:  []api.Format{{Name: "Vinyl", Qty: "1", Descriptions: []string{"LP", "Album"}}},
		},
		{
			name:  "quantity prefix",
			input: "2xVinyl, LP, Compilation, Gatefold",
			want:  []api.Format{{Name: "Vinyl", Qty: "2", Descriptions: []string{"LP", "Compilation", "Gatefold"}}},
		},
		{
			name:  "x without a quantity stays part of the name",
			input: "Box Set, LP",
			want:  []api.Format{{Name: "Box Set", Qty: "1", Descriptions: []string{"LP"}}},
		},
		{
			name:  "empty column",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseFormats(tt.input))
		})
	}
}

func TestLoadCSVExport(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("collection.csv",
		"Catalog#,Artist,Title,Label,Format,Released,release_id,Collection Notes\n"+
			"XLLP785,Radiohead,A Moon Shaped Pool,XL Recordings,\"2xVinyl, LP, Album\",2016,8601394,Gift from Maria\n"+
			"ST-12345,The Beatles,Abbey Road,Apple Records,\"Vinyl, LP, Album\",1969,1234567,\n")

	releases, err := loadCSVExport(env.Path("collection.csv"))
	require.NoError(t, err)
	require.Len(t, releases, 2)

	first := releases[0]
	require.Equal(t, 8601394, first.ID)
	require.Equal(t, "A Moon Shaped Pool", first.BasicInformation.Title)
	require.Equal(t, 2016, first.BasicInformation.Year)
	require.Equal(t, "Radiohead", first.BasicInformation.Artists[0].Name)
	require.Equal(t, "XL Recordings", first.BasicInformation.Labels[0].Name)
	require.Equal(t, "XLLP785", first.BasicInformation.Labels[0].CatNo)
	require.Equal(t, "2", first.BasicInformation.Formats[0].Qty)
	require.Len(t, first.Notes, 1)
	require.Equal(t, "Gift from Maria", first.Notes[0].Value)

	require.Empty(t, releases[1].Notes)
}

func TestLoadCSVExportSkipsRowsWithoutArtistAndTitle(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("collection.csv",
		"Artist,Title,Released\n"+
			",,\n"+
			"Nina Simone,Pastel Blues,1965\n")

	releases, err := loadCSVExport(env.Path("collection.csv"))
	require.NoError(t, err)
	require.Len(t, releases, 1)
	require.Equal(t, "Pastel Blues", releases[0].BasicInformation.Title)
}

func TestLoadCSVExportMissingRequiredColumn(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("collection.csv", "Title,Released\nAbbey Road,1969\n")

	_, err := loadCSVExport(env.Path("collection.csv"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Artist")
}
