package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waxworks/stylus/internal/record"
)

func TestSectionLabel(t *testing.T) {
	tests := map[string]string{
		"who":      "W",
		"beatles":  "B",
		"10cc":     "#", // digit-led keys fall to "#" under the first-character rule
		"":         "#",
		"!!!":      "#",
		"äther":    "Ä",
		"zz top":   "Z",
	}
	for key, want := range tests {
		assert.Equal(t, want, SectionLabel(key), "key %q", key)
	}
}

func TestSectionizeBucketsAndOrder(t *testing.T) {
	// Already sorted by artist: empty key first, then digits, then letters.
	records := []*record.Record{
		{SortArtist: "", Title: "Blank"},
		{SortArtist: "10cc", Title: "Sheet Music"},
		{SortArtist: "air", Title: "Moon Safari"},
		{SortArtist: "who", Title: "Tommy"},
		{SortArtist: "wire", Title: "Pink Flag"},
	}

	sections := Sectionize(records, FieldArtist)
	require.Len(t, sections, 3)

	// "#" lands after all letters regardless of where its members sorted.
	assert.Equal(t, "A", sections[0].Label)
	assert.Equal(t, "W", sections[1].Label)
	assert.Equal(t, "#", sections[2].Label)

	assert.Len(t, sections[2].Records, 2)
	assert.Equal(t, "Blank", sections[2].Records[0].Title)
	assert.Equal(t, "Sheet Music", sections[2].Records[1].Title)

	// Relative order inside a section is preserved, not re-sorted.
	assert.Equal(t, "Tommy", sections[1].Records[0].Title)
	assert.Equal(t, "Pink Flag", sections[1].Records[1].Title)
}

func TestSectionizeByTitleUsesTitleKey(t *testing.T) {
	records := []*record.Record{
		{SortArtist: "who", SortTitle: "tommy", Title: "Tommy"},
		{SortArtist: "air", SortTitle: "moon safari", Title: "Moon Safari"},
	}

	sections := Sectionize(records, FieldTitle)
	require.Len(t, sections, 2)
	assert.Equal(t, "M", sections[0].Label)
	assert.Equal(t, "T", sections[1].Label)
}

func TestCompareSectionLabels(t *testing.T) {
	assert.Negative(t, compareSectionLabels("A", "Z"))
	assert.Negative(t, compareSectionLabels("Z", "3"), "letters before numeric labels")
	assert.Negative(t, compareSectionLabels("3", "12"), "numeric labels compare numerically")
	assert.Negative(t, compareSectionLabels("12", "#"))
	assert.Negative(t, compareSectionLabels("#", "?"))
}
