package ordering

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/waxworks/stylus/internal/record"
)

// Section is one shelf bucket: a label and the records that fall under
// it, in the relative order the sort established. Sections are derived
// on demand and never persisted.
type Section struct {
	Label   string
	Records []*record.Record
}

// SectionLabel buckets a sort key by its leading character: an upper-cased
// letter for alphabetic keys, "#" for empty keys and keys led by digits
// or symbols. "?" is reserved for indeterminate entries.
func SectionLabel(key string) string {
	if key == "" {
		return "#"
	}
	first := []rune(key)[0]
	if unicode.IsLetter(first) {
		return string(unicode.ToUpper(first))
	}
	return "#"
}

// sectionKey picks which sort key drives sectioning for a field.
// Sectioning is only meaningful for artist and title sorts.
func sectionKey(r *record.Record, field Field) string {
	if field == FieldTitle {
		return r.SortTitle
	}
	return r.SortArtist
}

// Sectionize partitions an already-sorted record sequence into labeled
// sections. Records keep their relative order; sections are ordered
// letters first (natural order), then numeric labels (numerically),
// then "#", then "?".
func Sectionize(records []*record.Record, field Field) []Section {
	byLabel := make(map[string]*Section)
	var labels []string

	for _, r := range records {
		label := SectionLabel(sectionKey(r, field))
		section, ok := byLabel[label]
		if !ok {
			section = &Section{Label: label}
			byLabel[label] = section
			labels = append(labels, label)
		}
		section.Records = append(section.Records, r)
	}

	slices.SortFunc(labels, compareSectionLabels)

	sections := make([]Section, 0, len(labels))
	for _, label := range labels {
		sections = append(sections, *byLabel[label])
	}
	return sections
}

func compareSectionLabels(a, b string) int {
	ra, rb := labelRank(a), labelRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 1: // numeric labels order numerically
		na, _ := strconv.Atoi(a)
		nb, _ := strconv.Atoi(b)
		return na - nb
	default:
		return strings.Compare(a, b)
	}
}

// labelRank: letters < numeric labels < "#" < "?".
func labelRank(label string) int {
	switch {
	case label == "#":
		return 2
	case label == "?":
		return 3
	case isNumericLabel(label):
		return 1
	default:
		return 0
	}
}

func isNumericLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, r := range label {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
