// Package ordering sorts normalized records deterministically and
// partitions the sorted sequence into shelf sections.
package ordering

import "fmt"

// Field selects the sorting dimension.
type Field string

const (
	FieldArtist    Field = "artist"
	FieldTitle     Field = "title"
	FieldYear      Field = "year"
	FieldPriceAsc  Field = "price-asc"
	FieldPriceDesc Field = "price-desc"
)

// VariousPlacement controls where various-artist compilations land when
// sorting by artist or title.
type VariousPlacement string

const (
	// VariousNormal applies no special treatment.
	VariousNormal VariousPlacement = "normal"
	// VariousEnd places compilations after all other records.
	VariousEnd VariousPlacement = "end"
	// VariousGroup clusters compilations by title instead of by the
	// literal "Various" artist string.
	VariousGroup VariousPlacement = "group"
)

// Policy is the full ordering configuration. It is plain value
// configuration: callers pass it into Sort and Sectionize explicitly,
// there is no process-wide selected policy.
type Policy struct {
	Field   Field
	Various VariousPlacement
}

// DefaultPolicy sorts by artist with no compilation special-casing.
func DefaultPolicy() Policy {
	return Policy{Field: FieldArtist, Various: VariousNormal}
}

// ParseField validates a user-supplied sort field name.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldArtist, FieldTitle, FieldYear, FieldPriceAsc, FieldPriceDesc:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown sort field %q (valid: artist, title, year, price-asc, price-desc)", s)
}

// ParsePlacement validates a user-supplied various-artist placement name.
func ParsePlacement(s string) (VariousPlacement, error) {
	switch VariousPlacement(s) {
	case VariousNormal, VariousEnd, VariousGroup:
		return VariousPlacement(s), nil
	}
	return "", fmt.Errorf("unknown various-artist placement %q (valid: normal, end, group)", s)
}
