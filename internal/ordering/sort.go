package ordering

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/waxworks/stylus/internal/record"
)

// unknownYear sorts year-less records to the end.
const unknownYear = 9999

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und)
)

// compareStrings is a locale-aware total order: when the collator
// considers two distinct strings equal, byte order breaks the tie so no
// two distinct strings ever compare equal.
func compareStrings(a, b string) int {
	if a == b {
		return 0
	}
	collatorMu.Lock()
	c := collator.CompareString(a, b)
	collatorMu.Unlock()
	if c == 0 {
		return strings.Compare(a, b)
	}
	return c
}

// Sort returns a fresh slice ordered by the policy. The input is never
// mutated and the result does not depend on the input's original order:
// every comparison chain ends in an absolute tie-break.
func Sort(records []*record.Record, policy Policy) []*record.Record {
	sorted := make([]*record.Record, len(records))
	copy(sorted, records)
	slices.SortStableFunc(sorted, func(a, b *record.Record) int {
		return Compare(a, b, policy)
	})
	return sorted
}

// Compare orders two records under the given policy.
func Compare(a, b *record.Record, policy Policy) int {
	switch policy.Field {
	case FieldPriceAsc:
		if c := cmp.Compare(priceOr(a, math.Inf(1)), priceOr(b, math.Inf(1))); c != 0 {
			return c
		}
		return compareStrings(concatKeys(a), concatKeys(b))

	case FieldPriceDesc:
		// Missing prices sort last here too: nil maps to -inf and the
		// comparison is reversed.
		if c := cmp.Compare(priceOr(b, math.Inf(-1)), priceOr(a, math.Inf(-1))); c != 0 {
			return c
		}
		return compareStrings(concatKeys(a), concatKeys(b))

	case FieldYear:
		if c := cmp.Compare(yearOr(a, unknownYear), yearOr(b, unknownYear)); c != 0 {
			return c
		}
		return compareStrings(concatKeys(a), concatKeys(b))

	default:
		return compareByName(a, b, policy)
	}
}

func compareByName(a, b *record.Record, policy Policy) int {
	aVarious, bVarious := a.IsVariousArtists(), b.IsVariousArtists()

	if policy.Various == VariousEnd && aVarious != bVarious {
		if aVarious {
			return 1
		}
		return -1
	}

	primaryA, secondaryA := a.SortArtist, a.SortTitle
	primaryB, secondaryB := b.SortArtist, b.SortTitle
	if policy.Field == FieldTitle {
		primaryA, secondaryA = secondaryA, primaryA
		primaryB, secondaryB = secondaryB, primaryB
	}

	// Compilations cluster by title when both sides are various-artist.
	if policy.Various == VariousGroup && aVarious && bVarious {
		primaryA, secondaryA = a.SortTitle, a.SortTitle
		primaryB, secondaryB = b.SortTitle, b.SortTitle
	}

	if c := compareStrings(primaryA, primaryB); c != 0 {
		return c
	}
	if c := compareStrings(secondaryA, secondaryB); c != 0 {
		return c
	}
	if c := cmp.Compare(yearOr(a, unknownYear), yearOr(b, unknownYear)); c != 0 {
		return c
	}
	return compareStrings(concatKeys(a), concatKeys(b))
}

func concatKeys(r *record.Record) string {
	return r.SortArtist + r.SortTitle
}

func yearOr(r *record.Record, fallback int) int {
	if r.Year == 0 {
		return fallback
	}
	return r.Year
}

func priceOr(r *record.Record, fallback float64) float64 {
	if r.LowestPrice == nil {
		return fallback
	}
	return *r.LowestPrice
}
