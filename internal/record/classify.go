package record

import (
	"strings"

	"github.com/waxworks/stylus/internal/discogs"
)

var descriptorCompactor = strings.NewReplacer(".", "", " ", "")

// IsLongPlay reports whether a release qualifies as a 33 1/3 rpm
// long-player. Only formats named "vinyl" are considered. Strict mode
// requires an LP/Album tag and a 33 rpm speed marker; lenient mode also
// accepts an untagged 12-inch 33 rpm disc, on the theory that catalog
// metadata is user-submitted and such discs are effectively LPs.
func IsLongPlay(basic discogs.BasicInformation, strict bool) bool {
	for _, format := range basic.Formats {
		if !strings.EqualFold(strings.TrimSpace(format.Name), "vinyl") {
			continue
		}

		var hasAlbumTag, has33RPM, hasTwelveInch bool
		for _, desc := range format.Descriptions {
			desc = strings.ToLower(strings.TrimSpace(desc))

			if desc == "lp" || desc == "album" {
				hasAlbumTag = true
			}
			// "33 1/3 RPM", "33⅓RPM" and "33.RPM" all compact to a
			// single token ending in "rpm".
			compact := descriptorCompactor.Replace(desc)
			if strings.Contains(compact, "33") && strings.HasSuffix(compact, "rpm") {
				has33RPM = true
			}
			if hasTwelveInchMarker(desc) {
				hasTwelveInch = true
			}
		}

		if strict {
			if hasAlbumTag && has33RPM {
				return true
			}
		} else {
			if hasAlbumTag || (has33RPM && hasTwelveInch) {
				return true
			}
		}
	}
	return false
}

// hasTwelveInchMarker matches 12" size descriptors (`12"`, "12in",
// "12-inch"). Any descriptor containing "12" counts, which can misfire
// on unrelated descriptors; deliberately kept over-broad to match the
// established lenient behavior.
func hasTwelveInchMarker(desc string) bool {
	return strings.Contains(desc, "12")
}
