package discogs

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/waxworks/stylus/internal/cache"
	api "github.com/waxworks/stylus/internal/discogs"
	"github.com/waxworks/stylus/internal/record"
)

// enrichPrices fills in the lowest marketplace asking price for each
// record. Lookups go through the price cache; individual failures are
// logged and skipped so one flaky release cannot abort the import.
func enrichPrices(ctx context.Context, client *api.Client, records []*record.Record) {
	var enriched, failed int
	for _, r := range records {
		if r.ReleaseID == 0 {
			continue
		}

		releaseID := r.ReleaseID
		stats, _, err := cache.GetOrFetch(cache.PriceTable, strconv.Itoa(releaseID), func() (*api.PriceStats, error) {
			return client.ReleasePriceStats(ctx, releaseID)
		})
		if err != nil {
			slog.Warn("Price lookup failed", "release_id", releaseID, "title", r.Title, "error", err)
			failed++
			continue
		}
		if stats == nil || stats.LowestPrice == nil {
			// Nothing for sale; the record keeps its unknown price.
			continue
		}

		price := stats.LowestPrice.Value
		r.LowestPrice = &price
		enriched++

		if enriched%25 == 0 {
			slog.Info("Looking up prices", "enriched", enriched, "total", len(records))
		}
	}

	slog.Info("Price enrichment finished", "enriched", enriched, "failed", failed, "total", len(records))
}
