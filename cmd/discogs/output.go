package discogs

import (
	"fmt"
	"log/slog"

	"github.com/waxworks/stylus/internal/cmdutil"
	"github.com/waxworks/stylus/internal/export"
	"github.com/waxworks/stylus/internal/fileutil"
	"github.com/waxworks/stylus/internal/record"
)

const recordsSchema = `CREATE TABLE IF NOT EXISTS records (
	release_id INTEGER,
	artist TEXT NOT NULL,
	title TEXT NOT NULL,
	year INTEGER,
	label TEXT,
	catalog_number TEXT,
	country TEXT,
	format TEXT,
	url TEXT,
	notes TEXT,
	sort_artist TEXT,
	sort_title TEXT,
	lowest_price REAL
)`

// writeListings writes the sorted listing in the enabled serialization
// formats. Records must already be in final shelf order.
func writeListings(records []*record.Record, cfg *cmdutil.BaseCommandConfig, dividers bool) error {
	if cfg.WriteText {
		listing := export.PlainText(records, dividers)
		if _, err := writeListing(cfg.TextOutput, []byte(listing), cfg.Overwrite); err != nil {
			return fmt.Errorf("failed to write text listing: %w", err)
		}
		slog.Info("Wrote text listing", "path", cfg.TextOutput, "records", len(records))
	}

	if cfg.WriteCSV {
		listing, err := export.CSV(records)
		if err != nil {
			return fmt.Errorf("failed to render CSV listing: %w", err)
		}
		if _, err := writeListing(cfg.CSVOutput, []byte(listing), cfg.Overwrite); err != nil {
			return fmt.Errorf("failed to write CSV listing: %w", err)
		}
		slog.Info("Wrote CSV listing", "path", cfg.CSVOutput, "records", len(records))
	}

	if cfg.WriteJSON {
		listing, err := export.JSON(records)
		if err != nil {
			return fmt.Errorf("failed to render JSON listing: %w", err)
		}
		if _, err := writeListing(cfg.JSONOutput, listing, cfg.Overwrite); err != nil {
			return fmt.Errorf("failed to write JSON listing: %w", err)
		}
		slog.Info("Wrote JSON listing", "path", cfg.JSONOutput, "records", len(records))
	}

	return nil
}

func writeListing(path string, data []byte, overwrite bool) (bool, error) {
	return fileutil.WriteFileWithOverwrite(path, data, 0644, overwrite)
}

func writeRecordsToDatasetteIfEnabled(records []*record.Record) error {
	return cmdutil.WriteToDatastore(records, recordsSchema, "records", "Discogs records", recordToMap)
}
