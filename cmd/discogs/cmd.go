// Package discogs implements the Discogs collection import: fetch or
// load a collection listing, keep the long players, normalize and sort
// them, and write the enabled outputs.
package discogs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/waxworks/stylus/internal/cmdutil"
	"github.com/waxworks/stylus/internal/config"
	api "github.com/waxworks/stylus/internal/discogs"
	"github.com/waxworks/stylus/internal/ordering"
	"github.com/waxworks/stylus/internal/record"
)

// ParseDiscogsWithParams runs a full import with the given parameters.
func ParseDiscogsWithParams(params ParseParams) error {
	policy, err := buildPolicy(params)
	if err != nil {
		return err
	}

	cfg := &cmdutil.BaseCommandConfig{
		OutputDir:  params.Output,
		ConfigKey:  "discogs",
		WriteJSON:  params.WriteJSON,
		JSONOutput: params.JSONOutput,
		WriteText:  params.WriteText,
		TextOutput: params.TextOutput,
		WriteCSV:   params.WriteCSV,
		CSVOutput:  params.CSVOutput,
		Overwrite:  params.Overwrite,
	}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	ctx := context.Background()

	if params.Automated {
		path, err := downloadDiscogsCSV(ctx, params.AutomationOptions)
		if err != nil {
			return fmt.Errorf("failed to automate collection export: %w", err)
		}
		params.Input = path
	}

	var client *api.Client
	var releases []api.CollectionRelease
	if params.Input != "" {
		releases, err = loadCSVExport(params.Input)
		if err != nil {
			return err
		}
		slog.Info("Loaded collection export", "file", params.Input, "releases", len(releases))
	} else {
		if params.Username == "" {
			return fmt.Errorf("either a Discogs username or a CSV export file is required")
		}
		client = newClient()

		folder, err := resolveFolder(ctx, client, params.Username, params.Folder)
		if err != nil {
			if errors.Is(err, errImportCancelled) {
				slog.Info("Import cancelled")
				return nil
			}
			return err
		}

		releases, err = fetchReleases(ctx, client, params.Username, folder)
		if err != nil {
			return err
		}
	}

	records := buildRecords(releases, params)
	if len(records) == 0 {
		slog.Warn("No records to write", "releases", len(releases))
		return nil
	}

	if params.Prices {
		// The CSV path also needs an API client for price lookups.
		if client == nil {
			client = newClient()
		}
		enrichPrices(ctx, client, records)
	}

	records = ordering.Sort(records, policy)

	if err := writeListings(records, cfg, params.Dividers); err != nil {
		return err
	}

	if params.Markdown {
		var written int
		for _, r := range records {
			if err := writeRecordToMarkdown(r, cfg.OutputDir, params.Covers, cfg.Overwrite); err != nil {
				slog.Error("Failed to write markdown note", "title", r.Title, "error", err)
				continue
			}
			written++
		}
		slog.Info("Wrote markdown notes", "written", written, "directory", cfg.OutputDir)
	}

	return writeRecordsToDatasetteIfEnabled(records)
}

func buildPolicy(params ParseParams) (ordering.Policy, error) {
	policy := ordering.DefaultPolicy()
	if params.SortBy != "" {
		field, err := ordering.ParseField(params.SortBy)
		if err != nil {
			return ordering.Policy{}, err
		}
		policy.Field = field
	}
	if params.Various != "" {
		placement, err := ordering.ParsePlacement(params.Various)
		if err != nil {
			return ordering.Policy{}, err
		}
		policy.Various = placement
	}
	return policy, nil
}

// buildRecords normalizes the listing, dropping non-LP releases unless
// AllFormats keeps everything.
func buildRecords(releases []api.CollectionRelease, params ParseParams) []*record.Record {
	records := make([]*record.Record, 0, len(releases))
	var skipped int
	for _, release := range releases {
		if !params.AllFormats && !record.IsLongPlay(release.BasicInformation, !params.Lenient) {
			skipped++
			continue
		}
		records = append(records, record.New(release, config.ExtraArticles))
	}
	if skipped > 0 {
		slog.Info("Filtered out non-LP releases", "kept", len(records), "skipped", skipped)
	}
	return records
}
