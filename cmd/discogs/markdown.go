package discogs

import (
	"fmt"
	"log/slog"

	"github.com/waxworks/stylus/internal/config"
	"github.com/waxworks/stylus/internal/fileutil"
	"github.com/waxworks/stylus/internal/record"
)

// writeRecordToMarkdown renders one record as a markdown note with
// YAML frontmatter and writes it under outputDir.
func writeRecordToMarkdown(r *record.Record, outputDir string, downloadCovers, overwrite bool) error {
	mb := fileutil.NewMarkdownBuilder().
		AddField("title", r.Title).
		AddField("artist", r.ArtistDisplay).
		AddField("type", "record").
		AddField("year", r.Year).
		AddField("label", r.Label).
		AddField("catalog_number", r.CatalogNumber).
		AddField("country", r.Country).
		AddField("format", r.Format).
		AddField("discogs_url", r.URL)

	if r.LowestPrice != nil {
		mb.AddField("lowest_price", *r.LowestPrice)
	}

	tags := []string{"records"}
	if r.Year > 0 {
		tags = append(tags, mb.GetDecadeTag(r.Year))
	}
	if r.IsVariousArtists() {
		tags = append(tags, "compilation")
	}
	mb.AddTags(tags...)

	coverRef := r.CoverURL
	if downloadCovers && r.CoverURL != "" {
		result, err := fileutil.DownloadCover(fileutil.CoverDownloadOptions{
			URL:          r.CoverURL,
			OutputDir:    outputDir,
			Filename:     fileutil.BuildCoverFilename(r.ArtistDisplay, r.Title),
			UpdateCovers: config.UpdateCovers,
		})
		if err != nil {
			slog.Warn("Cover download failed, linking remote image", "title", r.Title, "error", err)
		} else if result != nil {
			coverRef = result.RelativePath
		}
	}
	mb.AddImage(coverRef)

	mb.AddCallout("note", "Collection Notes", r.Notes)
	mb.AddExternalLink("View on Discogs", r.URL)

	path := fileutil.GetMarkdownFilePath(fileutil.RecordFilename(r.ArtistDisplay, r.Title), outputDir)
	written, err := fileutil.WriteFileWithOverwrite(path, []byte(mb.Build()), 0644, overwrite)
	if err != nil {
		return fmt.Errorf("failed to write markdown note: %w", err)
	}
	if !written {
		slog.Debug("Markdown note exists, skipping", "path", path)
	}
	return nil
}
