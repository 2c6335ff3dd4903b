package discogs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/waxworks/stylus/internal/cache"
	"github.com/waxworks/stylus/internal/config"
	api "github.com/waxworks/stylus/internal/discogs"
	apperrors "github.com/waxworks/stylus/internal/errors"
	"github.com/waxworks/stylus/internal/tui"
)

var errImportCancelled = errors.New("import cancelled")

// newClient builds an API client from the configured credentials.
// A personal token wins over a key/secret pair; without either the
// client runs unauthenticated on the reduced rate budget.
func newClient() *api.Client {
	var auth api.Authenticator = api.NoAuth{}
	switch {
	case config.DiscogsToken != "":
		auth = api.TokenAuth{Token: config.DiscogsToken}
	case config.DiscogsKey != "" && config.DiscogsSecret != "":
		auth = api.KeySecretAuth{Key: config.DiscogsKey, Secret: config.DiscogsSecret}
	default:
		slog.Warn("No Discogs credentials configured, using the unauthenticated rate budget")
	}
	return api.NewClient(auth)
}

// resolveFolder turns a negative folder id into an interactive pick
// from the user's collection folders.
func resolveFolder(ctx context.Context, client *api.Client, username string, folder int) (int, error) {
	if folder >= 0 {
		return folder, nil
	}

	folders, err := client.Folders(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("failed to list collection folders: %w", err)
	}

	result, err := tui.SelectFolder(username, folders)
	if err != nil {
		return 0, fmt.Errorf("folder selection failed: %w", err)
	}
	if result.Action != tui.ActionSelected {
		return 0, errImportCancelled
	}

	slog.Info("Selected collection folder", "folder", result.Folder.Name, "releases", result.Folder.Count)
	return result.Folder.ID, nil
}

// fetchReleases drains the collection listing, caching the complete
// listing per username/folder. Partially fetched listings are returned
// with a warning instead of failing the whole import; they are not
// cached.
func fetchReleases(ctx context.Context, client *api.Client, username string, folder int) ([]api.CollectionRelease, error) {
	cacheKey := fmt.Sprintf("%s/%d", username, folder)

	var partial []api.CollectionRelease
	releases, fromCache, err := cache.GetOrFetch(cache.CollectionTable, cacheKey, func() ([]api.CollectionRelease, error) {
		fetched, err := client.FetchCollection(ctx, username, folder, 100)
		partial = fetched
		return fetched, err
	})
	if err != nil {
		var fetchErr *apperrors.FetchError
		if errors.As(err, &fetchErr) && fetchErr.Partial() {
			slog.Warn("Collection fetch incomplete, continuing with partial listing",
				"fetched", fetchErr.Fetched, "failed_page", fetchErr.Page, "error", fetchErr.Unwrap())
			return partial, nil
		}
		return nil, fmt.Errorf("failed to fetch collection: %w", err)
	}

	if fromCache {
		slog.Info("Using cached collection listing", "releases", len(releases), "key", cacheKey)
	} else {
		slog.Info("Fetched collection listing", "releases", len(releases), "key", cacheKey)
	}
	return releases, nil
}
