package cache

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// InvalidateCmd represents the cache invalidate subcommand
type InvalidateCmd struct {
	Source string `arg:"" help:"Cache source to invalidate: price, collection" required:""`
}

func (i *InvalidateCmd) Run() error {
	cacheDB := viper.GetString("cache.dbfile")

	slog.Info("Invalidating cache", "source", i.Source, "database", cacheDB)

	tableName := i.Source + "_cache"
	if !ValidTableNames[tableName] {
		return fmt.Errorf("invalid cache source %q; valid sources are: price, collection", i.Source)
	}

	cacheInstance, err := Global()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	rowsDeleted, err := cacheInstance.InvalidateSource(tableName)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}

	slog.Info("Cache invalidated", "source", i.Source, "rows_deleted", rowsDeleted)
	return nil
}
