package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/waxworks/stylus/internal/datastore"
)

// WriteToDatastore writes items to the configured Datasette target.
// Disabled Datasette output is a silent no-op. The mode defaults to
// "local" (SQLite file); "remote" posts to a Datasette instance.
func WriteToDatastore[T any](items []T, schema, table, description string, toMap func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	slog.Info("Writing to Datasette", "what", description, "table", table)

	mode := viper.GetString("datasette.mode")
	if mode == "" {
		mode = "local"
	}

	var store datastore.Store
	switch mode {
	case "local":
		store = datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
	case "remote":
		store = datastore.NewDatasetteClient(
			viper.GetString("datasette.remote_url"),
			viper.GetString("datasette.api_token"),
		)
	default:
		return fmt.Errorf("invalid Datasette mode: %s", mode)
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	rows := make([]map[string]any, len(items))
	for i, item := range items {
		rows[i] = toMap(item)
	}

	if err := store.BatchInsert("stylus", table, rows); err != nil {
		return fmt.Errorf("failed to insert rows: %w", err)
	}

	slog.Info("Successfully wrote to Datasette", "what", description, "count", len(items))
	return nil
}
