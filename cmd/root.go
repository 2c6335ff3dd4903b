package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/waxworks/stylus/cmd/discogs"
	"github.com/waxworks/stylus/internal/cache"
	"github.com/waxworks/stylus/internal/config"
)

// CLI is the complete command structure for stylus.
type CLI struct {
	// Global flags
	Overwrite    bool `help:"Overwrite existing output files when processing"`
	UpdateCovers bool `help:"Re-download cover images even if they already exist"`

	// Datasette flags
	Datasette   bool   `help:"Enable Datasette output" default:"true"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./stylus.db"`

	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 720h for 30 days)" default:"720h"`

	Import ImportCmd `cmd:"" help:"Import a record collection"`
	Cache  CacheCmd  `cmd:"" help:"Manage the API response cache"`
}

// ImportCmd groups the import subcommands.
type ImportCmd struct {
	Discogs discogs.DiscogsCmd `cmd:"" help:"Import records from a Discogs collection"`
	CSV     discogs.CSVCmd     `cmd:"" help:"Import records from a Discogs collection CSV export"`
}

// CacheCmd groups the cache management subcommands.
type CacheCmd struct {
	Invalidate cache.InvalidateCmd `cmd:"" help:"Invalidate cached API responses by source"`
}

// Execute runs the Kong-based CLI.
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("stylus"),
		kong.Description("A tool to turn a Discogs record collection into shelf listings and markdown notes."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("TextOutputDir", "./text/")
	viper.SetDefault("CSVOutputDir", "./csv/")
	viper.SetDefault("OverwriteFiles", false)

	// Datasette defaults
	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.dbfile", "./stylus.db")

	// Cache defaults
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "720h") // 30 days

	// Export automation defaults
	viper.SetDefault("discogs.automation.timeout", "5m")
	viper.SetDefault("discogs.automation.download_dir", "exports")

	viper.AutomaticEnv()
	bindEnv("discogs.token", "DISCOGS_TOKEN")
	bindEnv("discogs.key", "DISCOGS_KEY")
	bindEnv("discogs.secret", "DISCOGS_SECRET")
	bindEnv("discogs.username", "DISCOGS_USERNAME")
	bindEnv("discogs.automation.login", "DISCOGS_LOGIN")
	bindEnv("discogs.automation.password", "DISCOGS_PASSWORD")
	bindEnv("discogs.automation.headful", "DISCOGS_HEADFUL")
	bindEnv("discogs.automation.download_dir", "DISCOGS_DOWNLOAD_DIR")
	bindEnv("discogs.automation.timeout", "DISCOGS_AUTOMATION_TIMEOUT")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func bindEnv(key, env string) {
	if err := viper.BindEnv(key, env); err != nil {
		slog.Error("Failed to bind environment variable", "key", key, "error", err)
	}
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	config.SetUpdateCovers(cli.UpdateCovers)

	viper.Set("datasette.enabled", cli.Datasette)
	viper.Set("datasette.dbfile", cli.DatasetteDB)

	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: logLevelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

func logLevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("STYLUS_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
