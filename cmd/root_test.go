package cmd

import (
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waxworks/stylus/cmd/discogs"
	"github.com/waxworks/stylus/internal/config"
)

func resetCmdState(t *testing.T) {
	origOverwrite := config.OverwriteFiles
	origUpdate := config.UpdateCovers

	t.Cleanup(func() {
		config.OverwriteFiles = origOverwrite
		config.UpdateCovers = origUpdate
		viper.Reset()
	})

	viper.Reset()
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"stylus"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("stylus"),
		kong.Description("A tool to turn a Discogs record collection into shelf listings and markdown notes."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)

	cli := &CLI{
		Overwrite:    true,
		UpdateCovers: true,
		Datasette:    false,
		DatasetteDB:  "/tmp/stylus.db",
		CacheDBFile:  "/tmp/cache.db",
		CacheTTL:     "12h",
	}

	updateGlobalConfig(cli)

	assert.True(t, config.OverwriteFiles)
	assert.True(t, config.UpdateCovers)
	assert.False(t, viper.GetBool("datasette.enabled"))
	assert.Equal(t, "/tmp/stylus.db", viper.GetString("datasette.dbfile"))
	assert.Equal(t, "/tmp/cache.db", viper.GetString("cache.dbfile"))
	assert.Equal(t, "12h", viper.GetString("cache.ttl"))
}

func TestDiscogsCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "import", "discogs",
		"-u", "waxworks",
		"-o", "vinyl",
		"--sort-by", "year",
		"--various", "end",
		"--dividers",
		"--lenient",
		"--prices")

	assert.Equal(t, "waxworks", cli.Import.Discogs.Username)
	assert.Equal(t, "vinyl", cli.Import.Discogs.Output)
	assert.Equal(t, "year", cli.Import.Discogs.SortBy)
	assert.Equal(t, "end", cli.Import.Discogs.Various)
	assert.True(t, cli.Import.Discogs.Dividers)
	assert.True(t, cli.Import.Discogs.Lenient)
	assert.True(t, cli.Import.Discogs.Prices)
	assert.False(t, cli.Import.Discogs.Automated)
}

func TestDiscogsCommandDefaults(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "import", "discogs", "-u", "waxworks")

	assert.Equal(t, -1, cli.Import.Discogs.Folder, "Folder should default to interactive selection")
	assert.Equal(t, "discogs", cli.Import.Discogs.Output)
	assert.True(t, cli.Import.Discogs.Markdown, "Markdown notes should be written by default")
	assert.Equal(t, "artist", cli.Import.Discogs.SortBy)
	assert.Equal(t, "normal", cli.Import.Discogs.Various)
	assert.False(t, cli.Import.Discogs.Prices)
}

func TestImportRequiresUsername(t *testing.T) {
	resetCmdState(t)

	cli, ctx := parseCLI(t, "import", "discogs")
	updateGlobalConfig(cli)
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestCLIDefaultFlags(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "import", "discogs", "-u", "waxworks")

	assert.False(t, cli.Overwrite, "Overwrite should default to false")
	assert.False(t, cli.UpdateCovers, "UpdateCovers should default to false")
	assert.True(t, cli.Datasette, "Datasette should default to true")
	assert.Equal(t, "./stylus.db", cli.DatasetteDB)
	assert.Equal(t, "./cache.db", cli.CacheDBFile)
	assert.Equal(t, "720h", cli.CacheTTL)
}

func TestCLIFlagsOverrideDefaults(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t,
		"--overwrite",
		"--update-covers",
		"--datasette=false",
		"--datasette-db", "/custom/stylus.db",
		"--cache-db-file", "/custom/cache.db",
		"--cache-ttl", "24h",
		"import", "discogs", "-u", "waxworks")

	assert.True(t, cli.Overwrite)
	assert.True(t, cli.UpdateCovers)
	assert.False(t, cli.Datasette)
	assert.Equal(t, "/custom/stylus.db", cli.DatasetteDB)
	assert.Equal(t, "/custom/cache.db", cli.CacheDBFile)
	assert.Equal(t, "24h", cli.CacheTTL)
}

func TestCSVCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "import", "csv", "-f", "collection.csv", "--csv", "--lenient")

	assert.Equal(t, "collection.csv", cli.Import.CSV.Input)
	assert.True(t, cli.Import.CSV.CSVOut)
	assert.True(t, cli.Import.CSV.Lenient)
}

func TestCacheInvalidateParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "cache", "invalidate", "price")

	assert.Equal(t, "price", cli.Cache.Invalidate.Source)
}

func TestInitConfigSetsDefaults(t *testing.T) {
	resetCmdState(t)

	// Set defaults directly without calling initConfig to avoid os.Exit
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("TextOutputDir", "./text/")
	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.dbfile", "./stylus.db")
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "720h")
	viper.SetDefault("discogs.automation.timeout", "5m")
	viper.SetDefault("discogs.automation.download_dir", "exports")

	assert.Equal(t, "./markdown/", viper.GetString("MarkdownOutputDir"))
	assert.Equal(t, "./text/", viper.GetString("TextOutputDir"))
	assert.True(t, viper.GetBool("datasette.enabled"))
	assert.Equal(t, "./stylus.db", viper.GetString("datasette.dbfile"))
	assert.Equal(t, "720h", viper.GetString("cache.ttl"))
	assert.Equal(t, "5m", viper.GetString("discogs.automation.timeout"))
	assert.Equal(t, "exports", viper.GetString("discogs.automation.download_dir"))
}

func TestEnvironmentVariableBinding(t *testing.T) {
	resetCmdState(t)

	t.Setenv("DISCOGS_TOKEN", "test-token")
	t.Setenv("DISCOGS_USERNAME", "waxworks")
	t.Setenv("DISCOGS_HEADFUL", "true")
	t.Setenv("DISCOGS_DOWNLOAD_DIR", "/tmp/discogs")
	t.Setenv("DISCOGS_AUTOMATION_TIMEOUT", "10m")

	viper.AutomaticEnv()
	require.NoError(t, viper.BindEnv("discogs.token", "DISCOGS_TOKEN"))
	require.NoError(t, viper.BindEnv("discogs.username", "DISCOGS_USERNAME"))
	require.NoError(t, viper.BindEnv("discogs.automation.headful", "DISCOGS_HEADFUL"))
	require.NoError(t, viper.BindEnv("discogs.automation.download_dir", "DISCOGS_DOWNLOAD_DIR"))
	require.NoError(t, viper.BindEnv("discogs.automation.timeout", "DISCOGS_AUTOMATION_TIMEOUT"))

	assert.Equal(t, "test-token", viper.GetString("discogs.token"))
	assert.Equal(t, "waxworks", viper.GetString("discogs.username"))
	assert.True(t, viper.GetBool("discogs.automation.headful"))
	assert.Equal(t, "/tmp/discogs", viper.GetString("discogs.automation.download_dir"))
	assert.Equal(t, "10m", viper.GetString("discogs.automation.timeout"))
}

func TestInitLogging(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
	}{
		{"default", ""},
		{"debug", "debug"},
		{"DEBUG", "DEBUG"},
		{"warn", "warn"},
		{"error", "error"},
		{"invalid", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("STYLUS_LOG_LEVEL", tt.envValue)
			}
			require.NotPanics(t, func() {
				initLogging()
			})
		})
	}
}

func TestCommandStructure(t *testing.T) {
	resetCmdState(t)

	cli := &CLI{}

	assert.NotNil(t, cli.Import)
	assert.IsType(t, discogs.DiscogsCmd{}, cli.Import.Discogs)
	assert.NotNil(t, cli.Cache)
}
