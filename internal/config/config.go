package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing output files should be overwritten
	OverwriteFiles bool
	// UpdateCovers forces re-downloading cover images even when they exist
	UpdateCovers bool
	// DiscogsToken is the personal access token for the Discogs API
	DiscogsToken string
	// DiscogsKey and DiscogsSecret form the consumer key pair alternative to the token
	DiscogsKey    string
	DiscogsSecret string
	// ExtraArticles lists additional leading articles stripped when building sort keys
	// (on top of the built-in "the", "a", "an")
	ExtraArticles []string
)

// InitConfig initializes the global configuration
func InitConfig() {
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("TextOutputDir", "./text/")
	viper.SetDefault("CSVOutputDir", "./csv/")
	viper.SetDefault("OverwriteFiles", false)

	OverwriteFiles = viper.GetBool("OverwriteFiles")
	UpdateCovers = viper.GetBool("UpdateCovers")
	DiscogsToken = viper.GetString("discogs.token")
	DiscogsKey = viper.GetString("discogs.key")
	DiscogsSecret = viper.GetString("discogs.secret")
	ExtraArticles = viper.GetStringSlice("articles.extra")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetUpdateCovers sets the UpdateCovers flag
func SetUpdateCovers(update bool) {
	UpdateCovers = update
}
