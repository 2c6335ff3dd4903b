package discogs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/waxworks/stylus/internal/config"
)

// DiscogsCmd is the kong command for importing a Discogs collection.
type DiscogsCmd struct {
	Username  string `short:"u" help:"Discogs username whose collection to import"`
	Folder    int    `help:"Collection folder id (0 = All); negative picks interactively" default:"-1"`
	Input     string `short:"f" help:"Path to a Discogs collection CSV export (skips the API)"`
	Automated bool   `help:"Drive a browser through the Discogs export flow and import the downloaded CSV"`
	Headful   bool   `help:"Run the export browser with a visible window"`

	Output     string `short:"o" help:"Subdirectory under markdown output directory for Discogs files" default:"discogs"`
	Markdown   bool   `help:"Write one markdown note per record" default:"true" negatable:""`
	JSON       bool   `help:"Write the listing as JSON"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/discogs.json)"`
	Text       bool   `help:"Write the listing as plain text"`
	TextOutput string `help:"Path to text output file (defaults to text/discogs.txt)"`
	CSV        bool   `help:"Write the listing as CSV"`
	CSVOutput  string `help:"Path to CSV output file (defaults to csv/discogs.csv)"`

	SortBy     string `help:"Sort order: artist, title, year, price-asc, price-desc" default:"artist"`
	Various    string `help:"Various-artist placement: normal, end, group" default:"normal"`
	Dividers   bool   `help:"Insert letter section dividers into the text listing"`
	Lenient    bool   `help:"Accept untagged 12\" 33 rpm discs as LPs"`
	AllFormats bool   `help:"Import every release regardless of format"`
	Prices     bool   `help:"Look up the lowest marketplace asking price for each record"`
	Covers     bool   `help:"Download cover images next to the markdown notes"`
}

var parseDiscogsFunc = ParseDiscogsWithParams

func (d *DiscogsCmd) Run() error {
	username := d.Username
	if username == "" {
		username = viper.GetString("discogs.username")
	}

	if username == "" && d.Input == "" && !d.Automated {
		return fmt.Errorf("a Discogs username is required (provide via --username flag or discogs.username in config)")
	}

	folder := d.Folder
	if folder < 0 && viper.IsSet("discogs.folder") {
		folder = viper.GetInt("discogs.folder")
	}

	params := ParseParams{
		Username:   username,
		Folder:     folder,
		Input:      d.Input,
		Automated:  d.Automated,
		Output:     d.Output,
		Markdown:   d.Markdown,
		WriteJSON:  d.JSON,
		JSONOutput: d.JSONOutput,
		WriteText:  d.Text,
		TextOutput: d.TextOutput,
		WriteCSV:   d.CSV,
		CSVOutput:  d.CSVOutput,
		SortBy:     d.SortBy,
		Various:    d.Various,
		Dividers:   d.Dividers,
		Lenient:    d.Lenient,
		AllFormats: d.AllFormats,
		Prices:     d.Prices,
		Covers:     d.Covers,
		Overwrite:  config.OverwriteFiles,
	}

	if d.Automated {
		params.AutomationOptions = AutomationOptions{
			Login:       viper.GetString("discogs.automation.login"),
			Password:    viper.GetString("discogs.automation.password"),
			DownloadDir: viper.GetString("discogs.automation.download_dir"),
			Headless:    !d.Headful && !viper.GetBool("discogs.automation.headful"),
			Timeout:     automationTimeout(),
		}
	}

	return parseDiscogsFunc(params)
}

// CSVCmd imports a collection from an already downloaded CSV export
// without touching the API (prices still need credentials).
type CSVCmd struct {
	Input      string `short:"f" help:"Path to a Discogs collection CSV export" required:""`
	Output     string `short:"o" help:"Subdirectory under markdown output directory for Discogs files" default:"discogs"`
	Markdown   bool   `help:"Write one markdown note per record" default:"true" negatable:""`
	JSON       bool   `help:"Write the listing as JSON"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/discogs.json)"`
	Text       bool   `help:"Write the listing as plain text"`
	TextOutput string `help:"Path to text output file (defaults to text/discogs.txt)"`
	CSVOut     bool   `name:"csv" help:"Write the listing as CSV"`
	CSVOutput  string `help:"Path to CSV output file (defaults to csv/discogs.csv)"`

	SortBy     string `help:"Sort order: artist, title, year, price-asc, price-desc" default:"artist"`
	Various    string `help:"Various-artist placement: normal, end, group" default:"normal"`
	Dividers   bool   `help:"Insert letter section dividers into the text listing"`
	Lenient    bool   `help:"Accept untagged 12\" 33 rpm discs as LPs"`
	AllFormats bool   `help:"Import every release regardless of format"`
	Prices     bool   `help:"Look up the lowest marketplace asking price for each record"`
	Covers     bool   `help:"Download cover images next to the markdown notes"`
}

func (c *CSVCmd) Run() error {
	return parseDiscogsFunc(ParseParams{
		Input:      c.Input,
		Output:     c.Output,
		Markdown:   c.Markdown,
		WriteJSON:  c.JSON,
		JSONOutput: c.JSONOutput,
		WriteText:  c.Text,
		TextOutput: c.TextOutput,
		WriteCSV:   c.CSVOut,
		CSVOutput:  c.CSVOutput,
		SortBy:     c.SortBy,
		Various:    c.Various,
		Dividers:   c.Dividers,
		Lenient:    c.Lenient,
		AllFormats: c.AllFormats,
		Prices:     c.Prices,
		Covers:     c.Covers,
		Overwrite:  config.OverwriteFiles,
	})
}

func automationTimeout() time.Duration {
	raw := viper.GetString("discogs.automation.timeout")
	if raw == "" {
		return defaultAutomationTimeout
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return defaultAutomationTimeout
	}
	return timeout
}
