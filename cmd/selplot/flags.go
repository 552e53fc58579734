package main

import (
	"github.com/spf13/pflag"

	"github.com/meshsel/selplot/internal/config"
)

// sharedFlags are accepted by every subcommand. Only flags the user set
// override the configuration.
type sharedFlags struct {
	verbose      bool
	headerRow    int
	sheet        string
	titlePattern string
	titlePolicy  string
	onLoadError  string
	concurrency  int
	noOpen       bool
	specJSON     bool
	png          bool
	chromePath   string
}

func (f *sharedFlags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	fs.IntVar(&f.headerRow, "header-row", 1, "0-based row holding the X/Y column names")
	fs.StringVar(&f.sheet, "sheet", "", "Sheet to read (default: first sheet)")
	fs.StringVar(&f.titlePattern, "title-pattern", "", "Regexp extracting the chart title from the file name (default: _(MB\\d+)_)")
	fs.StringVar(&f.titlePolicy, "title-policy", "warn", "When the title pattern does not match: placeholder, warn, or fail")
	fs.StringVar(&f.onLoadError, "on-load-error", "abort", "Batch reaction to unreadable files: abort or skip")
	fs.IntVar(&f.concurrency, "concurrency", 0, "Files loaded in parallel in a batch (default: number of CPUs)")
	fs.BoolVar(&f.noOpen, "no-open", false, "Do not open the output in a browser")
	fs.BoolVar(&f.specJSON, "spec-json", false, "Also write the Vega-Lite spec as <output>.vl.json")
	fs.BoolVar(&f.png, "png", false, "Also write a PNG snapshot via headless Chrome")
	fs.StringVar(&f.chromePath, "chrome-path", "", "Chrome binary used for --png")
}

// apply copies explicitly set flags into cfg.
func (f *sharedFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("verbose") {
		cfg.Logging.Verbose = f.verbose
	}
	if fs.Changed("header-row") {
		cfg.HeaderRow = f.headerRow
	}
	if fs.Changed("sheet") {
		cfg.Sheet = f.sheet
	}
	if fs.Changed("title-pattern") {
		cfg.TitlePattern = f.titlePattern
	}
	if fs.Changed("title-policy") {
		cfg.OnTitleMismatch = f.titlePolicy
	}
	if fs.Changed("on-load-error") {
		cfg.OnLoadError = f.onLoadError
	}
	if fs.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if fs.Changed("no-open") {
		cfg.Output.Open = !f.noOpen
	}
	if fs.Changed("spec-json") {
		cfg.Output.SpecJSON = f.specJSON
	}
	if fs.Changed("png") {
		cfg.Output.PNG = f.png
	}
	if fs.Changed("chrome-path") {
		cfg.Output.ChromePath = f.chromePath
	}
}
