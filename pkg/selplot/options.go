// Package selplot renders selectivity charts from spreadsheet exports.
package selplot

import (
	"log/slog"
	"runtime"

	"github.com/meshsel/selplot/pkg/selplot/compose"
	"github.com/meshsel/selplot/pkg/selplot/parser"
)

// TitlePolicy decides what happens when a file name has no mesh code.
type TitlePolicy = compose.TitlePolicy

const (
	// TitlePlaceholder silently titles the chart "Unknown".
	TitlePlaceholder = compose.TitlePlaceholder
	// TitleWarn titles the chart "Unknown" and logs a warning.
	TitleWarn = compose.TitleWarn
	// TitleFail fails the chart with a *TitleMismatchError.
	TitleFail = compose.TitleFail
)

// LoadErrorPolicy decides how a batch reacts to a file that cannot be charted.
type LoadErrorPolicy string

const (
	// LoadErrorAbort stops the batch at the first failing file.
	LoadErrorAbort LoadErrorPolicy = "abort"
	// LoadErrorSkip logs the failure and drops the file's pair.
	LoadErrorSkip LoadErrorPolicy = "skip"
)

// Valid reports whether p is a known policy.
func (p LoadErrorPolicy) Valid() bool {
	return p == LoadErrorAbort || p == LoadErrorSkip
}

// Options configures chart building.
type Options struct {
	// HeaderRow is the 0-based row holding column names.
	// If nil, defaults to parser.DefaultHeaderRow.
	HeaderRow *int
	// Sheet is the sheet to read. Empty selects the first sheet.
	Sheet string
	// TitlePattern extracts the chart title from the file name.
	// Empty selects compose.DefaultTitlePattern.
	TitlePattern string
	// TitlePolicy applies when TitlePattern does not match.
	// Empty selects TitleWarn.
	TitlePolicy TitlePolicy
	// OnLoadError applies to batches. Empty selects LoadErrorAbort.
	OnLoadError LoadErrorPolicy
	// Concurrency bounds parallel file loads in a batch.
	// Zero or less selects runtime.NumCPU().
	Concurrency int
	// Logger receives warnings. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		TitlePolicy: TitleWarn,
		OnLoadError: LoadErrorAbort,
	}
}

// LoadOptions returns the table loader options.
func (o Options) LoadOptions() parser.Options {
	opts := parser.DefaultOptions()
	if o.HeaderRow != nil {
		opts.HeaderRow = *o.HeaderRow
	}
	opts.Sheet = o.Sheet
	return opts
}

// LoadPolicy returns the effective batch load-error policy.
func (o Options) LoadPolicy() LoadErrorPolicy {
	if o.OnLoadError == "" {
		return LoadErrorAbort
	}
	return o.OnLoadError
}

// Workers returns the effective batch concurrency.
func (o Options) Workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.NumCPU()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
