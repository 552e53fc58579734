package selplot

import (
	"fmt"

	"github.com/meshsel/selplot/pkg/selplot/compose"
	"github.com/meshsel/selplot/pkg/selplot/models"
	"github.com/meshsel/selplot/pkg/selplot/parser"
)

// Builder turns input files into charts. It is safe for concurrent use.
type Builder struct {
	opts   Options
	titles *compose.TitleMatcher
}

// NewBuilder validates opts and returns a Builder.
func NewBuilder(opts Options) (*Builder, error) {
	if !opts.LoadPolicy().Valid() {
		return nil, fmt.Errorf("invalid load error policy: %s (must be abort or skip)", opts.OnLoadError)
	}
	titles, err := compose.NewTitleMatcher(opts.TitlePattern, opts.TitlePolicy, opts.logger())
	if err != nil {
		return nil, err
	}
	return &Builder{opts: opts, titles: titles}, nil
}

// Chart loads the table at path and composes it with preset p, titled by
// the mesh code in the file name.
func (b *Builder) Chart(path string, p Preset) (models.Chart, error) {
	title, err := b.titles.Title(path)
	if err != nil {
		return models.Chart{}, err
	}

	table, err := parser.LoadTable(path, b.opts.LoadOptions())
	if err != nil {
		return models.Chart{}, err
	}

	left, err := compose.BuildLayers(table, p.Left, p.Chart.X.Domain)
	if err != nil {
		return models.Chart{}, err
	}
	right, err := compose.BuildLayers(table, p.Right, p.Chart.X.Domain)
	if err != nil {
		return models.Chart{}, err
	}

	spec := p.Chart
	spec.Title = title
	return compose.Compose(spec, left, right)
}

// BuildChart builds one chart with a throwaway Builder.
func BuildChart(path string, p Preset, opts Options) (models.Chart, error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return models.Chart{}, err
	}
	return b.Chart(path, p)
}
