// Package compose builds chart layers from tables and stacks them into
// dual-axis charts.
package compose

import (
	"github.com/meshsel/selplot/pkg/selplot/models"
)

// BuildLayer binds the mapped columns of a table to one drawable layer.
// Rows where either the x or the y value is missing are left out.
func BuildLayer(table *models.Table, m models.ChannelMapping, xDomain []float64) (models.Layer, error) {
	xs, err := table.Column(m.X)
	if err != nil {
		return models.Layer{}, err
	}
	ys, err := table.Column(m.Y)
	if err != nil {
		return models.Layer{}, err
	}

	if m.Mark == "" {
		m.Mark = models.MarkLine
	}

	points := make([]models.Point, 0, len(xs))
	for i := range xs {
		if !xs[i].OK || !ys[i].OK {
			continue
		}
		points = append(points, models.Point{X: xs[i].V, Y: ys[i].V})
	}

	return models.Layer{
		Mapping: m,
		XDomain: cloneFloats(xDomain),
		Points:  points,
		Source:  table.Source,
	}, nil
}

// BuildLayers builds one layer per mapping, in order.
func BuildLayers(table *models.Table, mappings []models.ChannelMapping, xDomain []float64) ([]models.Layer, error) {
	layers := make([]models.Layer, 0, len(mappings))
	for _, m := range mappings {
		layer, err := BuildLayer(table, m, xDomain)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
