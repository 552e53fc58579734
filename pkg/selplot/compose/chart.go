package compose

import (
	"errors"

	"github.com/meshsel/selplot/pkg/selplot/models"
)

const (
	// DefaultWidth is the plot width used when a spec leaves it unset.
	DefaultWidth = 400
	// DefaultHeight is the plot height used when a spec leaves it unset.
	DefaultHeight = 250
)

// ErrNoLayers indicates a chart without any left-axis layer.
var ErrNoLayers = errors.New("chart has no primary-axis layers")

// ChartSpec holds everything about a chart except its data.
type ChartSpec struct {
	Title         string
	TitleFontSize float64
	Width         int
	Height        int
	// X is the shared x axis.
	X models.AxisSpec
	// Left and Right describe the two independent y scales.
	Left  models.AxisSpec
	Right models.AxisSpec
	Order models.DrawOrder
}

// Compose stacks left layers on the primary y scale and right layers on an
// independent secondary scale sharing one x domain. Layer order within each
// family is kept.
func Compose(spec ChartSpec, left, right []models.Layer) (models.Chart, error) {
	if len(left) == 0 {
		return models.Chart{}, ErrNoLayers
	}

	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	order := spec.Order
	if order == "" {
		order = models.LeftOnTop
	}

	chart := models.Chart{
		Title:         spec.Title,
		TitleFontSize: spec.TitleFontSize,
		Width:         width,
		Height:        height,
		X:             withOrient(spec.X, models.OrientBottom),
		Left: models.Family{
			Axis:   withOrient(spec.Left, models.OrientLeft),
			Layers: append([]models.Layer(nil), left...),
		},
		Order: order,
	}
	if len(right) > 0 {
		chart.Right = models.Family{
			Axis:   withOrient(spec.Right, models.OrientRight),
			Layers: append([]models.Layer(nil), right...),
		}
	}

	return chart, nil
}

func withOrient(a models.AxisSpec, o models.Orient) models.AxisSpec {
	if a.Orient == "" {
		a.Orient = o
	}
	return a
}
