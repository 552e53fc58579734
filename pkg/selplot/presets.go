package selplot

import (
	"fmt"

	"github.com/meshsel/selplot/pkg/selplot/compose"
	"github.com/meshsel/selplot/pkg/selplot/models"
)

// Preset names.
const (
	PresetCatchShare = "catch-share"
	PresetSelection  = "selection"
	PresetLantern    = "lantern"
)

// Chart and figure constants shared by the presets.
const (
	ChartWidth         = 400
	ChartHeight        = 250
	TitleFontSize      = 30
	FigureHSpacing     = 90
	FigureVSpacing     = 50
	populationDashSize = 5
)

// Preset is a fixed chart shape: axes, layer mappings and styles.
// The chart title is filled in per file.
type Preset struct {
	Name  string
	Chart compose.ChartSpec
	// Left and Right map table columns onto the two y families.
	Left  []models.ChannelMapping
	Right []models.ChannelMapping
}

// PresetByName returns a fresh copy of the named preset.
func PresetByName(name string) (Preset, error) {
	switch name {
	case PresetCatchShare:
		return CatchSharePreset(), nil
	case PresetSelection:
		return SelectionPreset(), nil
	case PresetLantern:
		return LanternPreset(), nil
	default:
		return Preset{}, fmt.Errorf("unknown preset: %s (must be %s, %s, or %s)",
			name, PresetCatchShare, PresetSelection, PresetLantern)
	}
}

// PresetNames lists the built-in presets.
func PresetNames() []string {
	return []string{PresetCatchShare, PresetSelection, PresetLantern}
}

// lengthAxis is the bottom axis shared by the krill figures.
func lengthAxis() models.AxisSpec {
	return models.AxisSpec{
		Domain:        []float64{15, 55},
		Values:        []float64{15, 25, 35, 45, 55},
		Title:         "Length (mm)",
		TitleFontSize: 30,
		LabelFontSize: 25,
		TitlePadding:  20,
	}
}

func probabilityAxis(title string) models.AxisSpec {
	return models.AxisSpec{
		Domain:        []float64{0, 1.01},
		Values:        []float64{0, 0.25, 0.5, 0.75, 1},
		Title:         title,
		TitleFontSize: 30,
		LabelFontSize: 25,
		TitlePadding:  20,
		Format:        ".2f",
	}
}

// CatchSharePreset is the krill catch-share chart.
//
// Columns: X1/Y1 modelled catch share rate, X0/Y0 observed catch share
// points, X2/Y2 control population, X3/Y3 test population. The population
// lines are drawn underneath the rate curve.
func CatchSharePreset() Preset {
	opaque := 1.0
	return Preset{
		Name: PresetCatchShare,
		Chart: compose.ChartSpec{
			TitleFontSize: TitleFontSize,
			Width:         ChartWidth,
			Height:        ChartHeight,
			X:             lengthAxis(),
			Left:          probabilityAxis("Catch share rate"),
			Right: models.AxisSpec{
				Domain:        []float64{0, 2000},
				Values:        []float64{0, 500, 1000, 1500, 2000},
				Title:         "Number captured",
				TitleFontSize: 30,
				LabelFontSize: 25,
				TitlePadding:  20,
				Format:        "d",
				Orient:        models.OrientRight,
			},
			Order: models.LeftOnTop,
		},
		Left: []models.ChannelMapping{
			{X: "X1", Y: "Y1", Mark: models.MarkLine, Style: models.Style{Color: "black", StrokeWidth: 5, Clip: true}},
			{X: "X0", Y: "Y0", Mark: models.MarkPoint, Style: models.Style{
				Shape:       "circle",
				Size:        80,
				Filled:      true,
				Fill:        "white",
				Stroke:      "black",
				FillOpacity: &opaque,
				Clip:        true,
			}},
		},
		Right: []models.ChannelMapping{
			{X: "X3", Y: "Y3", Mark: models.MarkLine, Style: models.Style{Color: "darkgrey", StrokeWidth: 1, Clip: true}},
			{X: "X2", Y: "Y2", Mark: models.MarkLine, Style: models.Style{Color: "black", StrokeWidth: 1, Clip: true}},
		},
	}
}

// SelectionPreset is the krill selection curve with its 95% confidence band.
//
// Columns: X0/Y0 retention probability, X1/Y1 lower bound, X2/Y2 upper bound.
func SelectionPreset() Preset {
	band := models.Style{Color: "black", StrokeWidth: 2, Dash: []float64{5, 5}, Clip: true}
	return Preset{
		Name: PresetSelection,
		Chart: compose.ChartSpec{
			TitleFontSize: TitleFontSize,
			Width:         ChartWidth,
			Height:        ChartHeight,
			X:             lengthAxis(),
			Left:          probabilityAxis("Retention probability"),
		},
		Left: []models.ChannelMapping{
			{X: "X0", Y: "Y0", Mark: models.MarkLine, Style: models.Style{Color: "black", StrokeWidth: 5, Clip: true}},
			{X: "X1", Y: "Y1", Mark: models.MarkDashedLine, Style: band},
			{X: "X2", Y: "Y2", Mark: models.MarkDashedLine, Style: band},
		},
	}
}

// LanternPreset is the lantern-fish catch-share chart: wider length range,
// open circles and dashed population lines drawn over the rate curve.
//
// Columns as in CatchSharePreset; both population lines use X2.
func LanternPreset() Preset {
	dash := []float64{populationDashSize, populationDashSize}
	return Preset{
		Name: PresetLantern,
		Chart: compose.ChartSpec{
			TitleFontSize: TitleFontSize,
			Width:         ChartWidth,
			Height:        ChartHeight,
			X: models.AxisSpec{
				Domain:        []float64{15, 85},
				Values:        []float64{15, 25, 35, 45, 55, 65, 75, 85},
				Title:         "Length (mm)",
				TitleFontSize: 20,
				LabelFontSize: 15,
			},
			Left: models.AxisSpec{
				Domain:        []float64{0, 1},
				Values:        []float64{0, 0.25, 0.5, 0.75, 1},
				Title:         "Catch share rate",
				TitleFontSize: 20,
				LabelFontSize: 15,
				Format:        ".2f",
			},
			Right: models.AxisSpec{
				Domain:        []float64{0, 400},
				Values:        []float64{0, 100, 200, 300, 400},
				Title:         "Number captured",
				TitleFontSize: 20,
				LabelFontSize: 15,
				Orient:        models.OrientRight,
			},
			Order: models.RightOnTop,
		},
		Left: []models.ChannelMapping{
			{X: "X1", Y: "Y1", Mark: models.MarkLine, Style: models.Style{Color: "black", Clip: true}},
			{X: "X0", Y: "Y0", Mark: models.MarkPoint, Style: models.Style{Color: "black", Shape: "circle", Size: 50, Clip: true}},
		},
		Right: []models.ChannelMapping{
			{X: "X2", Y: "Y2", Mark: models.MarkDashedLine, Style: models.Style{Color: "black", Dash: dash, Clip: true}},
			{X: "X2", Y: "Y3", Mark: models.MarkDashedLine, Style: models.Style{Color: "darkgrey", Dash: dash, Clip: true}},
		},
	}
}
