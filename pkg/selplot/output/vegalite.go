// Package output renders composed charts as Vega-Lite documents.
package output

import (
	"fmt"

	"github.com/meshsel/selplot/pkg/selplot/models"
)

// SchemaURL is the Vega-Lite schema the documents are written against.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// VegaLite is the subset of a Vega-Lite view specification selplot emits.
// Struct fields keep the serialized key order stable.
type VegaLite struct {
	Schema   string      `json:"$schema,omitempty"`
	Title    *Title      `json:"title,omitempty"`
	Width    int         `json:"width,omitempty"`
	Height   int         `json:"height,omitempty"`
	Data     *Data       `json:"data,omitempty"`
	Mark     *Mark       `json:"mark,omitempty"`
	Encoding *Encoding   `json:"encoding,omitempty"`
	Layer    []VegaLite  `json:"layer,omitempty"`
	HConcat  []VegaLite  `json:"hconcat,omitempty"`
	VConcat  []VegaLite  `json:"vconcat,omitempty"`
	Spacing  *float64    `json:"spacing,omitempty"`
	Resolve  *Resolve    `json:"resolve,omitempty"`
	Config   *ViewConfig `json:"config,omitempty"`
}

// Title is a view title.
type Title struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// Data holds inline data rows keyed by column name.
type Data struct {
	Values []map[string]float64 `json:"values"`
}

// Mark is a mark definition.
type Mark struct {
	Type        string    `json:"type"`
	Color       string    `json:"color,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	StrokeDash  []float64 `json:"strokeDash,omitempty"`
	Shape       string    `json:"shape,omitempty"`
	Size        float64   `json:"size,omitempty"`
	Filled      *bool     `json:"filled,omitempty"`
	Fill        string    `json:"fill,omitempty"`
	Stroke      string    `json:"stroke,omitempty"`
	FillOpacity *float64  `json:"fillOpacity,omitempty"`
	Clip        bool      `json:"clip,omitempty"`
}

// Encoding maps data fields to the x and y channels.
type Encoding struct {
	X *Channel `json:"x,omitempty"`
	Y *Channel `json:"y,omitempty"`
}

// Channel is a positional channel definition.
type Channel struct {
	Field string `json:"field"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Scale *Scale `json:"scale,omitempty"`
	Axis  *Axis  `json:"axis,omitempty"`
}

// Scale fixes a channel's domain.
type Scale struct {
	Domain []float64 `json:"domain,omitempty"`
}

// Axis is an axis definition.
type Axis struct {
	Orient        string    `json:"orient,omitempty"`
	Values        []float64 `json:"values,omitempty"`
	Format        string    `json:"format,omitempty"`
	Grid          bool      `json:"grid"`
	TitleFontSize float64   `json:"titleFontSize,omitempty"`
	LabelFontSize float64   `json:"labelFontSize,omitempty"`
	TitlePadding  float64   `json:"titlePadding,omitempty"`
}

// Resolve sets scale sharing between composed views.
type Resolve struct {
	Scale ScaleResolve `json:"scale"`
}

// ScaleResolve is "shared" or "independent" per channel.
type ScaleResolve struct {
	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
}

// ViewConfig is the top-level config block.
type ViewConfig struct {
	View *View `json:"view,omitempty"`
}

// View configures the default view frame. A nil Stroke removes the border.
type View struct {
	Stroke *string `json:"stroke"`
}

// Spec builds the Vega-Lite document for a models.Chart or models.Composite.
func Spec(doc any) (VegaLite, error) {
	switch d := doc.(type) {
	case models.Chart:
		return ChartSpec(d), nil
	case *models.Chart:
		return ChartSpec(*d), nil
	case models.Composite:
		return CompositeSpec(d), nil
	case *models.Composite:
		return CompositeSpec(*d), nil
	default:
		return VegaLite{}, fmt.Errorf("unsupported document type %T", doc)
	}
}

// ChartSpec builds a standalone Vega-Lite document for one chart.
func ChartSpec(c models.Chart) VegaLite {
	v := chartView(c)
	v.Schema = SchemaURL
	return v
}

// CompositeSpec builds a Vega-Lite document stacking rows of charts.
// Charts in a row share the x scale and keep independent y scales.
func CompositeSpec(c models.Composite) VegaLite {
	v := VegaLite{
		Schema: SchemaURL,
		Title:  title(c.Title, c.TitleFontSize),
		Config: &ViewConfig{View: &View{}},
	}
	if c.VSpacing > 0 {
		v.Spacing = float64Ptr(c.VSpacing)
	}

	for _, row := range c.Rows {
		h := VegaLite{
			Resolve: &Resolve{Scale: ScaleResolve{X: "shared", Y: "independent"}},
		}
		if c.HSpacing > 0 {
			h.Spacing = float64Ptr(c.HSpacing)
		}
		for _, chart := range row {
			h.HConcat = append(h.HConcat, chartView(chart))
		}
		v.VConcat = append(v.VConcat, h)
	}

	return v
}

func chartView(c models.Chart) VegaLite {
	v := VegaLite{
		Title:  title(c.Title, c.TitleFontSize),
		Width:  c.Width,
		Height: c.Height,
	}

	for _, fam := range c.Families() {
		group := VegaLite{}
		for _, l := range fam.Layers {
			group.Layer = append(group.Layer, layerView(l, c.X, fam.Axis))
		}
		v.Layer = append(v.Layer, group)
	}
	if len(v.Layer) > 1 {
		v.Resolve = &Resolve{Scale: ScaleResolve{Y: "independent"}}
	}

	return v
}

// layerView emits one mark. Every layer of a family repeats the family's
// axis so merged axes stay identical.
func layerView(l models.Layer, x, y models.AxisSpec) VegaLite {
	values := make([]map[string]float64, 0, len(l.Points))
	for _, p := range l.Points {
		values = append(values, map[string]float64{l.Mapping.X: p.X, l.Mapping.Y: p.Y})
	}

	xDomain := l.XDomain
	if xDomain == nil {
		xDomain = x.Domain
	}

	return VegaLite{
		Data: &Data{Values: values},
		Mark: mark(l.Mapping),
		Encoding: &Encoding{
			X: channel(l.Mapping.X, x, xDomain),
			Y: channel(l.Mapping.Y, y, y.Domain),
		},
	}
}

func channel(field string, a models.AxisSpec, domain []float64) *Channel {
	ch := &Channel{
		Field: field,
		Type:  "quantitative",
		Title: a.Title,
		Axis: &Axis{
			Orient:        string(a.Orient),
			Values:        a.Values,
			Format:        a.Format,
			Grid:          a.Grid,
			TitleFontSize: a.TitleFontSize,
			LabelFontSize: a.LabelFontSize,
			TitlePadding:  a.TitlePadding,
		},
	}
	if len(domain) > 0 {
		ch.Scale = &Scale{Domain: domain}
	}
	return ch
}

func mark(m models.ChannelMapping) *Mark {
	s := m.Style
	out := &Mark{
		Color: s.Color,
		Clip:  s.Clip,
	}

	switch m.Mark {
	case models.MarkPoint:
		out.Type = "point"
		out.Shape = s.Shape
		out.Size = s.Size
		out.Filled = boolPtr(s.Filled)
		out.Fill = s.Fill
		out.Stroke = s.Stroke
		out.FillOpacity = s.FillOpacity
		out.StrokeWidth = s.StrokeWidth
	case models.MarkDashedLine:
		out.Type = "line"
		out.StrokeWidth = s.StrokeWidth
		out.StrokeDash = s.Dash
		if len(out.StrokeDash) == 0 {
			out.StrokeDash = []float64{5, 5}
		}
	default:
		out.Type = "line"
		out.StrokeWidth = s.StrokeWidth
		out.StrokeDash = s.Dash
	}

	return out
}

func title(text string, size float64) *Title {
	if text == "" {
		return nil
	}
	return &Title{Text: text, FontSize: size}
}

func boolPtr(b bool) *bool {
	return &b
}

func float64Ptr(f float64) *float64 {
	return &f
}
