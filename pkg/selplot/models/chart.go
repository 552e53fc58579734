package models

// MarkKind is the drawable shape of a layer.
type MarkKind string

const (
	// MarkLine draws a solid polyline through the points.
	MarkLine MarkKind = "line"
	// MarkPoint draws one symbol per point.
	MarkPoint MarkKind = "point"
	// MarkDashedLine draws a polyline with a dash pattern.
	MarkDashedLine MarkKind = "dashed-line"
)

// Valid reports whether k is a known mark kind.
func (k MarkKind) Valid() bool {
	switch k {
	case MarkLine, MarkPoint, MarkDashedLine:
		return true
	}
	return false
}

// Orient is the side an axis is drawn on.
type Orient string

const (
	OrientLeft   Orient = "left"
	OrientRight  Orient = "right"
	OrientBottom Orient = "bottom"
)

// Style holds fixed visual attributes of a layer.
type Style struct {
	// Color is the stroke color for lines and the default color for points.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// StrokeWidth is the line thickness in pixels (0 means renderer default).
	StrokeWidth float64 `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	// Dash is the dash/gap pattern for dashed lines, e.g. [5, 5].
	Dash []float64 `json:"dash,omitempty" yaml:"dash,omitempty"`
	// Shape is the point symbol (circle, square, ...).
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty"`
	// Size is the point area in square pixels.
	Size float64 `json:"size,omitempty" yaml:"size,omitempty"`
	// Filled fills point symbols.
	Filled bool `json:"filled,omitempty" yaml:"filled,omitempty"`
	// Fill is the fill color of filled points.
	Fill string `json:"fill,omitempty" yaml:"fill,omitempty"`
	// Stroke is the outline color of points.
	Stroke string `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	// FillOpacity is the fill opacity in [0, 1] (nil means renderer default).
	FillOpacity *float64 `json:"fill_opacity,omitempty" yaml:"fill_opacity,omitempty"`
	// Clip hides marks outside the axis domains.
	Clip bool `json:"clip,omitempty" yaml:"clip,omitempty"`
}

// ChannelMapping binds table columns to the x and y channels of one layer.
type ChannelMapping struct {
	// X is the column feeding the x position.
	X string `json:"x" yaml:"x"`
	// Y is the column feeding the y position.
	Y string `json:"y" yaml:"y"`
	// Mark is the layer's mark kind.
	Mark MarkKind `json:"mark" yaml:"mark"`
	// Style is the fixed visual style.
	Style Style `json:"style" yaml:"style"`
}

// AxisSpec describes one scale and its axis.
type AxisSpec struct {
	// Domain is the scale range [min, max]. Nil lets the renderer choose.
	Domain []float64 `json:"domain,omitempty" yaml:"domain,omitempty"`
	// Values are the explicit tick values.
	Values []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	// Title is the axis title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// TitleFontSize is the axis title font size.
	TitleFontSize float64 `json:"title_font_size,omitempty" yaml:"title_font_size,omitempty"`
	// LabelFontSize is the tick label font size.
	LabelFontSize float64 `json:"label_font_size,omitempty" yaml:"label_font_size,omitempty"`
	// TitlePadding is the gap between labels and title in pixels.
	TitlePadding float64 `json:"title_padding,omitempty" yaml:"title_padding,omitempty"`
	// Format is a d3 number format for tick labels (".2f", "d").
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// Grid draws grid lines.
	Grid bool `json:"grid,omitempty" yaml:"grid,omitempty"`
	// Orient is the side the axis is drawn on.
	Orient Orient `json:"orient,omitempty" yaml:"orient,omitempty"`
}

// Point is one drawable (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layer is one mark bound to the points of two table columns.
type Layer struct {
	// Mapping is the channel mapping the layer was built from.
	Mapping ChannelMapping `json:"mapping"`
	// XDomain is the x scale domain the layer was built against.
	XDomain []float64 `json:"x_domain,omitempty"`
	// Points are the rows where both x and y were present, in row order.
	Points []Point `json:"points"`
	// Source is the file the data came from.
	Source string `json:"source,omitempty"`
}

// Family is a group of layers sharing one y scale.
type Family struct {
	// Axis describes the family's y scale and axis.
	Axis AxisSpec `json:"axis"`
	// Layers are drawn in order, later layers on top.
	Layers []Layer `json:"layers"`
}

// Empty reports whether the family has no layers.
func (f Family) Empty() bool {
	return len(f.Layers) == 0
}

// DrawOrder decides which y family is drawn on top.
type DrawOrder string

const (
	// LeftOnTop draws the right family first.
	LeftOnTop DrawOrder = "left-on-top"
	// RightOnTop draws the left family first.
	RightOnTop DrawOrder = "right-on-top"
)

// Chart is a dual-axis, multi-layer chart.
type Chart struct {
	// Title is the chart title.
	Title string `json:"title"`
	// TitleFontSize is the title font size (0 means renderer default).
	TitleFontSize float64 `json:"title_font_size,omitempty"`
	// Width is the plot width in pixels.
	Width int `json:"width"`
	// Height is the plot height in pixels.
	Height int `json:"height"`
	// X is the shared x axis.
	X AxisSpec `json:"x"`
	// Left is the primary y family.
	Left Family `json:"left"`
	// Right is the secondary y family. May be empty.
	Right Family `json:"right"`
	// Order decides which family is drawn on top.
	Order DrawOrder `json:"order"`
}

// Families returns the non-empty families in draw order.
func (c Chart) Families() []Family {
	var out []Family
	first, second := c.Right, c.Left
	if c.Order == RightOnTop {
		first, second = c.Left, c.Right
	}
	for _, f := range []Family{first, second} {
		if !f.Empty() {
			out = append(out, f)
		}
	}
	return out
}

// Composite is a grid of charts: rows stacked vertically, charts within a
// row concatenated horizontally with a shared x and independent y scales.
type Composite struct {
	// Title is the document title.
	Title string `json:"title,omitempty"`
	// TitleFontSize is the document title font size.
	TitleFontSize float64 `json:"title_font_size,omitempty"`
	// Rows are the chart rows, top to bottom.
	Rows [][]Chart `json:"rows"`
	// HSpacing is the gap between charts in a row, in pixels.
	HSpacing float64 `json:"h_spacing,omitempty"`
	// VSpacing is the gap between rows, in pixels.
	VSpacing float64 `json:"v_spacing,omitempty"`
}
