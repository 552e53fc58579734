package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meshsel/selplot/pkg/selplot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart(title string, leftDomain []float64) models.Chart {
	return models.Chart{
		Title:         title,
		TitleFontSize: 30,
		Width:         400,
		Height:        250,
		X:             models.AxisSpec{Domain: []float64{15, 55}, Values: []float64{15, 25, 35, 45, 55}, Title: "Length (mm)", Orient: models.OrientBottom},
		Left: models.Family{
			Axis: models.AxisSpec{Domain: leftDomain, Title: "Catch share rate", Format: ".2f", Orient: models.OrientLeft},
			Layers: []models.Layer{
				{
					Mapping: models.ChannelMapping{X: "X1", Y: "Y1", Mark: models.MarkLine, Style: models.Style{Color: "black", StrokeWidth: 5, Clip: true}},
					Points:  []models.Point{{X: 15, Y: 0.1}, {X: 20, Y: 0.4}},
				},
				{
					Mapping: models.ChannelMapping{X: "X0", Y: "Y0", Mark: models.MarkPoint, Style: models.Style{Shape: "circle", Size: 80, Filled: true, Fill: "white"}},
					Points:  []models.Point{{X: 16, Y: 0.2}},
				},
			},
		},
		Right: models.Family{
			Axis: models.AxisSpec{Domain: []float64{0, 2000}, Values: []float64{0, 500, 1000, 1500, 2000}, Title: "Number captured", Format: "d", Orient: models.OrientRight},
			Layers: []models.Layer{
				{
					Mapping: models.ChannelMapping{X: "X2", Y: "Y2", Mark: models.MarkDashedLine, Style: models.Style{Color: "darkgrey"}},
					Points:  []models.Point{{X: 15, Y: 100}},
				},
			},
		},
		Order: models.LeftOnTop,
	}
}

func TestChartSpecLayering(t *testing.T) {
	v := ChartSpec(testChart("MB14", []float64{0, 1}))

	assert.Equal(t, SchemaURL, v.Schema)
	require.NotNil(t, v.Title)
	assert.Equal(t, "MB14", v.Title.Text)
	assert.Equal(t, 30.0, v.Title.FontSize)
	assert.Equal(t, 400, v.Width)
	require.NotNil(t, v.Resolve)
	assert.Equal(t, "independent", v.Resolve.Scale.Y)

	// Left on top: the right family is drawn first.
	require.Len(t, v.Layer, 2)
	assert.Equal(t, "Y2", v.Layer[0].Layer[0].Encoding.Y.Field)
	assert.Equal(t, "right", v.Layer[0].Layer[0].Encoding.Y.Axis.Orient)
	require.Len(t, v.Layer[1].Layer, 2)
	assert.Equal(t, "Y1", v.Layer[1].Layer[0].Encoding.Y.Field)
	assert.Equal(t, "Y0", v.Layer[1].Layer[1].Encoding.Y.Field)

	dashed := v.Layer[0].Layer[0].Mark
	assert.Equal(t, "line", dashed.Type)
	assert.Equal(t, []float64{5, 5}, dashed.StrokeDash)

	point := v.Layer[1].Layer[1].Mark
	assert.Equal(t, "point", point.Type)
	require.NotNil(t, point.Filled)
	assert.True(t, *point.Filled)

	assert.Equal(t, []map[string]float64{{"X1": 15, "Y1": 0.1}, {"X1": 20, "Y1": 0.4}}, v.Layer[1].Layer[0].Data.Values)
}

func TestChartSpecAxesIndependent(t *testing.T) {
	a := ChartSpec(testChart("MB14", []float64{0, 1}))
	b := ChartSpec(testChart("MB14", []float64{0, 0.5}))

	// The left scale follows its own domain.
	assert.Equal(t, []float64{0, 1}, a.Layer[1].Layer[0].Encoding.Y.Scale.Domain)
	assert.Equal(t, []float64{0, 0.5}, b.Layer[1].Layer[0].Encoding.Y.Scale.Domain)

	// The right scale and its ticks are untouched.
	assert.Equal(t, a.Layer[0], b.Layer[0])
	assert.Equal(t, []float64{0, 500, 1000, 1500, 2000}, b.Layer[0].Layer[0].Encoding.Y.Axis.Values)
	assert.Equal(t, []float64{0, 2000}, b.Layer[0].Layer[0].Encoding.Y.Scale.Domain)
}

func TestChartSpecSingleFamily(t *testing.T) {
	c := testChart("MB20", []float64{0, 1.01})
	c.Right = models.Family{}

	v := ChartSpec(c)
	assert.Len(t, v.Layer, 1)
	assert.Nil(t, v.Resolve)
}

func TestCompositeSpec(t *testing.T) {
	comp := models.Composite{
		Title:         "Krill",
		TitleFontSize: 30,
		HSpacing:      90,
		VSpacing:      50,
	}
	for _, code := range []string{"MB14", "MB20", "MB30"} {
		comp.Rows = append(comp.Rows, []models.Chart{testChart(code, []float64{0, 1}), testChart(code, []float64{0, 1})})
	}

	v, err := Spec(&comp)
	require.NoError(t, err)

	assert.Equal(t, "Krill", v.Title.Text)
	require.NotNil(t, v.Spacing)
	assert.Equal(t, 50.0, *v.Spacing)
	require.Len(t, v.VConcat, 3)
	for i, code := range []string{"MB14", "MB20", "MB30"} {
		row := v.VConcat[i]
		require.Len(t, row.HConcat, 2)
		assert.Equal(t, code, row.HConcat[0].Title.Text)
		assert.Equal(t, "shared", row.Resolve.Scale.X)
		assert.Equal(t, "independent", row.Resolve.Scale.Y)
		assert.Equal(t, 90.0, *row.Spacing)
	}

	data, err := ToJSON(v, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"config":{"view":{"stroke":null}}`)
}

func TestSpecUnsupported(t *testing.T) {
	_, err := Spec("chart")
	assert.Error(t, err)
}

func TestRenderHTMLEmbedsSpec(t *testing.T) {
	c := testChart("</script><b>", []float64{0, 1})

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, ChartSpec(c)))

	html := buf.String()
	assert.Contains(t, html, "vega-embed")
	// Three library tags plus the embedding script; the title cannot add one.
	assert.Equal(t, 4, strings.Count(html, "</script>"))
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "<title>&lt;/script&gt;&lt;b&gt;</title>")
}

type recordingOpener struct {
	paths []string
	err   error
}

func (r *recordingOpener) Open(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

type fakeSnapshotter struct{}

func (fakeSnapshotter) Snapshot(_ context.Context, htmlPath, pngPath string) error {
	return os.WriteFile(pngPath, []byte("png:"+filepath.Base(htmlPath)), 0644)
}

func TestExportIdempotent(t *testing.T) {
	dir := t.TempDir()
	v := ChartSpec(testChart("MB14", []float64{0, 1}))
	e := &Exporter{}

	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "nested", "b.html")
	require.NoError(t, e.Export(context.Background(), v, a))
	require.NoError(t, e.Export(context.Background(), v, b))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestExportSidecarsAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figure8.html")
	opener := &recordingOpener{}
	e := &Exporter{Opener: opener, Snapshotter: fakeSnapshotter{}, WriteSpec: true}

	v := ChartSpec(testChart("MB14", []float64{0, 1}))
	require.NoError(t, e.Export(context.Background(), v, path))

	assert.Equal(t, []string{path}, opener.paths)

	spec, err := os.ReadFile(filepath.Join(dir, "figure8.vl.json"))
	require.NoError(t, err)
	var decoded VegaLite
	require.NoError(t, json.Unmarshal(spec, &decoded))
	assert.Equal(t, v, decoded)

	png, err := os.ReadFile(filepath.Join(dir, "figure8.png"))
	require.NoError(t, err)
	assert.Equal(t, "png:figure8.html", string(png))
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	v := ChartSpec(testChart("MB14", []float64{0, 1}))

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := (&Exporter{}).Export(context.Background(), v, filepath.Join(blocker, "out.html"))
	var ee *models.ExportError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "write", ee.Op)

	openErr := errors.New("no display")
	err = (&Exporter{Opener: &recordingOpener{err: openErr}}).Export(context.Background(), v, filepath.Join(dir, "ok.html"))
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "open", ee.Op)
	assert.ErrorIs(t, err, openErr)
}

func TestSiblingPathAndFileURL(t *testing.T) {
	assert.Equal(t, "out/fig.png", SiblingPath("out/fig.html", ".png"))
	assert.Equal(t, "fig.vl.json", SiblingPath("fig", ".vl.json"))

	u, err := fileURL("/tmp/a b.html")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/a%20b.html", u)
}
