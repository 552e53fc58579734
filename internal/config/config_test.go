package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsel/selplot/pkg/selplot"
)

const sampleYAML = `
header_row: 2
on_title_mismatch: fail
on_load_error: skip
concurrency: 4
output:
  open: false
  spec_json: true
  snapshot_timeout: 45s
presets:
  catch-share:
    right:
      domain: [0, 300]
      values: [0, 100, 200, 300]
    left:
      title: Catch share
charts:
  - preset: lantern
    inputs: [data/c_share_lantern_MB14_21.xlsx, data/c_share_lantern_MB20_21.xlsx]
batches:
  - title: Krill
    catch_share: [c_share_krill_MB14_22.xlsx]
    selection: [sel_cur_krill_MB14_22.xlsx]
    output: figure8_exam.html
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "selplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.HeaderRow)
	assert.Equal(t, "warn", cfg.OnTitleMismatch)
	assert.Equal(t, "abort", cfg.OnLoadError)
	assert.True(t, cfg.Output.Open)
	assert.Equal(t, 30*time.Second, cfg.Output.SnapshotTimeout)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, sampleYAML)
	t.Setenv("SELPLOT_CONCURRENCY", "2")
	t.Setenv("SELPLOT_OUTPUT_PNG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	// File values override defaults.
	assert.Equal(t, 2, cfg.HeaderRow)
	assert.Equal(t, "fail", cfg.OnTitleMismatch)
	assert.False(t, cfg.Output.Open)
	assert.True(t, cfg.Output.SpecJSON)
	assert.Equal(t, 45*time.Second, cfg.Output.SnapshotTimeout)

	// Environment overrides the file.
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Output.PNG)

	require.Len(t, cfg.Charts, 1)
	assert.Len(t, cfg.Charts[0].Inputs, 2)
	require.Len(t, cfg.Batches, 1)
	assert.Equal(t, "figure8_exam.html", cfg.Batches[0].Output)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, selplot.ErrFileNotFound)

	tests := map[string]string{
		"bad policy":       "on_title_mismatch: shout\n",
		"bad load policy":  "on_load_error: retry\n",
		"negative header":  "header_row: -1\n",
		"unknown key":      "colour: red\n",
		"unknown preset":   "charts:\n  - preset: histogram\n    inputs: [a.xlsx]\n",
		"no inputs":        "charts:\n  - preset: selection\n",
		"multi output":     "charts:\n  - preset: selection\n    inputs: [a.xlsx, b.xlsx]\n    output: x.html\n",
		"batch no output":  "batches:\n  - catch_share: [a.xlsx]\n    selection: [b.xlsx]\n",
		"bad domain":       "presets:\n  selection:\n    left:\n      domain: [0, 1, 2]\n",
		"bad preset name":  "presets:\n  pie:\n    left:\n      title: x\n",
		"bad batch preset": "batches:\n  - catch_share: [a.xlsx]\n    selection: [b.xlsx]\n    output: o.html\n    selection_preset: pie\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestEnvValidation(t *testing.T) {
	t.Setenv("SELPLOT_ON_LOAD_ERROR", "sometimes")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("SELPLOT_SHEET", "Data")
	t.Setenv("SELPLOT_CONCURRENCY", "")
	t.Setenv("SELPLOT_ON_TITLE_MISMATCH", "")
	os.Unsetenv("SELPLOT_CONCURRENCY")
	os.Unsetenv("SELPLOT_ON_TITLE_MISMATCH")

	path := filepath.Join(t.TempDir(), ".env")
	body := "SELPLOT_CONCURRENCY=6\nSELPLOT_SHEET=Other\nSELPLOT_ON_TITLE_MISMATCH=placeholder\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Concurrency)
	assert.Equal(t, "placeholder", cfg.OnTitleMismatch)
	// The real environment wins over the file.
	assert.Equal(t, "Data", cfg.Sheet)

	assert.ErrorIs(t, LoadEnvFile(filepath.Join(t.TempDir(), "none.env")), selplot.ErrFileNotFound)
}

func TestPresetOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	p, err := cfg.Preset(selplot.PresetCatchShare)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 300}, p.Chart.Right.Domain)
	assert.Equal(t, []float64{0, 100, 200, 300}, p.Chart.Right.Values)
	assert.Equal(t, "Catch share", p.Chart.Left.Title)
	// Untouched settings keep the preset values.
	assert.Equal(t, "Number captured", p.Chart.Right.Title)
	assert.Equal(t, []float64{15, 55}, p.Chart.X.Domain)

	sel, err := cfg.Preset(selplot.PresetSelection)
	require.NoError(t, err)
	assert.Equal(t, selplot.SelectionPreset(), sel)

	_, err = cfg.Preset("pie")
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	opts := cfg.Options(nil)
	require.NotNil(t, opts.HeaderRow)
	assert.Equal(t, 2, *opts.HeaderRow)
	assert.Equal(t, selplot.TitleFail, opts.TitlePolicy)
	assert.Equal(t, selplot.LoadErrorSkip, opts.OnLoadError)
	assert.Equal(t, 4, opts.Concurrency)
	assert.Equal(t, 2, opts.LoadOptions().HeaderRow)
}
