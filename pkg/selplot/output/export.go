package output

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshsel/selplot/pkg/selplot/models"
)

// Opener shows an exported file to the user.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) error

// Open calls f(path).
func (f OpenerFunc) Open(path string) error {
	return f(path)
}

// Snapshotter renders an exported HTML file to a PNG image.
type Snapshotter interface {
	Snapshot(ctx context.Context, htmlPath, pngPath string) error
}

// Exporter writes documents to disk.
type Exporter struct {
	// Opener opens the HTML file after writing. Nil skips opening.
	Opener Opener
	// Snapshotter writes a PNG next to the HTML file. Nil skips it.
	Snapshotter Snapshotter
	// WriteSpec also writes the bare spec as <name>.vl.json.
	WriteSpec bool
	Logger    *slog.Logger
}

// Export writes v as HTML to path, plus the optional spec and PNG files,
// then opens the HTML. Failures are returned as *models.ExportError.
func (e *Exporter) Export(ctx context.Context, v VegaLite, path string) error {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &models.ExportError{Path: path, Op: "write", Err: err}
		}
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, v); err != nil {
		return &models.ExportError{Path: path, Op: "write", Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &models.ExportError{Path: path, Op: "write", Err: err}
	}
	logger.Info("wrote chart", "path", path)

	if e.WriteSpec {
		specPath := SiblingPath(path, ".vl.json")
		data, err := ToJSON(v, true)
		if err != nil {
			return &models.ExportError{Path: specPath, Op: "spec", Err: err}
		}
		if err := os.WriteFile(specPath, data, 0644); err != nil {
			return &models.ExportError{Path: specPath, Op: "spec", Err: err}
		}
		logger.Debug("wrote spec", "path", specPath)
	}

	if e.Snapshotter != nil {
		pngPath := SiblingPath(path, ".png")
		if err := e.Snapshotter.Snapshot(ctx, path, pngPath); err != nil {
			return &models.ExportError{Path: pngPath, Op: "snapshot", Err: err}
		}
		logger.Info("wrote snapshot", "path", pngPath)
	}

	if e.Opener != nil {
		if err := e.Opener.Open(path); err != nil {
			return &models.ExportError{Path: path, Op: "open", Err: err}
		}
	}

	return nil
}

// SiblingPath replaces the extension of path with ext.
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
