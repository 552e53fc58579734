package output

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
)

// browserMethod is one way of handing a file to the desktop.
type browserMethod struct {
	name string
	cmd  string
	args []string
}

// BrowserOpener opens files in the default viewer, trying the platform's
// launchers in turn.
type BrowserOpener struct {
	Logger *slog.Logger
}

// Open starts the first launcher that is available.
func (b BrowserOpener) Open(path string) error {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var errs []error
	for _, m := range browserMethods(abs) {
		if _, err := exec.LookPath(m.cmd); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.name, err))
			continue
		}
		if err := exec.Command(m.cmd, m.args...).Start(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.name, err))
			continue
		}
		logger.Debug("opened in viewer", "path", abs, "method", m.name)
		return nil
	}

	return fmt.Errorf("no viewer could open %s: %w", abs, errors.Join(errs...))
}

// browserMethods returns platform-specific ways to open a file.
func browserMethods(path string) []browserMethod {
	switch runtime.GOOS {
	case "windows":
		return []browserMethod{
			{name: "rundll32", cmd: "rundll32", args: []string{"url.dll,FileProtocolHandler", path}},
			{name: "start_command", cmd: "cmd", args: []string{"/c", "start", "", path}},
		}
	case "darwin":
		return []browserMethod{
			{name: "open", cmd: "open", args: []string{path}},
		}
	default:
		return []browserMethod{
			{name: "xdg-open", cmd: "xdg-open", args: []string{path}},
			{name: "sensible-browser", cmd: "sensible-browser", args: []string{path}},
			{name: "firefox", cmd: "firefox", args: []string{path}},
			{name: "chromium", cmd: "chromium", args: []string{path}},
		}
	}
}
