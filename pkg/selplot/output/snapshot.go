package output

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultSnapshotTimeout bounds one headless render.
const DefaultSnapshotTimeout = 30 * time.Second

// ChromeSnapshotter renders exported pages in headless Chrome and captures
// the chart element. The page loads vega from a CDN, so it needs network
// access.
type ChromeSnapshotter struct {
	// Timeout bounds the whole render. Zero means DefaultSnapshotTimeout.
	Timeout time.Duration
	// ExecPath overrides the Chrome binary.
	ExecPath string
}

// Snapshot writes a PNG of the #vis element of htmlPath to pngPath.
func (s ChromeSnapshotter) Snapshot(ctx context.Context, htmlPath, pngPath string) error {
	target, err := fileURL(htmlPath)
	if err != nil {
		return err
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultSnapshotTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if s.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(s.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var png []byte
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(target),
		chromedp.WaitVisible("#vis .marks", chromedp.ByQuery),
		chromedp.Screenshot("#vis", &png, chromedp.NodeVisible, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("render %s: %w", htmlPath, err)
	}

	return os.WriteFile(pngPath, png, 0644)
}

// fileURL turns a local path into a file:// URL.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}
