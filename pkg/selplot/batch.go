package selplot

import (
	"context"
	"errors"

	"github.com/meshsel/selplot/pkg/selplot/models"
	"golang.org/x/sync/errgroup"
)

// BatchRequest pairs catch-share files with selection-curve files by
// position. Callers must align the two lists.
type BatchRequest struct {
	CatchShare []string
	Selection  []string
	// CatchSharePreset and SelectionPreset default to the krill presets
	// when their Name is empty.
	CatchSharePreset Preset
	SelectionPreset  Preset
	Title            string
	// TitleFontSize, HSpacing and VSpacing default to the figure constants
	// when zero.
	TitleFontSize float64
	HSpacing      float64
	VSpacing      float64
}

// Assemble builds a composite with a throwaway Builder.
func Assemble(ctx context.Context, req BatchRequest, opts Options) (*models.Composite, error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	return b.Assemble(ctx, req)
}

// Assemble charts every file of req, pairs chart i of each list into row i
// and stacks the rows in input order. Files are loaded concurrently.
func (b *Builder) Assemble(ctx context.Context, req BatchRequest) (*models.Composite, error) {
	n := len(req.CatchShare)
	if n != len(req.Selection) {
		return nil, &models.AlignmentError{Left: n, Right: len(req.Selection)}
	}
	if n == 0 {
		return nil, models.ErrEmptyBatch
	}

	csPreset, selPreset := req.CatchSharePreset, req.SelectionPreset
	if csPreset.Name == "" {
		csPreset = CatchSharePreset()
	}
	if selPreset.Name == "" {
		selPreset = SelectionPreset()
	}

	policy := b.opts.LoadPolicy()
	logger := b.opts.logger()

	// Slot i holds catch-share chart i, slot n+i selection chart i.
	charts := make([]models.Chart, 2*n)
	skipped := make([]error, 2*n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers())

	for i := 0; i < 2*n; i++ {
		path, preset := req.CatchShare[i%n], csPreset
		if i >= n {
			path, preset = req.Selection[i-n], selPreset
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chart, err := b.Chart(path, preset)
			if err != nil {
				if policy == LoadErrorSkip && skippable(err) {
					skipped[i] = err
					return nil
				}
				return err
			}
			charts[i] = chart
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	comp := &models.Composite{
		Title:         req.Title,
		TitleFontSize: orDefault(req.TitleFontSize, TitleFontSize),
		HSpacing:      orDefault(req.HSpacing, FigureHSpacing),
		VSpacing:      orDefault(req.VSpacing, FigureVSpacing),
	}
	for i := 0; i < n; i++ {
		if err := errors.Join(skipped[i], skipped[n+i]); err != nil {
			logger.Warn("skipping batch pair",
				"row", i,
				"catch_share", req.CatchShare[i],
				"selection", req.Selection[i],
				"err", err)
			continue
		}
		comp.Rows = append(comp.Rows, []models.Chart{charts[i], charts[n+i]})
	}

	if len(comp.Rows) == 0 {
		return nil, models.ErrEmptyBatch
	}
	return comp, nil
}

// skippable reports whether err only concerns one input file.
func skippable(err error) bool {
	var le *models.LoadError
	var mce *models.MissingColumnError
	return errors.As(err, &le) || errors.As(err, &mce)
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
