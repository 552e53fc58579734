package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshsel/selplot/internal/config"
	"github.com/meshsel/selplot/pkg/selplot"
	"github.com/meshsel/selplot/pkg/selplot/output"
)

func newChartCmd(a *app) *cobra.Command {
	var (
		preset     string
		outputPath string
		stdout     bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "chart [input.xlsx...]",
		Short: "Render one chart per input file",
		Long: `chart renders each input with the chosen preset and writes it next to
the input as <name>.html, or to --output when a single input is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath != "" && len(args) > 1 {
				return fmt.Errorf("--output requires a single input, got %d", len(args))
			}
			p, err := a.cfg.Preset(preset)
			if err != nil {
				return err
			}

			if stdout {
				return a.printSpecs(cmd, args, p, pretty)
			}
			return a.renderCharts(cmd, config.ChartJob{Preset: preset, Inputs: args, Output: outputPath}, p)
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", selplot.PresetCatchShare, "Chart preset: catch-share, selection, or lantern")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output HTML path (default: input with .html)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the Vega-Lite spec to stdout instead of writing files")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the spec printed by --stdout")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var job config.BatchJob

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render catch-share/selection pairs as one figure",
		Long: `batch charts the i-th catch-share file next to the i-th selection file
and stacks the pairs top to bottom in a single HTML figure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.renderBatch(cmd, job)
		},
	}

	cmd.Flags().StringSliceVar(&job.CatchShare, "catch-share", nil, "Catch-share files, in row order")
	cmd.Flags().StringSliceVar(&job.Selection, "selection", nil, "Selection-curve files, in row order")
	cmd.Flags().StringVar(&job.CatchSharePreset, "catch-share-preset", selplot.PresetCatchShare, "Preset for the left column")
	cmd.Flags().StringVar(&job.SelectionPreset, "selection-preset", selplot.PresetSelection, "Preset for the right column")
	cmd.Flags().StringVarP(&job.Output, "output", "o", "figure.html", "Output HTML path")
	cmd.Flags().StringVar(&job.Title, "title", "", "Figure title")
	_ = cmd.MarkFlagRequired("catch-share")
	_ = cmd.MarkFlagRequired("selection")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Render every chart and batch listed in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.configPath == "" {
				return fmt.Errorf("run requires --config")
			}
			if len(a.cfg.Charts) == 0 && len(a.cfg.Batches) == 0 {
				a.logger.Warn("config lists no charts or batches", "config", a.configPath)
				return nil
			}
			for i, job := range a.cfg.Charts {
				p, err := a.cfg.Preset(job.Preset)
				if err != nil {
					return fmt.Errorf("charts[%d]: %w", i, err)
				}
				if err := a.renderCharts(cmd, job, p); err != nil {
					return fmt.Errorf("charts[%d]: %w", i, err)
				}
			}
			for i, job := range a.cfg.Batches {
				if err := a.renderBatch(cmd, job); err != nil {
					return fmt.Errorf("batches[%d]: %w", i, err)
				}
			}
			return nil
		},
	}
}

// renderCharts builds and exports one chart per input of job.
func (a *app) renderCharts(cmd *cobra.Command, job config.ChartJob, p selplot.Preset) error {
	exp := a.exporter()
	for _, input := range job.Inputs {
		chart, err := a.builder.Chart(input, p)
		if err != nil {
			return fmt.Errorf("chart %s: %w", input, err)
		}
		out := job.Output
		if out == "" {
			out = output.SiblingPath(input, ".html")
		}
		if err := exp.Export(cmd.Context(), output.ChartSpec(chart), out); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printSpecs(cmd *cobra.Command, inputs []string, p selplot.Preset, pretty bool) error {
	for _, input := range inputs {
		chart, err := a.builder.Chart(input, p)
		if err != nil {
			return fmt.Errorf("chart %s: %w", input, err)
		}
		data, err := output.ToJSON(output.ChartSpec(chart), pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return nil
}

// renderBatch assembles and exports the combined figure of job.
func (a *app) renderBatch(cmd *cobra.Command, job config.BatchJob) error {
	req := selplot.BatchRequest{
		CatchShare: job.CatchShare,
		Selection:  job.Selection,
		Title:      job.Title,
	}
	if job.CatchSharePreset != "" {
		p, err := a.cfg.Preset(job.CatchSharePreset)
		if err != nil {
			return err
		}
		req.CatchSharePreset = p
	}
	if job.SelectionPreset != "" {
		p, err := a.cfg.Preset(job.SelectionPreset)
		if err != nil {
			return err
		}
		req.SelectionPreset = p
	}

	comp, err := a.builder.Assemble(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("batch %s: %w", job.Output, err)
	}
	a.logger.Debug("assembled batch", "rows", len(comp.Rows), "output", job.Output)
	return a.exporter().Export(cmd.Context(), output.CompositeSpec(*comp), job.Output)
}
