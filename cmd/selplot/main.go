// Package main provides the CLI entry point for selplot.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/meshsel/selplot/internal/config"
	"github.com/meshsel/selplot/internal/logger"
	"github.com/meshsel/selplot/pkg/selplot"
	"github.com/meshsel/selplot/pkg/selplot/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	configPath string
	envFile    string
	flags      *sharedFlags

	cfg     *config.Config
	logger  *slog.Logger
	builder *selplot.Builder
}

func newRootCmd() *cobra.Command {
	a := &app{flags: &sharedFlags{}}

	rootCmd := &cobra.Command{
		Use:   "selplot",
		Short: "Render selectivity charts from spreadsheet exports",
		Long: `selplot reads catch-share and selection-curve spreadsheets and renders
them as Vega-Lite charts embedded in standalone HTML files.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file with SELPLOT_* variables")
	a.flags.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newChartCmd(a), newBatchCmd(a), newRunCmd(a))
	return rootCmd
}

// setup loads configuration, applies flags on top and builds the logger
// and chart builder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnvFile(a.envFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.flags.apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.New(cfg.Logging.Verbose, cmd.ErrOrStderr())
	slog.SetDefault(a.logger)

	a.builder, err = selplot.NewBuilder(cfg.Options(a.logger))
	return err
}

// exporter builds the output writer from the effective configuration.
func (a *app) exporter() *output.Exporter {
	e := &output.Exporter{
		WriteSpec: a.cfg.Output.SpecJSON,
		Logger:    a.logger,
	}
	if a.cfg.Output.Open {
		e.Opener = output.BrowserOpener{Logger: a.logger}
	}
	if a.cfg.Output.PNG {
		e.Snapshotter = output.ChromeSnapshotter{
			Timeout:  a.cfg.Output.SnapshotTimeout,
			ExecPath: a.cfg.Output.ChromePath,
		}
	}
	return e
}
