// Command bommie edits units files: prints mapped to named units and their
// quantities.
package main

import (
	"context"
	"fmt"
	"os"

	"bommie/internal/bom"
	"bommie/internal/editor"
	"bommie/internal/logging"
	"bommie/internal/telemetry"
	"bommie/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// config holds the command-line flags.
type config struct {
	Open         bool
	LogFile      string
	Debug        bool
	OTLPEndpoint string
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "bommie [file" + bom.FileExt + "]",
		Short: "Edit units files in the terminal",
		Long: `bommie edits a units file: a JSON object mapping print names to their
units and quantities.

With a path the file is loaded before the editor starts. Without one the
editor starts with an empty document; --open shows the file picker instead.

Keys: SPC f n/o/s new, open, save. a add, e edit, d delete, tab switch pane, q quit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), cfg, path)
		},
	}
	cmd.Flags().BoolVar(&cfg.Open, "open", false, "Start with the file picker")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "Write JSON logs to this file")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", false, "Log at debug level")
	cmd.Flags().StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", "", "Export load/save traces to this OTLP/HTTP endpoint (host:port)")
	return cmd
}

func run(ctx context.Context, cfg config, path string) error {
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	model := newModel(ctx, cfg, path, logger)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// newModel builds the application model, loading path first when given.
// A failed load starts the editor with the error shown.
func newModel(ctx context.Context, cfg config, path string, logger *zap.Logger) *ui.AppModel {
	state := editor.New(logger)
	store := bom.NewStore(logger)
	if path != "" {
		prints, err := store.Load(ctx, path)
		if err != nil {
			state.FailOpen(err)
		} else {
			state.ApplyOpen(path, prints)
		}
	}
	model := ui.NewAppModel(ctx, state, store, logger)
	model.OpenOnStart = cfg.Open
	logger.Info("starting",
		zap.String("path", path),
		zap.Int("prints", len(state.Prints)),
		zap.Bool("open", cfg.Open))
	return model
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
