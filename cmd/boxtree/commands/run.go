package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/agiangrant/boxtree/geom"
	"github.com/agiangrant/boxtree/internal/demo"
	"github.com/agiangrant/boxtree/internal/logx"
	"github.com/agiangrant/boxtree/internal/termpaint"
)

func newRunCmd(app *App) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sample dashboard in the terminal",
		Long: `Run draws the sample dashboard with one terminal cell per
[terminal] cell_width x cell_height logical pixels. Click the radio buttons
and hover the cards; q, Esc or Ctrl-C quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen owns the terminal, so logs go to a file or nowhere.
			var logger *slog.Logger
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				if logger, err = logx.FromConfig(f, app.cfg.Log, app.Verbose, app.Quiet); err != nil {
					return err
				}
			} else {
				logger = logx.New(io.Discard, "text", slog.LevelError)
			}
			app.logger = logger

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			defer screen.Fini()

			cell := geom.V(app.cfg.Terminal.CellWidth, app.cfg.Terminal.CellHeight)
			w, _ := screen.Size()

			p, err := app.parser()
			if err != nil {
				return err
			}
			tree, err := p.NewTree(demo.Dashboard(), float32(w)*cell.X, app.treeOptions()...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return termpaint.NewApp(screen, tree, cell, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file while the screen is active")

	return cmd
}
