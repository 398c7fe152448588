package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/boxtree/internal/config"
	"github.com/agiangrant/boxtree/internal/logx"
	"github.com/agiangrant/boxtree/retained"
	"github.com/agiangrant/boxtree/tw"
)

const version = "0.1.0"

// App carries the global flags and what PersistentPreRunE loads from them.
type App struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool

	cfg    config.Config
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "boxtree",
		Short:        "Retained widget tree with flexbox layout",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Write a default boxtree.toml
  boxtree init

  # Print the computed layout of the sample dashboard
  boxtree layout --width 1024 --height 768

  # Run the dashboard in the terminal (q or Esc quits)
  boxtree run
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// init writes the file the others read.
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}
		return app.load(cmd)
	}

	cmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", config.FileName, "Path to the config file")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log at debug level")
	cmd.PersistentFlags().BoolVarP(&app.Quiet, "quiet", "q", false, "Log errors only")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (app *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	logger, err := logx.FromConfig(cmd.ErrOrStderr(), cfg.Log, app.Verbose, app.Quiet)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.logger = logger
	return nil
}

// parser returns the class parser for the configured theme.
func (app *App) parser() (*tw.Parser, error) {
	if app.cfg.Theme.File == "" {
		return tw.Default(), nil
	}
	theme, err := tw.LoadTheme(app.cfg.Theme.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return tw.NewParser(theme), nil
}

func (app *App) treeOptions() []retained.Option {
	return []retained.Option{
		retained.WithLogger(app.logger),
		retained.WithScale(app.cfg.Window.Scale),
		retained.WithRounding(app.cfg.Layout.Round),
		retained.WithMaxShrinkPasses(app.cfg.Layout.MaxShrinkPasses),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "boxtree version %s\n", version)
			return err
		},
	}
}
