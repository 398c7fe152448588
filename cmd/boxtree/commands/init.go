package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agiangrant/boxtree/internal/config"
)

func newInitCmd(app *App) *cobra.Command {
	var force, withTheme bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default boxtree.toml (and optionally theme.toml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if _, err := os.Stat(app.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", app.ConfigPath)
			}

			cfg := config.Default()
			themePath := ""
			if withTheme {
				themePath = filepath.Join(filepath.Dir(app.ConfigPath), "theme.toml")
				cfg.Theme.File = themePath
			}
			if err := config.Save(app.ConfigPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "  ✓ Created %s\n", app.ConfigPath)

			if withTheme {
				_, err := os.Stat(themePath)
				switch {
				case errors.Is(err, fs.ErrNotExist):
					if err := os.WriteFile(themePath, []byte(defaultThemeToml), 0o644); err != nil {
						return fmt.Errorf("failed to create %s: %w", themePath, err)
					}
					fmt.Fprintf(out, "  ✓ Created %s\n", themePath)
				case err != nil:
					return fmt.Errorf("failed to check %s: %w", themePath, err)
				default:
					fmt.Fprintf(out, "  - Kept existing %s\n", themePath)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&withTheme, "theme", false, "Also write a theme.toml next to the config")

	return cmd
}

const defaultThemeToml = `# boxtree theme
# Entries extend or override the built-in palette, spacing scale, radii and
# breakpoints. Class names pick them up directly: bg-brand, p-gutter,
# rounded-pill, md:flex-row.

[breakpoints]
# sm = 640
# md = 768
# lg = 1024
# xl = 1280
# 2xl = 1536

[colors]
brand = "#1da1f2"
brand-dark = "#0c7abf"

[spacing]
gutter = "24px"
section = "4rem"

[radii]
pill = "9999"
`
