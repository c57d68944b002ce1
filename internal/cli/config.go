package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/lasgrid-shim/internal/domain"
	"github.com/runoshun/lasgrid-shim/internal/infra/config"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage lasgrid-shim configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(g))
	cmd.AddCommand(newConfigInitCommand(g))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging the global config
file and the file given with --config, and where lasgrid would be looked up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd, g)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			global := c.ConfigManager.GetGlobalConfigInfo()
			switch {
			case global.Path == "":
				_, _ = fmt.Fprintln(w, "- global config (no config directory)")
			case global.Exists:
				_, _ = fmt.Fprintf(w, "- %s\n", global.Path)
			default:
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", global.Path)
			}
			if g.configPath != "" {
				_, _ = fmt.Fprintf(w, "- %s\n", g.configPath)
			}

			anchor, err := resolveAnchor(g)
			if err == nil {
				if tool, resolveErr := c.Locator.Resolve(anchor); tool != nil {
					status := "found"
					if resolveErr != nil {
						status = "not found"
					}
					_, _ = fmt.Fprintln(w)
					_, _ = fmt.Fprintln(w, "[lasgrid]")
					_, _ = fmt.Fprintf(w, "- %s (%s)\n", tool.Executable, status)
				}
			}

			data, err := config.RenderConfig(c.Config)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "[Effective config]")
			_, _ = fmt.Fprint(w, string(data))
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(g *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default global config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd, g)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			path, err := c.ConfigManager.InitGlobalConfig(force)
			if errors.Is(err, domain.ErrConfigExists) {
				return &ExitError{Code: 1, Err: fmt.Errorf("%w: %s (use --force to overwrite)", err, path)}
			}
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
