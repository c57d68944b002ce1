// Package cli provides the command-line interface for lasgrid-shim.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/lasgrid-shim/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupRun   = "run"
	groupSetup = "setup"
)

// newContainerFunc is a function variable for creating the container, allowing it to be mocked in tests.
var newContainerFunc = app.New

// executablePath is a function variable for locating the running binary, allowing it to be mocked in tests.
var executablePath = os.Executable

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	configPath string
	anchor     string
	dryRun     bool
}

// NewRootCommand creates the root command for lasgrid-shim.
func NewRootCommand(version string) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "lasgrid-shim",
		Short: "Run LAStools lasgrid from a GIS toolbox",
		Long: `lasgrid-shim translates toolbox parameters into a lasgrid command line,
runs lasgrid once, and relays its output and exit status.

lasgrid is looked up three directory levels above this program, in the
"bin" directory of the LAStools installation, unless configured otherwise.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to a config file (overrides the global config)")
	root.PersistentFlags().StringVar(&g.anchor, "anchor", "", "Path lasgrid is located from (default: this program)")
	root.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, "Report the lasgrid command line without running it")

	root.AddGroup(
		&cobra.Group{ID: groupRun, Title: "Run Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(g)
	runCmd.GroupID = groupRun

	gridCmd := newGridCommand(g)
	gridCmd.GroupID = groupRun

	jobCmd := newJobCommand(g)
	jobCmd.GroupID = groupRun

	configCmd := newConfigCommand(g)
	configCmd.GroupID = groupSetup

	root.AddCommand(runCmd, gridCmd, jobCmd, configCmd)

	return root
}

// openContainer creates the container for cmd, printing config warnings to stderr.
func openContainer(cmd *cobra.Command, g *globalFlags) (*app.Container, error) {
	c, err := newContainerFunc(app.Options{
		Stdout:     cmd.OutOrStdout(),
		ConfigPath: g.configPath,
	})
	if err != nil {
		return nil, &ExitError{Code: 1, Err: fmt.Errorf("load config: %w", err)}
	}
	if c.Config != nil {
		for _, w := range c.Config.Warnings {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
	}
	return c, nil
}

// resolveAnchor returns the path lasgrid is located from.
func resolveAnchor(g *globalFlags) (string, error) {
	if g.anchor != "" {
		return filepath.Abs(g.anchor)
	}
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locate running program: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
