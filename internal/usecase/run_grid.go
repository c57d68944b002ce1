// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// Messages sent to the host.
const (
	msgStarting     = "Starting lasgrid ..."
	msgCommandLine  = "LAStools command line:"
	msgSuccess      = "Success. lasgrid done."
	msgFailure      = "Error. lasgrid failed."
	msgDirMissing   = "Cannot find lastools bin directory at %s"
	msgExeMissing   = "Cannot find lasgrid executable at %s"
	msgFound        = "Found %s ..."
	msgInvalidInput = "Error. invalid lasgrid parameters: %v"
	msgDryRun       = "Dry run. lasgrid not started."
)

// RunGridInput contains the parameters for one lasgrid run.
// Fields are ordered to minimize memory padding.
type RunGridInput struct {
	Anchor     string             // Path of the invoking program; the installation is found relative to it
	Positional []string           // Host parameters, used when FromHost is set
	Options    domain.GridOptions // Named options, validated before use
	FromHost   bool               // Take the options from Positional, passing values through unchecked
	DryRun     bool               // Report the command line without starting lasgrid
}

// RunGridOutput contains the result of a lasgrid run.
type RunGridOutput struct {
	Command  *domain.ExecCommand
	Output   []byte
	ExitCode int
	Executed bool
}

// RunGrid is the use case that resolves lasgrid, runs it once and reports the outcome.
type RunGrid struct {
	locator  domain.ToolLocator
	executor domain.CommandExecutor
	reporter domain.Reporter
	logger   domain.Logger
}

// NewRunGrid creates a new RunGrid use case.
func NewRunGrid(
	locator domain.ToolLocator,
	executor domain.CommandExecutor,
	reporter domain.Reporter,
	logger domain.Logger,
) *RunGrid {
	return &RunGrid{
		locator:  locator,
		executor: executor,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute runs lasgrid for in.Options.
//
// It returns *domain.ToolNotFoundError if the installation is incomplete and
// *domain.ToolFailedError if lasgrid exits with a non-zero status. In both
// cases the failure has already been reported.
func (uc *RunGrid) Execute(ctx context.Context, in RunGridInput) (*RunGridOutput, error) {
	uc.reporter.Report(msgStarting)

	opts, err := gridOptions(in)
	if err != nil {
		uc.reporter.Failure(fmt.Sprintf(msgInvalidInput, err))
		return nil, err
	}

	// Resolve
	uc.logger.Debug("resolve", "anchor: "+in.Anchor)
	tool, err := uc.locator.Resolve(in.Anchor)
	if err != nil {
		uc.reportResolveFailure(tool, err)
		return nil, err
	}
	uc.reporter.Report(fmt.Sprintf(msgFound, tool.Dir))
	uc.reporter.Report(fmt.Sprintf(msgFound, tool.Executable))

	// Build
	cmd := domain.NewGridCommand(tool.Executable, opts)
	uc.reporter.Report(msgCommandLine)
	uc.reporter.Report(cmd.String())

	out := &RunGridOutput{Command: cmd}
	if in.DryRun {
		uc.reporter.Report(msgDryRun)
		return out, nil
	}

	// Execute
	res, err := uc.executor.Execute(ctx, cmd)
	if err != nil {
		uc.logger.Error("exec", err.Error())
		uc.reporter.Failure(msgFailure)
		return nil, fmt.Errorf("execute lasgrid: %w", err)
	}
	out.Executed = true
	out.Output = res.Output
	out.ExitCode = res.ExitCode

	uc.reporter.Report(string(res.Output))
	uc.logger.Debug("exec", fmt.Sprintf("exit status %d", res.ExitCode))

	if res.ExitCode != 0 {
		uc.reporter.Failure(msgFailure)
		return out, &domain.ToolFailedError{ExitCode: res.ExitCode}
	}

	uc.reporter.Success(msgSuccess)
	return out, nil
}

// gridOptions returns the options for in. Host parameters reach lasgrid as
// given; named options must pass Validate.
func gridOptions(in RunGridInput) (domain.GridOptions, error) {
	if in.FromHost {
		return domain.ParsePositional(in.Positional)
	}
	if err := in.Options.Validate(); err != nil {
		return domain.GridOptions{}, err
	}
	return in.Options, nil
}

func (uc *RunGrid) reportResolveFailure(tool *domain.ToolPath, err error) {
	var nf *domain.ToolNotFoundError
	if !errors.As(err, &nf) || tool == nil {
		uc.reporter.Failure(err.Error())
		return
	}

	switch nf.What {
	case "executable":
		uc.reporter.Report(fmt.Sprintf(msgFound, tool.Dir))
		uc.reporter.Failure(fmt.Sprintf(msgExeMissing, nf.Path))
	default:
		uc.reporter.Failure(fmt.Sprintf(msgDirMissing, nf.Path))
	}
}
