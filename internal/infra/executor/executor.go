// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command, waits for it and returns its combined output and exit status.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	// #nosec G204 - cmd.Program is the resolved lasgrid path and Args come from BuildArgs
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)

	var out bytes.Buffer
	execCmd.Stdout = &out
	execCmd.Stderr = &out

	err := execCmd.Run()
	if err == nil {
		return &domain.ExecResult{Output: out.Bytes(), ExitCode: 0}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("run %s: %w", cmd.Program, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ExecResult{Output: out.Bytes(), ExitCode: exitErr.ExitCode()}, nil
	}

	return nil, fmt.Errorf("run %s: %w", cmd.Program, err)
}
