package domain

import "context"

// Reporter is the host's message channel.
// Every message is one line of text for the user.
type Reporter interface {
	// Report emits an informational message.
	Report(msg string)

	// Success emits the final message of a successful run.
	Success(msg string)

	// Failure emits a message describing why the run failed.
	Failure(msg string)
}

// Logger writes diagnostic entries grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs cmd to completion with stderr merged into stdout.
	// A non-zero exit status is reported in the result, not as an error.
	Execute(ctx context.Context, cmd *ExecCommand) (*ExecResult, error)
}

// ToolLocator finds the lasgrid executable.
type ToolLocator interface {
	// Resolve derives the installation from anchor, the path of the invoking program.
	// The returned ToolPath is filled even when an error is returned, so callers
	// can report the paths that were checked.
	Resolve(anchor string) (*ToolPath, error)
}
