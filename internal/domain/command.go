package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Args    []string
}

// Tokens returns the full token sequence, program first.
func (c *ExecCommand) Tokens() []string {
	tokens := make([]string, 0, len(c.Args)+1)
	tokens = append(tokens, c.Program)
	return append(tokens, c.Args...)
}

// String returns the command line joined with single spaces.
func (c *ExecCommand) String() string {
	return strings.Join(c.Tokens(), " ")
}

// ExecResult is the outcome of a finished child process.
type ExecResult struct {
	Output   []byte // Combined stdout and stderr
	ExitCode int
}

// ToolPath is a resolved lasgrid installation.
type ToolPath struct {
	Dir        string // Directory holding the LAStools binaries
	Executable string // Full path to the lasgrid executable
}
