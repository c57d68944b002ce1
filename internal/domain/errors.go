package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrToolNotFound    = errors.New("lasgrid not found")
	ErrToolFailed      = errors.New("lasgrid failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrConfigExists    = errors.New("config file already exists")
)

// ToolNotFoundError reports which part of the installation is missing.
type ToolNotFoundError struct {
	What string // "directory" or "executable"
	Path string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("cannot find lasgrid %s at %s", e.What, e.Path)
}

func (e *ToolNotFoundError) Unwrap() error {
	return ErrToolNotFound
}

// ToolFailedError reports a non-zero exit of the child process.
type ToolFailedError struct {
	ExitCode int
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("lasgrid exited with status %d", e.ExitCode)
}

func (e *ToolFailedError) Unwrap() error {
	return ErrToolFailed
}
