// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strings"

	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// Message kinds recorded by MockReporter.
const (
	KindReport  = "report"
	KindSuccess = "success"
	KindFailure = "failure"
)

// Message is one message received by MockReporter.
type Message struct {
	Kind string
	Text string
}

// MockReporter is a test double for domain.Reporter.
type MockReporter struct {
	Messages []Message
}

// NewMockReporter creates a new MockReporter.
func NewMockReporter() *MockReporter {
	return &MockReporter{}
}

// Report records an informational message.
func (m *MockReporter) Report(msg string) {
	m.Messages = append(m.Messages, Message{Kind: KindReport, Text: msg})
}

// Success records a success message.
func (m *MockReporter) Success(msg string) {
	m.Messages = append(m.Messages, Message{Kind: KindSuccess, Text: msg})
}

// Failure records a failure message.
func (m *MockReporter) Failure(msg string) {
	m.Messages = append(m.Messages, Message{Kind: KindFailure, Text: msg})
}

// Texts returns the text of every recorded message.
func (m *MockReporter) Texts() []string {
	texts := make([]string, len(m.Messages))
	for i, msg := range m.Messages {
		texts[i] = msg.Text
	}
	return texts
}

// Count returns how many messages contain substr.
func (m *MockReporter) Count(substr string) int {
	n := 0
	for _, msg := range m.Messages {
		if strings.Contains(msg.Text, substr) {
			n++
		}
	}
	return n
}

// LogEntry is one entry received by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "debug", Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "info", Category: category, Msg: msg})
}

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "warn", Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "error", Category: category, Msg: msg})
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	ExecuteErr error
	Commands   []*domain.ExecCommand
	Output     []byte
	ExitCode   int
}

// NewMockCommandExecutor creates a new MockCommandExecutor that succeeds with no output.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

// Execute records cmd and returns the configured result.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Commands = append(m.Commands, cmd)
	if m.ExecuteErr != nil {
		return nil, m.ExecuteErr
	}
	return &domain.ExecResult{Output: m.Output, ExitCode: m.ExitCode}, nil
}

// MockToolLocator is a test double for domain.ToolLocator.
type MockToolLocator struct {
	ResolveErr error
	Path       domain.ToolPath
	Anchors    []string
}

// NewMockToolLocator creates a MockToolLocator that resolves to a fixed installation.
func NewMockToolLocator() *MockToolLocator {
	return &MockToolLocator{
		Path: domain.ToolPath{
			Dir:        "/opt/lastools/bin",
			Executable: "/opt/lastools/bin/lasgrid",
		},
	}
}

// Resolve records anchor and returns the configured path and error.
func (m *MockToolLocator) Resolve(anchor string) (*domain.ToolPath, error) {
	m.Anchors = append(m.Anchors, anchor)
	tp := m.Path
	return &tp, m.ResolveErr
}
