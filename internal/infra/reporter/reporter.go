// Package reporter implements the message channel the host reads from.
package reporter

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// Ensure implementations satisfy domain.Reporter.
var (
	_ domain.Reporter = (*Console)(nil)
	_ domain.Reporter = (*Logged)(nil)
	_ domain.Reporter = Tee(nil)
)

// Console writes messages line by line to a writer.
// Success and failure lines are colored when the writer is a terminal.
type Console struct {
	w            io.Writer
	successStyle lipgloss.Style
	failureStyle lipgloss.Style
	mu           sync.Mutex
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:            w,
		successStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		failureStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	}
}

// Report writes msg as is.
func (c *Console) Report(msg string) {
	c.write(msg)
}

// Success writes msg in the success style.
func (c *Console) Success(msg string) {
	c.write(c.successStyle.Render(msg))
}

// Failure writes msg in the failure style.
func (c *Console) Failure(msg string) {
	c.write(c.failureStyle.Render(msg))
}

func (c *Console) write(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(c.w, msg)
}

// Logged mirrors messages into a domain.Logger.
type Logged struct {
	logger   domain.Logger
	category string
}

// NewLogged creates a reporter that logs every message under category.
func NewLogged(logger domain.Logger, category string) *Logged {
	return &Logged{logger: logger, category: category}
}

// Report logs msg at info level.
func (l *Logged) Report(msg string) {
	l.logger.Info(l.category, strings.TrimRight(msg, "\n"))
}

// Success logs msg at info level.
func (l *Logged) Success(msg string) {
	l.logger.Info(l.category, msg)
}

// Failure logs msg at error level.
func (l *Logged) Failure(msg string) {
	l.logger.Error(l.category, msg)
}

// Tee sends every message to each reporter in order.
type Tee []domain.Reporter

// Report forwards msg to all reporters.
func (t Tee) Report(msg string) {
	for _, r := range t {
		r.Report(msg)
	}
}

// Success forwards msg to all reporters.
func (t Tee) Success(msg string) {
	for _, r := range t {
		r.Success(msg)
	}
}

// Failure forwards msg to all reporters.
func (t Tee) Failure(msg string) {
	for _, r := range t {
		r.Failure(msg)
	}
}
