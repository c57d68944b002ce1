package reporter

import (
	"bytes"
	"testing"

	"github.com/runoshun/lasgrid-shim/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Report("Starting lasgrid ...")
	c.Report("lasgrid output\nsecond line\n")
	c.Success("Success. lasgrid done.")
	c.Failure("Error. lasgrid failed.")

	// A bytes.Buffer is not a terminal, so no escape sequences are written.
	want := "Starting lasgrid ...\n" +
		"lasgrid output\nsecond line\n" +
		"Success. lasgrid done.\n" +
		"Error. lasgrid failed.\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_EmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Report("")
	assert.Equal(t, "\n", buf.String())
}

func TestLogged(t *testing.T) {
	logger := testutil.NewMockLogger()
	r := NewLogged(logger, "report")

	r.Report("output\n")
	r.Success("done")
	r.Failure("failed")

	assert.Equal(t, []testutil.LogEntry{
		{Level: "info", Category: "report", Msg: "output"},
		{Level: "info", Category: "report", Msg: "done"},
		{Level: "error", Category: "report", Msg: "failed"},
	}, logger.Entries)
}

func TestTee(t *testing.T) {
	a := testutil.NewMockReporter()
	b := testutil.NewMockReporter()
	tee := Tee{a, b}

	tee.Report("one")
	tee.Success("two")
	tee.Failure("three")

	want := []testutil.Message{
		{Kind: testutil.KindReport, Text: "one"},
		{Kind: testutil.KindSuccess, Text: "two"},
		{Kind: testutil.KindFailure, Text: "three"},
	}
	assert.Equal(t, want, a.Messages)
	assert.Equal(t, want, b.Messages)
}
