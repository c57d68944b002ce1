package main

import (
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "help",
			args: []string{"--help"},
			want: 0,
		},
		{
			name: "version",
			args: []string{"--version"},
			want: 0,
		},
		{
			name: "unknown command",
			args: []string{"rasterize"},
			want: 1,
		},
		{
			name: "too few positional arguments",
			args: []string{"run", "flight.las", "1"},
			want: 1,
		},
		{
			name: "lasgrid not installed",
			args: []string{
				"--anchor", t.TempDir() + "/a/b/c/shim", "run",
				"flight.las", "1", "elevation", "lowest", "0", "#", "#", "#",
				"#", "false", "false", "#", "#", "#", "#", "false",
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Fatalf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
