package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostArgs returns the host's parameters with everything left at its default.
func hostArgs() []string {
	return []string{
		"flight.las", // input
		"1",          // step
		"elevation",  // attribute
		"lowest",     // operation
		"0",          // fill
		"#",          // color mode
		"#",          // color min
		"#",          // color max
		"#",          // point selection
		"false",      // use bb
		"false",      // use tile bb
		"#",          // output format
		"#",          // output file
		"#",          // output dir
		"#",          // output suffix
		"false",      // verbose
	}
}

func TestParsePositional_Defaults(t *testing.T) {
	o, err := ParsePositional(hostArgs())
	require.NoError(t, err)
	assert.Equal(t, []string{"-i", "flight.las"}, BuildArgs(o))
}

func TestParsePositional_Example(t *testing.T) {
	args := []string{
		"flight.las", "2", "intensity", "highest", "0", "#", "#", "#",
		"ground points only", "true", "false", "#", "#", "#", "#", "false",
	}

	o, err := ParsePositional(args)
	require.NoError(t, err)

	cmd := NewGridCommand("lasgrid.exe", o)
	want := []string{
		"lasgrid.exe", "-i", "flight.las", "-step", "2", "-intensity", "-highest",
		"-keep_class", "2", "-use_bb",
	}
	assert.Equal(t, want, cmd.Tokens())
}

func TestParsePositional_ArgCount(t *testing.T) {
	for _, n := range []int{0, 15, 17} {
		t.Run(fmt.Sprintf("%d args", n), func(t *testing.T) {
			_, err := ParsePositional(make([]string, n))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestParsePositional_ValuesPassThrough(t *testing.T) {
	tests := []struct {
		name  string
		index int
		value string
		want  []string
	}{
		{"fill", 4, "2", []string{"-fill", "2"}},
		{"fill with leading zero", 4, "02", []string{"-fill", "02"}},
		{"zero fill spelled differently", 4, "00", []string{"-fill", "00"}},
		{"fractional fill", 4, "1.5", []string{"-fill", "1.5"}},
		{"text step", 1, "auto", []string{"-step", "auto"}},
		{"zero step", 1, "0", []string{"-step", "0"}},
		{"step spelled differently", 1, "1.0", []string{"-step", "1.0"}},
		{"attribute with space", 2, "scan angle", []string{"-scan angle"}},
		{"unknown operation", 3, "median", []string{"-median"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := hostArgs()
			args[tt.index] = tt.value

			o, err := ParsePositional(args)
			require.NoError(t, err)
			assert.Equal(t, append([]string{"-i", "flight.las"}, tt.want...), BuildArgs(o))
		})
	}
}

func TestParsePositional_ColorRange(t *testing.T) {
	tests := []struct {
		name      string
		color     string
		min, max  string
		wantColor ColorMode
		wantRange bool
	}{
		{"gray with range", "gray ramp", "0", "100", ColorGray, true},
		{"false with range", "false colors", "5", "50", ColorFalse, true},
		{"gray missing max", "gray ramp", "0", "#", ColorGray, false},
		{"gray missing min", "gray ramp", "#", "100", ColorGray, false},
		{"no color with range", "#", "0", "100", ColorNone, false},
		{"unknown color with range", "sepia", "0", "100", ColorNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := hostArgs()
			args[5], args[6], args[7] = tt.color, tt.min, tt.max

			o, err := ParsePositional(args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColor, o.Color)
			if tt.wantRange {
				require.NotNil(t, o.ColorRange)
				assert.Equal(t, ColorRange{Min: tt.min, Max: tt.max}, *o.ColorRange)
				assert.Contains(t, BuildArgs(o), "-set_min_max")
			} else {
				assert.Nil(t, o.ColorRange)
				assert.NotContains(t, BuildArgs(o), "-set_min_max")
			}
		})
	}
}

func TestParsePositional_Selection(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"ground points only", []string{"-keep_class", "2"}},
		{"ground and keypoints", []string{"-keep_class", "2", "8"}},
		{"ground and buildings", []string{"-keep_class", "2", "6"}},
		{"last return only", []string{"-last_only"}},
		{"first return only", []string{"-first_only"}},
		{"all points", nil},
		{"#", nil},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			args := hostArgs()
			args[8] = tt.value

			o, err := ParsePositional(args)
			require.NoError(t, err)
			got := BuildArgs(o)[2:]
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
			key := fmt.Sprint(got)
			assert.False(t, seen[key], "selection %q maps to an outcome already used", tt.value)
			seen[key] = true
		})
	}
}

func TestParsePositional_OutputsAndSwitches(t *testing.T) {
	args := hostArgs()
	args[9] = "true"
	args[10] = "true"
	args[11] = "tif"
	args[12] = "out.tif"
	args[13] = `D:\rasters`
	args[14] = "_dsm"
	args[15] = "true"

	o, err := ParsePositional(args)
	require.NoError(t, err)

	want := []string{
		"-i", "flight.las", "-use_bb", "-use_tile_bb", "-otif",
		"-o", "out.tif", "-odir", `D:\rasters`, "-odix", "_dsm", "-v",
	}
	assert.Equal(t, want, BuildArgs(o))
}

func TestParsePositional_SwitchesNeedLiteralTrue(t *testing.T) {
	args := hostArgs()
	args[9] = "TRUE"
	args[10] = "yes"
	args[15] = "1"

	o, err := ParsePositional(args)
	require.NoError(t, err)
	assert.False(t, o.UseBB)
	assert.False(t, o.UseTileBB)
	assert.False(t, o.Verbose)
}
