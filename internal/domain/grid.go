package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute selects which point attribute is rasterized.
type Attribute string

// Known attributes. Others are passed through to lasgrid unchanged.
const (
	AttributeElevation Attribute = "elevation"
	AttributeIntensity Attribute = "intensity"
	AttributeRGB       Attribute = "rgb"
	AttributeScanAngle Attribute = "scan_angle"
	AttributeUserData  Attribute = "user_data"
)

// Operation selects how the points falling into one cell are combined.
type Operation string

// Known operations. Others are passed through to lasgrid unchanged.
const (
	OperationLowest  Operation = "lowest"
	OperationHighest Operation = "highest"
	OperationAverage Operation = "average"
	OperationStddev  Operation = "stddev"
)

// ColorMode selects the color output of the raster.
type ColorMode int

// Color modes.
const (
	ColorNone ColorMode = iota
	ColorGray
	ColorFalse
)

var colorModeNames = map[ColorMode]string{
	ColorNone:  "none",
	ColorGray:  "gray",
	ColorFalse: "false",
}

func (c ColorMode) String() string {
	if s, ok := colorModeNames[c]; ok {
		return s
	}
	return "none"
}

// ParseColorMode parses a color mode name as used by flags and job files.
func ParseColorMode(s string) (ColorMode, error) {
	for mode, name := range colorModeNames {
		if name == s {
			return mode, nil
		}
	}
	if s == "" {
		return ColorNone, nil
	}
	return ColorNone, fmt.Errorf("%w: unknown color mode %q", ErrInvalidArgument, s)
}

// PointSelection selects which points take part in the rasterization.
type PointSelection int

// Point selections.
const (
	SelectAll PointSelection = iota
	SelectGround
	SelectGroundKeypoints
	SelectGroundBuildings
	SelectLastReturn
	SelectFirstReturn
)

var selectionNames = map[PointSelection]string{
	SelectAll:             "all",
	SelectGround:          "ground",
	SelectGroundKeypoints: "ground-keypoints",
	SelectGroundBuildings: "ground-buildings",
	SelectLastReturn:      "last",
	SelectFirstReturn:     "first",
}

func (p PointSelection) String() string {
	if s, ok := selectionNames[p]; ok {
		return s
	}
	return "all"
}

// ParsePointSelection parses a selection name as used by flags and job files.
func ParsePointSelection(s string) (PointSelection, error) {
	for sel, name := range selectionNames {
		if name == s {
			return sel, nil
		}
	}
	if s == "" {
		return SelectAll, nil
	}
	return SelectAll, fmt.Errorf("%w: unknown point selection %q", ErrInvalidArgument, s)
}

// args returns the lasgrid tokens for the selection.
func (p PointSelection) args() []string {
	switch p {
	case SelectGround:
		return []string{"-keep_class", "2"}
	case SelectGroundKeypoints:
		return []string{"-keep_class", "2", "8"}
	case SelectGroundBuildings:
		return []string{"-keep_class", "2", "6"}
	case SelectLastReturn:
		return []string{"-last_only"}
	case SelectFirstReturn:
		return []string{"-first_only"}
	default:
		return nil
	}
}

// ColorRange is the value range mapped onto the color ramp.
type ColorRange struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

// GridOptions describes one lasgrid run.
// Every optional field is absent at its zero value. Values are passed to
// lasgrid as given; only Validate interprets them.
// Fields are ordered to minimize memory padding.
type GridOptions struct {
	ColorRange   *ColorRange    `yaml:"color_range,omitempty"`
	Input        string         `yaml:"input"`
	Step         string         `yaml:"step,omitempty"`
	Attribute    Attribute      `yaml:"attribute,omitempty"`
	Operation    Operation      `yaml:"operation,omitempty"`
	Fill         string         `yaml:"fill,omitempty"`
	OutputFormat string         `yaml:"output_format,omitempty"`
	OutputFile   string         `yaml:"output_file,omitempty"`
	OutputDir    string         `yaml:"output_dir,omitempty"`
	OutputSuffix string         `yaml:"output_suffix,omitempty"`
	Color        ColorMode      `yaml:"-"`
	Selection    PointSelection `yaml:"-"`
	UseBB        bool           `yaml:"use_bb,omitempty"`
	UseTileBB    bool           `yaml:"use_tile_bb,omitempty"`
	Verbose      bool           `yaml:"verbose,omitempty"`
}

// Validate checks named options (grid flags and job files) for values lasgrid
// cannot accept. Host positional parameters are not validated.
func (o GridOptions) Validate() error {
	if strings.TrimSpace(o.Input) == "" {
		return fmt.Errorf("%w: input is required", ErrInvalidArgument)
	}
	if o.Fill != "" {
		if n, err := strconv.Atoi(o.Fill); err != nil || n < 0 {
			return fmt.Errorf("%w: fill must be a non-negative integer (got %q)", ErrInvalidArgument, o.Fill)
		}
	}
	if o.Step != "" {
		if v, err := strconv.ParseFloat(o.Step, 64); err != nil || v <= 0 {
			return fmt.Errorf("%w: step must be a positive number (got %q)", ErrInvalidArgument, o.Step)
		}
	}
	if o.ColorRange != nil && (o.ColorRange.Min == "" || o.ColorRange.Max == "") {
		return fmt.Errorf("%w: color range needs both min and max", ErrInvalidArgument)
	}
	for name, v := range map[string]string{
		"attribute":     string(o.Attribute),
		"operation":     string(o.Operation),
		"output format": o.OutputFormat,
	} {
		if v == "" {
			continue
		}
		if strings.TrimSpace(v) != v || strings.HasPrefix(v, "-") || strings.ContainsAny(v, " \t") {
			return fmt.Errorf("%w: invalid %s %q", ErrInvalidArgument, name, v)
		}
	}
	return nil
}

// BuildArgs returns the lasgrid arguments for the options in parameter order.
// A value equal to lasgrid's default adds no flag.
func BuildArgs(o GridOptions) []string {
	args := make([]string, 0, 24)
	args = append(args, "-i", o.Input)

	if o.Step != "" && o.Step != "1" {
		args = append(args, "-step", o.Step)
	}
	if o.Attribute != "" && o.Attribute != AttributeElevation {
		args = append(args, "-"+string(o.Attribute))
	}
	if o.Operation != "" && o.Operation != OperationLowest {
		args = append(args, "-"+string(o.Operation))
	}
	if o.Fill != "" && o.Fill != "0" {
		args = append(args, "-fill", o.Fill)
	}

	switch o.Color {
	case ColorGray:
		args = append(args, "-gray")
	case ColorFalse:
		args = append(args, "-false")
	}
	if o.Color != ColorNone && o.ColorRange != nil {
		args = append(args, "-set_min_max", o.ColorRange.Min, o.ColorRange.Max)
	}

	args = append(args, o.Selection.args()...)

	if o.UseBB {
		args = append(args, "-use_bb")
	}
	if o.UseTileBB {
		args = append(args, "-use_tile_bb")
	}

	if o.OutputFormat != "" {
		args = append(args, "-o"+o.OutputFormat)
	}
	if o.OutputFile != "" {
		args = append(args, "-o", o.OutputFile)
	}
	if o.OutputDir != "" {
		args = append(args, "-odir", o.OutputDir)
	}
	if o.OutputSuffix != "" {
		args = append(args, "-odix", o.OutputSuffix)
	}
	if o.Verbose {
		args = append(args, "-v")
	}

	return args
}

// NewGridCommand creates the lasgrid command for the given executable and options.
func NewGridCommand(exe string, o GridOptions) *ExecCommand {
	return &ExecCommand{
		Program: exe,
		Args:    BuildArgs(o),
	}
}
