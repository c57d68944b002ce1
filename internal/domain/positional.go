package domain

import "fmt"

// Sentinel is the host's marker for a parameter that was left empty.
const Sentinel = "#"

// PositionalArgCount is the number of positional parameters the host passes.
const PositionalArgCount = 16

// Host labels for the color and point selection parameters.
var (
	hostColorModes = map[string]ColorMode{
		"gray ramp":    ColorGray,
		"false colors": ColorFalse,
	}
	hostSelections = map[string]PointSelection{
		"ground points only":   SelectGround,
		"ground and keypoints": SelectGroundKeypoints,
		"ground and buildings": SelectGroundBuildings,
		"last return only":     SelectLastReturn,
		"first return only":    SelectFirstReturn,
	}
)

// ParsePositional converts the host's positional parameters into GridOptions.
// Values are kept verbatim; only defaults and the sentinel are dropped.
//
// The parameters are, in order: input, step, attribute, operation, fill,
// color mode, color min, color max, point selection, use bounding box,
// use tile bounding box, output format, output file, output directory,
// output suffix and verbose.
func ParsePositional(args []string) (GridOptions, error) {
	if len(args) != PositionalArgCount {
		return GridOptions{}, fmt.Errorf("%w: expected %d positional arguments, got %d",
			ErrInvalidArgument, PositionalArgCount, len(args))
	}

	o := GridOptions{
		Input:     args[0],
		Attribute: Attribute(args[2]),
		Operation: Operation(args[3]),
		Color:     hostColorModes[args[5]],
		Selection: hostSelections[args[8]],
		UseBB:     args[9] == "true",
		UseTileBB: args[10] == "true",
		Verbose:   args[PositionalArgCount-1] == "true",
	}

	if args[1] != "1" {
		o.Step = args[1]
	}

	if args[4] != "0" {
		o.Fill = args[4]
	}

	if o.Color != ColorNone && args[6] != Sentinel && args[7] != Sentinel {
		o.ColorRange = &ColorRange{Min: args[6], Max: args[7]}
	}

	o.OutputFormat = optional(args[11])
	o.OutputFile = optional(args[12])
	o.OutputDir = optional(args[13])
	o.OutputSuffix = optional(args[14])

	return o, nil
}

func optional(s string) string {
	if s == Sentinel {
		return ""
	}
	return s
}
