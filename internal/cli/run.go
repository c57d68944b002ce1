package cli

import (
	"fmt"
	"os"

	"github.com/runoshun/lasgrid-shim/internal/domain"
	"github.com/runoshun/lasgrid-shim/internal/infra/jobfile"
	"github.com/runoshun/lasgrid-shim/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command, the entry point used by the toolbox.
func newRunCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run INPUT STEP ATTRIBUTE OPERATION FILL COLOR MIN MAX SELECTION USE_BB USE_TILE_BB FORMAT OUTPUT ODIR ODIX VERBOSE",
		Short: "Run lasgrid with toolbox positional parameters",
		Long: `Run lasgrid with the 16 positional parameters passed by the GIS toolbox.

"#" marks a parameter that was left empty. Parameters equal to lasgrid's
defaults (step 1, elevation, lowest, fill 0) add no flag.

COLOR is "gray ramp", "false colors" or anything else for no color.
SELECTION is "ground points only", "ground and keypoints",
"ground and buildings", "last return only", "first return only" or
anything else for all points. USE_BB, USE_TILE_BB and VERBOSE are
enabled by the literal value "true". All other values are passed to
lasgrid unchanged.`,
		// The argument count is checked by the use case so that the toolbox sees the error.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, g, usecase.RunGridInput{Positional: args, FromHost: true})
		},
	}
	// Toolbox values never carry flags; keep everything after the first value positional.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// newGridCommand creates the grid command, which takes named flags instead of positions.
func newGridCommand(g *globalFlags) *cobra.Command {
	var (
		opts      domain.GridOptions
		attribute string
		operation string
		color     string
		selection string
		colorMin  string
		colorMax  string
		saveJob   string
	)

	cmd := &cobra.Command{
		Use:   "grid --input FILE [flags]",
		Short: "Run lasgrid with named options",
		Example: `  lasgrid-shim grid -i flight.laz --step 2 --attribute intensity --operation highest \
      --selection ground --use-bb --format tif`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			opts.Attribute = domain.Attribute(attribute)
			opts.Operation = domain.Operation(operation)
			if opts.Color, err = domain.ParseColorMode(color); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			if opts.Selection, err = domain.ParsePointSelection(selection); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			if colorMin != "" || colorMax != "" {
				if opts.Color == domain.ColorNone {
					return &ExitError{Code: 1, Err: fmt.Errorf("%w: --min/--max require --color", domain.ErrInvalidArgument)}
				}
				opts.ColorRange = &domain.ColorRange{Min: colorMin, Max: colorMax}
			}

			if saveJob != "" {
				if err := saveJobFile(saveJob, opts); err != nil {
					return &ExitError{Code: 1, Err: err}
				}
			}
			return runGrid(cmd, g, usecase.RunGridInput{Options: opts})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Input, "input", "i", "", "LiDAR input file or wildcard (required)")
	f.StringVar(&opts.Step, "step", "", "Grid step size (default 1)")
	f.StringVar(&attribute, "attribute", "", "Attribute to raster, e.g. elevation, intensity, rgb (default elevation)")
	f.StringVar(&operation, "operation", "", "Cell operation, e.g. lowest, highest, average (default lowest)")
	f.StringVar(&opts.Fill, "fill", "", "Fill empty pixels up to this many pixels away")
	f.StringVar(&color, "color", "", "Color output: none, gray or false")
	f.StringVar(&colorMin, "min", "", "Value mapped to the start of the color ramp")
	f.StringVar(&colorMax, "max", "", "Value mapped to the end of the color ramp")
	f.StringVar(&selection, "selection", "", "Points to use: all, ground, ground-keypoints, ground-buildings, last, first")
	f.BoolVar(&opts.UseBB, "use-bb", false, "Raster the bounding box of the input")
	f.BoolVar(&opts.UseTileBB, "use-tile-bb", false, "Raster the tile bounding box of the input")
	f.StringVar(&opts.OutputFormat, "format", "", "Output format, e.g. asc, bil, tif, png")
	f.StringVarP(&opts.OutputFile, "output", "o", "", "Output file name")
	f.StringVar(&opts.OutputDir, "odir", "", "Output directory")
	f.StringVar(&opts.OutputSuffix, "odix", "", "Suffix appended to output file names")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Make lasgrid verbose")
	f.StringVar(&saveJob, "save-job", "", "Also write the options to this YAML job file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// newJobCommand creates the job command, which reads the options from a YAML file.
func newJobCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "job FILE",
		Short: "Run lasgrid with options from a YAML job file",
		Long: `Run lasgrid with options read from a YAML job file.

Keys match the grid command's flags (input, step, attribute, operation,
fill, color, color_range, selection, use_bb, use_tile_bb, output_format,
output_file, output_dir, output_suffix, verbose). Unknown keys are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := jobfile.Load(args[0])
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			return runGrid(cmd, g, usecase.RunGridInput{Options: opts})
		},
	}
}

// runGrid runs the RunGrid use case with in, completed from the global flags.
func runGrid(cmd *cobra.Command, g *globalFlags, in usecase.RunGridInput) error {
	anchor, err := resolveAnchor(g)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	in.Anchor = anchor
	in.DryRun = g.dryRun

	c, err := openContainer(cmd, g)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	_, err = c.RunGridUseCase().Execute(cmd.Context(), in)
	if err != nil {
		return runFailure(err)
	}
	return nil
}

func saveJobFile(path string, opts domain.GridOptions) error {
	data, err := jobfile.Encode(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write job file: %w", err)
	}
	return nil
}
