// Package jobfile reads lasgrid runs described in YAML.
//
// A job file names the same options as the grid command's flags:
//
//	input: flight.laz
//	step: "2"
//	attribute: intensity
//	color: gray
//	color_range: {min: "0", max: "255"}
//	selection: ground
//	output_dir: rasters
package jobfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/lasgrid-shim/internal/domain"
	"gopkg.in/yaml.v3"
)

// job is the YAML shape of domain.GridOptions.
// Enum fields are decoded by name.
type job struct {
	domain.GridOptions `yaml:",inline"`
	Color              string `yaml:"color,omitempty"`
	Selection          string `yaml:"selection,omitempty"`
}

// Load reads and decodes the job file at path.
func Load(path string) (domain.GridOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.GridOptions{}, fmt.Errorf("read job file: %w", err)
	}
	opts, err := Decode(data)
	if err != nil {
		return domain.GridOptions{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Decode decodes a single YAML job document. Unknown keys are rejected.
func Decode(data []byte) (domain.GridOptions, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var j job
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.GridOptions{}, fmt.Errorf("%w: empty job file", domain.ErrInvalidArgument)
		}
		return domain.GridOptions{}, fmt.Errorf("%w: decode job: %w", domain.ErrInvalidArgument, err)
	}

	opts := j.GridOptions

	color, err := domain.ParseColorMode(j.Color)
	if err != nil {
		return domain.GridOptions{}, err
	}
	opts.Color = color
	if opts.ColorRange != nil && color == domain.ColorNone {
		return domain.GridOptions{}, fmt.Errorf("%w: color_range requires color", domain.ErrInvalidArgument)
	}

	sel, err := domain.ParsePointSelection(j.Selection)
	if err != nil {
		return domain.GridOptions{}, err
	}
	opts.Selection = sel

	return opts, nil
}

// Encode renders opts as a YAML job document.
func Encode(opts domain.GridOptions) ([]byte, error) {
	j := job{GridOptions: opts}
	if opts.Color != domain.ColorNone {
		j.Color = opts.Color.String()
	}
	if opts.Selection != domain.SelectAll {
		j.Selection = opts.Selection.String()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&j); err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}
	return buf.Bytes(), nil
}
