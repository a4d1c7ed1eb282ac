// Package config contains structures for parsing dlist scenario files. A
// scenario is a named, ordered script of list operations together with the
// settings used to run it. Scenarios are written in TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown scenario format")

// ErrNoSteps is returned for scenarios without any step.
var ErrNoSteps = errors.New("scenario has no steps")

// Format is the encoding of a scenario file.
type Format int

// Supported formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Validation controls when a scenario run calls List.Validate.
type Validation string

// Validation modes. The zero value behaves as ValidateEnd.
const (
	ValidateNever Validation = "never"
	ValidateStep  Validation = "step"
	ValidateEnd   Validation = "end"
)

// Step is a single list operation. Node names the handle the step creates or
// acts on, Target names the handle used by before and after.
type Step struct {
	Op      string `toml:"op" yaml:"op"`
	Value   string `toml:"value" yaml:"value"`
	Node    string `toml:"node" yaml:"node"`
	Target  string `toml:"target" yaml:"target"`
	Reverse bool   `toml:"reverse" yaml:"reverse"`
}

// Scenario represents a parsed scenario file.
type Scenario struct {
	Name     string     `toml:"name" yaml:"name"`
	Validate Validation `toml:"validate" yaml:"validate"`
	Trace    bool       `toml:"trace" yaml:"trace"`
	Render   bool       `toml:"render" yaml:"render"`
	Steps    []Step     `toml:"step" yaml:"steps"`
}

// ParseScenario decodes a scenario from r. Unknown keys are errors.
func ParseScenario(r io.Reader, format Format) (*Scenario, error) {
	s := new(Scenario)
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown setting %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoSteps
			}
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScenarioFromFile reads and parses the scenario at path. The format is
// chosen from the extension.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScenario(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("error in scenario %q: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

func (s *Scenario) check() error {
	switch s.Validate {
	case "":
		s.Validate = ValidateEnd
	case ValidateNever, ValidateStep, ValidateEnd:
	default:
		return fmt.Errorf("invalid validate setting %q", s.Validate)
	}
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	for i, step := range s.Steps {
		if step.Op == "" {
			return fmt.Errorf("step %d: missing op", i+1)
		}
	}
	return nil
}
