// Package flags provides support for dlist CLI args
package flags

import (
	"errors"
	"flag"
	"fmt"

	"hop.computer/dlist/config"
)

// ErrMissingScenario is returned when no scenario file is given.
var ErrMissingScenario = errors.New("missing scenario file: dlist [flags] <scenario.toml|scenario.yaml>")

// Flags holds CLI arguments for dlist. Settings given on the command line
// override the ones in the scenario file.
type Flags struct {
	ConfigPath string

	Validate string // overrides the scenario validate setting when non-empty
	Trace    bool   // log every structural change at trace level
	Render   bool   // draw the list after the run
	NoColor  bool   // disable colored log output
	Width    int    // render width; 0 asks the terminal
	Verbose  bool   // show debug logging
}

// defineFlags calls fs.StringVar etc. for every field of Flags.
func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "C", "", "path to the scenario file (may also be given as the first argument)")
	fs.StringVar(&f.Validate, "validate", "", "when to validate the list: never, step or end")
	fs.BoolVar(&f.Trace, "trace", false, "log every structural change of the list")
	fs.BoolVar(&f.Render, "render", false, "draw the list after the run")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable colored output")
	fs.IntVar(&f.Width, "width", 0, "render width (defaults to the terminal width)")
	fs.BoolVar(&f.Verbose, "V", false, "display debug logging")
}

// ParseArgs defines and parses the flags from the command line. args[0] is
// the program name.
func ParseArgs(args []string) (*Flags, error) {
	f := new(Flags)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	defineFlags(fs, f)
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if f.ConfigPath == "" {
		if fs.NArg() < 1 {
			return nil, ErrMissingScenario
		}
		f.ConfigPath = fs.Arg(0)
	}
	if f.Width < 0 {
		return nil, fmt.Errorf("invalid width %d", f.Width)
	}
	return f, nil
}

func mergeFlagsAndScenario(f *Flags, s *config.Scenario) error {
	switch v := config.Validation(f.Validate); v {
	case "":
	case config.ValidateNever, config.ValidateStep, config.ValidateEnd:
		s.Validate = v
	default:
		return fmt.Errorf("invalid -validate %q", f.Validate)
	}
	if f.Trace {
		s.Trace = true
	}
	if f.Render {
		s.Render = true
	}
	return nil
}

// LoadScenarioFromFlags loads the scenario named by f and applies the command
// line overrides.
func LoadScenarioFromFlags(f *Flags) (*config.Scenario, error) {
	s, err := config.LoadScenarioFromFile(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := mergeFlagsAndScenario(f, s); err != nil {
		return nil, err
	}
	return s, nil
}
