// Package scenario runs scripted list operations against a list.List and
// records what each step did.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"hop.computer/dlist/config"
	"hop.computer/dlist/pkg/list"
)

// ErrUnknownOp is returned for steps whose op is not supported.
var ErrUnknownOp = errors.New("unknown op")

// ErrUnknownNode is returned when a step refers to a handle name that was
// never bound.
var ErrUnknownNode = errors.New("unknown node")

// ErrListDestroyed is returned for steps that add to the list after a
// destroy-list step.
var ErrListDestroyed = errors.New("list was destroyed")

// StepResult is the outcome of a single step.
type StepResult struct {
	Index  int
	Op     string
	Output []string // values produced by the step, if any
	Len    int      // list length after the step
}

func (r StepResult) String() string {
	s := fmt.Sprintf("%3d %-9s len=%d", r.Index, r.Op, r.Len)
	if r.Output != nil {
		s += " " + quote(r.Output)
	}
	return s
}

// Report is the outcome of a whole run.
type Report struct {
	Name  string
	Steps []StepResult
	Final []string
}

// Runner executes a scenario. It owns a List of strings and the named Node
// handles the steps bind.
type Runner struct {
	scenario *config.Scenario
	list     *list.List[string]
	nodes    map[string]*list.Node[string]
	log      *logrus.Entry

	destroyed bool
}

type stepFunc func(r *Runner, step config.Step) ([]string, error)

var ops = map[string]stepFunc{
	"push":         (*Runner).push,
	"pop":          (*Runner).pop,
	"unshift":      (*Runner).unshift,
	"shift":        (*Runner).shift,
	"new":          (*Runner).newNode,
	"get":          (*Runner).get,
	"set":          (*Runner).set,
	"before":       (*Runner).before,
	"after":        (*Runner).after,
	"remove":       (*Runner).remove,
	"destroy":      (*Runner).destroy,
	"validate":     (*Runner).validate,
	"forward":      (*Runner).forward,
	"backward":     (*Runner).backward,
	"either":       (*Runner).either,
	"turn":         (*Runner).turn,
	"destroy-list": (*Runner).destroyList,
}

// Ops returns the names of the supported operations, sorted.
func Ops() []string {
	names := maps.Keys(ops)
	slices.Sort(names)
	return names
}

// NewRunner returns a Runner for s logging to log. If the scenario enables
// tracing, structural changes are logged to log at trace level.
func NewRunner(s *config.Scenario, log *logrus.Entry) *Runner {
	r := &Runner{
		scenario: s,
		nodes:    make(map[string]*list.Node[string]),
		log:      log.WithField("scenario", s.Name),
	}
	var opts []list.Option[string]
	if s.Trace {
		opts = append(opts, list.WithTracer[string](list.NewLogTracer[string](r.log)))
	}
	r.list = list.New(opts...)
	return r
}

// List returns the list the Runner operates on.
func (r *Runner) List() *list.List[string] {
	return r.list
}

// Run executes every step in order. It stops at the first failing step and
// returns the report up to that point together with the error.
func (r *Runner) Run() (*Report, error) {
	report := &Report{Name: r.scenario.Name}
	for i, step := range r.scenario.Steps {
		f, ok := ops[step.Op]
		if !ok {
			return report, fmt.Errorf("step %d: %w %q (known ops: %s)", i+1, ErrUnknownOp, step.Op, strings.Join(Ops(), ", "))
		}
		out, err := f(r, step)
		if err != nil {
			return report, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if r.scenario.Validate == config.ValidateStep && !r.destroyed {
			if err := r.list.Validate(false); err != nil {
				return report, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
			}
		}
		res := StepResult{Index: i + 1, Op: step.Op, Output: out, Len: r.list.Len()}
		r.log.WithFields(logrus.Fields{
			"step": res.Index,
			"op":   res.Op,
			"len":  res.Len,
		}).Debug("step done")
		report.Steps = append(report.Steps, res)
	}
	if r.scenario.Validate != config.ValidateNever {
		if !r.destroyed {
			if err := r.list.Validate(r.scenario.Trace); err != nil {
				return report, err
			}
		}
	}
	report.Final = collect(r.list.Forward())
	return report, nil
}

func collect(s list.Seq[string]) []string {
	out := []string{}
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

func quote(values []string) string {
	q := make([]string, len(values))
	for i, v := range values {
		q[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(q, " ") + "]"
}
