package flags

import (
	"errors"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/dlist/config"
)

func TestParseArgs(t *testing.T) {
	f, err := ParseArgs([]string{"dlist", "-trace", "-width", "40", "scenario.toml"})
	assert.NilError(t, err)
	assert.DeepEqual(t, &Flags{ConfigPath: "scenario.toml", Trace: true, Width: 40}, f)

	f, err = ParseArgs([]string{"dlist", "-C", "a.yaml", "-V", "-no-color", "-validate", "step"})
	assert.NilError(t, err)
	assert.DeepEqual(t, &Flags{ConfigPath: "a.yaml", Verbose: true, NoColor: true, Validate: "step"}, f)

	_, err = ParseArgs([]string{"dlist", "-trace"})
	assert.Assert(t, errors.Is(err, ErrMissingScenario))

	_, err = ParseArgs([]string{"dlist", "-width", "-3", "x.toml"})
	assert.Check(t, is.ErrorContains(err, "invalid width"))

	_, err = ParseArgs([]string{"dlist", "-bogus", "x.toml"})
	assert.Assert(t, err != nil)
}

func TestMergeFlagsAndScenario(t *testing.T) {
	s := &config.Scenario{Validate: config.ValidateEnd}
	assert.NilError(t, mergeFlagsAndScenario(&Flags{}, s))
	assert.DeepEqual(t, &config.Scenario{Validate: config.ValidateEnd}, s)

	assert.NilError(t, mergeFlagsAndScenario(&Flags{Validate: "step", Trace: true, Render: true}, s))
	assert.DeepEqual(t, &config.Scenario{Validate: config.ValidateStep, Trace: true, Render: true}, s)

	err := mergeFlagsAndScenario(&Flags{Validate: "always"}, s)
	assert.Check(t, is.ErrorContains(err, "invalid -validate"))
}

func TestLoadScenarioFromFlags(t *testing.T) {
	s, err := LoadScenarioFromFlags(&Flags{ConfigPath: "../config/testdata/hello.toml", Validate: "never", Render: true})
	assert.NilError(t, err)
	assert.Equal(t, "hello world", s.Name)
	assert.Equal(t, config.ValidateNever, s.Validate)
	assert.Check(t, s.Render)
	assert.Equal(t, 5, len(s.Steps))
}
