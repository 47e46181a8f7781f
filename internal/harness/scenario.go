package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/arcs/internal/catalog"
	"github.com/roach88/arcs/internal/eval"
)

// Scenario is one conformance scenario.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// RunID fixes the run id. Defaults to testutil.DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Intervals are scenario-local definitions. They shadow catalog names.
	Intervals map[string]catalog.Def `yaml:"intervals,omitempty"`

	// Steps are evaluated in order.
	Steps []Step `yaml:"steps"`

	// Assertions are checked after every step has run.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step evaluates one operation.
type Step struct {
	// ID names the step for assertions.
	ID string `yaml:"id,omitempty"`

	// Op is the operation's wire name.
	Op string `yaml:"op"`

	// Args are resolved to IR before evaluation.
	Args map[string]any `yaml:"args"`

	// Expect, when set, must match the step's outcome exactly.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect describes an expected outcome. Exactly one field is set.
type Expect struct {
	Interval any    `yaml:"interval,omitempty"`
	Value    any    `yaml:"value,omitempty"`
	Bool     *bool  `yaml:"bool,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

func (e *Expect) count() int {
	n := 0
	if e.Interval != nil {
		n++
	}
	if e.Value != nil {
		n++
	}
	if e.Bool != nil {
		n++
	}
	if e.Error != "" {
		n++
	}
	return n
}

// Assertion checks a property of the whole run.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Step is the step checked by result_approx.
	Step string `yaml:"step,omitempty"`

	// Steps are the steps compared by result_equals.
	Steps []string `yaml:"steps,omitempty"`

	// Expect is the approximate result for result_approx.
	Expect *Expect `yaml:"expect,omitempty"`

	// MaxError bounds result_approx. Defaults to s1.DefaultMaxError.
	MaxError *float64 `yaml:"max_error,omitempty"`

	// Op and Count are used by op_count.
	Op    string `yaml:"op,omitempty"`
	Count *int   `yaml:"count,omitempty"`
}

// Assertion types.
const (
	AssertResultEquals = "result_equals"
	AssertResultApprox = "result_approx"
	AssertOpCount      = "op_count"
)

// LoadScenario reads and validates a scenario file. Unknown YAML fields are
// rejected so typos like "assertion:" fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// FindScenarios returns the .yaml and .yml files directly under dir whose
// base name matches pattern (a filepath.Match glob, "" for all), sorted.
func FindScenarios(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if pattern != "" {
			ok, err := filepath.Match(pattern, e.Name())
			if err != nil {
				return nil, fmt.Errorf("bad filter %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	ids := make(map[string]bool)
	for i, step := range s.Steps {
		if step.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		if step.Expect != nil {
			if step.Expect.count() != 1 {
				return fmt.Errorf("steps[%d].expect: exactly one of interval, value, bool, error is required", i)
			}
		}
		if _, ok := eval.Lookup(step.Op); !ok && (step.Expect == nil || step.Expect.Error == "") {
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		if step.ID != "" {
			if ids[step.ID] {
				return fmt.Errorf("steps[%d]: duplicate id %q", i, step.ID)
			}
			ids[step.ID] = true
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a, ids); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion, ids map[string]bool) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertResultEquals:
		if len(a.Steps) < 2 {
			return fmt.Errorf("assertions[%d]: result_equals needs at least two steps", index)
		}
		for _, id := range a.Steps {
			if !ids[id] {
				return fmt.Errorf("assertions[%d]: unknown step %q", index, id)
			}
		}
	case AssertResultApprox:
		if !ids[a.Step] {
			return fmt.Errorf("assertions[%d]: unknown step %q", index, a.Step)
		}
		if a.Expect == nil || a.Expect.count() != 1 || (a.Expect.Interval == nil && a.Expect.Value == nil) {
			return fmt.Errorf("assertions[%d]: result_approx needs expect with interval or value", index)
		}
		if a.MaxError != nil && *a.MaxError < 0 {
			return fmt.Errorf("assertions[%d]: max_error must be non-negative", index)
		}
	case AssertOpCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for op_count", index)
		}
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for op_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
