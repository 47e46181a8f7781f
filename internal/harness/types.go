package harness

import "github.com/roach88/arcs/internal/ir"

// StepOutcome is what one step produced.
type StepOutcome struct {
	Index  int         `json:"index"`
	ID     string      `json:"id,omitempty"`
	Op     string      `json:"op"`
	Seq    int64       `json:"seq,omitempty"`
	Result ir.IRObject `json:"result,omitempty"`
	Hash   string      `json:"result_hash,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Scenario is the scenario name.
	Scenario string `json:"scenario"`

	// RunID is the run the evaluations were recorded under.
	RunID string `json:"run_id"`

	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Steps has one outcome per scenario step, in order.
	Steps []StepOutcome `json:"steps"`

	// Trace is the recorded evaluation log, read back from the store.
	Trace []ir.Evaluation `json:"trace"`

	// Errors lists every failed expectation and assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result.
func NewResult(scenario, runID string) *Result {
	return &Result{
		Scenario: scenario,
		RunID:    runID,
		Pass:     true,
		Steps:    []StepOutcome{},
		Trace:    []ir.Evaluation{},
		Errors:   []string{},
	}
}

// AddError records a failure.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// outcome returns the outcome of the step with the given id.
func (r *Result) outcome(id string) (StepOutcome, bool) {
	for _, o := range r.Steps {
		if o.ID == id {
			return o, true
		}
	}
	return StepOutcome{}, false
}
