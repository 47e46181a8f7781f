package ir

// Run groups the evaluations of one scenario or one interactive session.
type Run struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IRVersion   string `json:"ir_version"`
	ArcsVersion string `json:"arcs_version"`
}

// Evaluation records one operation applied to its arguments. ID is
// EvaluationID(RunID, Op, Args, Seq) and ResultHash is ResultHash(Result).
type Evaluation struct {
	ID         string   `json:"id"`
	RunID      string   `json:"run_id"`
	Seq        int64    `json:"seq"`
	Op         string   `json:"op"`
	Args       IRObject `json:"args"`
	Result     IRObject `json:"result"`
	ResultHash string   `json:"result_hash"`
}

// NewEvaluation fills in the ID and result hash.
func NewEvaluation(runID string, seq int64, op string, args, result IRObject) (Evaluation, error) {
	id, err := EvaluationID(runID, op, args, seq)
	if err != nil {
		return Evaluation{}, err
	}
	rh, err := ResultHash(result)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		ID:         id,
		RunID:      runID,
		Seq:        seq,
		Op:         op,
		Args:       args,
		Result:     result,
		ResultHash: rh,
	}, nil
}
