package ir

// Version constants stamped on every run.
const (
	// IRVersion is the record schema version.
	IRVersion = "1"

	// ArcsVersion is the evaluator version.
	ArcsVersion = "0.1.0"
)
