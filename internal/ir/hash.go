package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash domains. The version suffix leaves room for a future algorithm change
// without colliding with existing records.
const (
	DomainEvaluation = "arcs/evaluation/v1"
	DomainResult     = "arcs/result/v1"
)

// hashWithDomain computes SHA256(domain || 0x00 || data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// EvaluationID computes the content-addressed ID of one evaluation. The same
// run, operation, arguments and sequence number always produce the same ID.
func EvaluationID(runID, op string, args IRObject, seq int64) (string, error) {
	obj := IRObject{
		"run_id": IRString(runID),
		"op":     IRString(op),
		"args":   args,
		"seq":    IRInt(seq),
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("EvaluationID: %w", err)
	}
	return hashWithDomain(DomainEvaluation, canonical), nil
}

// MustEvaluationID panics on error. Test use only.
func MustEvaluationID(runID, op string, args IRObject, seq int64) string {
	id, err := EvaluationID(runID, op, args, seq)
	if err != nil {
		panic(err)
	}
	return id
}

// ResultHash hashes an operation result. Replay compares these.
func ResultHash(result IRObject) (string, error) {
	canonical, err := MarshalCanonical(result)
	if err != nil {
		return "", fmt.Errorf("ResultHash: %w", err)
	}
	return hashWithDomain(DomainResult, canonical), nil
}

// MustResultHash panics on error. Test use only.
func MustResultHash(result IRObject) string {
	h, err := ResultHash(result)
	if err != nil {
		panic(err)
	}
	return h
}
