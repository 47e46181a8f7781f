package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/arcs/internal/ir"
)

// marshalObject converts an IRObject to canonical JSON TEXT.
func marshalObject(what string, obj ir.IRObject) (string, error) {
	if obj == nil {
		obj = ir.IRObject{}
	}
	data, err := ir.MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", what, err)
	}
	return string(data), nil
}

// unmarshalObject parses stored JSON TEXT. Decoding goes through
// ir.IRObject.UnmarshalJSON, which keeps integers exact and rejects floats.
func unmarshalObject(what, data string) (ir.IRObject, error) {
	if data == "" || data == "{}" {
		return ir.IRObject{}, nil
	}
	var obj ir.IRObject
	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", what, err)
	}
	return obj, nil
}
