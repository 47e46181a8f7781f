package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
)

// IRValue is the closed set of values an evaluation record may hold:
// IRString, IRInt, IRBool, IRArray and IRObject. Angles travel as IRString
// (see Angle); there is no float member.
type IRValue interface {
	irValue()
}

type (
	IRString string
	IRInt    int64
	IRBool   bool
	IRArray  []IRValue
	IRObject map[string]IRValue
)

func (IRString) irValue() {}
func (IRInt) irValue()    {}
func (IRBool) irValue()   {}
func (IRArray) irValue()  {}
func (IRObject) irValue() {}

// SortedKeys returns the keys ordered by UTF-16 code units, the order
// canonical JSON requires. It differs from byte order for characters
// outside the BMP.
func (obj IRObject) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

func compareKeysRFC8785(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// MarshalJSON emits the canonical form, so an IRObject printed by the CLI
// is byte-for-byte what was hashed.
func (obj IRObject) MarshalJSON() ([]byte, error) {
	return MarshalCanonical(obj)
}

// UnmarshalJSON accepts a JSON object under the same rules as ParseJSON.
func (obj *IRObject) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	o, ok := v.(IRObject)
	if !ok {
		return fmt.Errorf("expected JSON object, got %T", v)
	}
	*obj = o
	return nil
}

// ParseJSON decodes a JSON document into an IRValue. Numbers must be
// integers and null is refused anywhere in the tree.
func ParseJSON(data []byte) (IRValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return FromGo(raw)
}

// FromGo converts a decoded JSON or YAML tree into an IRValue. A float64
// becomes an Angle string; a json.Number must be an integer.
func FromGo(v any) (IRValue, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is forbidden in IR")
	case IRValue:
		return val, nil
	case string:
		return IRString(val), nil
	case bool:
		return IRBool(val), nil
	case int:
		return IRInt(val), nil
	case int64:
		return IRInt(val), nil
	case float64:
		return Angle(val), nil
	case json.Number:
		return fromNumber(val)
	case []any:
		out := make(IRArray, 0, len(val))
		for i, elem := range val {
			conv, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			out = append(out, conv)
		}
		return out, nil
	case map[string]any:
		out := make(IRObject, len(val))
		for k, elem := range val {
			conv, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			out[k] = conv
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type: %T", v)
}

func fromNumber(n json.Number) (IRValue, error) {
	if strings.ContainsAny(string(n), ".eE") {
		return nil, fmt.Errorf("floats are forbidden in IR, send angles as strings: %s", n)
	}
	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("number out of int64 range: %s", n)
	}
	return IRInt(i), nil
}
