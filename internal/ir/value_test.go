package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIRValueSealed(t *testing.T) {
	var _ IRValue = IRString("test")
	var _ IRValue = IRInt(42)
	var _ IRValue = IRBool(true)
	var _ IRValue = IRArray{IRString("a"), IRInt(1)}
	var _ IRValue = IRObject{"key": IRString("value")}
}

func TestIRObjectSortedKeys(t *testing.T) {
	obj := IRObject{
		"p2":     IRInt(1),
		"a":      IRInt(2),
		"margin": IRInt(3),
		"A":      IRInt(4),
		"p1":     IRInt(5),
	}
	assert.Equal(t, []string{"A", "a", "margin", "p1", "p2"}, obj.SortedKeys())
	assert.Empty(t, IRObject{}.SortedKeys())
}

func TestCompareKeysRFC8785(t *testing.T) {
	assert.Negative(t, compareKeysRFC8785("a", "b"))
	assert.Positive(t, compareKeysRFC8785("b", "a"))
	assert.Zero(t, compareKeysRFC8785("lo", "lo"))
	assert.Negative(t, compareKeysRFC8785("hi", "hi2"))
	assert.Negative(t, compareKeysRFC8785("\U00010000", "\uE000"))
}

func TestIRObjectMarshalJSONIsCanonical(t *testing.T) {
	obj := IRObject{"z": IRBool(true), "a": IRArray{IRInt(1)}, "name": IRString("q1")}
	b, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1],"name":"q1","z":true}`, string(b))

	canonical, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, canonical, b)
}

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON([]byte(`{"a":{"lo":"0","hi":"pi/2"},"n":3,"ok":true,"xs":["x",1]}`))
	require.NoError(t, err)

	want := IRObject{
		"a":  IRObject{"lo": IRString("0"), "hi": IRString("pi/2")},
		"n":  IRInt(3),
		"ok": IRBool(true),
		"xs": IRArray{IRString("x"), IRInt(1)},
	}
	assert.Equal(t, want, v)
}

func TestParseJSONRejectsFloats(t *testing.T) {
	for _, input := range []string{`1.5`, `{"p":0.5}`, `[1e3]`, `{"a":{"lo":-1E-2}}`} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseJSON([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParseJSONRejectsNull(t *testing.T) {
	for _, input := range []string{`null`, `{"a":null}`, `[null]`} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseJSON([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestIRObjectUnmarshalJSON(t *testing.T) {
	var obj IRObject
	require.NoError(t, json.Unmarshal([]byte(`{"p":"1"}`), &obj))
	assert.Equal(t, IRObject{"p": IRString("1")}, obj)

	assert.Error(t, json.Unmarshal([]byte(`["p"]`), &obj))
}

func TestFromGo(t *testing.T) {
	v, err := FromGo(map[string]any{
		"p":     0.5,
		"n":     7,
		"flag":  false,
		"name":  "quad1",
		"items": []any{int64(1), "pi"},
	})
	require.NoError(t, err)
	assert.Equal(t, IRObject{
		"p":     IRString("0.5"),
		"n":     IRInt(7),
		"flag":  IRBool(false),
		"name":  IRString("quad1"),
		"items": IRArray{IRInt(1), IRString("pi")},
	}, v)

	_, err = FromGo(map[string]any{"x": nil})
	assert.Error(t, err)

	_, err = FromGo(struct{}{})
	assert.Error(t, err)
}
