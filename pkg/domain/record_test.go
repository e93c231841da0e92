package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_JSONPreservesUnknownFields(t *testing.T) {
	line := `{"index":"239","type":"exercise","todi_sep":"%L|H*||H%","todi":"%L H*  H%",` +
		`"exercise_id":"ex3b_2","uiting_extra":{"a":1},"score":4.5}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(line), &r))

	assert.Equal(t, "239", r.Index)
	assert.Equal(t, TypeExercise, r.Type)
	assert.Equal(t, []string{"%L", "H*", "", "H%"}, r.TodiTokens())
	assert.Equal(t, 4.5, r.Extra["score"])

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, line, string(out))
}

func TestDecodeRecord_WeakIndex(t *testing.T) {
	r, err := DecodeRecord(map[string]any{"index": float64(17), "type": "example"})
	require.NoError(t, err)
	assert.Equal(t, "17", r.Index)
	assert.Nil(t, r.Extra)
}

func TestDecodeRecord_Invalid(t *testing.T) {
	_, err := DecodeRecord(map[string]any{"words": []any{"a", "b"}})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	var r Record
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1,2]`), &r), ErrInvalidRecord)
}

func TestRecord_MapOmitsEmptyFields(t *testing.T) {
	r := Record{Index: "1", Type: TypeExample, ImageFile: "examples/1.png"}
	assert.Equal(t, map[string]any{
		"index":      "1",
		"type":       "example",
		"image_file": "examples/1.png",
	}, r.Map())
}

func TestRecord_Field(t *testing.T) {
	r := Record{Words: "dag meisje", Extra: map[string]any{"n": float64(3), "s": "x", "z": nil}}
	assert.Equal(t, "dag meisje", r.Field(KeyWords))
	assert.Equal(t, "3", r.Field("n"))
	assert.Equal(t, "x", r.Field("s"))
	assert.Empty(t, r.Field("z"))
	assert.Empty(t, r.Field("missing"))
}

func TestRecord_SetTodiAndClone(t *testing.T) {
	r := Record{Extra: map[string]any{"k": "v"}}
	r.SetTodi([]string{"%H", "L*", "", "L%"})
	assert.Equal(t, "%H|L*||L%", r.TodiSep)
	assert.Equal(t, "%H L*  L%", r.Todi)

	c := r.Clone()
	c.Extra["k"] = "changed"
	assert.Equal(t, "v", r.Extra["k"])
}
