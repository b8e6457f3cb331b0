package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	src := `
paths:
  /droplets:
    get:
      summary: List droplets
info:
  title: Example
  version: "1.0"
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, KindMapping, doc.Kind)
	assert.Equal(t, []string{"paths", "info"}, doc.Keys())

	info, ok := doc.Get("info")
	require.True(t, ok)
	assert.Equal(t, []string{"title", "version"}, info.Keys())
}

func TestParseScalarKinds(t *testing.T) {
	src := `
null_val: null
bool_val: true
int_val: -12
float_val: 2.5
str_val: hello
quoted_num: "123"
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	get := func(key string) *Node {
		v, ok := doc.Get(key)
		require.True(t, ok, "missing key %s", key)
		return v
	}

	assert.Equal(t, KindNull, get("null_val").Kind)
	assert.Equal(t, KindBool, get("bool_val").Kind)
	assert.True(t, get("bool_val").Bool())

	intNode := get("int_val")
	assert.Equal(t, KindNumber, intNode.Kind)
	i, isInt := intNode.Int64()
	assert.True(t, isInt)
	assert.Equal(t, int64(-12), i)

	floatNode := get("float_val")
	assert.Equal(t, KindNumber, floatNode.Kind)
	assert.Equal(t, 2.5, floatNode.Float64())

	assert.Equal(t, KindString, get("str_val").Kind)
	// Quoting forces string, even for digit content
	assert.Equal(t, KindString, get("quoted_num").Kind)
	assert.Equal(t, "123", get("quoted_num").Str())
}

func TestParseJSONInput(t *testing.T) {
	// The YAML parser accepts JSON; key order still comes from the source
	doc, err := Parse([]byte(`{"zulu": 1, "alpha": [true, null]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "alpha"}, doc.Keys())

	alpha, _ := doc.Get("alpha")
	require.Equal(t, KindSequence, alpha.Kind)
	require.Len(t, alpha.Items, 2)
	assert.Equal(t, KindBool, alpha.Items[0].Kind)
	assert.Equal(t, KindNull, alpha.Items[1].Kind)
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	doc, err := Parse([]byte("a: 1\na: 2\n"))
	require.NoError(t, err)
	require.Len(t, doc.Pairs, 1)
	v, _ := doc.Get("a")
	i, _ := v.Int64()
	assert.Equal(t, int64(2), i)
}

func TestParseAnchorsAndAliases(t *testing.T) {
	src := `
base: &shared
  type: string
copy: *shared
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	base, _ := doc.Get("base")
	cp, _ := doc.Get("copy")
	assert.True(t, base.Equal(cp))
}

func TestParseIntegerOutOfRange(t *testing.T) {
	_, err := Parse([]byte("big: 18446744073709552000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	// The largest representable unsigned value still parses
	doc, err := Parse([]byte("max: 18446744073709551615\n"))
	require.NoError(t, err)
	v, _ := doc.Get("max")
	assert.Equal(t, "18446744073709551615", v.NumberLiteral())
}

func TestEncodeJSONOrderAndLiterals(t *testing.T) {
	doc, err := Parse([]byte("b: 1\na: [1.5, \"x\", null, true]\nmax: 18446744073709551615\n"))
	require.NoError(t, err)

	got, err := doc.EncodeJSON()
	require.NoError(t, err)

	want := `{"b":1,"a":[1.5,"x",null,true],"max":18446744073709551615}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONEscapesStrings(t *testing.T) {
	m := NewMapping()
	m.Set("s", NewString("line\nbreak \"quoted\""))
	got, err := m.EncodeJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"line\nbreak \"quoted\""}`, string(got))
}

func TestYAMLRoundTrip(t *testing.T) {
	src := `
info:
  title: Round trip
  count: 3
flags:
  - true
  - false
empty: null
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	out, err := doc.EncodeYAML()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.True(t, doc.Equal(again), "document should survive a YAML round trip")
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, KindNull, doc.Kind)
}
