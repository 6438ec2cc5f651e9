package schema

import (
	"strings"
	"testing"

	"github.com/go-clux/clux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *clux.Node {
	t.Helper()
	n, err := clux.Parse(text)
	require.NoError(t, err)
	return n
}

func collect(t *testing.T) (*[]Event, EventFunc) {
	t.Helper()
	events := []Event{}
	return &events, func(e Event) bool {
		events = append(events, e)
		return true
	}
}

// S5: schema {"type":"integer","minimum":0} accepts 3, rejects -1 and
// "3", and a malformed "minimum" is a schema Error.
func TestValidateS5Type(t *testing.T) {
	schema := parse(t, `{"type":"integer","minimum":0}`)

	events, cb := collect(t)
	require.True(t, Validate(parse(t, "3"), schema, nil, cb))
	assert.Empty(t, *events)

	events, cb = collect(t)
	require.False(t, Validate(parse(t, "-1"), schema, nil, cb))
	require.Len(t, *events, 1)
	assert.Equal(t, Invalid, (*events)[0].Kind)

	events, cb = collect(t)
	require.False(t, Validate(parse(t, `"3"`), schema, nil, cb))
	require.Len(t, *events, 1)
	assert.Equal(t, Invalid, (*events)[0].Kind)

	badSchema := parse(t, `{"type":"integer","minimum":"x"}`)
	events, cb = collect(t)
	require.False(t, Validate(parse(t, "3"), badSchema, nil, cb))
	require.Len(t, *events, 1)
	assert.Equal(t, Error, (*events)[0].Kind)
}

// S6: cross-document $ref resolved through a registry map.
func TestValidateS6Ref(t *testing.T) {
	schemaA := parse(t, `{"$id":"A","$ref":"B"}`)
	schemaB := parse(t, `{"$id":"B","type":"string"}`)

	reg := NewMap()
	require.NoError(t, reg.Register("A", schemaA))
	require.NoError(t, reg.Register("B", schemaB))

	require.True(t, Validate(parse(t, `"hi"`), schemaA, reg, nil))

	events, cb := collect(t)
	require.False(t, Validate(parse(t, "5"), schemaA, reg, cb))
	require.Len(t, *events, 1)
	assert.Equal(t, Invalid, (*events)[0].Kind)
}

func TestValidateLocalRefPointer(t *testing.T) {
	schema := parse(t, `{
		"$defs": {"pos": {"type":"integer","minimum":0}},
		"properties": {"x": {"$ref":"#/$defs/pos"}}
	}`)
	require.True(t, Validate(parse(t, `{"x":3}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"x":-3}`), schema, nil, nil))
}

func TestValidateSelfRecursiveRefDry(t *testing.T) {
	schema := parse(t, `{
		"$id":"tree",
		"type":"object",
		"properties": {
			"children": {"type":"array","items":{"$ref":"#"}}
		}
	}`)
	reg := NewMap()
	require.NoError(t, reg.Register("tree", schema))
	doc := parse(t, `{"children":[{"children":[]},{"children":[{"children":[]}]}]}`)
	require.True(t, Validate(doc, schema, reg, nil))
}

func TestValidateRequiredAndDependentRequired(t *testing.T) {
	schema := parse(t, `{
		"required": ["a"],
		"dependentRequired": {"a": ["b"]}
	}`)
	require.True(t, Validate(parse(t, `{"a":1,"b":2}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"b":2}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"a":1}`), schema, nil, nil))
}

func TestValidateDependentSchemas(t *testing.T) {
	schema := parse(t, `{
		"dependentSchemas": {"credit_card": {"required": ["billing_address"]}}
	}`)
	require.True(t, Validate(parse(t, `{"billing_address":"x"}`), schema, nil, nil))
	require.True(t, Validate(parse(t, `{"credit_card":1,"billing_address":"x"}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"credit_card":1}`), schema, nil, nil))
}

func TestValidatePatternPropertiesAndAdditional(t *testing.T) {
	schema := parse(t, `{
		"properties": {"name": {"type":"string"}},
		"patternProperties": {"^x-": {"type":"integer"}},
		"additionalProperties": false
	}`)
	require.True(t, Validate(parse(t, `{"name":"a","x-foo":1}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"name":"a","extra":1}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"name":"a","x-foo":"not int"}`), schema, nil, nil))
}

func TestValidateItemsTupleAndAdditionalItems(t *testing.T) {
	schema := parse(t, `{
		"items": [{"type":"string"},{"type":"integer"}],
		"additionalItems": {"type":"boolean"}
	}`)
	require.True(t, Validate(parse(t, `["a",1,true,false]`), schema, nil, nil))
	require.False(t, Validate(parse(t, `["a",1,"oops"]`), schema, nil, nil))
	require.False(t, Validate(parse(t, `[1,1]`), schema, nil, nil))
}

func TestValidateUniqueMinMaxItems(t *testing.T) {
	schema := parse(t, `{"minItems":2,"maxItems":3,"uniqueItems":true}`)
	require.True(t, Validate(parse(t, `[1,2]`), schema, nil, nil))
	require.False(t, Validate(parse(t, `[1]`), schema, nil, nil))
	require.False(t, Validate(parse(t, `[1,2,3,4]`), schema, nil, nil))
	require.False(t, Validate(parse(t, `[1,1]`), schema, nil, nil))
}

func TestValidateCombinators(t *testing.T) {
	allOf := parse(t, `{"allOf":[{"type":"integer"},{"minimum":0}]}`)
	require.True(t, Validate(parse(t, "3"), allOf, nil, nil))
	require.False(t, Validate(parse(t, "-3"), allOf, nil, nil))

	anyOf := parse(t, `{"anyOf":[{"type":"string"},{"type":"integer"}]}`)
	require.True(t, Validate(parse(t, `"s"`), anyOf, nil, nil))
	require.True(t, Validate(parse(t, "3"), anyOf, nil, nil))
	require.False(t, Validate(parse(t, "true"), anyOf, nil, nil))

	oneOf := parse(t, `{"oneOf":[{"minimum":0},{"maximum":10}]}`)
	require.False(t, Validate(parse(t, "5"), oneOf, nil, nil)) // matches both
	require.True(t, Validate(parse(t, "-5"), oneOf, nil, nil)) // matches only maximum
	require.True(t, Validate(parse(t, "15"), oneOf, nil, nil)) // matches only minimum

	not := parse(t, `{"not":{"type":"string"}}`)
	require.True(t, Validate(parse(t, "3"), not, nil, nil))
	require.False(t, Validate(parse(t, `"s"`), not, nil, nil))
}

func TestValidateIfThenElse(t *testing.T) {
	schema := parse(t, `{
		"if": {"properties":{"kind":{"const":"a"}}},
		"then": {"required":["x"]},
		"else": {"required":["y"]}
	}`)
	require.True(t, Validate(parse(t, `{"kind":"a","x":1}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"kind":"a"}`), schema, nil, nil))
	require.True(t, Validate(parse(t, `{"kind":"b","y":1}`), schema, nil, nil))
	require.False(t, Validate(parse(t, `{"kind":"b"}`), schema, nil, nil))
}

func TestValidateFormatAndPattern(t *testing.T) {
	schema := parse(t, `{"format":"email"}`)
	require.True(t, Validate(parse(t, `"a@b.com"`), schema, nil, nil))
	require.False(t, Validate(parse(t, `"not-an-email"`), schema, nil, nil))

	patternSchema := parse(t, `{"pattern":"^[a-z]+$"}`)
	require.True(t, Validate(parse(t, `"abc"`), patternSchema, nil, nil))
	require.False(t, Validate(parse(t, `"ABC"`), patternSchema, nil, nil))
}

func TestValidateUnknownKeywordWarns(t *testing.T) {
	schema := parse(t, `{"unsupportedKeyword": 1}`)
	events, cb := collect(t)
	require.True(t, Validate(parse(t, "1"), schema, nil, cb))
	require.Len(t, *events, 1)
	assert.Equal(t, Warning, (*events)[0].Kind)
}

func TestValidateCallbackAbort(t *testing.T) {
	schema := parse(t, `{"type":"string","minLength":5}`)
	calls := 0
	cb := func(Event) bool {
		calls++
		return false
	}
	require.False(t, Validate(parse(t, `"x"`), schema, nil, cb))
	assert.Equal(t, 1, calls)
}

func TestValidateNilArgs(t *testing.T) {
	schema := parse(t, `{"type":"string"}`)
	require.False(t, Validate(nil, schema, nil, nil))
	require.False(t, Validate(parse(t, `"x"`), nil, nil, nil))
}

func TestValidateSchemaRootNotObject(t *testing.T) {
	require.False(t, Validate(parse(t, `"x"`), parse(t, `"not an object"`), nil, nil))
}

func TestValidateConstEnum(t *testing.T) {
	schema := parse(t, `{"const":"fixed"}`)
	require.True(t, Validate(parse(t, `"fixed"`), schema, nil, nil))
	require.False(t, Validate(parse(t, `"other"`), schema, nil, nil))

	enumSchema := parse(t, `{"enum":[1,2,3]}`)
	require.True(t, Validate(parse(t, "2"), enumSchema, nil, nil))
	require.False(t, Validate(parse(t, "4"), enumSchema, nil, nil))
}

func TestMapRegisterConflict(t *testing.T) {
	m := NewMap()
	a := clux.NewObject()
	b := clux.NewObject()
	require.NoError(t, m.Register("x", a))
	require.NoError(t, m.Register("x", a))
	require.ErrorIs(t, m.Register("x", b), ErrIDConflict)
	require.ErrorIs(t, m.Register("", a), ErrIDEmpty)
}

func TestEventPathDerivedFromLineage(t *testing.T) {
	schema := parse(t, `{"properties":{"items":{"items":{"type":"integer"}}}}`)
	doc := parse(t, `{"items":[1,"bad"]}`)
	events, cb := collect(t)
	require.False(t, Validate(doc, schema, nil, cb))
	require.Len(t, *events, 1)
	assert.True(t, strings.HasPrefix((*events)[0].Path, "/items/"))
}
