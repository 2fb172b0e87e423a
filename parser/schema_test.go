package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func decodeSchema(t *testing.T, src string) *Schema {
	t.Helper()
	var s Schema
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	return &s
}

func TestSchemaKind(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want SchemaKind
	}{
		{"empty", "{}", KindAny},
		{"ref wins", "{$ref: '#/components/schemas/Pet', type: object}", KindRef},
		{"oneOf", "{oneOf: [{type: string}, {type: integer}]}", KindOneOf},
		{"anyOf", "{anyOf: [{type: string}]}", KindAnyOf},
		{"allOf", "{allOf: [{type: string}]}", KindAllOf},
		{"composition over not", "{allOf: [{type: string}], not: {type: integer}}", KindAllOf},
		{"not", "{not: {type: string}}", KindNot},
		{"null", "{type: 'null'}", KindNull},
		{"boolean", "{type: boolean}", KindBoolean},
		{"integer is number", "{type: integer}", KindNumber},
		{"number", "{type: number}", KindNumber},
		{"string", "{type: string}", KindString},
		{"object", "{type: object}", KindObject},
		{"array", "{type: array, items: {type: string}}", KindArray},
		{"nullable type list", "{type: [string, 'null']}", KindString},
		{"multi type list", "{type: [string, integer]}", KindAny},
		{"untyped properties", "{properties: {id: {type: string}}}", KindObject},
		{"untyped items", "{items: {type: string}}", KindArray},
		{"unknown type", "{type: file}", KindAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeSchema(t, tt.src).Kind())
		})
	}
}

func TestSchemaKind_Nil(t *testing.T) {
	var s *Schema
	assert.Equal(t, KindAny, s.Kind())
	assert.Equal(t, "", s.TypeString())
	assert.Nil(t, s.RequiredPropertyNames())
}

func TestSchemaKindString(t *testing.T) {
	assert.Equal(t, "oneOf", KindOneOf.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "SchemaKind(99)", SchemaKind(99).String())
}

func TestSchemaTypeString(t *testing.T) {
	assert.Equal(t, "string", decodeSchema(t, "{type: string}").TypeString())
	assert.Equal(t, "string|null", decodeSchema(t, "{type: [string, 'null']}").TypeString())
	assert.Equal(t, "", decodeSchema(t, "{}").TypeString())
	assert.Equal(t, "integer", (&Schema{Type: []string{"integer"}}).TypeString())
}

func TestSchemaComposition(t *testing.T) {
	s := decodeSchema(t, "{anyOf: [{type: string}, {type: integer}]}")
	require.Len(t, s.Composition(), 2)
	assert.Equal(t, KindNumber, s.Composition()[1].Kind())

	assert.Nil(t, decodeSchema(t, "{type: string}").Composition())
}

func TestSchemaMembers(t *testing.T) {
	s := decodeSchema(t, "{type: object, allOf: [{$ref: '#/components/schemas/Base'}], properties: {name: {type: string}}}")
	assert.Equal(t, KindAllOf, s.Kind())
	assert.Equal(t, "object", s.TypeString())
	require.Len(t, s.Members(KindAllOf), 1)
	assert.Equal(t, "#/components/schemas/Base", s.Members(KindAllOf)[0].Ref)
	assert.Nil(t, s.Members(KindOneOf))
	assert.Nil(t, s.Members(KindObject))
	assert.Nil(t, (*Schema)(nil).Members(KindAllOf))
}

func TestRequiredPropertyNames(t *testing.T) {
	s := decodeSchema(t, "{type: object, required: [name, id, name]}")
	assert.Equal(t, []string{"name", "id"}, s.RequiredPropertyNames())
}

func TestParameterKey(t *testing.T) {
	p := &Parameter{Name: "limit", In: "query"}
	assert.Equal(t, ParameterKey{In: "query", Name: "limit"}, p.Key())

	ref := &Parameter{Ref: "#/components/parameters/Limit"}
	assert.Equal(t, ParameterKey{In: "$ref", Name: "#/components/parameters/Limit"}, ref.Key())
}

func TestPathItemOperations(t *testing.T) {
	item := &PathItem{
		Trace: &Operation{OperationID: "trace"},
		Post:  &Operation{OperationID: "create"},
		Get:   &Operation{OperationID: "list"},
	}

	ops := item.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, []string{"get", "post", "trace"}, []string{ops[0].Method, ops[1].Method, ops[2].Method})
	assert.Equal(t, "create", item.Operation("POST").OperationID)
	assert.Nil(t, item.Operation("query"))

	var nilItem *PathItem
	assert.Empty(t, nilItem.Operations())
}

func TestComponentsNames(t *testing.T) {
	var nilComponents *Components
	assert.Empty(t, nilComponents.Names(ComponentSchemas))

	c := &Components{
		Parameters: map[string]*Parameter{"b": {}, "a": {}},
		Callbacks:  map[string]*Callback{"onEvent": {}},
	}
	assert.Equal(t, []string{"a", "b"}, c.Names(ComponentParameters))
	assert.Equal(t, []string{"onEvent"}, c.Names(ComponentCallbacks))
	assert.Empty(t, c.Names("pathItems"))
	assert.Len(t, ComponentKinds, 9)
}

func TestSecurityScopes(t *testing.T) {
	reqs := []SecurityRequirement{
		{"oauth": {"read"}},
		{"oauth": {"write", "read"}, "api_key": {}},
	}
	got := SecurityScopes(reqs)
	assert.Equal(t, []string{"read", "write"}, got["oauth"])
	assert.Equal(t, []string{}, got["api_key"])
}
