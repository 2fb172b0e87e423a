package parser

import (
	"fmt"
	"slices"
	"strings"
)

// Schema represents a JSON Schema as used by OpenAPI 3.0 and 3.1.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`
	Examples    []any  `yaml:"examples,omitempty" json:"examples,omitempty"`

	// Type validation
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in 3.0, number in 3.1+
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"` // bool in 3.0, number in 3.1+

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems    *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaKind is the shape of a schema. Exactly one kind applies to a schema;
// only the constraints of that kind are meaningful when comparing.
type SchemaKind int

const (
	// KindAny is a schema with no recognisable shape (e.g. {} or a multi-type list).
	KindAny SchemaKind = iota
	// KindRef is a bare $ref.
	KindRef
	// KindNull is type: null.
	KindNull
	// KindBoolean is type: boolean.
	KindBoolean
	// KindNumber is type: number or type: integer.
	KindNumber
	// KindString is type: string.
	KindString
	// KindObject is type: object, or an untyped schema with properties.
	KindObject
	// KindArray is type: array, or an untyped schema with items.
	KindArray
	// KindNot is a schema built from "not".
	KindNot
	// KindOneOf is a oneOf composition.
	KindOneOf
	// KindAnyOf is an anyOf composition.
	KindAnyOf
	// KindAllOf is an allOf composition.
	KindAllOf
)

var kindNames = [...]string{
	KindAny:     "any",
	KindRef:     "ref",
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindObject:  "object",
	KindArray:   "array",
	KindNot:     "not",
	KindOneOf:   "oneOf",
	KindAnyOf:   "anyOf",
	KindAllOf:   "allOf",
}

// String returns the kind name; compositions use their keyword ("oneOf").
func (k SchemaKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("SchemaKind(%d)", int(k))
	}
	return kindNames[k]
}

// Kind classifies the schema. References win over compositions, compositions
// over "not", and "not" over the declared type.
func (s *Schema) Kind() SchemaKind {
	switch {
	case s == nil:
		return KindAny
	case s.Ref != "":
		return KindRef
	case len(s.OneOf) > 0:
		return KindOneOf
	case len(s.AnyOf) > 0:
		return KindAnyOf
	case len(s.AllOf) > 0:
		return KindAllOf
	case s.Not != nil:
		return KindNot
	}

	if kind, ok := kindOfType(s.primaryType()); ok {
		return kind
	}
	switch {
	case len(s.Properties) > 0:
		return KindObject
	case s.Items != nil:
		return KindArray
	}
	return KindAny
}

// TypeString renders the declared type. A type list is joined with "|";
// an absent type yields "".
func (s *Schema) TypeString() string {
	if s == nil {
		return ""
	}
	types := s.Types()
	return strings.Join(types, "|")
}

// Types returns the declared type names.
func (s *Schema) Types() []string {
	if s == nil {
		return nil
	}
	switch t := s.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if str, ok := v.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// primaryType returns the single non-null type, or "null" when that is the
// only type. Lists with more than one non-null member have no primary type.
func (s *Schema) primaryType() string {
	types := s.Types()
	var nonNull []string
	for _, t := range types {
		if t != "null" {
			nonNull = append(nonNull, t)
		}
	}
	switch {
	case len(nonNull) == 1:
		return nonNull[0]
	case len(nonNull) == 0 && len(types) > 0:
		return "null"
	}
	return ""
}

func kindOfType(t string) (SchemaKind, bool) {
	switch t {
	case "null":
		return KindNull, true
	case "boolean":
		return KindBoolean, true
	case "number", "integer":
		return KindNumber, true
	case "string":
		return KindString, true
	case "object":
		return KindObject, true
	case "array":
		return KindArray, true
	}
	return KindAny, false
}

// Composition returns the members of a oneOf/anyOf/allOf schema according to
// its kind, and nil for every other kind.
func (s *Schema) Composition() []*Schema {
	return s.Members(s.Kind())
}

// Members returns the subschemas listed under the composition keyword of
// kind, whatever the schema's own kind. Non-composition kinds yield nil.
func (s *Schema) Members(kind SchemaKind) []*Schema {
	if s == nil {
		return nil
	}
	switch kind {
	case KindOneOf:
		return s.OneOf
	case KindAnyOf:
		return s.AnyOf
	case KindAllOf:
		return s.AllOf
	case KindAny, KindRef, KindNull, KindBoolean, KindNumber, KindString, KindObject, KindArray, KindNot:
		return nil
	}
	return nil
}

// RequiredPropertyNames returns the required property names, de-duplicated,
// in declaration order.
func (s *Schema) RequiredPropertyNames() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Required))
	for _, name := range s.Required {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}
