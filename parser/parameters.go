package parser

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref             string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name            string                `yaml:"name,omitempty" json:"name,omitempty"`
	In              string                `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description     string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool                  `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema          *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Content         map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// ParameterKey identifies a parameter within one parameter list.
type ParameterKey struct {
	In   string
	Name string
}

// Key returns the identity of the parameter. A bare $ref parameter is keyed
// by its reference so that two references to different components never
// collide.
func (p *Parameter) Key() ParameterKey {
	if p.Ref != "" && p.Name == "" && p.In == "" {
		return ParameterKey{In: "$ref", Name: p.Ref}
	}
	return ParameterKey{In: p.In, Name: p.Name}
}
