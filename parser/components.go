package parser

import "github.com/fresha/openapi-diff/internal/setutil"

// Component kinds, in the order they are reported.
const (
	ComponentSchemas         = "schemas"
	ComponentResponses       = "responses"
	ComponentParameters      = "parameters"
	ComponentExamples        = "examples"
	ComponentRequestBodies   = "requestBodies"
	ComponentHeaders         = "headers"
	ComponentSecuritySchemes = "securitySchemes"
	ComponentLinks           = "links"
	ComponentCallbacks       = "callbacks"
)

// ComponentKinds lists every component map compared by name.
var ComponentKinds = []string{
	ComponentSchemas,
	ComponentResponses,
	ComponentParameters,
	ComponentExamples,
	ComponentRequestBodies,
	ComponentHeaders,
	ComponentSecuritySchemes,
	ComponentLinks,
	ComponentCallbacks,
}

// Components holds reusable objects for the document.
type Components struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*Example        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*Link           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*Callback       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Names returns the sorted component names of the given kind. Unknown kinds
// and a nil Components yield an empty slice.
func (c *Components) Names(kind string) []string {
	if c == nil {
		return []string{}
	}
	switch kind {
	case ComponentSchemas:
		return setutil.SortedKeys(c.Schemas)
	case ComponentResponses:
		return setutil.SortedKeys(c.Responses)
	case ComponentParameters:
		return setutil.SortedKeys(c.Parameters)
	case ComponentExamples:
		return setutil.SortedKeys(c.Examples)
	case ComponentRequestBodies:
		return setutil.SortedKeys(c.RequestBodies)
	case ComponentHeaders:
		return setutil.SortedKeys(c.Headers)
	case ComponentSecuritySchemes:
		return setutil.SortedKeys(c.SecuritySchemes)
	case ComponentLinks:
		return setutil.SortedKeys(c.Links)
	case ComponentCallbacks:
		return setutil.SortedKeys(c.Callbacks)
	default:
		return []string{}
	}
}

// Example holds a named example value.
type Example struct {
	Ref           string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header describes a single response header.
type Header struct {
	Ref         string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Ref              string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type             string `yaml:"type,omitempty" json:"type,omitempty"`
	Description      string `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string `yaml:"name,omitempty" json:"name,omitempty"`
	In               string `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            any    `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Link represents a design-time link for a response.
type Link struct {
	Ref          string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}
