package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// HTTP methods in the order operations are visited.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the operation keys of a path item in visiting order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// Paths holds the relative paths to endpoints. Keys of Items begin with a
// slash; x- keys land in Extra.
type Paths struct {
	Items map[string]*PathItem `json:"-"`
	Extra map[string]any       `json:"-"`
}

// UnmarshalYAML splits specification extensions from path items.
func (p *Paths) UnmarshalYAML(value *yaml.Node) error {
	items, extra, err := decodeExtensible[PathItem](value, "paths", "path item")
	if err != nil {
		return err
	}
	p.Items, p.Extra = items, extra
	return nil
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"`
	Servers     []*Server    `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation for method (lower case), or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch strings.ToLower(method) {
	case MethodGet:
		return p.Get
	case MethodPut:
		return p.Put
	case MethodPost:
		return p.Post
	case MethodDelete:
		return p.Delete
	case MethodOptions:
		return p.Options
	case MethodHead:
		return p.Head
	case MethodPatch:
		return p.Patch
	case MethodTrace:
		return p.Trace
	default:
		return nil
	}
}

// MethodOperation pairs an HTTP method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the defined operations in [Methods] order.
func (p *PathItem) Operations() []MethodOperation {
	var ops []MethodOperation
	for _, m := range Methods {
		if op := p.Operation(m); op != nil {
			ops = append(ops, MethodOperation{Method: m, Operation: op})
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *Responses            `yaml:"responses,omitempty" json:"responses,omitempty"`
	Callbacks    map[string]*Callback  `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Deprecated   bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation.
// Keys are status codes ("200", "4XX") or "default".
type Responses struct {
	Codes map[string]*Response `json:"-"`
	Extra map[string]any       `json:"-"`
}

// UnmarshalYAML splits specification extensions from response entries.
func (r *Responses) UnmarshalYAML(value *yaml.Node) error {
	codes, extra, err := decodeExtensible[Response](value, "responses", "response for status code")
	if err != nil {
		return err
	}
	r.Codes, r.Extra = codes, extra
	return nil
}

// decodeExtensible decodes a mapping whose entries are T, except for x- keys
// which are returned separately. what names the mapping, entry names one value.
func decodeExtensible[T any](value *yaml.Node, what, entry string) (map[string]*T, map[string]any, error) {
	if value.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("%s must be a mapping, got %s at line %d", what, value.Tag, value.Line)
	}

	entries := make(map[string]*T, len(value.Content)/2)
	var extra map[string]any
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i].Value, value.Content[i+1]
		if strings.HasPrefix(key, "x-") {
			var v any
			if err := node.Decode(&v); err != nil {
				return nil, nil, fmt.Errorf("failed to decode extension %s: %w", key, err)
			}
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[key] = v
			continue
		}
		var v T
		if err := node.Decode(&v); err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s %s: %w", entry, key, err)
		}
		entries[key] = &v
	}
	return entries, extra, nil
}

// Response describes a single response from an API operation.
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*Link      `yaml:"links,omitempty" json:"links,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type.
type MediaType struct {
	Schema   *Schema             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                 `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Callback maps runtime expressions to path items.
type Callback struct {
	Expressions map[string]*PathItem `json:"-"`
	Extra       map[string]any       `json:"-"`
}

// UnmarshalYAML splits specification extensions from callback expressions.
func (c *Callback) UnmarshalYAML(value *yaml.Node) error {
	items, extra, err := decodeExtensible[PathItem](value, "callback", "path item for expression")
	if err != nil {
		return err
	}
	c.Expressions, c.Extra = items, extra
	return nil
}
