package parser

import "github.com/fresha/openapi-diff/internal/setutil"

// Extension names with a meaning of their own when comparing documents.
const (
	// ExtensionID identifies the API a document describes. Two documents with
	// different x-id values are never compared.
	ExtensionID = "x-id"
	// ExtensionAudience names the intended consumers of the API.
	ExtensionAudience = "x-audience"
	// ExtensionRootURL is the canonical base URL of the API.
	ExtensionRootURL = "x-root-url"
)

// Document represents an OpenAPI 3.x document.
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"`
	Info         *Info                 `yaml:"info" json:"info"`
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths                 `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions and fields this model does not name.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Extension returns the value of a top-level specification extension.
func (d *Document) Extension(name string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return lookup(d.Extra, name)
}

// InfoVersion returns info.version, or "" when the document has no info object.
func (d *Document) InfoVersion() string {
	if d == nil || d.Info == nil {
		return ""
	}
	return d.Info.Version
}

// Info provides metadata about the API.
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Extension returns the value of an info-level specification extension such
// as x-id. A nil Info has no extensions.
func (i *Info) Extension(name string) (any, bool) {
	if i == nil {
		return nil, false
	}
	return lookup(i.Extra, name)
}

// Contact information for the exposed API.
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API.
type License struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a server.
type Server struct {
	URL         string                    `yaml:"url" json:"url"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// ServerVariable represents a server variable for server URL template substitution.
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// SecurityRequirement lists the required security schemes and their scopes.
type SecurityRequirement map[string][]string

// SecurityScopes merges requirement objects into one scheme-to-scopes map.
// Scopes are de-duplicated and keep their first-seen order.
func SecurityScopes(reqs []SecurityRequirement) map[string][]string {
	merged := make(map[string][]string)
	seen := make(map[string]setutil.Set[string])
	for _, req := range reqs {
		for scheme, scopes := range req {
			if _, ok := merged[scheme]; !ok {
				merged[scheme] = []string{}
				seen[scheme] = setutil.NewSet[string]()
			}
			for _, scope := range scopes {
				if seen[scheme].Add(scope) {
					merged[scheme] = append(merged[scheme], scope)
				}
			}
		}
	}
	return merged
}

func lookup(extra map[string]any, name string) (any, bool) {
	v, ok := extra[name]
	return v, ok
}
