package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointer(t *testing.T) {
	tests := []struct {
		name string
		got  Pointer
		want string
	}{
		{"child", Root.Child("components", "schemas", "Pet"), "#/components/schemas/Pet"},
		{"child without segments", Root.Child(), "#"},
		{"index", Root.Child("servers").Index(2).Child("url"), "#/servers/2/url"},
		{"raw path", Root.Child("paths").Raw("/pets/{id}").Child("get", "parameters").Index(0), "#/paths/pets/{id}/get/parameters/0"},
		{"component", ComponentPointer("securitySchemes", "oauth"), "#/components/securitySchemes/oauth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestPointer_Immutable(t *testing.T) {
	base := Root.Child("paths")
	_ = base.Child("a")
	_ = base.Index(1)
	assert.Equal(t, Pointer("#/paths"), base)
}

func TestRefName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{RefPrefixComponents + "schemas/Pet", "Pet"},
		{"#/components/parameters/limit", "limit"},
		{"#/components/schemas/Pet/properties/name", ""},
		{"#/components/schemas", ""},
		{"other.yaml#/components/schemas/Pet", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, RefName(tt.ref))
		})
	}
}
