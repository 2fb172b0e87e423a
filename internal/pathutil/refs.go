package pathutil

import "strings"

// RefPrefixComponents prefixes every local reference into the components
// section of an OpenAPI 3.x document.
const RefPrefixComponents = "#/components/"

// ComponentPointer builds "#/components/{kind}/{name}".
func ComponentPointer(kind, name string) Pointer {
	return Root.Child("components", kind, name)
}

// RefName returns the component name a local reference points at, or "" when
// ref is not a local "#/components/{kind}/{name}" reference.
func RefName(ref string) string {
	rest, ok := strings.CutPrefix(ref, RefPrefixComponents)
	if !ok {
		return ""
	}
	kind, name, ok := strings.Cut(rest, "/")
	if !ok || kind == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
