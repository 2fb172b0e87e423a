// Package pathutil builds the JSON-Pointer-like locations that identify where
// in an OpenAPI document a difference was found, and resolves files that are
// about to be rewritten in place.
//
// # Pointers
//
// A [Pointer] starts at [Root] ("#") and grows one segment at a time:
//
//	p := pathutil.Root.Child("components", "schemas", "Pet")
//	// "#/components/schemas/Pet"
//
// Path templates already begin with a slash and are appended verbatim with
// [Pointer.Raw], so "/pets/{id}" becomes "#/paths/pets/{id}":
//
//	op := pathutil.Root.Child("paths").Raw("/pets/{id}").Child("get")
//
// Segments are not escaped. The pointers are meant for people reading a
// change report, not for RFC 6901 resolution.
//
// # Rewrite Targets
//
// [ResolveRewriteTarget] validates a file before it is overwritten. It
// rejects symlinks and directories and reports the existing permission bits
// so the rewrite can keep them.
package pathutil
