package differ

import (
	"fmt"

	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/setutil"
	"github.com/fresha/openapi-diff/parser"
)

// diffSchema compares two schemas rooted at ptr. References are compared as
// strings and not followed.
func (d *Differ) diffSchema(ptr pathutil.Pointer, from, to *parser.Schema) {
	if !d.presence(ptr, from != nil, to != nil, SeverityMajor, SeverityMajor) {
		return
	}

	if from.Ref != "" || to.Ref != "" {
		d.diffRef(ptr.Child("$ref"), from.Ref, to.Ref, SeverityMajor)
		return
	}

	d.diffText(ptr.Child("title"), from.Title, to.Title, SeverityMinor)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	d.diffText(ptr.Child("format"), from.Format, to.Format, SeverityMajor)
	d.diffValue(ptr.Child("default"), from.Default, to.Default, SeverityMajor)
	d.diffFlag(ptr.Child("nullable"), from.Nullable, to.Nullable, SeverityMajor)
	d.diffFlag(ptr.Child("deprecated"), from.Deprecated, to.Deprecated, SeverityMajor)
	d.diffEnum(ptr.Child("enum"), from.Enum, to.Enum)
	d.diffFlag(ptr.Child("readOnly"), from.ReadOnly, to.ReadOnly, SeverityPatch)
	d.diffFlag(ptr.Child("writeOnly"), from.WriteOnly, to.WriteOnly, SeverityPatch)

	if from.TypeString() != to.TypeString() {
		d.add(ptr.Child("type"), SeverityMajor, MessageChanged)
		return
	}

	// Every constraint group runs whatever the kind; absent fields compare
	// equal and report nothing.
	diffOptional(d, ptr.Child("minimum"), from.Minimum, to.Minimum, SeverityMajor)
	diffOptional(d, ptr.Child("maximum"), from.Maximum, to.Maximum, SeverityMajor)
	d.diffValue(ptr.Child("exclusiveMinimum"), from.ExclusiveMinimum, to.ExclusiveMinimum, SeverityMajor)
	d.diffValue(ptr.Child("exclusiveMaximum"), from.ExclusiveMaximum, to.ExclusiveMaximum, SeverityMajor)
	diffOptional(d, ptr.Child("multipleOf"), from.MultipleOf, to.MultipleOf, SeverityMajor)

	diffOptional(d, ptr.Child("minLength"), from.MinLength, to.MinLength, SeverityMajor)
	diffOptional(d, ptr.Child("maxLength"), from.MaxLength, to.MaxLength, SeverityMajor)
	d.diffText(ptr.Child("pattern"), from.Pattern, to.Pattern, SeverityMajor)

	diffOptional(d, ptr.Child("minItems"), from.MinItems, to.MinItems, SeverityMajor)
	diffOptional(d, ptr.Child("maxItems"), from.MaxItems, to.MaxItems, SeverityMajor)
	d.diffFlag(ptr.Child("uniqueItems"), from.UniqueItems, to.UniqueItems, SeverityMajor)
	d.diffSchema(ptr.Child("items"), from.Items, to.Items)

	d.diffProperties(ptr.Child("properties"), from.Properties, to.Properties)
	d.diffRequired(ptr.Child("required"), from.RequiredPropertyNames(), to.RequiredPropertyNames())
	diffOptional(d, ptr.Child("minProperties"), from.MinProperties, to.MinProperties, SeverityMajor)
	diffOptional(d, ptr.Child("maxProperties"), from.MaxProperties, to.MaxProperties, SeverityMajor)

	d.diffSchema(ptr.Child("not"), from.Not, to.Not)
	for _, kind := range []parser.SchemaKind{parser.KindOneOf, parser.KindAnyOf, parser.KindAllOf} {
		d.diffComposition(ptr.Child(kind.String()), from.Members(kind), to.Members(kind))
	}
}

func (d *Differ) diffEnum(ptr pathutil.Pointer, from, to []any) {
	for _, v := range from {
		if !containsValue(to, v) {
			d.add(ptr, SeverityMajor, fmt.Sprintf("removed %v", v))
		}
	}
	for _, v := range to {
		if !containsValue(from, v) {
			d.add(ptr, SeverityMajor, fmt.Sprintf("added %v", v))
		}
	}
}

func containsValue(values []any, v any) bool {
	for _, w := range values {
		if sameValue(v, w) {
			return true
		}
	}
	return false
}

func (d *Differ) diffProperties(base pathutil.Pointer, from, to map[string]*parser.Schema) {
	p := setutil.DiffMapKeys(from, to)
	for _, name := range p.Removed {
		d.add(base.Child(name), SeverityMajor, MessageRemoved)
	}
	for _, name := range p.Added {
		d.add(base.Child(name), SeverityMinor, MessageAdded)
	}
	for _, name := range p.Stable {
		d.diffSchema(base.Child(name), from[name], to[name])
	}
}

// diffRequired reports required-set changes; both directions are major.
func (d *Differ) diffRequired(ptr pathutil.Pointer, from, to []string) {
	p := setutil.DiffStringSet(from, to)
	for _, name := range p.Added {
		d.add(ptr, SeverityMajor, fmt.Sprintf("added %s", name))
	}
	for _, name := range p.Removed {
		d.add(ptr, SeverityMajor, fmt.Sprintf("removed %s", name))
	}
}

// diffComposition compares members by position; a missing member on either
// side is reported as a schema added or removed.
func (d *Differ) diffComposition(base pathutil.Pointer, from, to []*parser.Schema) {
	for i := range max(len(from), len(to)) {
		d.diffSchema(base.Index(i), schemaAt(from, i), schemaAt(to, i))
	}
}

func schemaAt(schemas []*parser.Schema, i int) *parser.Schema {
	if i < len(schemas) {
		return schemas[i]
	}
	return nil
}
