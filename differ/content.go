package differ

import (
	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/setutil"
	"github.com/fresha/openapi-diff/parser"
)

func (d *Differ) diffRequestBody(ptr pathutil.Pointer, from, to *parser.RequestBody) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		sev := SeverityMinor
		if to.Required {
			sev = SeverityMajor
		}
		d.add(ptr, sev, MessageAdded)
		return
	case to == nil:
		d.add(ptr, SeverityMajor, MessageRemoved)
		return
	}

	d.diffRef(ptr.Child("$ref"), from.Ref, to.Ref, SeverityMajor)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	if from.Required != to.Required {
		sev := SeverityMinor
		if to.Required {
			sev = SeverityMajor
		}
		d.add(ptr.Child("required"), sev, MessageChanged)
	}
	d.diffContent(ptr.Child("content"), from.Content, to.Content)
}

func (d *Differ) diffResponses(base pathutil.Pointer, from, to *parser.Responses) {
	var a, b map[string]*parser.Response
	if from != nil {
		a = from.Codes
	}
	if to != nil {
		b = to.Codes
	}

	p := setutil.DiffMapKeys(a, b)
	for _, code := range p.Removed {
		d.add(base.Child(code), SeverityMajor, MessageRemoved)
	}
	for _, code := range p.Added {
		d.add(base.Child(code), SeverityMinor, MessageAdded)
	}
	for _, code := range p.Stable {
		d.diffResponse(base.Child(code), a[code], b[code])
	}
}

func (d *Differ) diffResponse(ptr pathutil.Pointer, from, to *parser.Response) {
	if from == nil {
		from = &parser.Response{}
	}
	if to == nil {
		to = &parser.Response{}
	}
	d.diffRef(ptr.Child("$ref"), from.Ref, to.Ref, SeverityMajor)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	d.diffContent(ptr.Child("content"), from.Content, to.Content)
}

// diffContent compares media type maps. Media type names such as
// "application/json" are appended to the pointer unescaped.
func (d *Differ) diffContent(base pathutil.Pointer, from, to map[string]*parser.MediaType) {
	p := setutil.DiffMapKeys(from, to)
	for _, mt := range p.Removed {
		d.add(base.Child(mt), SeverityMajor, MessageRemoved)
	}
	for _, mt := range p.Added {
		d.add(base.Child(mt), SeverityMinor, MessageAdded)
	}
	for _, mt := range p.Stable {
		d.diffSchema(base.Child(mt, "schema"), mediaSchema(from[mt]), mediaSchema(to[mt]))
	}
}

func mediaSchema(mt *parser.MediaType) *parser.Schema {
	if mt == nil {
		return nil
	}
	return mt.Schema
}

// diffCallbacks compares callback names only.
func (d *Differ) diffCallbacks(base pathutil.Pointer, from, to map[string]*parser.Callback) {
	p := setutil.DiffMapKeys(from, to)
	for _, name := range p.Removed {
		d.add(base.Child(name), SeverityMajor, MessageRemoved)
	}
	for _, name := range p.Added {
		d.add(base.Child(name), SeverityMinor, MessageAdded)
	}
}
