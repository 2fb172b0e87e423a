package differ

import (
	"fmt"

	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/setutil"
	"github.com/fresha/openapi-diff/parser"
)

// diffPaths compares path items keyed by URL. Removed and added paths are
// reported once, without descending into them.
func (d *Differ) diffPaths() {
	from, to := d.source.Paths.Items, d.target.Paths.Items
	base := pathutil.Root.Child("paths")

	p := setutil.DiffMapKeys(from, to)
	for _, url := range p.Removed {
		d.add(base.Raw(url), SeverityMajor, MessageRemoved)
	}
	for _, url := range p.Added {
		d.add(base.Raw(url), SeverityMinor, MessageAdded)
	}
	for _, url := range p.Stable {
		d.diffPathItem(base.Raw(url), from[url], to[url])
	}
}

func (d *Differ) diffPathItem(ptr pathutil.Pointer, from, to *parser.PathItem) {
	if from == nil {
		from = &parser.PathItem{}
	}
	if to == nil {
		to = &parser.PathItem{}
	}

	d.diffText(ptr.Child("summary"), from.Summary, to.Summary, SeverityPatch)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	d.diffParameters(ptr.Child("parameters"), from.Parameters, to.Parameters)

	for _, method := range parser.Methods {
		a, b := from.Operation(method), to.Operation(method)
		opPtr := ptr.Child(method)
		if d.presence(opPtr, a != nil, b != nil, SeverityMinor, SeverityMajor) {
			d.diffOperation(opPtr, a, b)
		}
	}
}

func (d *Differ) diffOperation(ptr pathutil.Pointer, from, to *parser.Operation) {
	tags := setutil.DiffStringSet(from.Tags, to.Tags)
	for _, tag := range tags.Added {
		d.add(ptr.Child("tags"), SeverityPatch, fmt.Sprintf("added tag %s", tag))
	}
	for _, tag := range tags.Removed {
		d.add(ptr.Child("tags"), SeverityPatch, fmt.Sprintf("removed tag %s", tag))
	}

	d.diffText(ptr.Child("summary"), from.Summary, to.Summary, SeverityPatch)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	d.diffText(ptr.Child("operationId"), from.OperationID, to.OperationID, SeverityMajor)
	d.diffParameters(ptr.Child("parameters"), from.Parameters, to.Parameters)
	d.diffFlag(ptr.Child("deprecated"), from.Deprecated, to.Deprecated, SeverityMajor)

	d.diffRequestBody(ptr.Child("requestBody"), from.RequestBody, to.RequestBody)
	d.diffResponses(ptr.Child("responses"), from.Responses, to.Responses)
	d.diffCallbacks(ptr.Child("callbacks"), from.Callbacks, to.Callbacks)
}

// indexedParameter is a parameter with its position in the list that holds it.
type indexedParameter struct {
	index int
	param *parser.Parameter
}

func indexParameters(params []*parser.Parameter) ([]parser.ParameterKey, map[parser.ParameterKey]indexedParameter) {
	keys := make([]parser.ParameterKey, 0, len(params))
	idx := make(map[parser.ParameterKey]indexedParameter, len(params))
	for i, p := range params {
		if p == nil {
			continue
		}
		k := p.Key()
		if _, ok := idx[k]; ok {
			continue
		}
		keys = append(keys, k)
		idx[k] = indexedParameter{index: i, param: p}
	}
	return keys, idx
}

// diffParameters compares parameter lists keyed by (in, name). Pointers use
// the position in the target list, or in the source list for removals.
func (d *Differ) diffParameters(base pathutil.Pointer, from, to []*parser.Parameter) {
	fromKeys, fromIdx := indexParameters(from)
	toKeys, toIdx := indexParameters(to)

	p := setutil.DiffSet(fromKeys, toKeys)
	for _, k := range p.Removed {
		d.add(base.Index(fromIdx[k].index), SeverityMajor, MessageRemoved)
	}
	for _, k := range p.Added {
		added := toIdx[k]
		sev := SeverityMinor
		if added.param.Required {
			sev = SeverityMajor
		}
		d.add(base.Index(added.index), sev, MessageAdded)
	}
	for _, k := range p.Stable {
		b := toIdx[k]
		d.diffParameter(base.Index(b.index), fromIdx[k].param, b.param)
	}
}

func (d *Differ) diffParameter(ptr pathutil.Pointer, from, to *parser.Parameter) {
	d.diffRef(ptr.Child("$ref"), from.Ref, to.Ref, SeverityMajor)
	d.diffText(ptr.Child("in"), from.In, to.In, SeverityMajor)
	d.diffText(ptr.Child("name"), from.Name, to.Name, SeverityMajor)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	d.diffFlag(ptr.Child("deprecated"), from.Deprecated, to.Deprecated, SeverityMajor)
	diffOptional(d, ptr.Child("explode"), from.Explode, to.Explode, SeverityMajor)

	if from.Required != to.Required {
		sev := SeverityMinor
		if to.Required {
			sev = SeverityMajor
		}
		d.add(ptr.Child("required"), sev, MessageChanged)
	}

	d.diffSchema(ptr.Child("schema"), from.Schema, to.Schema)
	d.diffContent(ptr.Child("content"), from.Content, to.Content)
}
