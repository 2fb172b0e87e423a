package differ

import (
	"fmt"

	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/setutil"
	"github.com/fresha/openapi-diff/parser"
)

// diffComponents compares component names only; component bodies are
// compared where they are used.
func (d *Differ) diffComponents() {
	from, to := d.source.Components, d.target.Components
	for _, kind := range parser.ComponentKinds {
		p := setutil.DiffStringSet(from.Names(kind), to.Names(kind))
		for _, name := range p.Removed {
			d.add(pathutil.ComponentPointer(kind, name), SeverityMinor, MessageRemoved)
		}
		for _, name := range p.Added {
			d.add(pathutil.ComponentPointer(kind, name), SeverityMinor, MessageAdded)
		}
	}
}

// diffSecurityRequirements compares the union of the global security
// requirements as scheme -> scopes.
func (d *Differ) diffSecurityRequirements() {
	from := parser.SecurityScopes(d.source.Security)
	to := parser.SecurityScopes(d.target.Security)
	base := pathutil.Root.Child("security")

	p := setutil.DiffMapKeys(from, to)
	for _, scheme := range p.Removed {
		d.add(base.Child(scheme), SeverityMinor, MessageRemoved)
	}
	for _, scheme := range p.Added {
		d.add(base.Child(scheme), SeverityMinor, MessageAdded)
	}
	for _, scheme := range p.Stable {
		scopes := setutil.DiffStringSet(from[scheme], to[scheme])
		for _, scope := range scopes.Added {
			d.add(base.Child(scheme), SeverityMinor, fmt.Sprintf("added scope %s to scheme %s", scope, scheme))
		}
		for _, scope := range scopes.Removed {
			d.add(base.Child(scheme), SeverityMinor, fmt.Sprintf("removed scope %s from scheme %s", scope, scheme))
		}
	}
}
