package differ

import (
	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/setutil"
	"github.com/fresha/openapi-diff/parser"
)

// diffInfo compares the info block. info.version is never compared; it is
// what the differ computes.
func (d *Differ) diffInfo() {
	from, to := d.source.Info, d.target.Info
	if from == nil {
		from = &parser.Info{}
	}
	if to == nil {
		to = &parser.Info{}
	}
	ptr := pathutil.Root.Child("info")

	d.diffText(ptr.Child("title"), from.Title, to.Title, SeverityPatch)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
	d.diffText(ptr.Child("termsOfService"), from.TermsOfService, to.TermsOfService, SeverityPatch)

	contact := ptr.Child("contact")
	if d.presence(contact, from.Contact != nil, to.Contact != nil, SeverityPatch, SeverityPatch) {
		d.diffText(contact.Child("name"), from.Contact.Name, to.Contact.Name, SeverityPatch)
		d.diffText(contact.Child("url"), from.Contact.URL, to.Contact.URL, SeverityPatch)
		d.diffText(contact.Child("email"), from.Contact.Email, to.Contact.Email, SeverityPatch)
	}

	license := ptr.Child("license")
	if d.presence(license, from.License != nil, to.License != nil, SeverityPatch, SeverityPatch) {
		d.diffText(license.Child("name"), from.License.Name, to.License.Name, SeverityPatch)
		d.diffText(license.Child("url"), from.License.URL, to.License.URL, SeverityPatch)
	}

	for _, ext := range []string{parser.ExtensionAudience, parser.ExtensionRootURL} {
		a, _ := from.Extension(ext)
		b, _ := to.Extension(ext)
		d.diffValue(ptr.Child(ext), a, b, SeverityMinor)
	}
}

// diffServers compares servers by position.
func (d *Differ) diffServers() {
	from, to := d.source.Servers, d.target.Servers
	base := pathutil.Root.Child("servers")
	for i := range max(len(from), len(to)) {
		a, b := serverAt(from, i), serverAt(to, i)
		ptr := base.Index(i)
		if !d.presence(ptr, a != nil, b != nil, SeverityMinor, SeverityMinor) {
			continue
		}
		d.diffText(ptr.Child("url"), a.URL, b.URL, SeverityMinor)
		d.diffText(ptr.Child("description"), a.Description, b.Description, SeverityPatch)
	}
}

func serverAt(servers []*parser.Server, i int) *parser.Server {
	if i < len(servers) {
		return servers[i]
	}
	return nil
}

// diffTags compares the top-level tag list keyed by tag name.
func (d *Differ) diffTags() {
	from, to := tagIndex(d.source.Tags), tagIndex(d.target.Tags)
	base := pathutil.Root.Child("tags")

	p := setutil.DiffStringSet(tagNames(d.source.Tags), tagNames(d.target.Tags))
	for _, name := range p.Removed {
		d.add(base.Child(name), SeverityMinor, MessageRemoved)
	}
	for _, name := range p.Added {
		d.add(base.Child(name), SeverityMinor, MessageAdded)
	}
	for _, name := range p.Stable {
		a, b := from[name], to[name]
		ptr := base.Child(name)
		d.diffText(ptr.Child("name"), a.Name, b.Name, SeverityMinor)
		d.diffText(ptr.Child("description"), a.Description, b.Description, SeverityPatch)
		d.diffExternalDocs(ptr.Child("externalDocs"), a.ExternalDocs, b.ExternalDocs)
	}
}

func tagNames(tags []*parser.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != nil {
			names = append(names, t.Name)
		}
	}
	return names
}

// tagIndex maps tag names to their first declaration.
func tagIndex(tags []*parser.Tag) map[string]*parser.Tag {
	idx := make(map[string]*parser.Tag, len(tags))
	for _, t := range tags {
		if t == nil {
			continue
		}
		if _, ok := idx[t.Name]; !ok {
			idx[t.Name] = t
		}
	}
	return idx
}

func (d *Differ) diffExternalDocs(ptr pathutil.Pointer, from, to *parser.ExternalDocs) {
	if !d.presence(ptr, from != nil, to != nil, SeverityPatch, SeverityPatch) {
		return
	}
	d.diffText(ptr.Child("url"), from.URL, to.URL, SeverityPatch)
	d.diffText(ptr.Child("description"), from.Description, to.Description, SeverityPatch)
}
