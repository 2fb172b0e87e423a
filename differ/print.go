package differ

import (
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fresha/openapi-diff/internal/cliutil"
	"github.com/fresha/openapi-diff/internal/severity"
)

var severityColors = map[Severity]color.Attribute{
	SeverityMajor: color.FgRed,
	SeverityMinor: color.FgMagenta,
	SeverityPatch: color.FgYellow,
}

// Print writes one "[severity] pointer message" line per item. Lines are
// colored by severity when color is enabled for w.
func (d *Differ) Print(w io.Writer) {
	colored := d.colorEnabled(w)
	for _, item := range d.items {
		line := item.String()
		if colored {
			c := color.New(severityColors[item.severity])
			c.EnableColor()
			line = c.Sprint(line)
		}
		cliutil.Writeln(w, line)
	}
}

// Summary writes the number of items per severity, most severe first, and
// the computed version when it changed.
func (d *Differ) Summary(w io.Writer) {
	counts := d.Counts()
	title := cases.Title(language.English)
	for _, sev := range severity.All() {
		cliutil.Writef(w, "%s: %d\n", title.String(sev.String()), counts.Of(sev))
	}
	if d.outdatedVersion {
		cliutil.Writef(w, "New version: %s\n", d.newVersion)
	}
}

func (d *Differ) colorEnabled(w io.Writer) bool {
	if d.color != nil {
		return *d.color
	}
	return cliutil.ColorEnabled(w)
}
