package differ

import (
	"fmt"

	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/oaserrors"
	"github.com/fresha/openapi-diff/parser"
)

// Differ compares a source (old) document with a target (new) document.
//
// Calculate appends to the item log and does not reset it: calling it twice
// on one Differ reports every difference twice. Use a fresh Differ per
// comparison.
type Differ struct {
	source *parser.Document
	target *parser.Document

	items           []DiffItem
	outdatedVersion bool
	newVersion      string

	logger parser.Logger
	color  *bool
}

// New creates a Differ for two documents. Nil documents compare as empty.
// Only the logger and color options apply; source and target options are
// ignored here and belong to DiffWithOptions. An option that rejects its
// argument is skipped and reported as a warning on the configured logger.
func New(source, target *parser.Document, opts ...Option) *Differ {
	cfg, optErr := collectOptions(opts)
	if source == nil {
		source = &parser.Document{}
	}
	if target == nil {
		target = &parser.Document{}
	}
	logger := cfg.logger
	if logger == nil {
		logger = parser.NopLogger{}
	}
	if optErr != nil {
		logger.Warn("differ: ignoring invalid options", "error", optErr)
	}
	return &Differ{
		source: source,
		target: target,
		logger: logger,
		color:  cfg.color,
	}
}

// Calculate compares the documents, appending every difference to the item
// log, then computes the next version.
//
// It returns an *oaserrors.IdentityError, before recording anything, when the
// documents carry different x-id values, and an *oaserrors.VersionError when
// the target's info.version cannot be bumped.
func (d *Differ) Calculate() error {
	if err := d.checkIdentity(); err != nil {
		return err
	}

	passes := []struct {
		name string
		run  func()
	}{
		{"info", d.diffInfo},
		{"servers", d.diffServers},
		{"paths", d.diffPaths},
		{"components", d.diffComponents},
		{"security", d.diffSecurityRequirements},
		{"tags", d.diffTags},
		{"externalDocs", func() {
			d.diffExternalDocs(pathutil.Root.Child("externalDocs"), d.source.ExternalDocs, d.target.ExternalDocs)
		}},
	}
	for _, pass := range passes {
		before := len(d.items)
		pass.run()
		d.logger.Debug("diff pass complete", "pass", pass.name, "items", len(d.items)-before)
	}

	if err := d.calculateNewVersion(); err != nil {
		return fmt.Errorf("differ: %w", err)
	}
	d.logger.Debug("comparison complete",
		"items", len(d.items),
		"outdated", d.outdatedVersion,
		"new_version", d.newVersion,
	)
	return nil
}

// Items returns the recorded differences in the order they were found.
func (d *Differ) Items() []DiffItem {
	return d.items
}

// OutdatedVersion reports whether the target's info.version needs a bump.
func (d *Differ) OutdatedVersion() bool {
	return d.outdatedVersion
}

// NewVersion returns the computed next version. Without differences it is
// the target's info.version verbatim.
func (d *Differ) NewVersion() string {
	return d.newVersion
}

// Counts tallies the recorded items by severity.
func (d *Differ) Counts() Counts {
	return CountItems(d.items)
}

// Report returns the structured result of the comparison.
func (d *Differ) Report() Report {
	items := d.items
	if items == nil {
		items = []DiffItem{}
	}
	return Report{
		Items:           items,
		Counts:          d.Counts(),
		OutdatedVersion: d.outdatedVersion,
		NewVersion:      d.newVersion,
	}
}

func (d *Differ) add(ptr pathutil.Pointer, sev Severity, message string) {
	d.items = append(d.items, newItem(ptr, sev, message))
}

func (d *Differ) checkIdentity() error {
	srcID, _ := d.source.Info.Extension(parser.ExtensionID)
	tgtID, _ := d.target.Info.Extension(parser.ExtensionID)
	if !sameValue(srcID, tgtID) {
		return &oaserrors.IdentityError{
			Extension: parser.ExtensionID,
			Source:    srcID,
			Target:    tgtID,
		}
	}
	return nil
}
