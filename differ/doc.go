/*
Package differ compares two versions of an OpenAPI 3.x document and derives
the next semantic version of the API from the differences.

# Overview

A Differ walks a source (old) and a target (new) [parser.Document] in
lock-step and records every difference it finds as a [DiffItem]: a
JSON-Pointer-like location, a [Severity] and a short message such as
"added", "removed" or "changed".

Every difference is classified by the version segment it bumps:

  - SeverityMajor: changes that can break existing clients (removed paths,
    operations or parameters, type changes, tightened constraints)
  - SeverityMinor: backward-compatible additions (new paths, optional
    parameters, schema properties, servers, components)
  - SeverityPatch: documentation-only changes (descriptions, summaries,
    contact details, readOnly/writeOnly flags)

After the comparison the highest severity present bumps exactly one segment
of the target's info.version: 1.2.3 becomes 2.2.3, 1.3.3 or 1.2.4.

Documents carry their identity in the info-level x-id extension. Two
documents with different x-id values are not versions of the same API and
[Differ.Calculate] refuses to compare them with an
[oaserrors.IdentityError].

# Example

	source, target, err := differ.LoadPair("api-v1.yaml", "api-v2.yaml")
	if err != nil {
		log.Fatal(err)
	}

	d := differ.New(source.Document, target.Document)
	if err := d.Calculate(); err != nil {
		log.Fatal(err)
	}
	d.Print(os.Stdout)
	if d.OutdatedVersion() {
		fmt.Println("next version:", d.NewVersion())
	}

Or, parsing and calculating in one call:

	d, err := differ.DiffWithOptions(
		differ.WithSourceFilePath("api-v1.yaml"),
		differ.WithTargetFilePath("api-v2.yaml"),
	)

# References

$ref values are compared as strings and never dereferenced, so named
reference cycles are never followed.
*/
package differ
