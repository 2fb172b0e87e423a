// Package openapidiff compares two versions of an OpenAPI 3 document and
// proposes the next semantic version for the newer one.
//
// # Overview
//
// The module is organised the same way the command line tool uses it:
//
//   - parser: load OpenAPI documents (YAML or JSON) into a read-only model
//     and rewrite info.version in place
//   - differ: walk two documents in lock-step, classify every change as
//     major, minor or patch and compute the bumped version
//   - oaserrors: typed errors shared by both packages
//
// # Quick Start
//
//	d, err := differ.DiffWithOptions(
//		differ.WithSourceFilePath("api-v1.yaml"),
//		differ.WithTargetFilePath("api-v2.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	d.Print(os.Stdout)
//	fmt.Println("next version:", d.NewVersion())
//
// # Severity policy
//
// Removals and tightened constraints are major, additions are minor and
// documentation-only edits are patch. The highest severity found bumps
// exactly one segment of the target document's info.version.
//
// The command line tool lives in cmd/openapi-diff and also serves the
// same comparison as an MCP tool (openapi-diff mcp).
package openapidiff
