// Package parser provides the OpenAPI 3.x document model used by the differ,
// together with a loader and an in-place version rewriter.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Document.Info.Version)
//
// YAML and JSON are both decoded with go.yaml.in/yaml/v4. Fields starting
// with "x-" and fields the model does not name are kept in the Extra map of
// the enclosing object, and are read with Extension:
//
//	id, ok := result.Document.Info.Extension(parser.ExtensionID)
//
// Only OpenAPI 3.x documents are accepted. Swagger 2.0 input fails with an
// error that matches oaserrors.ErrParse. References are not resolved: a
// $ref is kept as a string in the Ref field of the object that carries it.
//
// # Schema Kinds
//
// [Schema.Kind] classifies every schema into exactly one [SchemaKind].
// Code that compares schemas switches on the kind and only reads the
// constraints that belong to it.
//
// # Validation
//
// [WithValidateStructure] runs the kin-openapi validator over the raw
// document. Failures do not stop parsing; they are appended to
// ParseResult.Errors as *oaserrors.ValidationError.
//
// # Rewriting info.version
//
// [SetInfoVersion] replaces the info.version scalar and leaves every other
// byte untouched, so a release tool can bump the version without
// reformatting the document.
package parser
