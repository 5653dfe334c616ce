// Package validator checks OpenAPI 3.x documents for internal-consistency
// defects that break downstream code generation.
//
// A document is loaded into the read-only tree of the document package and
// then walked by a fixed set of passes:
//
//   - structure: the openapi, info and paths sections exist, and the declared
//     version starts with the supported prefix
//   - references: every internal $ref resolves by key and index lookup from
//     the root; external refs are reported as warnings
//   - discriminators: every oneOf/anyOf member that declares properties also
//     declares the discriminator's propertyName
//   - required: every name in a schema's required list is a key of its
//     properties, recursively through nested properties
//   - unused: every schema under components.schemas is referenced somewhere
//
// # Quick Start
//
//	result := validator.New().Validate("openapi.yaml")
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e)
//		}
//	}
//
// Or with functional options:
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("openapi.yaml"),
//		validator.WithStrictMode(true),
//	)
//
// # Findings
//
// Document problems never surface as Go errors. Each is a [Finding] with a
// [Severity], a [Kind], a dotted structural path such as
// "components.schemas.Pet.properties.name" and, for YAML input, the source
// line and column. A document that cannot be loaded yields exactly one
// [KindLoadFailure] error and no other findings.
//
// Valid reports whether a document has no errors. [ValidationResult.Passed]
// applies the caller's policy: in strict mode warnings fail the document too.
//
// # Multiple Files
//
// [ValidateFiles] validates a list of files with independent validators and
// returns the results in input order:
//
//	batch, err := validator.ValidateFiles(ctx, paths, validator.WithConcurrency(4))
//	if err != nil {
//		return err
//	}
//	if !batch.Passed(false) {
//		os.Exit(1)
//	}
package validator
