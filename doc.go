// Package oascheck finds internal-consistency defects in OpenAPI 3.x documents
// that would break downstream code generation.
//
// The module is organized as a small set of packages:
//
//   - document: read-only document model (mappings, sequences, scalars) and
//     the YAML/JSON loaders that build it
//   - validator: the validation passes and the report they aggregate into
//   - oaserrors: structured error types usable with errors.Is and errors.As
//
// # Checks
//
// The validator runs five independent passes over one loaded document:
//
//   - structure: the openapi, info and paths sections exist, and the declared
//     version is a 3.x version (a mismatch is only a warning)
//   - references: every internal $ref pointer ("#/...") resolves by key or
//     index lookup from the document root; external refs are reported as
//     warnings because they cannot be checked locally
//   - discriminators: for every oneOf/anyOf union with a discriminator, each
//     member that declares properties also declares the discriminating property
//   - required properties: each name in a schema's required list is declared in
//     that schema's properties, recursively through nested property schemas
//   - unused schemas: every entry under components.schemas is referenced by at
//     least one $ref somewhere in the document
//
// Errors make a document invalid. Warnings are advisory unless strict mode is
// requested, in which case callers treat them as failures too.
//
// # Quick Start
//
//	v := validator.New()
//	result := v.Validate("openapi.yaml")
//	for _, e := range result.Errors {
//		fmt.Println(e)
//	}
//	if !result.Passed(false) {
//		os.Exit(1)
//	}
//
// Validate several files at once:
//
//	batch, err := validator.ValidateFiles(ctx, []string{"a.yaml", "b.json"},
//		validator.WithConcurrency(4),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !batch.Passed(true) {
//		os.Exit(1)
//	}
//
// # Command Line
//
// The oascheck binary wraps the validator:
//
//	oascheck validate openapi.yaml
//	oascheck validate --strict --format json api/*.yaml
//	oascheck mcp
package oascheck
