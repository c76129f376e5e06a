// Package lottie is the foundation of golottie, a Lottie/Bodymovin animation
// loader.
//
// The root package provides:
//
//   - Breadcrumb, the diagnostic path threaded through schema parsing
//   - typed field extraction over decoded JSON objects (Extract*)
//   - the error model (*Error, Issues, Code* constants, sentinels)
//   - input sources for JSON (go-json by default, encoding/json optional)
//     and YAML, with duplicate-key, depth and size enforcement
//
// Typed documents live in the schema package, the flattened runtime model in
// model, and the conversion between the two in importer.
//
// Typical usage:
//
//	doc, err := schema.FromBytes(data)
//	comp, err := importer.Import(doc)
//
//	// or in one step
//	comp, err := importer.ImportBytes(data)
package lottie
