// Package importer compiles a parsed schema.Lottie into a model.Composition.
//
// Each composition (the document and every precomposition asset) is converted
// on its own: layers get positional indices, parents and mattes are resolved
// through a fresh ind map, animatable properties become model.Value, gradient
// stops are rebuilt and bezier paths become point triples.
package importer
