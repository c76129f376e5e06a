// Package model is the runtime animation model produced by the importer.
//
// It is plain data. A renderer walks a Composition and samples every Value at
// the frame it is drawing; Sample and the Lerp helpers cover the linear case.
package model
