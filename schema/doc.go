// Package schema is the typed mirror of the Lottie document format.
//
// Documents are built field by field from a decoded JSON object rather than
// by whole-document unmarshalling, so every failure names the offending key
// and its breadcrumb path. Layers, shapes and assets are closed sums: an
// interface with one concrete type per recognised variant, selected by the
// variant's type tag.
//
// Only fields modelled here survive a parse/Marshal round trip.
package schema
