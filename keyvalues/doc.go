// Package keyvalues persists morph-target activation weights as a flat
// name-to-weight mapping.
//
// The payload is a text encoding (JSON by default) optionally wrapped in
// lz4 or zstd compression; a small self-describing header records the
// compression scheme so files written with one setting load with any.
// Offsets are never persisted by this path: loading restores weights by
// name match only.
package keyvalues
