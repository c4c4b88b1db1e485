// Package geom provides the small set of 3-D vector and axis primitives
// shared by the keymirror engine packages.
//
// Distances are Euclidean. Squared variants are provided for hot paths
// (octree pruning, nearest-neighbor comparison) where the square root is
// unnecessary.
package geom
