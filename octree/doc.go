// Package octree provides an exact nearest-neighbor index over a fixed
// set of 3-D points.
//
// The tree is built once over an immutable snapshot of the input
// positions and answers nearest-neighbor queries in sublinear time by
// recursively partitioning space into octants and pruning subtrees whose
// bounding cube cannot contain a closer point than the current best.
//
// Nodes live in a flat arena addressed by index rather than a pointer
// graph, which keeps traversal cache-friendly and avoids ownership
// cycles. Leaves hold a small inline set of point indices; subdivision
// stops at the leaf capacity or at a maximum depth, so degenerate inputs
// (many coincident points) terminate cleanly.
//
// A tree is a snapshot: it copies the input positions and remains valid
// even if the caller mutates the original geometry afterwards. It must
// not be reused across operations that change the underlying point set;
// rebuild instead.
package octree
