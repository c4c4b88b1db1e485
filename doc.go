// Package keymirror provides a spatial symmetry-mapping engine for mesh
// point clouds and their morph targets (blend shapes / shape keys).
//
// Given a point set and a declared mirror axis, the engine classifies
// points into left/right/center partitions, builds a nearest-neighbor
// correspondence between the two sides within a distance tolerance, and
// applies that correspondence to copy, reflect or synchronize per-point
// data across the symmetry plane.
//
// # Quick Start
//
//	e := keymirror.New()
//
//	// Create the opposite-side sibling of a named morph target.
//	report, err := e.MirrorTarget(mesh, targets, "SmileL")
//
//	// Force a mesh's own geometry into bilateral symmetry.
//	report, err = e.ForceMirror(mesh, groups)
//
// # Conventions
//
// "Left" is the negative side of the mirror axis and "Right" the
// positive side, matching the usual character-modeling convention of a
// character facing -Y with X as the mirror axis.
//
// Every operation is synchronous and runs to completion; validation
// failures surface before any mutation begins. Spatial indexes and
// correspondences are built fresh per invocation and never cached, since
// the geometry they describe may be mutated by the very operation that
// built them.
package keymirror
