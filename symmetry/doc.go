// Package symmetry classifies point sets relative to a mirror axis and
// builds tolerance-based correspondences between the two sides.
//
// Classification partitions point indices into negative-side,
// positive-side and center sets by the signed coordinate along the
// mirror axis. A correspondence is then built by reflecting every
// source-side point across the symmetry plane and matching it to the
// nearest target-side point within a distance tolerance.
//
// Both structures are built fresh per operation and are not meant to be
// cached: the geometry they describe may be mutated by the very
// operation that built them.
package symmetry
