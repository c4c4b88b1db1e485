package symmetry

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/shapetools/keymirror/geom"
)

// DefaultCenterTolerance is the maximum absolute coordinate along the
// mirror axis for a point to be treated as lying on the symmetry plane.
const DefaultCenterTolerance = 1e-4

// Partition divides a point set into the two sides of a symmetry plane
// plus the points on the plane itself. Every index belongs to exactly
// one of the three sets.
type Partition struct {
	Negative *roaring.Bitmap
	Positive *roaring.Bitmap
	Center   *roaring.Bitmap
}

// Classify partitions points by the signed coordinate along axis.
// Points with |coordinate| <= centerTolerance are center; the sign
// decides the rest. A centerTolerance of 0 still classifies exact-zero
// coordinates as center.
func Classify(points []geom.Vec3, axis geom.Axis, centerTolerance float64) Partition {
	p := Partition{
		Negative: roaring.New(),
		Positive: roaring.New(),
		Center:   roaring.New(),
	}

	for i, pt := range points {
		c := axis.Component(pt)
		switch {
		case math.Abs(c) <= centerTolerance:
			p.Center.Add(uint32(i))
		case c < 0:
			p.Negative.Add(uint32(i))
		default:
			p.Positive.Add(uint32(i))
		}
	}

	return p
}

// Degenerate reports whether classification left no points on either
// side of the plane, e.g. because the center tolerance swallowed the
// whole point set. Matching against a degenerate partition yields an
// empty correspondence, not an error.
func (p Partition) Degenerate() bool {
	return p.Negative.IsEmpty() && p.Positive.IsEmpty()
}

// Len returns the total number of classified points.
func (p Partition) Len() uint64 {
	return p.Negative.GetCardinality() + p.Positive.GetCardinality() + p.Center.GetCardinality()
}

// Gather extracts the positions and indices of the points in side, in
// ascending index order, ready for index construction.
func Gather(points []geom.Vec3, side *roaring.Bitmap) ([]geom.Vec3, []uint32) {
	positions := make([]geom.Vec3, 0, side.GetCardinality())
	ids := make([]uint32, 0, side.GetCardinality())

	it := side.Iterator()
	for it.HasNext() {
		i := it.Next()
		positions = append(positions, points[i])
		ids = append(ids, i)
	}

	return positions, ids
}
