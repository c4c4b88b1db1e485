package symmetry

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/octree"
)

// Correspondence is a partial injective mapping from source point
// indices to target point indices, plus the set of sources that found
// no acceptable target.
type Correspondence struct {
	// pairs maps source index to target index for accepted matches.
	pairs map[uint32]uint32

	// sources preserves the deterministic iteration order of Pairs.
	sources *roaring.Bitmap

	// Unmatched holds source indices with no target within tolerance,
	// including sources that lost a claim race for a shared target.
	Unmatched *roaring.Bitmap
}

// BuildCorrespondence matches every source-side point to its mirror
// candidate on the target side.
//
// For each source index (in ascending order) the point is reflected
// across the symmetry plane of axis and the index is queried for the
// nearest target point. The match is accepted iff its distance is
// <= matchTolerance and the target has not already been claimed:
// duplicate claims are resolved first-claim-wins, deterministically by
// source index order, and the losing source is recorded as unmatched
// rather than silently overwriting the earlier pair.
//
// BuildCorrespondence only reads point positions. Writes derived from
// the mapping are the caller's responsibility and must happen after all
// source positions have been read, since source and target may share a
// buffer.
func BuildCorrespondence(points []geom.Vec3, sources *roaring.Bitmap, index *octree.Tree, axis geom.Axis, matchTolerance float64) *Correspondence {
	c := &Correspondence{
		pairs:     make(map[uint32]uint32),
		sources:   roaring.New(),
		Unmatched: roaring.New(),
	}
	claimed := roaring.New()

	it := sources.Iterator()
	for it.HasNext() {
		src := it.Next()
		reflected := axis.Reflect(points[src])

		tgt, _, ok := index.NearestWithin(reflected, matchTolerance)
		if !ok || claimed.Contains(tgt) {
			c.Unmatched.Add(src)
			continue
		}

		claimed.Add(tgt)
		c.pairs[src] = tgt
		c.sources.Add(src)
	}

	return c
}

// Target returns the matched target index for src.
func (c *Correspondence) Target(src uint32) (uint32, bool) {
	tgt, ok := c.pairs[src]
	return tgt, ok
}

// Matched returns the number of accepted pairs.
func (c *Correspondence) Matched() int {
	return len(c.pairs)
}

// Pairs iterates the accepted (source, target) pairs in ascending
// source order, matching the order in which claims were made.
func (c *Correspondence) Pairs(yield func(src, tgt uint32) bool) {
	it := c.sources.Iterator()
	for it.HasNext() {
		src := it.Next()
		if !yield(src, c.pairs[src]) {
			return
		}
	}
}

// Targets returns the set of claimed target indices.
func (c *Correspondence) Targets() *roaring.Bitmap {
	targets := roaring.New()
	for _, tgt := range c.pairs {
		targets.Add(tgt)
	}
	return targets
}
