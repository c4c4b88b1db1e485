package keymirror

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/octree"
	"github.com/shapetools/keymirror/scene"
	"github.com/shapetools/keymirror/symmetry"
)

// Engine orchestrates symmetry mapping over host-provided geometry.
// It is stateless between invocations: every operation classifies,
// indexes and matches from scratch.
type Engine struct {
	opts options
	log  *Logger
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	opts := defaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		opts: opts,
		log:  opts.logger,
	}
}

// sides returns the (source, target) side sets of p for direction d.
// Left is the negative side.
func sides(p symmetry.Partition, d Direction) (src, tgt *roaring.Bitmap) {
	if d == DirectionLeftToRight {
		return p.Negative, p.Positive
	}
	return p.Positive, p.Negative
}

// buildIndex constructs the per-operation spatial index over one side.
// The tree snapshots the positions, so later writes to the mesh cannot
// corrupt in-flight queries.
func (e *Engine) buildIndex(points []geom.Vec3, side *roaring.Bitmap) *octree.Tree {
	positions, ids := symmetry.Gather(points, side)
	return octree.Build(positions, ids, func(o *octree.Options) {
		if e.opts.leafCapacity > 0 {
			o.LeafCapacity = e.opts.leafCapacity
		}
	})
}

// correspond builds the correspondence for direction d over points.
func (e *Engine) correspond(points []geom.Vec3, p symmetry.Partition, d Direction, axis geom.Axis, matchTolerance float64) *symmetry.Correspondence {
	src, tgt := sides(p, d)
	index := e.buildIndex(points, tgt)
	return symmetry.BuildCorrespondence(points, src, index, axis, matchTolerance)
}

func basisOf(mesh scene.Mesh) []geom.Vec3 {
	points := make([]geom.Vec3, mesh.Len())
	for i := range points {
		points[i] = mesh.Basis(i)
	}
	return points
}

func positionsOf(mesh scene.Mesh) []geom.Vec3 {
	points := make([]geom.Vec3, mesh.Len())
	for i := range points {
		points[i] = mesh.Position(i)
	}
	return points
}
