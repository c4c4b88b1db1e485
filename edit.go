package keymirror

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/scene"
)

// ResetPoints zeroes the offsets of the given points on the named morph
// target, reverting them to the basis pose. It returns the number of
// offsets that were actually non-zero.
func (e *Engine) ResetPoints(targets scene.TargetSet, name string, points *roaring.Bitmap) (int, error) {
	t, ok := targets.Lookup(name)
	if !ok {
		return 0, &ErrTargetNotFound{Name: name}
	}
	return resetPoints(t, points), nil
}

// ResetPointsAll zeroes the offsets of the given points on every morph
// target in the set. It returns the total number of offsets reset.
func (e *Engine) ResetPointsAll(targets scene.TargetSet, points *roaring.Bitmap) (int, error) {
	names := targets.Names()
	if len(names) == 0 {
		return 0, ErrNoTargets
	}

	total := 0
	for _, name := range names {
		t, ok := targets.Lookup(name)
		if !ok {
			continue
		}
		total += resetPoints(t, points)
	}
	return total, nil
}

func resetPoints(t scene.MorphTarget, points *roaring.Bitmap) int {
	reset := 0
	it := points.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= t.Len() {
			break
		}
		if t.Offset(i).IsZero() {
			continue
		}
		t.SetOffset(i, geom.Vec3{})
		reset++
	}
	return reset
}
