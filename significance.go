package keymirror

import (
	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/scene"
)

// minEffectiveOffset is the displacement magnitude below which a
// per-point offset is treated as noise rather than deformation.
const minEffectiveOffset = 1e-4

// Significance aggregates per-point displacement magnitude. It is used
// to break ties between candidate mirror directions and to filter out
// transferred targets with no visible effect.
type Significance struct {
	// Max is the largest single displacement.
	Max float64

	// Sum is the aggregate displacement magnitude.
	Sum float64

	// Mean is Sum over the number of points measured (0 for an empty
	// measurement).
	Mean float64

	// Moved counts points displaced beyond the noise floor.
	Moved int
}

// Measure computes the displacement of candidate positions against a
// reference pose. The two slices must be index-aligned; extra elements
// in the longer one are ignored.
func Measure(candidate, reference []geom.Vec3) Significance {
	n := min(len(candidate), len(reference))

	var s Significance
	for i := 0; i < n; i++ {
		d := candidate[i].Sub(reference[i]).Length()
		s.Sum += d
		if d > s.Max {
			s.Max = d
		}
		if d > minEffectiveOffset {
			s.Moved++
		}
	}
	if n > 0 {
		s.Mean = s.Sum / float64(n)
	}
	return s
}

// MeasureTarget computes the significance of a morph target's own
// offsets, i.e. its displacement against the basis pose.
func MeasureTarget(t scene.MorphTarget) Significance {
	var s Significance
	n := t.Len()
	for i := 0; i < n; i++ {
		d := t.Offset(i).Length()
		s.Sum += d
		if d > s.Max {
			s.Max = d
		}
		if d > minEffectiveOffset {
			s.Moved++
		}
	}
	if n > 0 {
		s.Mean = s.Sum / float64(n)
	}
	return s
}

// Significant reports whether the measured deformation reaches the
// caller's threshold anywhere on the mesh.
func (s Significance) Significant(threshold float64) bool {
	return s.Max >= threshold
}
