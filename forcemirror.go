package keymirror

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/scene"
	"github.com/shapetools/keymirror/symmetry"
)

// FailedGroupName is the membership group that receives the points a
// force-mirror could not match.
const FailedGroupName = "Mirror_Failed_Vertices"

// ForceMirrorOptions configures a geometry force-mirror.
// Zero-valued tolerances and axis inherit the engine defaults.
type ForceMirrorOptions struct {
	// Axis is the mirror axis.
	Axis geom.Axis

	// MatchTolerance is the maximum distance between a reflected source
	// point and its candidate for the match to be accepted.
	MatchTolerance float64

	// CenterTolerance decides which points lie on the symmetry plane.
	CenterTolerance float64

	// Direction selects which side is authoritative. Ignored when a
	// Selection is given, which derives the direction itself.
	Direction Direction

	// Strict aborts the whole operation, before any mutation, when any
	// source point finds no counterpart within tolerance.
	Strict bool

	// CreateFailedGroup records unmatched source points in the
	// Mirror_Failed_Vertices group. A clean run removes a stale group.
	CreateFailedGroup bool

	// SnapCenterToAxis moves in-scope center points exactly onto the
	// symmetry plane.
	SnapCenterToAxis bool

	// Selection restricts the operation to the given point indices. The
	// side holding more selected points becomes the source side (a tie
	// prefers left), and only the correspondents of the selected points
	// are overwritten. Nil means the whole mesh.
	Selection *roaring.Bitmap
}

func (e *Engine) forceMirrorOptions(optFns []func(o *ForceMirrorOptions)) ForceMirrorOptions {
	fo := ForceMirrorOptions{
		Axis:              e.opts.axis,
		MatchTolerance:    e.opts.matchTolerance,
		CenterTolerance:   e.opts.centerTolerance,
		Direction:         DirectionLeftToRight,
		CreateFailedGroup: true,
		SnapCenterToAxis:  true,
	}
	for _, fn := range optFns {
		fn(&fo)
	}
	return fo
}

// ForceMirror overwrites one side of the mesh with the reflection of
// the other, using current positions rather than the basis pose. Every
// matched target point is moved to the exact reflection of its source,
// making an almost-symmetric mesh perfectly symmetric.
//
// All source positions are read from a snapshot taken before the first
// write, so overlapping reads and writes cannot interfere. groups may
// be nil when the host has no membership groups.
func (e *Engine) ForceMirror(mesh scene.Mesh, groups scene.GroupSet, optFns ...func(o *ForceMirrorOptions)) (*Report, error) {
	fo := e.forceMirrorOptions(optFns)

	if mesh.Len() == 0 {
		return nil, ErrEmptyMesh
	}

	positions := positionsOf(mesh)
	part := symmetry.Classify(positions, fo.Axis, fo.CenterTolerance)

	report := &Report{Direction: fo.Direction}
	if part.Degenerate() {
		report.warnf("degenerate axis %s: all %d points classified as center", fo.Axis, mesh.Len())
	}

	if fo.Selection != nil && fo.Selection.IsEmpty() {
		report.warnf("empty selection: nothing to mirror")
		e.log.LogReport("force mirror", report, nil)
		return report, nil
	}
	if fo.Selection != nil {
		report.Direction = selectionDirection(part, fo.Selection)
	}

	sources, _ := sides(part, report.Direction)
	centers := part.Center
	if fo.Selection != nil {
		sources = roaring.And(sources, fo.Selection)
		centers = roaring.And(centers, fo.Selection)
	}

	_, targetSide := sides(part, report.Direction)
	index := e.buildIndex(positions, targetSide)
	corr := symmetry.BuildCorrespondence(positions, sources, index, fo.Axis, fo.MatchTolerance)

	report.Processed = int(sources.GetCardinality())
	report.Matched = corr.Matched()
	report.Unmatched = int(corr.Unmatched.GetCardinality())

	if fo.Strict && report.Unmatched > 0 {
		err := &ErrStrictUnmatched{Unmatched: report.Unmatched}
		e.log.LogReport("force mirror", report, err)
		return report, err
	}

	// Writes happen only after every read above: positions is a
	// snapshot, so reflecting a target cannot corrupt a later source.
	corr.Pairs(func(s, t uint32) bool {
		mesh.SetPosition(int(t), fo.Axis.Reflect(positions[s]))
		return true
	})

	if fo.SnapCenterToAxis {
		it := centers.Iterator()
		for it.HasNext() {
			i := int(it.Next())
			mesh.SetPosition(i, fo.Axis.WithComponent(positions[i], 0))
		}
	}

	if groups != nil && fo.CreateFailedGroup {
		if report.Unmatched > 0 {
			groups.Replace(FailedGroupName, scene.UniformGroup(corr.Unmatched, 1.0))
			report.warnf("%d unmatched points recorded in group %s", report.Unmatched, FailedGroupName)
		} else {
			groups.Remove(FailedGroupName)
		}
	}

	e.log.LogReport("force mirror", report, nil)
	return report, nil
}

// selectionDirection derives the mirror direction from which side of
// the partition holds more of the selection. A tie prefers left as the
// source side.
func selectionDirection(part symmetry.Partition, selection *roaring.Bitmap) Direction {
	neg := roaring.And(part.Negative, selection).GetCardinality()
	pos := roaring.And(part.Positive, selection).GetCardinality()
	if pos > neg {
		return DirectionRightToLeft
	}
	return DirectionLeftToRight
}
