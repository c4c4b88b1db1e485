package keymirror

import (
	"golang.org/x/sync/errgroup"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/scene"
	"github.com/shapetools/keymirror/sidename"
	"github.com/shapetools/keymirror/symmetry"
)

// MirrorOptions configures a single morph-target mirror operation.
// Zero-valued fields inherit the engine defaults.
type MirrorOptions struct {
	// Axis is the mirror axis.
	Axis geom.Axis

	// MatchTolerance is the maximum distance between a reflected source
	// point and its candidate for the match to be accepted.
	MatchTolerance float64

	// CenterTolerance decides which points lie on the symmetry plane.
	CenterTolerance float64
}

func (e *Engine) mirrorOptions(optFns []func(o *MirrorOptions)) MirrorOptions {
	mo := MirrorOptions{
		Axis:            e.opts.axis,
		MatchTolerance:  e.opts.matchTolerance,
		CenterTolerance: e.opts.centerTolerance,
	}
	for _, fn := range optFns {
		fn(&mo)
	}
	return mo
}

// MirrorTarget creates the opposite-side sibling of the named morph
// target: every matched point on the destination side receives the
// source point's offset with the axis component negated.
//
// The mirror direction follows the side detected in name. When the name
// has no decidable side, both directions are evaluated and the one
// producing the larger aggregate deformation wins (an exact tie prefers
// left-to-right). The destination name replaces the side token, falls
// back to a "_Mirror" suffix when there is none, and is disambiguated
// against existing targets.
func (e *Engine) MirrorTarget(mesh scene.Mesh, targets scene.TargetSet, name string, optFns ...func(o *MirrorOptions)) (*Report, error) {
	mo := e.mirrorOptions(optFns)

	if mesh.Len() == 0 {
		return nil, ErrEmptyMesh
	}
	src, ok := targets.Lookup(name)
	if !ok {
		return nil, &ErrTargetNotFound{Name: name}
	}
	if src.Len() != mesh.Len() {
		return nil, &ErrPointCountMismatch{Expected: mesh.Len(), Actual: src.Len()}
	}

	basis := basisOf(mesh)
	part := symmetry.Classify(basis, mo.Axis, mo.CenterTolerance)

	report := &Report{}
	if part.Degenerate() {
		report.warnf("degenerate axis %s: all %d points classified as center", mo.Axis, mesh.Len())
	}

	m := sidename.Detect(name)

	var corr *symmetry.Correspondence
	switch m.Side {
	case sidename.SideLeft:
		report.Direction = DirectionLeftToRight
	case sidename.SideRight:
		report.Direction = DirectionRightToLeft
	default:
		report.warnf("no decidable side in %q; direction chosen by larger deformation", name)
		report.Direction, corr = e.pickDirection(basis, part, src, mo)
	}
	if corr == nil {
		corr = e.correspond(basis, part, report.Direction, mo.Axis, mo.MatchTolerance)
	}

	newName := sidename.Fallback(name)
	if m.Side.Decidable() {
		newName = m.Mirrored()
	}
	newName = sidename.Unique(newName, func(n string) bool {
		_, taken := targets.Lookup(n)
		return taken
	})

	dst, err := targets.Add(newName, mesh.Len())
	if err != nil {
		return nil, err
	}
	applyOffsets(src, dst, corr, mo.Axis)

	srcSide, _ := sides(part, report.Direction)
	report.Processed = int(srcSide.GetCardinality())
	report.Matched = corr.Matched()
	report.Unmatched = int(corr.Unmatched.GetCardinality())
	report.TargetName = newName

	e.log.WithTarget(name).LogReport("mirror target", report, nil)
	return report, nil
}

// MirrorAllMissing mirrors every morph target that lacks a same-named
// sibling on the opposite side. Targets whose expected sibling already
// exists are skipped, as are targets created by this very run. Failures
// on individual targets are recorded, not fatal.
func (e *Engine) MirrorAllMissing(mesh scene.Mesh, targets scene.TargetSet, optFns ...func(o *MirrorOptions)) (*Summary, error) {
	mo := e.mirrorOptions(optFns)

	if mesh.Len() == 0 {
		return nil, ErrEmptyMesh
	}
	names := targets.Names()
	if len(names) == 0 {
		return nil, ErrNoTargets
	}

	basis := basisOf(mesh)
	part := symmetry.Classify(basis, mo.Axis, mo.CenterTolerance)

	exists := func(n string) bool {
		_, taken := targets.Lookup(n)
		return taken
	}

	sum := &Summary{}
	created := make(map[string]bool)

	create := func(src scene.MorphTarget, corr *symmetry.Correspondence, newName string) {
		newName = sidename.Unique(newName, exists)
		dst, err := targets.Add(newName, mesh.Len())
		if err != nil {
			sum.Failed++
			sum.Warnings = append(sum.Warnings, err.Error())
			return
		}
		applyOffsets(src, dst, corr, mo.Axis)
		created[newName] = true
		sum.Created++
		sum.CreatedNames = append(sum.CreatedNames, newName)
	}

	// Side-designated targets first, so their freshly created siblings
	// are visible when the ambiguous ones are considered.
	type pending struct {
		name  string
		match sidename.Match
	}
	var sided, unsided []pending
	for _, n := range names {
		m := sidename.Detect(n)
		if m.Side.Decidable() {
			sided = append(sided, pending{n, m})
		} else {
			unsided = append(unsided, pending{n, m})
		}
	}

	for _, p := range sided {
		if exists(p.match.Mirrored()) {
			sum.Skipped++
			continue
		}
		src, ok := targets.Lookup(p.name)
		if !ok || src.Len() != mesh.Len() {
			sum.Failed++
			sum.Warnings = append(sum.Warnings, "target "+p.name+": offset count mismatch")
			continue
		}

		dir := DirectionLeftToRight
		if p.match.Side == sidename.SideRight {
			dir = DirectionRightToLeft
		}
		corr := e.correspond(basis, part, dir, mo.Axis, mo.MatchTolerance)
		create(src, corr, p.match.Mirrored())
	}

	for _, p := range unsided {
		if created[p.name] {
			sum.Skipped++
			continue
		}
		src, ok := targets.Lookup(p.name)
		if !ok || src.Len() != mesh.Len() {
			sum.Failed++
			sum.Warnings = append(sum.Warnings, "target "+p.name+": offset count mismatch")
			continue
		}

		dir, corr := e.pickDirection(basis, part, src, mo)
		toSide := "R"
		if dir == DirectionRightToLeft {
			toSide = "L"
		}
		create(src, corr, p.name+sidename.MirrorSuffix+"_"+toSide)
	}

	e.log.Info("mirror all missing completed",
		"created", sum.Created,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
	)
	return sum, nil
}

// pickDirection evaluates both mirror directions for a target whose
// name decides neither, and returns the one whose matched offsets carry
// the larger aggregate magnitude. An exact tie prefers left-to-right.
// The two evaluations only read geometry, so they run concurrently and
// are joined before any decision is made.
func (e *Engine) pickDirection(points []geom.Vec3, part symmetry.Partition, src scene.MorphTarget, mo MirrorOptions) (Direction, *symmetry.Correspondence) {
	var corrs [2]*symmetry.Correspondence
	var sums [2]float64

	g := new(errgroup.Group)
	for i, dir := range []Direction{DirectionLeftToRight, DirectionRightToLeft} {
		i, dir := i, dir
		g.Go(func() error {
			corrs[i] = e.correspond(points, part, dir, mo.Axis, mo.MatchTolerance)
			sums[i] = matchedOffsetSum(src, corrs[i])
			return nil
		})
	}
	_ = g.Wait() // evaluations cannot fail

	if sums[1] > sums[0] {
		return DirectionRightToLeft, corrs[1]
	}
	return DirectionLeftToRight, corrs[0]
}

// matchedOffsetSum aggregates the offset magnitudes a correspondence
// would actually transfer.
func matchedOffsetSum(src scene.MorphTarget, corr *symmetry.Correspondence) float64 {
	var sum float64
	corr.Pairs(func(s, _ uint32) bool {
		sum += src.Offset(int(s)).Length()
		return true
	})
	return sum
}

// applyOffsets writes each matched source offset to its target index
// with the axis component negated, mirroring the displacement rather
// than relocating it. Offsets below the noise floor are skipped, so
// unmatched and undeformed destination points keep a zero offset.
func applyOffsets(src, dst scene.MorphTarget, corr *symmetry.Correspondence, axis geom.Axis) int {
	applied := 0
	corr.Pairs(func(s, t uint32) bool {
		off := src.Offset(int(s))
		if off.Length() < minEffectiveOffset {
			return true
		}
		dst.SetOffset(int(t), axis.Reflect(off))
		applied++
		return true
	})
	return applied
}
