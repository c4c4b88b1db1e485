package keymirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/scene"
)

// symmetricMesh builds pairs of points mirrored across the X axis plus
// optional on-plane points. Pair i occupies indices 2i (negative side)
// and 2i+1 (positive side).
func symmetricMesh(pairs, center int) *scene.MemMesh {
	points := make([]geom.Vec3, 0, pairs*2+center)
	for i := 0; i < pairs; i++ {
		x := float64(i + 1)
		points = append(points, geom.Vec3{X: -x, Y: float64(i)})
		points = append(points, geom.Vec3{X: x, Y: float64(i)})
	}
	for i := 0; i < center; i++ {
		points = append(points, geom.Vec3{Y: float64(pairs + i)})
	}
	return scene.NewMemMesh(points)
}

func TestMirrorTarget(t *testing.T) {
	e := New()

	t.Run("LeftToRight", func(t *testing.T) {
		mesh := symmetricMesh(3, 1)
		targets := scene.NewMemTargetSet()

		src, err := targets.Add("SmileL", mesh.Len())
		require.NoError(t, err)
		src.SetOffset(0, geom.Vec3{X: 0.1, Y: 0.2, Z: 0.3})
		src.SetOffset(2, geom.Vec3{X: -0.4, Z: 0.5})

		report, err := e.MirrorTarget(mesh, targets, "SmileL")
		require.NoError(t, err)

		assert.Equal(t, DirectionLeftToRight, report.Direction)
		assert.Equal(t, "SmileR", report.TargetName)
		assert.Equal(t, 3, report.Processed)
		assert.Equal(t, 3, report.Matched)
		assert.Equal(t, 0, report.Unmatched)

		dst, ok := targets.Lookup("SmileR")
		require.True(t, ok)
		assert.Equal(t, geom.Vec3{X: -0.1, Y: 0.2, Z: 0.3}, dst.Offset(1))
		assert.Equal(t, geom.Vec3{X: 0.4, Z: 0.5}, dst.Offset(3))
		assert.True(t, dst.Offset(5).IsZero())
		assert.True(t, dst.Offset(6).IsZero())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		mesh := symmetricMesh(4, 0)
		targets := scene.NewMemTargetSet()

		src, err := targets.Add("BrowL", mesh.Len())
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			src.SetOffset(2*i, geom.Vec3{X: 0.1 * float64(i+1), Y: 0.05, Z: -0.2})
		}

		_, err = e.MirrorTarget(mesh, targets, "BrowL")
		require.NoError(t, err)

		// Mirroring back lands on a disambiguated name because BrowL
		// already exists; the offsets must match the original exactly.
		report, err := e.MirrorTarget(mesh, targets, "BrowR")
		require.NoError(t, err)
		require.Equal(t, "BrowL_Mirror", report.TargetName)

		back, ok := targets.Lookup("BrowL_Mirror")
		require.True(t, ok)
		for i := 0; i < mesh.Len(); i++ {
			assert.Equal(t, src.Offset(i), back.Offset(i), "offset %d", i)
		}
	})

	t.Run("AmbiguousNamePicksLargerDeformation", func(t *testing.T) {
		mesh := symmetricMesh(2, 0)
		targets := scene.NewMemTargetSet()

		src, err := targets.Add("Blow", mesh.Len())
		require.NoError(t, err)
		src.SetOffset(0, geom.Vec3{Y: 0.02}) // negative side, faint
		src.SetOffset(1, geom.Vec3{Y: 0.5})  // positive side, dominant

		report, err := e.MirrorTarget(mesh, targets, "Blow")
		require.NoError(t, err)

		assert.Equal(t, DirectionRightToLeft, report.Direction)
		assert.Equal(t, "Blow_Mirror", report.TargetName)
		assert.NotEmpty(t, report.Warnings)

		dst, ok := targets.Lookup("Blow_Mirror")
		require.True(t, ok)
		assert.Equal(t, geom.Vec3{Y: 0.5}, dst.Offset(0))
		assert.True(t, dst.Offset(1).IsZero())
	})

	t.Run("TiePrefersLeftToRight", func(t *testing.T) {
		mesh := symmetricMesh(2, 0)
		targets := scene.NewMemTargetSet()
		_, err := targets.Add("Neutral", mesh.Len())
		require.NoError(t, err)

		report, err := e.MirrorTarget(mesh, targets, "Neutral")
		require.NoError(t, err)
		assert.Equal(t, DirectionLeftToRight, report.Direction)
	})

	t.Run("TargetNotFound", func(t *testing.T) {
		mesh := symmetricMesh(1, 0)
		targets := scene.NewMemTargetSet()

		_, err := e.MirrorTarget(mesh, targets, "Nope")

		var notFound *ErrTargetNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Nope", notFound.Name)
	})

	t.Run("EmptyMesh", func(t *testing.T) {
		mesh := scene.NewMemMesh(nil)
		targets := scene.NewMemTargetSet()

		_, err := e.MirrorTarget(mesh, targets, "SmileL")
		assert.ErrorIs(t, err, ErrEmptyMesh)
	})

	t.Run("PointCountMismatch", func(t *testing.T) {
		mesh := symmetricMesh(2, 0)
		targets := scene.NewMemTargetSet()
		_, err := targets.Add("SmileL", mesh.Len()+5)
		require.NoError(t, err)

		_, err = e.MirrorTarget(mesh, targets, "SmileL")

		var mismatch *ErrPointCountMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, mesh.Len(), mismatch.Expected)
		assert.Equal(t, mesh.Len()+5, mismatch.Actual)
	})

	t.Run("DegenerateAxisWarns", func(t *testing.T) {
		mesh := scene.NewMemMesh([]geom.Vec3{{Y: 1}, {Y: 2}})
		targets := scene.NewMemTargetSet()
		_, err := targets.Add("FlatL", mesh.Len())
		require.NoError(t, err)

		report, err := e.MirrorTarget(mesh, targets, "FlatL")
		require.NoError(t, err)
		assert.Equal(t, 0, report.Matched)
		assert.NotEmpty(t, report.Warnings)
	})
}

func TestMirrorAllMissing(t *testing.T) {
	e := New()

	t.Run("SkipsExistingSiblings", func(t *testing.T) {
		mesh := symmetricMesh(3, 0)
		targets := scene.NewMemTargetSet()

		smileL, err := targets.Add("SmileL", mesh.Len())
		require.NoError(t, err)
		smileL.SetOffset(0, geom.Vec3{Y: 0.3})

		_, err = targets.Add("SmileR", mesh.Len())
		require.NoError(t, err)

		browL, err := targets.Add("BrowL", mesh.Len())
		require.NoError(t, err)
		browL.SetOffset(2, geom.Vec3{Z: 0.7})

		sum, err := e.MirrorAllMissing(mesh, targets)
		require.NoError(t, err)

		assert.Equal(t, 1, sum.Created)
		assert.Equal(t, 2, sum.Skipped)
		assert.Equal(t, 0, sum.Failed)
		assert.Equal(t, []string{"BrowR"}, sum.CreatedNames)

		browR, ok := targets.Lookup("BrowR")
		require.True(t, ok)
		assert.Equal(t, geom.Vec3{Z: 0.7}, browR.Offset(3))
	})

	t.Run("AmbiguousGetsDirectionSuffix", func(t *testing.T) {
		mesh := symmetricMesh(2, 0)
		targets := scene.NewMemTargetSet()

		puff, err := targets.Add("Puff", mesh.Len())
		require.NoError(t, err)
		puff.SetOffset(0, geom.Vec3{Y: 0.4}) // negative side dominates

		sum, err := e.MirrorAllMissing(mesh, targets)
		require.NoError(t, err)

		assert.Equal(t, 1, sum.Created)
		assert.Equal(t, []string{"Puff_Mirror_R"}, sum.CreatedNames)

		dst, ok := targets.Lookup("Puff_Mirror_R")
		require.True(t, ok)
		assert.Equal(t, geom.Vec3{Y: 0.4}, dst.Offset(1))
	})

	t.Run("CountMismatchIsRecorded", func(t *testing.T) {
		mesh := symmetricMesh(2, 0)
		targets := scene.NewMemTargetSet()
		_, err := targets.Add("BadL", mesh.Len()+1)
		require.NoError(t, err)

		sum, err := e.MirrorAllMissing(mesh, targets)
		require.NoError(t, err)
		assert.Equal(t, 1, sum.Failed)
		assert.NotEmpty(t, sum.Warnings)
	})

	t.Run("NoTargets", func(t *testing.T) {
		mesh := symmetricMesh(1, 0)
		targets := scene.NewMemTargetSet()

		_, err := e.MirrorAllMissing(mesh, targets)
		assert.ErrorIs(t, err, ErrNoTargets)
	})
}
