package scene

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapetools/keymirror/geom"
)

func TestMemMesh(t *testing.T) {
	points := []geom.Vec3{{X: 1}, {X: 2}}
	m := NewMemMesh(points)

	require.Equal(t, 2, m.Len())
	assert.Equal(t, geom.Vec3{X: 1}, m.Position(0))

	// Writes touch the live positions, never the basis.
	m.SetPosition(0, geom.Vec3{X: -5})
	assert.Equal(t, geom.Vec3{X: -5}, m.Position(0))
	assert.Equal(t, geom.Vec3{X: 1}, m.Basis(0))

	// The mesh snapshots its input.
	points[1] = geom.Vec3{X: 99}
	assert.Equal(t, geom.Vec3{X: 2}, m.Position(1))
}

func TestMemTargetSet(t *testing.T) {
	t.Run("AddAndLookup", func(t *testing.T) {
		s := NewMemTargetSet()

		tgt, err := s.Add("SmileL", 3)
		require.NoError(t, err)
		assert.Equal(t, "SmileL", tgt.Name())
		assert.Equal(t, 3, tgt.Len())
		assert.True(t, tgt.Offset(0).IsZero())

		got, ok := s.Lookup("SmileL")
		require.True(t, ok)
		assert.Equal(t, tgt, got)

		_, ok = s.Lookup("SmileR")
		assert.False(t, ok)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		s := NewMemTargetSet()
		_, err := s.Add("Smile", 1)
		require.NoError(t, err)

		_, err = s.Add("Smile", 1)
		assert.Error(t, err)
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		s := NewMemTargetSet()
		for _, name := range []string{"C", "A", "B"} {
			_, err := s.Add(name, 1)
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"C", "A", "B"}, s.Names())

		s.Remove("A")
		assert.Equal(t, []string{"C", "B"}, s.Names())
	})

	t.Run("Weight", func(t *testing.T) {
		s := NewMemTargetSet()
		tgt, err := s.Add("Smile", 1)
		require.NoError(t, err)

		assert.Zero(t, tgt.Weight())
		tgt.SetWeight(0.75)
		assert.Equal(t, 0.75, tgt.Weight())
	})
}

func TestMemGroupSet(t *testing.T) {
	g := NewMemGroupSet()

	members := UniformGroup(roaring.BitmapOf(3, 1, 7), 1.0)
	require.Equal(t, []GroupMember{{1, 1.0}, {3, 1.0}, {7, 1.0}}, members)

	g.Replace("Mirror_Failed_Vertices", members)
	got, ok := g.Lookup("Mirror_Failed_Vertices")
	require.True(t, ok)
	assert.Equal(t, members, got)

	// Replace overwrites.
	g.Replace("Mirror_Failed_Vertices", nil)
	got, ok = g.Lookup("Mirror_Failed_Vertices")
	require.True(t, ok)
	assert.Empty(t, got)

	g.Remove("Mirror_Failed_Vertices")
	_, ok = g.Lookup("Mirror_Failed_Vertices")
	assert.False(t, ok)
}
