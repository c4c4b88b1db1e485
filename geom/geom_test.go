package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3(t *testing.T) {
	t.Run("Arithmetic", func(t *testing.T) {
		a := Vec3{1, 2, 3}
		b := Vec3{4, 5, 6}

		assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
		assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
		assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	})

	t.Run("Length", func(t *testing.T) {
		assert.InDelta(t, 5.0, Vec3{3, 4, 0}.Length(), 1e-12)
		assert.Zero(t, Vec3{}.Length())
	})

	t.Run("IsZero", func(t *testing.T) {
		assert.True(t, Vec3{}.IsZero())
		assert.False(t, Vec3{X: 1e-9}.IsZero())
	})
}

func TestDistance(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{-2, 4, 0}

	assert.InDelta(t, 25.0, SquaredDistance(a, b), 1e-12)
	assert.InDelta(t, 5.0, Distance(a, b), 1e-12)
}

func TestAxis(t *testing.T) {
	t.Run("Component", func(t *testing.T) {
		v := Vec3{1, 2, 3}
		assert.Equal(t, 1.0, AxisX.Component(v))
		assert.Equal(t, 2.0, AxisY.Component(v))
		assert.Equal(t, 3.0, AxisZ.Component(v))
	})

	t.Run("WithComponent", func(t *testing.T) {
		v := Vec3{1, 2, 3}
		assert.Equal(t, Vec3{9, 2, 3}, AxisX.WithComponent(v, 9))
		assert.Equal(t, Vec3{1, 9, 3}, AxisY.WithComponent(v, 9))
		assert.Equal(t, Vec3{1, 2, 9}, AxisZ.WithComponent(v, 9))
	})

	t.Run("Reflect", func(t *testing.T) {
		v := Vec3{1, 2, 3}
		require.Equal(t, Vec3{-1, 2, 3}, AxisX.Reflect(v))
		require.Equal(t, Vec3{1, -2, 3}, AxisY.Reflect(v))
		require.Equal(t, Vec3{1, 2, -3}, AxisZ.Reflect(v))

		// Reflecting twice is the identity.
		assert.Equal(t, v, AxisX.Reflect(AxisX.Reflect(v)))
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, AxisX.Valid())
		assert.True(t, AxisZ.Valid())
		assert.False(t, Axis(3).Valid())
		assert.False(t, Axis(-1).Valid())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "X", AxisX.String())
		assert.Equal(t, "Unknown(7)", Axis(7).String())
	})
}
