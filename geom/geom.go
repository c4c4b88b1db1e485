package geom

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector. It is used both for absolute point
// positions and for per-point displacement offsets.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Axis identifies the coordinate axis that defines a symmetry plane.
// The plane sits at coordinate 0 along the axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns a string representation of the Axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// Valid reports whether a names one of the three coordinate axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Component returns the coordinate of v along a.
func (a Axis) Component(v Vec3) float64 {
	switch a {
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return v.X
	}
}

// WithComponent returns v with the coordinate along a replaced by c.
func (a Axis) WithComponent(v Vec3, c float64) Vec3 {
	switch a {
	case AxisY:
		v.Y = c
	case AxisZ:
		v.Z = c
	default:
		v.X = c
	}
	return v
}

// Reflect returns v mirrored across the symmetry plane of a, i.e. with
// the coordinate along a negated.
func (a Axis) Reflect(v Vec3) Vec3 {
	return a.WithComponent(v, -a.Component(v))
}
