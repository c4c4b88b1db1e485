package keymirror

import (
	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/symmetry"
)

// DefaultMatchTolerance is the maximum acceptable distance between a
// reflected source point and its nearest candidate for a match.
const DefaultMatchTolerance = 0.001

type options struct {
	logger          *Logger
	axis            geom.Axis
	matchTolerance  float64
	centerTolerance float64
	leafCapacity    int
}

// Option configures an Engine.
type Option func(*options)

// WithLogger configures the engine's logger. If nil is passed, logging
// is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithAxis configures the default mirror axis. The symmetry plane sits
// at coordinate 0 along the axis. Defaults to X.
func WithAxis(a geom.Axis) Option {
	return func(o *options) {
		o.axis = a
	}
}

// WithMatchTolerance configures the default match tolerance.
func WithMatchTolerance(t float64) Option {
	return func(o *options) {
		o.matchTolerance = t
	}
}

// WithCenterTolerance configures the default center tolerance: points
// with |coordinate| <= tolerance along the axis count as lying on the
// symmetry plane.
func WithCenterTolerance(t float64) Option {
	return func(o *options) {
		o.centerTolerance = t
	}
}

// WithLeafCapacity configures the spatial index leaf capacity, mostly
// useful for exercising deep subdivision in tests.
func WithLeafCapacity(n int) Option {
	return func(o *options) {
		o.leafCapacity = n
	}
}

func defaultOptions() options {
	return options{
		logger:          NoopLogger(),
		axis:            geom.AxisX,
		matchTolerance:  DefaultMatchTolerance,
		centerTolerance: symmetry.DefaultCenterTolerance,
		leafCapacity:    0, // octree default
	}
}
