package keymirror

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMesh is returned when an operation is invoked on a mesh
	// with zero points.
	ErrEmptyMesh = errors.New("mesh has no points")

	// ErrNoTargets is returned when an operation needs morph targets
	// and the set is empty.
	ErrNoTargets = errors.New("no morph targets")
)

// ErrTargetNotFound indicates a named morph target does not exist.
type ErrTargetNotFound struct {
	Name string
}

func (e *ErrTargetNotFound) Error() string {
	return fmt.Sprintf("morph target %q not found", e.Name)
}

// ErrPointCountMismatch indicates a morph target whose offset count
// disagrees with the mesh point count.
type ErrPointCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrPointCountMismatch) Error() string {
	return fmt.Sprintf("point count mismatch: mesh has %d, target has %d", e.Expected, e.Actual)
}

// ErrStrictUnmatched is returned by strict-mode operations when any
// source point found no counterpart within tolerance. The operation
// aborts before mutating anything.
type ErrStrictUnmatched struct {
	Unmatched int
}

func (e *ErrStrictUnmatched) Error() string {
	return fmt.Sprintf("strict mode: %d points found no counterpart within tolerance", e.Unmatched)
}
