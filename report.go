package keymirror

import "fmt"

// Direction is the side a mirror operation reads from. Left is the
// negative side of the mirror axis, Right the positive side.
type Direction int

const (
	// DirectionLeftToRight reads the negative side and writes the
	// positive side.
	DirectionLeftToRight Direction = iota
	// DirectionRightToLeft reads the positive side and writes the
	// negative side.
	DirectionRightToLeft
)

// String returns a string representation of the Direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeftToRight:
		return "LeftToRight"
	case DirectionRightToLeft:
		return "RightToLeft"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == DirectionLeftToRight {
		return DirectionRightToLeft
	}
	return DirectionLeftToRight
}

// Report is the structured result of a single mirror operation. It is
// the only user-facing output besides the mutated data itself.
type Report struct {
	// Processed is the number of source points considered.
	Processed int

	// Matched is the number of accepted source-to-target pairs.
	Matched int

	// Unmatched is the number of source points with no counterpart
	// within tolerance.
	Unmatched int

	// Direction is the direction the operation mirrored in. For
	// ambiguous names this is the direction the significance
	// comparison chose.
	Direction Direction

	// TargetName is the name of the morph target the operation
	// created, when it created one.
	TargetName string

	// Warnings carries non-fatal conditions (degenerate axis, no side
	// token, empty selection).
	Warnings []string
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Summary aggregates a MirrorAllMissing run.
type Summary struct {
	Created int
	Skipped int
	Failed  int

	// CreatedNames lists the new targets in creation order.
	CreatedNames []string

	// Warnings aggregates per-target warnings and failure messages.
	Warnings []string
}
