package scene

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/shapetools/keymirror/geom"
)

// Mesh exposes a point set with a reference ("basis") pose. Positions
// are addressed by stable index in [0, Len).
type Mesh interface {
	// Len returns the number of points.
	Len() int

	// Position returns the current position of point i.
	Position(i int) geom.Vec3

	// SetPosition overwrites the current position of point i.
	SetPosition(i int, v geom.Vec3)

	// Basis returns the reference-pose position of point i. The basis
	// is read-only to the engine.
	Basis(i int) geom.Vec3
}

// MorphTarget is a named deviation from the basis pose: one offset
// vector per point, applied scaled by an activation weight in [0, 1].
type MorphTarget interface {
	// Name returns the target's identifier.
	Name() string

	// Len returns the number of per-point offsets, which always equals
	// the owning mesh's point count.
	Len() int

	// Offset returns the offset vector of point i.
	Offset(i int) geom.Vec3

	// SetOffset overwrites the offset vector of point i.
	SetOffset(i int, v geom.Vec3)

	// Weight returns the activation weight.
	Weight() float64

	// SetWeight sets the activation weight.
	SetWeight(w float64)
}

// TargetSet is a named collection of morph targets with stable ordering.
type TargetSet interface {
	// Names returns the target names in creation order.
	Names() []string

	// Lookup returns the target with the given name.
	Lookup(name string) (MorphTarget, bool)

	// Add creates a new target with n zero offsets. It fails if the
	// name is already taken.
	Add(name string, n int) (MorphTarget, error)

	// Remove deletes the named target. Removing an absent name is a
	// no-op.
	Remove(name string)
}

// GroupMember is one (point index, weight) entry of a membership group.
type GroupMember struct {
	Index  uint32
	Weight float64
}

// GroupSet manages named membership groups, used for "failed to mirror"
// reporting. Replace overwrites any existing group of the same name.
type GroupSet interface {
	Replace(name string, members []GroupMember)
	Remove(name string)
	Lookup(name string) ([]GroupMember, bool)
}

// UniformGroup builds the member list for a whole index set at a single
// weight, in ascending index order.
func UniformGroup(ids *roaring.Bitmap, weight float64) []GroupMember {
	members := make([]GroupMember, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		members = append(members, GroupMember{Index: it.Next(), Weight: weight})
	}
	return members
}
