package scene

import (
	"fmt"

	"github.com/shapetools/keymirror/geom"
)

// Compile-time checks to ensure the in-memory types satisfy the
// provider interfaces.
var _ Mesh = (*MemMesh)(nil)
var _ MorphTarget = (*MemTarget)(nil)
var _ TargetSet = (*MemTargetSet)(nil)
var _ GroupSet = (*MemGroupSet)(nil)

// MemMesh is an in-memory Mesh. The basis pose is captured at
// construction and never mutated afterwards.
type MemMesh struct {
	positions []geom.Vec3
	basis     []geom.Vec3
}

// NewMemMesh creates a mesh whose current positions and basis pose both
// start as copies of points.
func NewMemMesh(points []geom.Vec3) *MemMesh {
	m := &MemMesh{
		positions: make([]geom.Vec3, len(points)),
		basis:     make([]geom.Vec3, len(points)),
	}
	copy(m.positions, points)
	copy(m.basis, points)
	return m
}

func (m *MemMesh) Len() int                      { return len(m.positions) }
func (m *MemMesh) Position(i int) geom.Vec3      { return m.positions[i] }
func (m *MemMesh) SetPosition(i int, v geom.Vec3) { m.positions[i] = v }
func (m *MemMesh) Basis(i int) geom.Vec3         { return m.basis[i] }

// Positions returns the live position slice. Callers must treat it as
// read-only; it is exposed for bulk export.
func (m *MemMesh) Positions() []geom.Vec3 { return m.positions }

// MemTarget is an in-memory MorphTarget.
type MemTarget struct {
	name    string
	offsets []geom.Vec3
	weight  float64
}

func (t *MemTarget) Name() string                  { return t.name }
func (t *MemTarget) Len() int                      { return len(t.offsets) }
func (t *MemTarget) Offset(i int) geom.Vec3        { return t.offsets[i] }
func (t *MemTarget) SetOffset(i int, v geom.Vec3)  { t.offsets[i] = v }
func (t *MemTarget) Weight() float64               { return t.weight }
func (t *MemTarget) SetWeight(w float64)           { t.weight = w }

// MemTargetSet is an in-memory TargetSet preserving creation order.
type MemTargetSet struct {
	order   []string
	targets map[string]*MemTarget
}

// NewMemTargetSet creates an empty target set.
func NewMemTargetSet() *MemTargetSet {
	return &MemTargetSet{
		targets: make(map[string]*MemTarget),
	}
}

func (s *MemTargetSet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

func (s *MemTargetSet) Lookup(name string) (MorphTarget, bool) {
	t, ok := s.targets[name]
	if !ok {
		return nil, false
	}
	return t, true
}

func (s *MemTargetSet) Add(name string, n int) (MorphTarget, error) {
	if _, ok := s.targets[name]; ok {
		return nil, fmt.Errorf("target %q already exists", name)
	}

	t := &MemTarget{
		name:    name,
		offsets: make([]geom.Vec3, n),
	}
	s.targets[name] = t
	s.order = append(s.order, name)
	return t, nil
}

func (s *MemTargetSet) Remove(name string) {
	if _, ok := s.targets[name]; !ok {
		return
	}
	delete(s.targets, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// MemGroupSet is an in-memory GroupSet.
type MemGroupSet struct {
	groups map[string][]GroupMember
}

// NewMemGroupSet creates an empty group set.
func NewMemGroupSet() *MemGroupSet {
	return &MemGroupSet{
		groups: make(map[string][]GroupMember),
	}
}

func (g *MemGroupSet) Replace(name string, members []GroupMember) {
	stored := make([]GroupMember, len(members))
	copy(stored, members)
	g.groups[name] = stored
}

func (g *MemGroupSet) Remove(name string) {
	delete(g.groups, name)
}

func (g *MemGroupSet) Lookup(name string) ([]GroupMember, bool) {
	members, ok := g.groups[name]
	return members, ok
}
