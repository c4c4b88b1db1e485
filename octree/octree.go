package octree

import (
	"math"

	"github.com/shapetools/keymirror/geom"
)

// Options contains configuration options for tree construction.
type Options struct {
	// LeafCapacity is the number of points a leaf may hold before it is
	// subdivided. Must be > 0.
	LeafCapacity int

	// MaxDepth bounds subdivision so that clusters of coincident points
	// terminate. Leaves at MaxDepth may exceed LeafCapacity.
	MaxDepth int
}

// DefaultOptions contains the default configuration options for the tree.
var DefaultOptions = Options{
	LeafCapacity: 8,
	MaxDepth:     10,
}

const noNode = int32(-1)

// node is one arena entry. Internal nodes address their eight octants by
// arena index; leaves hold indices into the tree's point snapshot.
type node struct {
	center   geom.Vec3
	half     float64 // half-width of the bounding cube
	depth    int16
	leaf     bool
	children [8]int32
	points   []int32
}

// Tree is an exact nearest-neighbor index over a fixed point set.
// It owns a snapshot of the input positions; mutating the original
// geometry after Build does not affect query results.
type Tree struct {
	points []geom.Vec3
	ids    []uint32
	nodes  []node
	opts   Options
}

// Build constructs a tree over points. ids provides the external
// identifier reported for each point; if nil, positional indices are
// used. Build on an empty set yields a tree whose Nearest always
// reports no result.
func Build(points []geom.Vec3, ids []uint32, optFns ...func(o *Options)) *Tree {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.LeafCapacity < 1 {
		opts.LeafCapacity = DefaultOptions.LeafCapacity
	}
	if opts.MaxDepth < 1 {
		opts.MaxDepth = DefaultOptions.MaxDepth
	}

	t := &Tree{
		points: make([]geom.Vec3, len(points)),
		ids:    make([]uint32, len(points)),
		opts:   opts,
	}
	copy(t.points, points)

	if ids != nil {
		copy(t.ids, ids)
	} else {
		for i := range t.ids {
			t.ids[i] = uint32(i)
		}
	}

	if len(points) == 0 {
		return t
	}

	center, half := boundingCube(points)

	t.nodes = append(t.nodes, newNode(center, half, 0))
	for pi := range t.points {
		t.insert(0, int32(pi))
	}

	return t
}

// Len returns the number of indexed points.
func (t *Tree) Len() int {
	return len(t.points)
}

// Nearest returns the indexed point closest to q by Euclidean distance,
// along with that distance. ok is false when the tree is empty.
func (t *Tree) Nearest(q geom.Vec3) (id uint32, dist float64, ok bool) {
	return t.NearestWithin(q, math.Inf(1))
}

// NearestWithin is Nearest restricted to points at distance <= maxDist
// from q. The bound tightens subtree pruning, so passing the caller's
// acceptance tolerance is cheaper than filtering afterwards.
func (t *Tree) NearestWithin(q geom.Vec3, maxDist float64) (id uint32, dist float64, ok bool) {
	if len(t.nodes) == 0 || maxDist < 0 {
		return 0, 0, false
	}

	s := search{
		bound:  maxDist * maxDist,
		bestPi: noNode,
	}
	t.descend(0, q, &s)

	if s.bestPi == noNode {
		return 0, 0, false
	}
	return t.ids[s.bestPi], math.Sqrt(s.bestD2), true
}

// boundingCube returns the center and half-width of a cube covering all
// points, padded by 1% so boundary points land strictly inside.
func boundingCube(points []geom.Vec3) (geom.Vec3, float64) {
	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	center := min.Add(max).Scale(0.5)
	extent := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	half := extent / 2 * 1.01
	if half == 0 {
		// All points coincide; any positive cube works.
		half = 1
	}
	return center, half
}

func newNode(center geom.Vec3, half float64, depth int16) node {
	n := node{
		center: center,
		half:   half,
		depth:  depth,
		leaf:   true,
	}
	for i := range n.children {
		n.children[i] = noNode
	}
	return n
}

// octant maps a position to the child slot covering it:
// bit 2 = +X, bit 1 = +Y, bit 0 = +Z.
func (n *node) octant(p geom.Vec3) int {
	o := 0
	if p.X >= n.center.X {
		o |= 4
	}
	if p.Y >= n.center.Y {
		o |= 2
	}
	if p.Z >= n.center.Z {
		o |= 1
	}
	return o
}

func (t *Tree) insert(ni int32, pi int32) {
	for {
		n := &t.nodes[ni]
		if n.leaf {
			n.points = append(n.points, pi)
			if len(n.points) > t.opts.LeafCapacity && int(n.depth) < t.opts.MaxDepth {
				t.subdivide(ni)
			}
			return
		}
		ni = n.children[n.octant(t.points[pi])]
	}
}

// subdivide splits a leaf into eight octants and redistributes its
// points. Appending to the arena may reallocate it, so the node is
// re-fetched by index after the children are created.
func (t *Tree) subdivide(ni int32) {
	center := t.nodes[ni].center
	half := t.nodes[ni].half / 2
	depth := t.nodes[ni].depth + 1

	var children [8]int32
	for o := 0; o < 8; o++ {
		c := center
		if o&4 != 0 {
			c.X += half
		} else {
			c.X -= half
		}
		if o&2 != 0 {
			c.Y += half
		} else {
			c.Y -= half
		}
		if o&1 != 0 {
			c.Z += half
		} else {
			c.Z -= half
		}
		children[o] = int32(len(t.nodes))
		t.nodes = append(t.nodes, newNode(c, half, depth))
	}

	n := &t.nodes[ni]
	points := n.points
	n.points = nil
	n.leaf = false
	n.children = children

	for _, pi := range points {
		t.insert(children[t.nodes[ni].octant(t.points[pi])], pi)
	}
}

type search struct {
	bound  float64 // squared acceptance radius
	bestD2 float64
	bestPi int32
}

// limit returns the current squared pruning radius.
func (s *search) limit() float64 {
	if s.bestPi == noNode {
		return s.bound
	}
	return math.Min(s.bound, s.bestD2)
}

func (t *Tree) descend(ni int32, q geom.Vec3, s *search) {
	n := &t.nodes[ni]

	if n.leaf {
		for _, pi := range n.points {
			d2 := geom.SquaredDistance(q, t.points[pi])
			if d2 > s.bound {
				continue
			}
			if s.bestPi == noNode || d2 < s.bestD2 {
				s.bestD2 = d2
				s.bestPi = pi
			}
		}
		return
	}

	// Visit the octant containing q first; it is the most likely to
	// tighten the pruning radius early.
	primary := n.octant(q)
	t.descend(n.children[primary], q, s)

	for o, ci := range n.children {
		if o == primary {
			continue
		}
		if t.minSquaredDistance(ci, q) <= s.limit() {
			t.descend(ci, q, s)
		}
	}
}

// minSquaredDistance returns the squared distance from q to the closest
// face of the node's bounding cube, or 0 if q lies inside it.
func (t *Tree) minSquaredDistance(ni int32, q geom.Vec3) float64 {
	n := &t.nodes[ni]
	var d2 float64
	if d := math.Abs(q.X-n.center.X) - n.half; d > 0 {
		d2 += d * d
	}
	if d := math.Abs(q.Y-n.center.Y) - n.half; d > 0 {
		d2 += d * d
	}
	if d := math.Abs(q.Z-n.center.Z) - n.half; d > 0 {
		d2 += d * d
	}
	return d2
}
