// Package meshdoc reads and writes the JSON scene documents the CLI
// operates on: a point cloud with an optional set of morph targets.
package meshdoc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/scene"
)

// Point is one 3-D coordinate triple.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Target is a named morph target: one offset per mesh point.
type Target struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight,omitempty"`
	Offsets []Point `json:"offsets"`
}

// Document is the on-disk scene layout.
type Document struct {
	Points  []Point  `json:"points"`
	Targets []Target `json:"targets,omitempty"`
}

// Load reads a scene document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes the scene document to path as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Mesh materializes the point cloud as an in-memory mesh.
func (d *Document) Mesh() *scene.MemMesh {
	points := make([]geom.Vec3, len(d.Points))
	for i, p := range d.Points {
		points[i] = geom.Vec3{X: p.X, Y: p.Y, Z: p.Z}
	}
	return scene.NewMemMesh(points)
}

// TargetSet materializes the morph targets. Targets whose offset count
// disagrees with the point count are rejected.
func (d *Document) TargetSet() (*scene.MemTargetSet, error) {
	set := scene.NewMemTargetSet()
	for _, src := range d.Targets {
		if len(src.Offsets) != len(d.Points) {
			return nil, fmt.Errorf("target %q: %d offsets for %d points", src.Name, len(src.Offsets), len(d.Points))
		}

		t, err := set.Add(src.Name, len(d.Points))
		if err != nil {
			return nil, err
		}
		t.SetWeight(src.Weight)
		for i, o := range src.Offsets {
			t.SetOffset(i, geom.Vec3{X: o.X, Y: o.Y, Z: o.Z})
		}
	}
	return set, nil
}

// FromScene rebuilds a document from live scene state, preserving
// target creation order.
func FromScene(mesh *scene.MemMesh, targets scene.TargetSet) *Document {
	doc := &Document{
		Points: make([]Point, mesh.Len()),
	}
	for i := range doc.Points {
		p := mesh.Position(i)
		doc.Points[i] = Point{X: p.X, Y: p.Y, Z: p.Z}
	}

	for _, name := range targets.Names() {
		t, ok := targets.Lookup(name)
		if !ok {
			continue
		}

		out := Target{
			Name:    name,
			Weight:  t.Weight(),
			Offsets: make([]Point, t.Len()),
		}
		for i := range out.Offsets {
			o := t.Offset(i)
			out.Offsets[i] = Point{X: o.X, Y: o.Y, Z: o.Z}
		}
		doc.Targets = append(doc.Targets, out)
	}
	return doc
}
