package keymirror

import "github.com/shapetools/keymirror/scene"

// FilterInsignificant removes every morph target whose maximum offset
// magnitude stays below threshold, and returns the removed names in
// iteration order. Targets like these typically appear as transfer
// residue: near-zero deformations picked up from a donor mesh.
func (e *Engine) FilterInsignificant(targets scene.TargetSet, threshold float64) []string {
	var removed []string
	for _, name := range targets.Names() {
		t, ok := targets.Lookup(name)
		if !ok {
			continue
		}
		if MeasureTarget(t).Significant(threshold) {
			continue
		}
		targets.Remove(name)
		removed = append(removed, name)
	}

	if len(removed) > 0 {
		e.log.Info("filtered insignificant targets", "removed", len(removed), "threshold", threshold)
	}
	return removed
}
