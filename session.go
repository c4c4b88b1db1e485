package keymirror

import "github.com/shapetools/keymirror/scene"

// Session is an in-memory weight clipboard. Copy captures the current
// activation weights of a target set, Paste restores them by name onto
// any target set, so weights survive target recreation and can move
// between meshes with matching target names.
type Session struct {
	weights map[string]float64
}

// NewSession creates an empty clipboard.
func NewSession() *Session {
	return &Session{weights: make(map[string]float64)}
}

// Copy captures the weight of every target in the set.
func (s *Session) Copy(targets scene.TargetSet) {
	for _, name := range targets.Names() {
		t, ok := targets.Lookup(name)
		if !ok {
			continue
		}
		s.weights[name] = t.Weight()
	}
}

// Cut captures every weight like Copy, then zeroes the live weights.
func (s *Session) Cut(targets scene.TargetSet) {
	for _, name := range targets.Names() {
		t, ok := targets.Lookup(name)
		if !ok {
			continue
		}
		s.weights[name] = t.Weight()
		t.SetWeight(0)
	}
}

// Paste restores captured weights onto same-named targets and returns
// how many targets were updated. Captured names with no live target are
// silently ignored, as are live targets the clipboard never saw.
func (s *Session) Paste(targets scene.TargetSet) int {
	applied := 0
	for _, name := range targets.Names() {
		w, ok := s.weights[name]
		if !ok {
			continue
		}
		t, ok := targets.Lookup(name)
		if !ok {
			continue
		}
		t.SetWeight(w)
		applied++
	}
	return applied
}

// Len returns the number of captured weights.
func (s *Session) Len() int {
	return len(s.weights)
}

// Clear drops all captured weights.
func (s *Session) Clear() {
	s.weights = make(map[string]float64)
}

// Weights returns a copy of the captured name-to-weight mapping,
// suitable for persisting with the keyvalues package.
func (s *Session) Weights() map[string]float64 {
	out := make(map[string]float64, len(s.weights))
	for name, w := range s.weights {
		out[name] = w
	}
	return out
}

// SetWeights replaces the clipboard contents with a copy of weights,
// typically one loaded from a keyvalues store.
func (s *Session) SetWeights(weights map[string]float64) {
	out := make(map[string]float64, len(weights))
	for name, w := range weights {
		out[name] = w
	}
	s.weights = out
}
