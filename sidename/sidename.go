package sidename

import (
	"fmt"
	"strings"
)

// Side is the left/right designation detected in an identifier.
type Side int

const (
	// SideNone means no side token was found.
	SideNone Side = iota
	// SideLeft and SideRight are decidable designations.
	SideLeft
	SideRight
	// SideAmbiguous means conflicting tokens were found; the caller
	// must not resolve it silently to one side.
	SideAmbiguous
)

// String returns a string representation of the Side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideAmbiguous:
		return "Ambiguous"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Opposite returns the mirrored side. None and Ambiguous map to
// themselves.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// Decidable reports whether s is a concrete left or right designation.
func (s Side) Decidable() bool {
	return s == SideLeft || s == SideRight
}

// Match describes where and how a side token was found in a name.
type Match struct {
	Side      Side
	Base      string // name with token and separator removed
	Token     string // token as written, e.g. "L", "left", "Right"
	Separator string // ".", "_", "-" or "" for direct suffixes
	Leading   bool   // token at the start of the name
}

// MirrorSuffix is appended to destination names when no side token is
// decidable, and again to resolve collisions.
const MirrorSuffix = "_Mirror"

var separators = []string{".", "_", "-"}

// wordTokens and letterTokens map each recognized token to its
// opposite-side equivalent in the same case style.
var wordTokens = map[string]string{
	"Left": "Right", "left": "right", "LEFT": "RIGHT",
	"Right": "Left", "right": "left", "RIGHT": "LEFT",
}

var letterTokens = map[string]string{
	"L": "R", "l": "r",
	"R": "L", "r": "l",
}

func tokenSide(token string) Side {
	switch token[0] {
	case 'L', 'l':
		return SideLeft
	default:
		return SideRight
	}
}

// Detect scans name for a side token. If the leading and trailing ends
// both match but disagree on the side, the result has SideAmbiguous and
// an empty Base.
func Detect(name string) Match {
	trailing, hasTrailing := detectTrailing(name)
	leading, hasLeading := detectLeading(name)

	switch {
	case hasTrailing && hasLeading && trailing.Side != leading.Side:
		return Match{Side: SideAmbiguous, Base: name}
	case hasTrailing:
		return trailing
	case hasLeading:
		return leading
	default:
		return Match{Side: SideNone, Base: name}
	}
}

func detectTrailing(name string) (Match, bool) {
	// Separator forms take priority over bare suffixes.
	for _, tokens := range []map[string]string{wordTokens, letterTokens} {
		for token := range tokens {
			for _, sep := range separators {
				if base, ok := strings.CutSuffix(name, sep+token); ok && base != "" {
					return Match{
						Side:      tokenSide(token),
						Base:      base,
						Token:     token,
						Separator: sep,
					}, true
				}
			}
		}
	}

	// Bare word suffix; lowercase words are not recognized without a
	// separator ("Smileleft" is just a word).
	for _, token := range []string{"Left", "Right", "LEFT", "RIGHT"} {
		if base, ok := strings.CutSuffix(name, token); ok && base != "" && !strings.HasSuffix(base, "_") && !strings.HasSuffix(base, ".") && !strings.HasSuffix(base, "-") {
			return Match{
				Side:  tokenSide(token),
				Base:  base,
				Token: token,
			}, true
		}
	}

	// Bare letter suffix, uppercase only ("SmileL", not "Smilel").
	for _, token := range []string{"L", "R"} {
		if base, ok := strings.CutSuffix(name, token); ok && base != "" && !strings.HasSuffix(base, "_") && !strings.HasSuffix(base, ".") && !strings.HasSuffix(base, "-") {
			return Match{
				Side:  tokenSide(token),
				Base:  base,
				Token: token,
			}, true
		}
	}

	return Match{}, false
}

func detectLeading(name string) (Match, bool) {
	// Leading tokens require a separator; "LSmile" is indistinguishable
	// from an ordinary word.
	for _, tokens := range []map[string]string{wordTokens, letterTokens} {
		for token := range tokens {
			for _, sep := range separators {
				if base, ok := strings.CutPrefix(name, token+sep); ok && base != "" {
					return Match{
						Side:      tokenSide(token),
						Base:      base,
						Token:     token,
						Separator: sep,
						Leading:   true,
					}, true
				}
			}
		}
	}
	return Match{}, false
}

// Mirrored returns the sibling identifier with the matched token
// replaced by its opposite-side equivalent, preserving case style,
// separator and position. For None and Ambiguous matches the base name
// is returned unchanged; callers that require a destination name must
// treat that as a failure.
func (m Match) Mirrored() string {
	if !m.Side.Decidable() {
		return m.Base
	}

	opposite, ok := wordTokens[m.Token]
	if !ok {
		opposite = letterTokens[m.Token]
	}

	if m.Leading {
		return opposite + m.Separator + m.Base
	}
	return m.Base + m.Separator + opposite
}

// MirrorName is the one-shot form of Detect + Mirrored. The returned
// side is the side detected in name, not the side of the result.
func MirrorName(name string) (string, Side) {
	m := Detect(name)
	if !m.Side.Decidable() {
		return name, m.Side
	}
	return m.Mirrored(), m.Side
}

// Fallback returns the destination name used when no side is decidable.
func Fallback(name string) string {
	return name + MirrorSuffix
}

// Unique disambiguates name against existing identifiers, first with
// MirrorSuffix and then with numeric suffixes.
func Unique(name string, exists func(string) bool) string {
	if !exists(name) {
		return name
	}
	name += MirrorSuffix
	if !exists(name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if !exists(candidate) {
			return candidate
		}
	}
}
