package sidename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		side Side
		base string
	}{
		{"BrowL", SideLeft, "Brow"},
		{"BrowR", SideRight, "Brow"},
		{"Brow.L", SideLeft, "Brow"},
		{"Brow_R", SideRight, "Brow"},
		{"Brow-l", SideLeft, "Brow"},
		{"Smile_r", SideRight, "Smile"},
		{"SmileLeft", SideLeft, "Smile"},
		{"SmileRight", SideRight, "Smile"},
		{"Smile_Left", SideLeft, "Smile"},
		{"Smile.right", SideRight, "Smile"},
		{"Smile-LEFT", SideLeft, "Smile"},
		{"L_Smile", SideLeft, "Smile"},
		{"R.Smile", SideRight, "Smile"},
		{"Left_Brow", SideLeft, "Brow"},
		{"Smile", SideNone, "Smile"},
		{"Smilel", SideNone, "Smilel"},      // bare lowercase letter not recognized
		{"Smileleft", SideNone, "Smileleft"}, // bare lowercase word not recognized
		{"L", SideNone, "L"},                 // token with no base
		{"L_BrowR", SideAmbiguous, "L_BrowR"},
		{"Right-EyelidL", SideAmbiguous, "Right-EyelidL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Detect(tt.name)
			assert.Equal(t, tt.side, m.Side)
			assert.Equal(t, tt.base, m.Base)
		})
	}
}

func TestDetectMatchDetails(t *testing.T) {
	t.Run("SeparatorForm", func(t *testing.T) {
		m := Detect("Brow.L")
		assert.Equal(t, SideLeft, m.Side)
		assert.Equal(t, "L", m.Token)
		assert.Equal(t, ".", m.Separator)
		assert.False(t, m.Leading)
	})

	t.Run("LeadingForm", func(t *testing.T) {
		m := Detect("L_Smile")
		assert.Equal(t, SideLeft, m.Side)
		assert.Equal(t, "L", m.Token)
		assert.Equal(t, "_", m.Separator)
		assert.True(t, m.Leading)
	})

	t.Run("ConsistentEndsAgree", func(t *testing.T) {
		// Both ends claim the same side: decidable, trailing wins.
		m := Detect("L_BrowL")
		assert.Equal(t, SideLeft, m.Side)
		assert.Equal(t, "L_Brow", m.Base)
	})
}

func TestMirrorName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		side   Side
	}{
		{"BrowL", "BrowR", SideLeft},
		{"BrowR", "BrowL", SideRight},
		{"Brow.L", "Brow.R", SideLeft},
		{"Smile_l", "Smile_r", SideLeft},
		{"SmileLeft", "SmileRight", SideLeft},
		{"Smile_Right", "Smile_Left", SideRight},
		{"Smile-LEFT", "Smile-RIGHT", SideLeft},
		{"L_Smile", "R_Smile", SideLeft},
		{"Right.Brow", "Left.Brow", SideRight},
		{"Smile", "Smile", SideNone},
		{"L_BrowR", "L_BrowR", SideAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, side := MirrorName(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.side, side)
		})
	}
}

func TestSide(t *testing.T) {
	assert.Equal(t, SideRight, SideLeft.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
	assert.Equal(t, SideNone, SideNone.Opposite())
	assert.Equal(t, SideAmbiguous, SideAmbiguous.Opposite())

	assert.True(t, SideLeft.Decidable())
	assert.False(t, SideAmbiguous.Decidable())

	assert.Equal(t, "Left", SideLeft.String())
	assert.Equal(t, "Ambiguous", SideAmbiguous.String())
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "Smile_Mirror", Fallback("Smile"))
}

func TestUnique(t *testing.T) {
	t.Run("Free", func(t *testing.T) {
		got := Unique("BrowR", func(string) bool { return false })
		assert.Equal(t, "BrowR", got)
	})

	t.Run("Taken", func(t *testing.T) {
		taken := map[string]bool{"BrowR": true}
		got := Unique("BrowR", func(n string) bool { return taken[n] })
		assert.Equal(t, "BrowR_Mirror", got)
	})

	t.Run("TakenTwice", func(t *testing.T) {
		taken := map[string]bool{"BrowR": true, "BrowR_Mirror": true, "BrowR_Mirror_1": true}
		got := Unique("BrowR", func(n string) bool { return taken[n] })
		assert.Equal(t, "BrowR_Mirror_2", got)
	})
}
