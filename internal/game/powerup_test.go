package game

import (
	"math/rand"
	"testing"
)

func TestRollPowerUpKindWhileSpeeding(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		if kind := rollPowerUpKind(rng, true); kind == PowerRapidFire {
			t.Fatal("rapid fire must not drop while the run is already fast")
		}
	}
}

func TestRollPowerUpKindCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seen := map[PowerUpKind]bool{}
	for i := 0; i < 1000; i++ {
		seen[rollPowerUpKind(rng, false)] = true
	}
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		if !seen[k] {
			t.Errorf("kind %v never rolled at normal speed", k.Label())
		}
	}
}

func TestPowerUpMove(t *testing.T) {
	pu := &PowerUp{X: 500, Y: 200, Hue: 358}

	pu.Move(6)
	if pu.X != 494 {
		t.Errorf("x = %v, want 494", pu.X)
	}
	if pu.Angle != 5 {
		t.Errorf("angle = %v, want 5", pu.Angle)
	}
	if pu.Hue != 3 {
		t.Errorf("hue should wrap at 360, got %v", pu.Hue)
	}

	pu.X = -powerUpSize - 1
	if !pu.OffScreen() {
		t.Error("star past the left edge is off screen")
	}
}

func TestPowerUpLabels(t *testing.T) {
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		if k.Label() == "?" {
			t.Errorf("kind %d has no label", k)
		}
	}
}
