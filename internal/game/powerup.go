package game

import (
	"math"
	"math/rand"
)

// PowerUpKind identifies a collectible star.
type PowerUpKind uint8

const (
	PowerSlowMotion PowerUpKind = iota // cyan: halves scroll speed
	PowerRepair                        // green: rounds the value, calms the speed
	PowerGhost                         // purple: clouds become passable
	PowerInvert                        // rainbow: up and down swap
	PowerRapidFire                     // red: everything comes fast

	powerUpKindCount // must stay last
)

// Label returns the HUD text shown while the effect is active.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerSlowMotion:
		return "SLOW MOTION"
	case PowerRepair:
		return "REPAIR"
	case PowerGhost:
		return "GHOST MODE"
	case PowerInvert:
		return "CONTROLS FLIPPED!"
	case PowerRapidFire:
		return "RAPID FIRE!!!"
	default:
		return "?"
	}
}

const powerUpSize = 40

// PowerUp is a collectible star drifting leftwards.
type PowerUp struct {
	X, Y  float64 // top-left of the 40x40 collision box
	Kind  PowerUpKind
	Angle float64 // spin, degrees
	Hue   float64 // rainbow cycle for the invert star, degrees
}

// Move scrolls the star left, spinning it as it goes.
func (p *PowerUp) Move(scrollSpeed float64) {
	p.X -= scrollSpeed
	p.Angle += 5
	p.Hue = math.Mod(p.Hue+5, 360)
}

// Bounds returns the star's collision box.
func (p *PowerUp) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: powerUpSize, H: powerUpSize}
}

// OffScreen reports whether the star has scrolled past the left edge.
func (p *PowerUp) OffScreen() bool { return p.X+powerUpSize < 0 }

// rollPowerUpKind picks a star kind. Once the run has sped up past 1.5x
// the base scroll speed the odds shift toward the merciful stars and
// RapidFire stops appearing.
func rollPowerUpKind(rng *rand.Rand, speedingUp bool) PowerUpKind {
	roll := rng.Float64()
	if speedingUp {
		switch {
		case roll < 0.50:
			return PowerRepair
		case roll < 0.70:
			return PowerSlowMotion
		case roll < 0.85:
			return PowerGhost
		default:
			return PowerInvert
		}
	}
	switch {
	case roll < 0.25:
		return PowerSlowMotion
	case roll < 0.50:
		return PowerRepair
	case roll < 0.70:
		return PowerGhost
	case roll < 0.90:
		return PowerInvert
	default:
		return PowerRapidFire
	}
}
