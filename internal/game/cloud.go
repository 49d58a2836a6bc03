package game

import (
	"math"
	"math/rand"
)

const (
	cloudW            = 180
	cloudH            = 120
	cloudBobAmplitude = 40
	cloudPuffCount    = 8
)

// Puff is one of the circles a cloud is drawn from, relative to the
// cloud's top-left corner.
type Puff struct {
	DX, DY, R float64
}

// Cloud is a scrolling obstacle carrying a math challenge.
// It drifts left and bobs on a sine wave around its home lane.
type Cloud struct {
	X, Y  float64 // top-left; Y is the bobbed position
	W, H  float64
	HomeY float64

	Op      Operation
	Operand int

	BobPhase float64
	BobRate  float64
	Puffs    []Puff
}

// NewCloud creates a cloud at (x, y) with the given challenge.
func NewCloud(rng *rand.Rand, x, y float64, op Operation, operand int) *Cloud {
	puffs := make([]Puff, cloudPuffCount)
	for i := range puffs {
		puffs[i] = Puff{
			DX: rng.Float64() * cloudW,
			DY: rng.Float64() * cloudH,
			R:  30 + rng.Float64()*20,
		}
	}
	return &Cloud{
		X:        x,
		Y:        y,
		W:        cloudW,
		H:        cloudH,
		HomeY:    y,
		Op:       op,
		Operand:  operand,
		BobPhase: rng.Float64() * 2 * math.Pi,
		BobRate:  0.02 + rng.Float64()*0.03,
		Puffs:    puffs,
	}
}

// Move scrolls the cloud left and bobs it around its home lane.
func (c *Cloud) Move(scrollSpeed float64, tick uint64) {
	c.X -= scrollSpeed
	c.Y = c.HomeY + math.Sin(float64(tick)*c.BobRate+c.BobPhase)*cloudBobAmplitude
}

// Bounds returns the cloud's collision box.
func (c *Cloud) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// OffScreen reports whether the cloud has scrolled past the left edge.
func (c *Cloud) OffScreen() bool { return c.X+c.W < 0 }
