package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestCloudBobsAroundHomeLane(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := NewCloud(rng, 500, 300, OpAdd, 4)

	for tick := uint64(1); tick <= 600; tick++ {
		c.Move(0, tick)
		if math.Abs(c.Y-c.HomeY) > cloudBobAmplitude+1e-9 {
			t.Fatalf("tick %d: y %v strayed more than %v from home %v", tick, c.Y, float64(cloudBobAmplitude), c.HomeY)
		}
	}
}

func TestCloudScrollsLeft(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := NewCloud(rng, 500, 300, OpMultiply, 2)

	c.Move(7, 1)
	if c.X != 493 {
		t.Errorf("x = %v, want 493", c.X)
	}

	c.X = -cloudW + 1
	if c.OffScreen() {
		t.Error("cloud with a sliver on screen is not off screen")
	}
	c.X = -cloudW - 1
	if !c.OffScreen() {
		t.Error("cloud fully past the left edge is off screen")
	}
}

func TestCloudPuffsInsideBody(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := NewCloud(rng, 0, 0, OpAdd, 1)

	if len(c.Puffs) != cloudPuffCount {
		t.Fatalf("puffs = %d, want %d", len(c.Puffs), cloudPuffCount)
	}
	for i, p := range c.Puffs {
		if p.DX < 0 || p.DX > cloudW || p.DY < 0 || p.DY > cloudH {
			t.Errorf("puff %d center (%v, %v) outside cloud body", i, p.DX, p.DY)
		}
		if p.R < 30 || p.R > 50 {
			t.Errorf("puff %d radius %v out of range [30, 50]", i, p.R)
		}
	}
}
