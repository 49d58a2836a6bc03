package game

import "math/rand"

const starCount = 120

// BackgroundStar is a parallax speck in the night sky.
type BackgroundStar struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// newStarfield scatters stars across the whole screen.
func newStarfield(rng *rand.Rand, n int) []BackgroundStar {
	stars := make([]BackgroundStar, n)
	for i := range stars {
		stars[i] = BackgroundStar{
			X:     rng.Float64() * ScreenW,
			Y:     rng.Float64() * ScreenH,
			Size:  1 + rng.Float64()*2,
			Speed: 0.5 + rng.Float64()*1.5,
		}
	}
	return stars
}

// scrollStars drifts the starfield left, wrapping stars that fall off
// the edge back to the right at a fresh height.
func scrollStars(stars []BackgroundStar, rng *rand.Rand) {
	for i := range stars {
		stars[i].X -= stars[i].Speed
		if stars[i].X < 0 {
			stars[i].X = ScreenW
			stars[i].Y = rng.Float64() * ScreenH
		}
	}
}
