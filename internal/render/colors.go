package render

import "image/color"

// Game palette.
var (
	ColorBG   = color.RGBA{10, 10, 35, 255}    // deep night sky
	ColorMoon = color.RGBA{240, 240, 220, 255} // pale yellow
	ColorShip = color.RGBA{200, 200, 200, 255} // silver
	ColorFire = color.RGBA{255, 140, 0, 255}   // thruster orange
	ColorText = color.RGBA{255, 255, 255, 255}

	// Star colors per power-up kind.
	ColorStarSlow  = color.RGBA{100, 200, 255, 255} // cyan
	ColorStarFix   = color.RGBA{50, 255, 100, 255}  // green
	ColorStarGhost = color.RGBA{200, 100, 255, 255} // purple
	ColorStarRapid = color.RGBA{255, 50, 50, 255}   // red

	ColorCloud      = color.RGBA{230, 230, 250, 255}
	ColorCloudGhost = color.RGBA{100, 100, 120, 255}
	ColorCloudText  = color.RGBA{50, 100, 150, 255}
	ColorCloudDim   = color.RGBA{80, 80, 80, 255}
	ColorShadow     = color.RGBA{50, 50, 80, 255}

	ColorShipGhost = color.RGBA{100, 100, 130, 255}
	ColorHullLine  = color.RGBA{100, 100, 100, 255}
	ColorMoonCrater = color.RGBA{200, 200, 180, 255}

	ColorWarn    = color.RGBA{255, 50, 50, 255}
	ColorFlipped = color.RGBA{255, 100, 255, 255}
	ColorGold    = color.RGBA{255, 215, 0, 255}
	ColorFlag    = color.RGBA{0, 200, 0, 255}
	ColorFaded   = color.RGBA{200, 200, 200, 255}

	// Flight feed colors by priority.
	ColorFeedInfo     = color.RGBA{120, 200, 220, 255}
	ColorFeedBonus    = color.RGBA{120, 255, 140, 255}
	ColorFeedWarning  = color.RGBA{255, 220, 90, 255}
	ColorFeedCritical = color.RGBA{255, 80, 80, 255}
)
