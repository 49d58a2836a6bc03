package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Faces bundles the three text sizes the game draws with.
type Faces struct {
	UI    font.Face // HUD labels, feed, instructions (28pt)
	Cloud font.Face // challenge text on clouds (45pt)
	Big   font.Face // banners (60pt)
}

// NewFaces builds the game's text faces from the embedded Go Bold font.
func NewFaces() (*Faces, error) {
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	sizes := []float64{28, 45, 60}
	faces := make([]font.Face, len(sizes))
	for i, size := range sizes {
		faces[i], err = opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
		}
	}
	return &Faces{UI: faces[0], Cloud: faces[1], Big: faces[2]}, nil
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, x-b.Min.X, y-b.Min.Y, clr)
}

// DrawTextCentered draws s centered on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-b.Dx()/2-b.Min.X, cy-b.Dy()/2-b.Min.Y, clr)
}

// TextWidth returns the pixel width of s in the given face.
func TextWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}
