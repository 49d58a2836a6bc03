// Package render provides drawing helpers for the game's vector art.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Point is a polygon vertex in screen space.
type Point struct {
	X, Y float32
}

// FillPolygon fills the polygon described by pts.
func FillPolygon(dst *ebiten.Image, pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := colorScale(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// StrokePolygon outlines the polygon described by pts.
func StrokePolygon(dst *ebiten.Image, pts []Point, width float32, clr color.Color) {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, width, clr, true)
	}
}

// FillCircle draws a filled circle.
func FillCircle(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r, clr, true)
}

// StrokeCircle draws a circle outline.
func StrokeCircle(dst *ebiten.Image, cx, cy, r, width float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, width, clr, true)
}

// FillRect draws a filled axis-aligned rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, true)
}

// StrokeRect draws a rectangle outline.
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(dst, x, y, w, h, width, clr, true)
}

// Line draws a stroked line segment.
func Line(dst *ebiten.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

// FillEllipse approximates a filled ellipse with a polygon.
func FillEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, clr color.Color) {
	const segments = 32
	pts := make([]Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = Point{
			X: cx + rx*float32(math.Cos(a)),
			Y: cy + ry*float32(math.Sin(a)),
		}
	}
	FillPolygon(dst, pts, clr)
}

// StarPoints returns the ten vertices of a five-pointed star centered on
// (cx, cy), rotated by angle degrees.
func StarPoints(cx, cy, outer, inner, angleDeg float64) []Point {
	pts := make([]Point, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := (angleDeg + float64(i)*36) * math.Pi / 180
		pts[i] = Point{
			X: float32(cx + r*math.Cos(a)),
			Y: float32(cy + r*math.Sin(a)),
		}
	}
	return pts
}

// HSV converts hue in degrees and saturation/value in [0, 1] to RGBA.
// Used for the rainbow star.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

func colorScale(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
