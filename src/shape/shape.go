package shape

import (
	"checkersboard/src/base"
	"image/color"
)

type Kind uint8

const (
	Box Kind = iota
	Circle
)

func (k Kind) String() string {
	switch k {
	case Box:
		return "box"
	case Circle:
		return "circle"
	default:
		return "invalid"
	}
}

var (
	White   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Crimson = color.RGBA{0xdc, 0x14, 0x3c, 0xff}
)

// Shape is a filled rounded box. A circle is a box whose corner radius is
// half its side.
type Shape struct {
	Kind         Kind
	X, Y         float64
	W, H         float64
	CornerRadius float64
	Fill         color.RGBA
}

func NewBox(x, y, w, h, corner float64, fill color.RGBA) Shape {
	return Shape{Kind: Box, X: x, Y: y, W: w, H: h, CornerRadius: corner, Fill: fill}
}

func NewCircle(radius float64, center base.Point, fill color.RGBA) Shape {
	return Shape{
		Kind:         Circle,
		X:            center.X - radius,
		Y:            center.Y - radius,
		W:            radius * 2,
		H:            radius * 2,
		CornerRadius: radius,
		Fill:         fill,
	}
}

func (s Shape) Translate(dx, dy float64) Shape {
	s.X += dx
	s.Y += dy
	return s
}

func (s Shape) Center() base.Point {
	return base.Point{X: s.X + s.W/2, Y: s.Y + s.H/2}
}

// Radius is meaningful for circles only.
func (s Shape) Radius() float64 {
	return s.W / 2
}

// TouchRegion reports activations for the square at Index.
type TouchRegion struct {
	Index   int
	X, Y    float64
	W, H    float64
	Visible bool
}

func (t TouchRegion) Translate(dx, dy float64) TouchRegion {
	t.X += dx
	t.Y += dy
	return t
}
