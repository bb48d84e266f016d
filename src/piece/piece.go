package piece

import (
	"checkersboard/src/base"
	"checkersboard/src/shape"
	"image/color"
)

// KingHaloScale is the ratio between the halo and the piece it surrounds.
const KingHaloScale = 1.075

// Kind is either Empty or Man.
type Kind interface {
	kind()
}

type Empty struct{}

type Man struct {
	Color base.PieceColor
	King  bool
}

func (Empty) kind() {}
func (Man) kind()   {}

func KindOf(d base.PieceData) Kind {
	if !d.Active {
		return Empty{}
	}
	return Man{Color: d.Color, King: d.King}
}

// Overlay is the square box a piece is drawn in. Shapes use overlay-local
// coordinates and are listed back to front.
type Overlay struct {
	X, Y   float64
	Size   float64
	Shapes []shape.Shape
}

func (o Overlay) Absolute() []shape.Shape {
	out := make([]shape.Shape, len(o.Shapes))
	for i, s := range o.Shapes {
		out[i] = s.Translate(o.X, o.Y)
	}
	return out
}

func (o Overlay) Empty() bool {
	return len(o.Shapes) == 0
}

func fillOf(c base.PieceColor) color.RGBA {
	if c == base.White {
		return shape.White
	}
	return shape.Black
}

// Render composes the shapes for a piece centred on pos.
func Render(data base.PieceData, radius float64, pos base.Point) Overlay {
	o := Overlay{
		X:    pos.X - radius,
		Y:    pos.Y - radius,
		Size: radius * 2,
	}
	center := base.Point{X: radius, Y: radius}

	switch k := KindOf(data).(type) {
	case Empty:
	case Man:
		if k.King {
			o.Shapes = append(o.Shapes, shape.NewCircle(radius*KingHaloScale, center, shape.Crimson))
		}
		o.Shapes = append(o.Shapes, shape.NewCircle(radius, center, fillOf(k.Color)))
	}
	return o
}
