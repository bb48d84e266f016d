package board

import (
	"checkersboard/src/base"
	"checkersboard/src/piece"
	"checkersboard/src/shape"
)

// CellView is one square of the board with its touch region.
type CellView struct {
	Index  int
	Marked bool
	Shape  shape.Shape
	Touch  shape.TouchRegion
}

type PieceView struct {
	Index   int
	Data    base.PieceData
	Overlay piece.Overlay
}

// Scene is the composed board. Geometry is board-local; Origin places the
// board in its parent.
type Scene struct {
	Origin     base.Point
	Length     float64
	Border     shape.Shape
	Background shape.Shape
	Cells      []CellView
	Pieces     []PieceView
}

// Compose rebuilds the scene from the current inputs.
func (b *Board) Compose() Scene {
	dim := b.Dimensions()
	border := dim.LengthBorder()
	sq := dim.SquareSize()
	inset := b.length * BackgroundInset

	sc := Scene{
		Origin:     b.Origin(),
		Length:     b.length,
		Border:     shape.NewBox(0, 0, b.length, b.length, border, b.style.BorderColor),
		Background: shape.NewBox(inset, inset, b.length-inset*2, b.length-inset*2, border*BackgroundCorner, b.style.BackColor),
		Cells:      make([]CellView, 0, len(b.squares)),
		Pieces:     make([]PieceView, 0, len(b.pieces)),
	}

	for i, s := range b.squares {
		p := dim.Cell(i)
		fill := b.style.SquareColor
		if s.Marked {
			fill = b.style.MarkedColor
		}
		sc.Cells = append(sc.Cells, CellView{
			Index:  i,
			Marked: s.Marked,
			Shape:  shape.NewBox(p.X, p.Y, sq, sq, 0, fill),
			Touch:  shape.TouchRegion{Index: i, X: p.X, Y: p.Y, W: sq, H: sq, Visible: b.regionVisible(i)},
		})
	}

	radius := b.PieceRadius()
	for i, d := range b.pieces {
		sc.Pieces = append(sc.Pieces, PieceView{
			Index:   i,
			Data:    d,
			Overlay: piece.Render(d, radius, dim.CellCenter(i)),
		})
	}
	return sc
}

// Shapes lists every shape in parent coordinates, back to front.
func (sc Scene) Shapes() []shape.Shape {
	dx, dy := sc.Origin.X, sc.Origin.Y
	out := []shape.Shape{sc.Border.Translate(dx, dy), sc.Background.Translate(dx, dy)}
	for _, c := range sc.Cells {
		out = append(out, c.Shape.Translate(dx, dy))
	}
	for _, p := range sc.Pieces {
		if p.Overlay.Empty() {
			continue
		}
		for _, s := range p.Overlay.Absolute() {
			out = append(out, s.Translate(dx, dy))
		}
	}
	return out
}

// Regions lists the touch regions in parent coordinates.
func (sc Scene) Regions() []shape.TouchRegion {
	out := make([]shape.TouchRegion, 0, len(sc.Cells))
	for _, c := range sc.Cells {
		out = append(out, c.Touch.Translate(sc.Origin.X, sc.Origin.Y))
	}
	return out
}

// Local converts shapes to board-local coordinates, origin at (0, 0).
func (sc Scene) Local() []shape.Shape {
	shifted := sc
	shifted.Origin = base.Point{}
	return shifted.Shapes()
}
