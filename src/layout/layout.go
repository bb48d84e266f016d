// Package layout maps a playable-square index to its place on the board.
//
// Index i addresses the 32 dark squares row by row, four per row. Even rows
// start flush left, odd rows start one square to the right.
package layout

import (
	"checkersboard/src/base"
	"math"
)

const (
	// share of the board length left after the border is removed
	InnerRatio = 0.96
)

func Col(i int) int {
	return i % base.HalfRow
}

func Row(i int) int {
	return int(math.Floor(float64(i) / float64(base.HalfRow)))
}

func Parity(i int) int {
	if i%(base.HalfRow*2) < base.HalfRow {
		return 0
	}
	return 1
}

// IndexToPoint returns the top-left corner of square i in board-local
// coordinates. The index is not bounded here.
func IndexToPoint(i int, lengthNoBorder, lengthBorder float64) base.Point {
	sq := lengthNoBorder / float64(base.BoardDim)
	x := float64(Col(i))*(sq*2) + float64(Parity(i))*sq + lengthBorder/2
	y := float64(Row(i))*sq + lengthBorder/2
	return base.Point{X: x, Y: y}
}

type Dimensions struct {
	BoardLength float64
}

func (d Dimensions) LengthNoBorder() float64 {
	return d.BoardLength * InnerRatio
}

func (d Dimensions) LengthBorder() float64 {
	return d.BoardLength - d.LengthNoBorder()
}

func (d Dimensions) SquareSize() float64 {
	return d.LengthNoBorder() / float64(base.BoardDim)
}

func (d Dimensions) Cell(i int) base.Point {
	return IndexToPoint(i, d.LengthNoBorder(), d.LengthBorder())
}

func (d Dimensions) CellCenter(i int) base.Point {
	half := d.SquareSize() / 2
	return d.Cell(i).Add(base.Point{X: half, Y: half})
}

// IndexAt is the inverse of Cell: it returns the playable index whose square
// contains p, or -1 for light squares and points off the grid.
func (d Dimensions) IndexAt(p base.Point) int {
	sq := d.SquareSize()
	if sq <= 0 {
		return -1
	}
	off := d.LengthBorder() / 2
	fx := (p.X - off) / sq
	fy := (p.Y - off) / sq
	if fx < 0 || fy < 0 || fx >= float64(base.BoardDim) || fy >= float64(base.BoardDim) {
		return -1
	}
	col, row := int(fx), int(fy)
	if col%2 != row%2 {
		return -1
	}
	return row*base.HalfRow + col/2
}
