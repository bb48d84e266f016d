package board

import (
	"checkersboard/src/base"
	"checkersboard/src/layout"
	"checkersboard/src/logx"
	"errors"
	"fmt"
	"image/color"
)

const (
	// piece radius is half a square minus this many length units
	PieceInset = 5.0
	// background inset per side, as a share of the board length
	BackgroundInset = 0.02
	// background corner, as a share of the border thickness
	BackgroundCorner = 0.75
)

var ErrSequenceLength = errors.New("board sequence length mismatch")

type Style struct {
	SquareColor color.RGBA
	BackColor   color.RGBA
	MarkedColor color.RGBA
	BorderColor color.RGBA
}

// Board owns the board geometry inputs and the square/piece sequences given
// by its host. It never changes those sequences on its own.
type Board struct {
	style   Style
	length  float64
	center  base.Point
	pieces  []base.PieceData
	squares []base.BoardSquare
	visible bool
	version uint64

	onClick func(index int)
	logger  logx.Logger
}

func NewBoard(style Style, length float64, center base.Point, logger logx.Logger) *Board {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &Board{
		style:   style,
		length:  length,
		center:  center,
		visible: true,
		logger:  logger,
	}
}

// ---- inputs ----

func (b *Board) SetStyle(s Style) {
	b.style = s
	b.touch()
}

func (b *Board) SetLength(l float64) {
	b.length = l
	b.touch()
}

func (b *Board) SetCenter(c base.Point) {
	b.center = c
	b.touch()
}

func (b *Board) SetVisible(v bool) {
	b.visible = v
	b.touch()
}

// SetPieces replaces the piece sequence wholesale.
func (b *Board) SetPieces(p []base.PieceData) {
	b.pieces = p
	b.touch()
}

func (b *Board) SetSquares(s []base.BoardSquare) {
	b.squares = s
	b.touch()
}

// SetCells replaces both sequences from one index-aligned slice.
func (b *Board) SetCells(cells []base.Cell) {
	b.squares, b.pieces = base.Unzip(cells)
	b.touch()
}

// SetPiece updates one entry in place. Out of range indices are ignored.
func (b *Board) SetPiece(i int, d base.PieceData) bool {
	if i < 0 || i >= len(b.pieces) {
		return false
	}
	b.pieces[i] = d
	b.touch()
	return true
}

func (b *Board) SetSquare(i int, s base.BoardSquare) bool {
	if i < 0 || i >= len(b.squares) {
		return false
	}
	b.squares[i] = s
	b.touch()
	return true
}

func (b *Board) OnSquareClicked(f func(index int)) {
	b.onClick = f
}

func (b *Board) touch() {
	b.version++
}

// ---- getters ----

func (b *Board) Style() Style {
	return b.style
}

func (b *Board) Length() float64 {
	return b.length
}

func (b *Board) Center() base.Point {
	return b.center
}

func (b *Board) Visible() bool {
	return b.visible
}

func (b *Board) Pieces() []base.PieceData {
	return b.pieces
}

func (b *Board) Squares() []base.BoardSquare {
	return b.squares
}

func (b *Board) Cells() []base.Cell {
	return base.Zip(b.squares, b.pieces)
}

func (b *Board) Dimensions() layout.Dimensions {
	return layout.Dimensions{BoardLength: b.length}
}

// Version changes whenever an input changes.
func (b *Board) Version() uint64 {
	return b.version
}

// Origin is the top-left corner of the board in parent coordinates.
func (b *Board) Origin() base.Point {
	return base.Point{X: b.center.X - b.length/2, Y: b.center.Y - b.length/2}
}

func (b *Board) PieceRadius() float64 {
	return b.Dimensions().SquareSize()/2 - PieceInset
}

// Validate checks that both sequences cover every playable square.
// Compose does not require it.
func (b *Board) Validate() error {
	if len(b.squares) != base.PlayableSquares {
		return fmt.Errorf("%w: squares has %d entries, want %d", ErrSequenceLength, len(b.squares), base.PlayableSquares)
	}
	if len(b.pieces) != base.PlayableSquares {
		return fmt.Errorf("%w: pieces has %d entries, want %d", ErrSequenceLength, len(b.pieces), base.PlayableSquares)
	}
	return nil
}

// Check runs Validate for a host. Outside strict mode a mismatch is only
// logged and Check returns nil.
func (b *Board) Check(strict bool) error {
	err := b.Validate()
	if err == nil {
		return nil
	}
	if strict {
		return err
	}
	b.logger.Warnf("board state: %v", err)
	return nil
}

// ---- events ----

func (b *Board) regionVisible(i int) bool {
	if !b.visible || i < 0 || i >= len(b.squares) {
		return false
	}
	return b.Dimensions().SquareSize() > 0
}

// Activate fires square-clicked for index i if that cell is visible.
func (b *Board) Activate(i int) bool {
	if !b.regionVisible(i) {
		b.logger.Debugf("ignore activation of hidden square %d", i)
		return false
	}
	b.logger.Debugf("square %d clicked", i)
	if b.onClick != nil {
		b.onClick(i)
	}
	return true
}

// ClickAt maps p, given in parent coordinates, to the square under it and
// activates that square. Light squares and points off the grid give -1.
func (b *Board) ClickAt(p base.Point) (int, bool) {
	i := b.Dimensions().IndexAt(p.Sub(b.Origin()))
	if i < 0 || i >= len(b.squares) {
		return -1, false
	}
	return i, b.Activate(i)
}
