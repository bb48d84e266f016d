package base

import "fmt"

const (
	// playable squares of an 8x8 board, dark squares only
	PlayableSquares int = 32
	BoardDim        int = 8
	HalfRow         int = 4
)

type PieceColor uint8

const (
	White PieceColor = iota
	Black
)

func (c PieceColor) Opposite() PieceColor {
	if c == White {
		return Black
	}
	return White
}

func (c PieceColor) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

func PieceColorFromString(s string) (PieceColor, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
	}
	return White, fmt.Errorf("unknown piece color %q", s)
}

// PieceData is the slot of one playable square. The zero value is an empty slot.
type PieceData struct {
	Active bool
	Color  PieceColor
	King   bool
}

func (p PieceData) String() string {
	if !p.Active {
		return "empty"
	}
	if p.King {
		return p.Color.String() + " king"
	}
	return p.Color.String()
}

type BoardSquare struct {
	Marked bool
}

// Cell keeps the square and its piece under a single index.
type Cell struct {
	Square BoardSquare
	Piece  PieceData
}

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Zip aligns squares and pieces by index. The result is as long as the
// shorter of the two.
func Zip(squares []BoardSquare, pieces []PieceData) []Cell {
	n := len(squares)
	if len(pieces) < n {
		n = len(pieces)
	}
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = Cell{Square: squares[i], Piece: pieces[i]}
	}
	return cells
}

func Unzip(cells []Cell) ([]BoardSquare, []PieceData) {
	squares := make([]BoardSquare, len(cells))
	pieces := make([]PieceData, len(cells))
	for i, c := range cells {
		squares[i] = c.Square
		pieces[i] = c.Piece
	}
	return squares, pieces
}

func IsValidIndex(i int) bool {
	return i >= 0 && i < PlayableSquares
}
