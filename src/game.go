package src

import (
	"checkersboard/src/base"
	"checkersboard/src/logx"
	"errors"
	"fmt"
)

var (
	ErrIndexRange = errors.New("square index out of range")
	ErrPieceCount = errors.New("wrong number of pieces")
)

// Move relocates the piece at Index to End and clears every Captured square.
type Move struct {
	Index    int
	End      int
	Captured []int
	Promoted bool
}

func (m Move) String() string {
	return fmt.Sprintf("%d-%d", m.Index, m.End)
}

// Game owns the board state a Board renders. It places and moves pieces on
// request; it does not judge whether a move is legal.
type Game struct {
	cells       []base.Cell
	playerColor base.PieceColor
	selected    int
	logger      logx.Logger
}

func NewGame(logger logx.Logger) *Game {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &Game{
		cells:    make([]base.Cell, base.PlayableSquares),
		selected: -1,
		logger:   logger,
	}
}

// DefaultSetup returns the opening position for player. Enemy pieces sit on
// 6, 14 and 17, player pieces fill 23..31.
func DefaultSetup(player base.PieceColor) []base.PieceData {
	enemy := player.Opposite()
	tiles := make([]base.PieceData, 0, base.PlayableSquares)
	for i := 0; i < base.PlayableSquares; i++ {
		switch {
		case i == 6 || i == 14 || i == 17:
			tiles = append(tiles, base.PieceData{Active: true, Color: enemy})
		case i < 23:
			tiles = append(tiles, base.PieceData{})
		default:
			tiles = append(tiles, base.PieceData{Active: true, Color: player})
		}
	}
	return tiles
}

func (g *Game) StartNewGame(color base.PieceColor) {
	g.logger.Infof("start new game as %s", color)
	g.playerColor = color
	for i, p := range DefaultSetup(color) {
		g.cells[i] = base.Cell{Piece: p}
	}
	g.selected = -1
}

// LoadPieces replaces the pieces and clears every mark.
func (g *Game) LoadPieces(pieces []base.PieceData, player base.PieceColor) error {
	if len(pieces) != base.PlayableSquares {
		return fmt.Errorf("%w: got %d, want %d", ErrPieceCount, len(pieces), base.PlayableSquares)
	}
	g.playerColor = player
	for i, p := range pieces {
		g.cells[i] = base.Cell{Piece: p}
	}
	g.selected = -1
	return nil
}

func (g *Game) PlayerColor() base.PieceColor {
	return g.playerColor
}

// Cells returns a copy of the current state.
func (g *Game) Cells() []base.Cell {
	out := make([]base.Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Game) Piece(i int) (base.PieceData, error) {
	if !base.IsValidIndex(i) {
		return base.PieceData{}, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	return g.cells[i].Piece, nil
}

func (g *Game) Selected() int {
	return g.selected
}

// MovePiece performs mv without checking it.
func (g *Game) MovePiece(mv Move) error {
	if !base.IsValidIndex(mv.Index) || !base.IsValidIndex(mv.End) {
		return fmt.Errorf("%w: move %s", ErrIndexRange, mv)
	}
	for _, c := range mv.Captured {
		if !base.IsValidIndex(c) {
			return fmt.Errorf("%w: captured %d", ErrIndexRange, c)
		}
	}
	g.logger.Infof("move %s", mv)

	start := g.cells[mv.Index].Piece
	start.King = start.King || mv.Promoted
	g.cells[mv.Index].Piece = base.PieceData{}
	g.cells[mv.End].Piece = start
	for _, c := range mv.Captured {
		g.cells[c].Piece = base.PieceData{}
	}
	return nil
}

func (g *Game) MarkSquares(indices []int) error {
	for _, i := range indices {
		if !base.IsValidIndex(i) {
			return fmt.Errorf("%w: %d", ErrIndexRange, i)
		}
	}
	for _, i := range indices {
		g.cells[i].Square.Marked = true
	}
	return nil
}

func (g *Game) ResetSquares() {
	for i := range g.cells {
		g.cells[i].Square = base.BoardSquare{}
	}
}

func (g *Game) PieceIsEmpty(i int) (bool, error) {
	p, err := g.Piece(i)
	if err != nil {
		return false, err
	}
	return !p.Active, nil
}

func (g *Game) PieceIsPlayer(i int) (bool, error) {
	p, err := g.Piece(i)
	if err != nil {
		return false, err
	}
	return p.Active && p.Color == g.playerColor, nil
}

func (g *Game) PieceIsEnemy(i int) (bool, error) {
	p, err := g.Piece(i)
	if err != nil {
		return false, err
	}
	return p.Active && p.Color != g.playerColor, nil
}

func (g *Game) count(pred func(base.PieceData) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c.Piece) {
			n++
		}
	}
	return n
}

func (g *Game) PlayerPieceCount() int {
	return g.count(func(p base.PieceData) bool { return p.Active && p.Color == g.playerColor })
}

func (g *Game) EnemyPieceCount() int {
	return g.count(func(p base.PieceData) bool { return p.Active && p.Color != g.playerColor })
}

func (g *Game) EmptyPieceCount() int {
	return g.count(func(p base.PieceData) bool { return !p.Active })
}

// promotes reports whether a piece of color c reaching end becomes a king.
// The player advances toward index 0, the enemy toward 31.
func (g *Game) promotes(c base.PieceColor, end int) bool {
	if c == g.playerColor {
		return end < base.HalfRow
	}
	return end >= base.PlayableSquares-base.HalfRow
}

// HandleClick is the square-clicked handler for a free-moving board. The
// first click selects an active piece, a click on an empty square moves the
// selection there, a second click on the selection cancels it. It returns
// true when the state changed.
func (g *Game) HandleClick(i int) (bool, error) {
	p, err := g.Piece(i)
	if err != nil {
		return false, err
	}

	switch {
	case g.selected == i:
		g.logger.Debugf("deselect %d", i)
		g.selected = -1
		g.ResetSquares()
		return true, nil
	case p.Active:
		g.logger.Debugf("select %d", i)
		g.selected = i
		g.ResetSquares()
		g.cells[i].Square.Marked = true
		return true, nil
	case g.selected >= 0:
		from := g.cells[g.selected].Piece
		mv := Move{Index: g.selected, End: i, Promoted: !from.King && g.promotes(from.Color, i)}
		if err := g.MovePiece(mv); err != nil {
			return false, err
		}
		g.selected = -1
		g.ResetSquares()
		return true, nil
	default:
	}
	return false, nil
}
