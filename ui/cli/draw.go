package cli

import (
	"checkersboard/src/base"
	"checkersboard/src/layout"
	"fmt"
	"io"
	"strings"
)

// ANSI-code
const (
	reset    = "\033[0m"
	lightBg  = "\033[47m"
	darkBg   = "\033[100m"
	markBg   = "\033[43m"
	cursorBg = "\033[46m"
	whiteF   = "\033[97m"
	blackF   = "\033[30m"
	dimF     = "\033[90m"
)

func pieceGlyph(p base.PieceData) string {
	switch {
	case !p.Active:
		return " "
	case p.Color == base.White && p.King:
		return "⛁"
	case p.Color == base.White:
		return "⛀"
	case p.King:
		return "⛃"
	default:
		return "⛂"
	}
}

// grid places the playable cells on the 8x8 board, -1 marks light squares.
func grid() [base.BoardDim][base.BoardDim]int {
	var g [base.BoardDim][base.BoardDim]int
	for r := range g {
		for c := range g[r] {
			g[r][c] = -1
		}
	}
	for i := 0; i < base.PlayableSquares; i++ {
		col := layout.Col(i)*2 + layout.Parity(i)
		g[layout.Row(i)][col] = i
	}
	return g
}

// FormatBoard draws cells as an ANSI coloured grid. Cells past the end of
// the slice are drawn as bare dark squares; cursor < 0 hides the cursor.
func FormatBoard(cells []base.Cell, cursor int) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range grid() {
		sb.WriteString("  ")
		for _, i := range row {
			if i < 0 {
				sb.WriteString(lightBg + "   " + reset)
				continue
			}
			bg, fg, glyph := darkBg, dimF, " "
			if i < len(cells) {
				c := cells[i]
				glyph = pieceGlyph(c.Piece)
				if c.Square.Marked {
					bg = markBg
				}
				if c.Piece.Active {
					fg = blackF
					if c.Piece.Color == base.White {
						fg = whiteF
					}
				}
			}
			if i == cursor {
				bg = cursorBg
			}
			sb.WriteString(fmt.Sprintf("%s%s %s %s", bg, fg, glyph, reset))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func PrintBoard(w io.Writer, cells []base.Cell, cursor int) {
	fmt.Fprint(w, FormatBoard(cells, cursor))
}

// MoveCursor steps the cursor across playable squares. Moves off the board
// leave it in place.
func MoveCursor(cursor int, key byte) int {
	row, col := layout.Row(cursor), layout.Col(cursor)
	switch key {
	case 'A': // up
		if row > 0 {
			return cursor - base.HalfRow
		}
	case 'B': // down
		if row < base.BoardDim-1 {
			return cursor + base.HalfRow
		}
	case 'C': // right
		if col < base.HalfRow-1 {
			return cursor + 1
		}
	case 'D': // left
		if col > 0 {
			return cursor - 1
		}
	}
	return cursor
}
