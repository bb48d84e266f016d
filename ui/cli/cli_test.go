package cli

import (
	"bufio"
	"bytes"
	"checkersboard/src"
	"checkersboard/src/base"
	"checkersboard/src/board"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T) (*CLIProcessing, *src.Game, *bytes.Buffer) {
	t.Helper()
	g := src.NewGame(nil)
	g.StartNewGame(base.White)
	b := board.NewBoard(board.Style{}, 800, base.Point{X: 400, Y: 400}, nil)
	c := NewCLI(g, b, nil)
	out := &bytes.Buffer{}
	c.out = out
	return c, g, out
}

func TestFormatBoard(t *testing.T) {
	g := src.NewGame(nil)
	g.StartNewGame(base.White)
	s := FormatBoard(g.Cells(), 31)

	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	require.Len(t, lines, base.BoardDim)
	assert.Equal(t, 9, strings.Count(s, "⛀"))
	assert.Equal(t, 3, strings.Count(s, "⛂"))
	assert.Equal(t, 1, strings.Count(s, cursorBg))
	assert.Equal(t, 32, strings.Count(s, lightBg))
	assert.Equal(t, 0, strings.Count(FormatBoard(g.Cells(), -1), cursorBg))
}

func TestFormatBoardShortSequence(t *testing.T) {
	cells := []base.Cell{{Piece: base.PieceData{Active: true, Color: base.Black, King: true}}}
	s := FormatBoard(cells, -1)
	assert.Equal(t, 1, strings.Count(s, "⛃"))
	assert.Equal(t, 32, strings.Count(s, darkBg)+strings.Count(s, markBg))
}

func TestMoveCursor(t *testing.T) {
	assert.Equal(t, 0, MoveCursor(0, 'A'))
	assert.Equal(t, 4, MoveCursor(0, 'B'))
	assert.Equal(t, 1, MoveCursor(0, 'C'))
	assert.Equal(t, 0, MoveCursor(0, 'D'))
	assert.Equal(t, 31, MoveCursor(31, 'B'))
	assert.Equal(t, 31, MoveCursor(31, 'C'))
	assert.Equal(t, 27, MoveCursor(31, 'A'))
	assert.Equal(t, 5, MoveCursor(5, 'x'))
}

func TestRunLinesMovesPiece(t *testing.T) {
	c, g, out := newTestCLI(t)
	in := bufio.NewScanner(strings.NewReader("23\n19\nq\n22\n"))
	require.NoError(t, c.runLines(in))

	p, err := g.Piece(19)
	require.NoError(t, err)
	assert.True(t, p.Active)
	p, err = g.Piece(23)
	require.NoError(t, err)
	assert.False(t, p.Active)
	p, err = g.Piece(22)
	require.NoError(t, err)
	assert.False(t, p.Active, "input after q is not read")

	assert.Equal(t, g.Cells(), c.board.Cells())
	assert.Contains(t, out.String(), "selected: -1")
}

func TestRunLinesBadInput(t *testing.T) {
	c, g, out := newTestCLI(t)
	before := g.Cells()
	require.NoError(t, c.runLines(bufio.NewScanner(strings.NewReader("abc\n40\n\n"))))

	assert.Contains(t, out.String(), "Invalid square: abc")
	assert.Contains(t, out.String(), "No square 40")
	assert.Equal(t, before, g.Cells())
}

func TestRunLinesNewGame(t *testing.T) {
	c, g, _ := newTestCLI(t)
	require.NoError(t, c.runLines(bufio.NewScanner(strings.NewReader("23\n19\nnew\n"))))

	p, err := g.Piece(23)
	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.Equal(t, -1, g.Selected())
}
