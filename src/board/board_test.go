package board

import (
	"checkersboard/src/base"
	"checkersboard/src/shape"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStyle = Style{
	SquareColor: color.RGBA{0x10, 0x20, 0x30, 0xff},
	BackColor:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MarkedColor: color.RGBA{0xff, 0xcc, 0x00, 0xff},
	BorderColor: color.RGBA{0x40, 0x20, 0x10, 0xff},
}

func newFullBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(testStyle, 800, base.Point{X: 500, Y: 450}, nil)
	b.SetPieces(make([]base.PieceData, base.PlayableSquares))
	b.SetSquares(make([]base.BoardSquare, base.PlayableSquares))
	require.NoError(t, b.Validate())
	return b
}

func TestComposeLayers(t *testing.T) {
	b := newFullBoard(t)
	sc := b.Compose()

	assert.Equal(t, base.Point{X: 100, Y: 50}, sc.Origin)
	assert.Equal(t, 800.0, sc.Length)

	assert.Equal(t, shape.NewBox(0, 0, 800, 800, sc.Border.CornerRadius, testStyle.BorderColor), sc.Border)
	assert.InDelta(t, 32, sc.Border.CornerRadius, 1e-9)

	assert.InDelta(t, 16, sc.Background.X, 1e-9)
	assert.InDelta(t, 16, sc.Background.Y, 1e-9)
	assert.InDelta(t, 768, sc.Background.W, 1e-9)
	assert.InDelta(t, 24, sc.Background.CornerRadius, 1e-9)
	assert.Equal(t, testStyle.BackColor, sc.Background.Fill)

	assert.Len(t, sc.Cells, base.PlayableSquares)
	assert.Len(t, sc.Pieces, base.PlayableSquares)
}

func TestShapesDrawOrder(t *testing.T) {
	b := newFullBoard(t)
	pieces := make([]base.PieceData, base.PlayableSquares)
	pieces[0] = base.PieceData{Active: true, Color: base.White}
	pieces[5] = base.PieceData{Active: true, Color: base.Black, King: true}
	b.SetPieces(pieces)

	shapes := b.Compose().Shapes()
	// border, background, 32 cells, 1 man, halo + king
	require.Len(t, shapes, 2+32+1+2)
	assert.Equal(t, testStyle.BorderColor, shapes[0].Fill)
	assert.Equal(t, testStyle.BackColor, shapes[1].Fill)
	for _, s := range shapes[2:34] {
		assert.Equal(t, shape.Box, s.Kind)
	}
	assert.Equal(t, shape.White, shapes[34].Fill)
	assert.Equal(t, shape.Crimson, shapes[35].Fill)
	assert.Equal(t, shape.Black, shapes[36].Fill)
	assert.Equal(t, 100.0, shapes[0].X, "shapes are in parent coordinates")
}

func TestCellGeometryAndColor(t *testing.T) {
	b := newFullBoard(t)
	require.True(t, b.SetSquare(7, base.BoardSquare{Marked: true}))

	sc := b.Compose()
	for _, c := range sc.Cells {
		want := b.Dimensions().Cell(c.Index)
		assert.InDelta(t, want.X, c.Shape.X, 1e-9)
		assert.InDelta(t, want.Y, c.Shape.Y, 1e-9)
		assert.InDelta(t, 96, c.Shape.W, 1e-9)
		assert.InDelta(t, 96, c.Shape.H, 1e-9)
		assert.True(t, c.Touch.Visible)
		if c.Index == 7 {
			assert.True(t, c.Marked)
			assert.Equal(t, testStyle.MarkedColor, c.Shape.Fill)
		} else {
			assert.Equal(t, testStyle.SquareColor, c.Shape.Fill)
		}
	}
}

func TestKingAtFive(t *testing.T) {
	b := newFullBoard(t)
	require.True(t, b.SetPiece(5, base.PieceData{Active: true, Color: base.Black, King: true}))

	pv := b.Compose().Pieces[5]
	require.Len(t, pv.Overlay.Shapes, 2)
	outer, inner := pv.Overlay.Shapes[0], pv.Overlay.Shapes[1]
	assert.Equal(t, shape.Crimson, outer.Fill)
	assert.Equal(t, shape.Black, inner.Fill)
	assert.InDelta(t, 43, inner.Radius(), 1e-9)
	assert.InDelta(t, 1.075*inner.Radius(), outer.Radius(), 1e-9)

	center := b.Dimensions().CellCenter(5)
	abs := pv.Overlay.Absolute()
	assert.InDelta(t, center.X, abs[1].Center().X, 1e-9)
	assert.InDelta(t, center.Y, abs[1].Center().Y, 1e-9)
	assert.InDelta(t, center.X, abs[0].Center().X, 1e-9)
}

func TestShortSequencesTruncate(t *testing.T) {
	b := NewBoard(testStyle, 400, base.Point{X: 200, Y: 200}, nil)
	b.SetSquares(make([]base.BoardSquare, 10))
	b.SetPieces([]base.PieceData{{Active: true}, {Active: true}})

	sc := b.Compose()
	assert.Len(t, sc.Cells, 10)
	assert.Len(t, sc.Pieces, 2)
	assert.ErrorIs(t, b.Validate(), ErrSequenceLength)

	assert.False(t, b.SetPiece(2, base.PieceData{Active: true}))
	assert.False(t, b.SetSquare(10, base.BoardSquare{Marked: true}))
	assert.False(t, b.SetSquare(-1, base.BoardSquare{Marked: true}))
}

func TestEmptyBoardHasOnlyFrame(t *testing.T) {
	b := NewBoard(testStyle, 400, base.Point{}, nil)
	assert.Len(t, b.Compose().Shapes(), 2)
	assert.Empty(t, b.Compose().Regions())
}

func TestActivateEmitsOnce(t *testing.T) {
	b := newFullBoard(t)
	var got []int
	b.OnSquareClicked(func(i int) { got = append(got, i) })

	assert.True(t, b.Activate(12))
	assert.Equal(t, []int{12}, got)
}

func TestClickAtHitsCell(t *testing.T) {
	b := newFullBoard(t)
	var got []int
	b.OnSquareClicked(func(i int) { got = append(got, i) })

	p := b.Dimensions().CellCenter(12).Add(b.Origin())
	i, ok := b.ClickAt(p)
	assert.True(t, ok)
	assert.Equal(t, 12, i)
	assert.Equal(t, []int{12}, got)

	// light square
	i, ok = b.ClickAt(b.Origin().Add(base.Point{X: 16 + 96 + 48, Y: 16 + 48}))
	assert.False(t, ok)
	assert.Equal(t, -1, i)
	assert.Equal(t, []int{12}, got)
}

func TestClickAtShortSequence(t *testing.T) {
	b := newFullBoard(t)
	b.SetSquares(make([]base.BoardSquare, 4))
	var got []int
	b.OnSquareClicked(func(i int) { got = append(got, i) })

	i, ok := b.ClickAt(b.Dimensions().CellCenter(12).Add(b.Origin()))
	assert.False(t, ok)
	assert.Equal(t, -1, i)

	i, ok = b.ClickAt(b.Dimensions().CellCenter(3).Add(b.Origin()))
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, []int{3}, got)

	// outside the board
	i, ok = b.ClickAt(b.Origin().Sub(base.Point{X: 1, Y: 1}))
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestCheckStrict(t *testing.T) {
	b := newFullBoard(t)
	assert.NoError(t, b.Check(true))

	b.SetPieces(make([]base.PieceData, 31))
	assert.NoError(t, b.Check(false))
	assert.ErrorIs(t, b.Check(true), ErrSequenceLength)
}

func TestHiddenCellsDoNotEmit(t *testing.T) {
	b := newFullBoard(t)
	calls := 0
	b.OnSquareClicked(func(int) { calls++ })

	b.SetVisible(false)
	assert.False(t, b.Activate(12))
	_, ok := b.ClickAt(b.Dimensions().CellCenter(12).Add(b.Origin()))
	assert.False(t, ok)
	for _, r := range b.Compose().Regions() {
		assert.False(t, r.Visible)
	}

	b.SetVisible(true)
	b.SetSquares(make([]base.BoardSquare, 4))
	assert.False(t, b.Activate(12), "square 12 is not in the sequence")
	assert.False(t, b.Activate(-1))
	assert.True(t, b.Activate(3))

	b.SetLength(0)
	assert.False(t, b.Activate(3), "zero sized cell")
	assert.Equal(t, 1, calls)
}

func TestActivateWithoutHandler(t *testing.T) {
	b := newFullBoard(t)
	assert.True(t, b.Activate(0))
}

func TestVersionTracksInputs(t *testing.T) {
	b := newFullBoard(t)
	v := b.Version()
	b.SetCenter(base.Point{X: 1, Y: 1})
	assert.Greater(t, b.Version(), v)

	v = b.Version()
	b.SetPiece(99, base.PieceData{})
	assert.Equal(t, v, b.Version(), "rejected update keeps the version")
}

func TestSetCells(t *testing.T) {
	b := NewBoard(testStyle, 800, base.Point{}, nil)
	cells := make([]base.Cell, base.PlayableSquares)
	cells[3] = base.Cell{Square: base.BoardSquare{Marked: true}, Piece: base.PieceData{Active: true, Color: base.Black}}
	b.SetCells(cells)

	require.NoError(t, b.Validate())
	assert.True(t, b.Squares()[3].Marked)
	assert.True(t, b.Pieces()[3].Active)
	assert.Equal(t, cells, b.Cells())
}

func TestComposeIsPure(t *testing.T) {
	b := newFullBoard(t)
	b.SetPiece(9, base.PieceData{Active: true, King: true})
	assert.Equal(t, b.Compose(), b.Compose())
}
