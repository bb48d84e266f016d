package layout

import (
	"checkersboard/src/base"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestRowColParity(t *testing.T) {
	for i := 0; i < base.PlayableSquares; i++ {
		assert.Equal(t, i/4, Row(i), "row of %d", i)
		assert.Equal(t, i%4, Col(i), "col of %d", i)
		want := 0
		if i%8 >= 4 {
			want = 1
		}
		assert.Equal(t, want, Parity(i), "parity of %d", i)
	}
}

func TestDimensions(t *testing.T) {
	d := Dimensions{BoardLength: 800}
	assert.InDelta(t, 768, d.LengthNoBorder(), eps)
	assert.InDelta(t, 32, d.LengthBorder(), eps)
	assert.InDelta(t, 96, d.SquareSize(), eps)
}

func TestIndexZeroIsTopLeft(t *testing.T) {
	d := Dimensions{BoardLength: 800}
	p := d.Cell(0)
	assert.InDelta(t, 16, p.X, eps)
	assert.InDelta(t, 16, p.Y, eps)
}

func TestOddRowShiftsOneSquare(t *testing.T) {
	d := Dimensions{BoardLength: 800}
	p0, p4 := d.Cell(0), d.Cell(4)
	assert.InDelta(t, d.SquareSize(), p4.X-p0.X, eps)
	assert.InDelta(t, d.SquareSize(), p4.Y-p0.Y, eps)
}

func TestIndexToPointFormula(t *testing.T) {
	const noBorder, border = 480.0, 20.0
	sq := noBorder / 8
	for i := 0; i < base.PlayableSquares; i++ {
		p := IndexToPoint(i, noBorder, border)
		x := float64(i%4)*sq*2 + float64(Parity(i))*sq + border/2
		y := float64(i/4)*sq + border/2
		assert.InDelta(t, x, p.X, eps, "x of %d", i)
		assert.InDelta(t, y, p.Y, eps, "y of %d", i)
	}
}

func TestIndexToPointIsPure(t *testing.T) {
	for i := 0; i < base.PlayableSquares; i++ {
		assert.Equal(t, IndexToPoint(i, 768, 32), IndexToPoint(i, 768, 32))
	}
}

func TestIndexToPointDoesNotBound(t *testing.T) {
	p := IndexToPoint(32, 768, 32)
	assert.InDelta(t, 16, p.X, eps)
	assert.InDelta(t, 8*96+16, p.Y, eps)
}

func TestCellsStayInsideBoard(t *testing.T) {
	d := Dimensions{BoardLength: 640}
	for i := 0; i < base.PlayableSquares; i++ {
		p := d.Cell(i)
		require.GreaterOrEqual(t, p.X, d.LengthBorder()/2)
		require.LessOrEqual(t, p.X+d.SquareSize(), d.BoardLength-d.LengthBorder()/2+eps)
		require.LessOrEqual(t, p.Y+d.SquareSize(), d.BoardLength-d.LengthBorder()/2+eps)
	}
}

func TestIndexAt(t *testing.T) {
	d := Dimensions{BoardLength: 800}
	for i := 0; i < base.PlayableSquares; i++ {
		assert.Equal(t, i, d.IndexAt(d.CellCenter(i)), "centre of %d", i)
	}

	light := d.Cell(0).Add(base.Point{X: d.SquareSize() * 1.5, Y: d.SquareSize() / 2})
	assert.Equal(t, -1, d.IndexAt(light))
	assert.Equal(t, -1, d.IndexAt(base.Point{X: 2, Y: 2}))
	assert.Equal(t, -1, d.IndexAt(base.Point{X: 799, Y: 400}))
	assert.Equal(t, -1, Dimensions{}.IndexAt(base.Point{}))
}
