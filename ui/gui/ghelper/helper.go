package ghelper

import (
	"checkersboard/src/base"
	"checkersboard/src/board"
	"checkersboard/src/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// vertical space kept free above and below the board
const ToolbarSpace = 44

func BoardCenter(w, h int) base.Point {
	return base.Point{X: float64(w) / 2, Y: float64(h) / 2}
}

// FitLength shrinks want so the board keeps room for the status line and the
// toolbar inside a w x h window.
func FitLength(want float64, w, h int) float64 {
	const margin = 2 * ToolbarSpace
	side := w
	if h < side {
		side = h
	}
	limit := float64(side - margin)
	if limit < 64 {
		limit = 64
	}
	if want > limit {
		return limit
	}
	return want
}

// RenderBoard rasterises the scene into an ebiten image in board-local
// coordinates.
func RenderBoard(sc board.Scene, opts render.Options) *ebiten.Image {
	return ebiten.NewImageFromImage(render.Image(sc, opts))
}
