package ghelper

import (
	"checkersboard/src"
	"checkersboard/src/board"
	"checkersboard/src/logx"
	"checkersboard/ui/gui/gbase"
	"checkersboard/ui/gui/gbase/gconf"
	"checkersboard/ui/gui/ghelper/gfont"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Game   *src.Game
	Board  *board.Board
	Config *gconf.Config
	Theme  gbase.Palette
	Fonts  *gfont.Fonts
	Logx   logx.Logger

	syncErr error
}

func NewGUIGameContext(g *src.Game, c *gconf.Config, l logx.Logger) (*GUIGameContext, error) {
	theme, err := c.Palette()
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	b := board.NewBoard(theme.BoardStyle(), c.BoardLength, BoardCenter(c.WindowW, c.WindowH), l)
	ctx := &GUIGameContext{
		Game:   g,
		Board:  b,
		Config: c,
		Theme:  theme,
		Fonts:  fonts,
		Logx:   l,
	}
	b.OnSquareClicked(ctx.onSquareClicked)
	return ctx, nil
}

func (ctx *GUIGameContext) onSquareClicked(index int) {
	changed, err := ctx.Game.HandleClick(index)
	if err != nil {
		ctx.Logx.Errorf("handle click on %d: %v", index, err)
		return
	}
	if changed {
		ctx.Sync()
	}
}

// Sync pushes the game state into the board. In strict mode a board that
// does not cover every square is an error, also reported by Err.
func (ctx *GUIGameContext) Sync() error {
	ctx.Board.SetCells(ctx.Game.Cells())
	if err := ctx.Board.Check(ctx.Config.Strict); err != nil {
		ctx.syncErr = err
		return err
	}
	return nil
}

// Err returns the last Sync error.
func (ctx *GUIGameContext) Err() error {
	return ctx.syncErr
}
