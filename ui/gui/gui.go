package gui

import (
	"checkersboard/src"
	"checkersboard/src/logx"
	"checkersboard/ui/gui/gbase/gconf"
	"checkersboard/ui/gui/gdraw"
	"checkersboard/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *ghelper.GUIGameContext
}

func NewGUI(g *src.Game, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	ctx, err := ghelper.NewGUIGameContext(g, cfg, logx)
	if err != nil {
		return nil, err
	}
	return &GUIProcessing{
		current: gdraw.ScenePlay.ToScene(nil, ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Checkers")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.ctx.Config.WindowW = outsideWidth
	gp.ctx.Config.WindowH = outsideHeight
	return outsideWidth, outsideHeight
}
