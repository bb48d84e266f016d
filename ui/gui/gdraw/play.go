package gdraw

import (
	"checkersboard/src/base"
	"checkersboard/src/render"
	"checkersboard/ui/gui/gbase"
	"checkersboard/ui/gui/ghelper"
	"checkersboard/ui/gui/ghelper/gclipboard"
	"checkersboard/ui/gui/ghelper/gdialog"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// toolbar actions
const (
	actNew    = "New"
	actFlip   = "Flip"
	actLabels = "Labels"
	actCopy   = "Copy"
	actPaste  = "Paste"
	actOpen   = "Open"
	actSave   = "Save"
)

// GUIPlayDrawer shows the board and forwards clicks to it.
type GUIPlayDrawer struct {
	// layout
	windowW, windowH int

	// cached board raster and the board version it was built from
	boardImg     *ebiten.Image
	boardVersion uint64

	// positions loaded by the open dialog, applied on the next Update
	loadMu     sync.Mutex
	pending    []base.PieceData
	pendingErr error

	toolbar *ghelper.Toolbar
	status  string
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		toolbar: ghelper.NewToolbar(actNew, actFlip, actLabels, actCopy, actPaste, actOpen, actSave),
	}
	ctx.Game.StartNewGame(ctx.Config.Player())
	ctx.Sync()
	pd.recalcLayout(ctx, ctx.Config.WindowW, ctx.Config.WindowH)
	return pd
}

// keep the board centred and inside the window
func (pd *GUIPlayDrawer) recalcLayout(ctx *ghelper.GUIGameContext, w, h int) {
	if w == pd.windowW && h == pd.windowH {
		return
	}
	pd.windowW, pd.windowH = w, h
	ctx.Board.SetLength(ghelper.FitLength(ctx.Config.BoardLength, w, h))
	ctx.Board.SetCenter(ghelper.BoardCenter(w, h))
	pd.toolbar.Place(w, h-ghelper.ToolbarSpace+8)
}

func (pd *GUIPlayDrawer) renderOptions(ctx *ghelper.GUIGameContext) render.Options {
	return render.Options{Labels: ctx.Config.ShowLabels, LabelColor: ctx.Theme.Label}
}

func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	if err := ctx.Err(); err != nil {
		return SceneNotChanged, err
	}
	pd.recalcLayout(ctx, ctx.Config.WindowW, ctx.Config.WindowH)

	pd.loadMu.Lock()
	if pd.pendingErr != nil {
		pd.status = pd.pendingErr.Error()
		pd.pendingErr = nil
	}
	if pd.pending != nil {
		if err := ctx.Game.LoadPieces(pd.pending, ctx.Game.PlayerColor()); err != nil {
			pd.status = err.Error()
		} else {
			ctx.Sync()
		}
		pd.pending = nil
	}
	pd.loadMu.Unlock()

	mx, my := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if act := pd.toolbar.HandleInput(mx, my, pressed, released); act != "" {
		pd.do(ctx, act)
	} else if released && !pd.toolbar.Contains(mx, my) {
		if i, ok := ctx.Board.ClickAt(base.Point{X: float64(mx), Y: float64(my)}); ok {
			pd.status = fmt.Sprintf("square %d", i)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return SceneNotChanged, gbase.ErrExit
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		pd.do(ctx, actNew)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		pd.do(ctx, actFlip)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		pd.do(ctx, actLabels)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		pd.do(ctx, actCopy)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		pd.do(ctx, actPaste)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		pd.do(ctx, actOpen)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		pd.do(ctx, actSave)
	}
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) do(ctx *ghelper.GUIGameContext, act string) {
	switch act {
	case actNew:
		ctx.Game.StartNewGame(ctx.Game.PlayerColor())
		ctx.Sync()
		pd.status = "new game"
	case actFlip:
		ctx.Game.StartNewGame(ctx.Game.PlayerColor().Opposite())
		ctx.Sync()
		pd.status = "playing " + ctx.Game.PlayerColor().String()
	case actLabels:
		if err := ctx.Config.ToggleLabels(); err != nil {
			ctx.Logx.Errorf("save config: %v", err)
			pd.status = "config not saved"
		}
		pd.boardImg = nil
	case actCopy:
		pd.copyPosition(ctx)
	case actPaste:
		pd.pastePosition()
	case actOpen:
		go pd.openPositionAsync(ctx)
	case actSave:
		pd.saveImageAsync(ctx)
	}
}

func (pd *GUIPlayDrawer) copyPosition(ctx *ghelper.GUIGameContext) {
	_, pieces := base.Unzip(ctx.Game.Cells())
	if err := gclipboard.WriteAll(base.FormatPosition(pieces)); err != nil {
		ctx.Logx.Errorf("copy position: %v", err)
		pd.status = "copy failed"
		return
	}
	pd.status = "position copied"
}

func (pd *GUIPlayDrawer) pastePosition() {
	pos, err := gclipboard.ReadAll()
	if err != nil {
		pd.status = "paste failed"
		return
	}
	pd.queuePosition(pos)
}

func (pd *GUIPlayDrawer) queuePosition(pos string) {
	pieces, err := base.ParsePosition(pos)
	pd.loadMu.Lock()
	defer pd.loadMu.Unlock()
	if err != nil {
		pd.pendingErr = err
		return
	}
	pd.pending = pieces
}

func (pd *GUIPlayDrawer) openPositionAsync(ctx *ghelper.GUIGameContext) {
	res, err := gdialog.OpenPosition("Open position")
	if err != nil {
		if !gdialog.IsCancelled(err) {
			ctx.Logx.Errorf("open position: %v", err)
		}
		return
	}
	ctx.Logx.Infof("load position from %s", res.Path)
	pd.queuePosition(strings.TrimSpace(string(res.Data)))
}

// the scene is composed before the goroutine starts, the board is only
// touched from Update
func (pd *GUIPlayDrawer) saveImageAsync(ctx *ghelper.GUIGameContext) {
	sc := ctx.Board.Compose()
	opts := pd.renderOptions(ctx)
	go func() {
		path, err := gdialog.SaveImage("Save board")
		if err != nil {
			if !gdialog.IsCancelled(err) {
				ctx.Logx.Errorf("save dialog: %v", err)
			}
			return
		}
		f, err := os.Create(path)
		if err != nil {
			ctx.Logx.Errorf("create %s: %v", path, err)
			return
		}
		defer f.Close()
		if err := render.WritePNG(f, sc, opts); err != nil {
			ctx.Logx.Errorf("write %s: %v", path, err)
			return
		}
		ctx.Logx.Infof("board saved to %s", path)
	}()
}

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	if pd.boardImg == nil || pd.boardVersion != ctx.Board.Version() {
		pd.boardImg = ghelper.RenderBoard(ctx.Board.Compose(), pd.renderOptions(ctx))
		pd.boardVersion = ctx.Board.Version()
	}
	origin := ctx.Board.Origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	screen.DrawImage(pd.boardImg, op)

	info := fmt.Sprintf("%s %d  %s %d  selected %d",
		ctx.Game.PlayerColor(), ctx.Game.PlayerPieceCount(),
		ctx.Game.PlayerColor().Opposite(), ctx.Game.EnemyPieceCount(),
		ctx.Game.Selected())
	text.Draw(screen, info, ctx.Fonts.Normal, 12, 22, ctx.Theme.Label)
	if pd.status != "" {
		b := text.BoundString(ctx.Fonts.Small, pd.status)
		text.Draw(screen, pd.status, ctx.Fonts.Small, pd.windowW-b.Dx()-12, 22, ctx.Theme.Label)
	}
	pd.toolbar.Draw(screen, ctx.Fonts.Bold, ctx.Theme)
}
