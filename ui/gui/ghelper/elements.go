package ghelper

import (
	"checkersboard/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int

	Hover   bool // mouse over
	Pressed bool // press started on this button
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is called every Update, it returns true when a click finished
// on this button.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		return clicked
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	bg := theme.ButtonBg
	if b.Hover {
		bg = theme.Marked
	}
	offset := float32(0)
	if b.Pressed {
		offset = 2
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y)+offset, float32(b.W), float32(b.H), bg, true)

	bounds := text.BoundString(face, b.Label)
	tx := b.X + (b.W-bounds.Dx())/2
	ty := b.Y + int(offset) + (b.H+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, theme.ButtonText)
}

// ---- Toolbar ----

// Toolbar is a row of equally sized buttons.
type Toolbar struct {
	Buttons []*Button
}

func NewToolbar(labels ...string) *Toolbar {
	tb := &Toolbar{}
	for _, l := range labels {
		tb.Buttons = append(tb.Buttons, &Button{Label: l})
	}
	return tb
}

// Place lays the buttons out centred along y.
func (tb *Toolbar) Place(windowW, y int) {
	const w, h, gap = 84, 28, 8
	total := len(tb.Buttons)*(w+gap) - gap
	x := (windowW - total) / 2
	for _, b := range tb.Buttons {
		b.X, b.Y, b.W, b.H = x, y, w, h
		x += w + gap
	}
}

// HandleInput returns the label of the clicked button, or "".
func (tb *Toolbar) HandleInput(px, py int, justClicked, justReleased bool) string {
	clicked := ""
	for _, b := range tb.Buttons {
		if b.HandleInput(px, py, justClicked, justReleased) {
			clicked = b.Label
		}
	}
	return clicked
}

func (tb *Toolbar) Contains(px, py int) bool {
	for _, b := range tb.Buttons {
		if b.Contains(px, py) {
			return true
		}
	}
	return false
}

func (tb *Toolbar) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	for _, b := range tb.Buttons {
		b.Draw(screen, face, theme)
	}
}

func PointInRect(px, py, x, y, w, h int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
