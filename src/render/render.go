// Package render paints a composed board scene into a raster image or an
// SVG document.
package render

import (
	"checkersboard/src/board"
	"checkersboard/src/shape"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

type Options struct {
	// draw the square index on every cell
	Labels     bool
	LabelColor color.RGBA
}

func DefaultOptions() Options {
	return Options{LabelColor: color.RGBA{0x88, 0x88, 0x88, 0xff}}
}

func setFill(dc *gg.Context, c color.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

func drawShape(dc *gg.Context, s shape.Shape) {
	setFill(dc, s.Fill)
	switch {
	case s.Kind == shape.Circle:
		c := s.Center()
		dc.DrawCircle(c.X, c.Y, s.Radius())
	case s.CornerRadius > 0:
		dc.DrawRoundedRectangle(s.X, s.Y, s.W, s.H, s.CornerRadius)
	default:
		dc.DrawRectangle(s.X, s.Y, s.W, s.H)
	}
	dc.Fill()
}

// Draw paints sc onto dc at the scene origin, back to front.
func Draw(dc *gg.Context, sc board.Scene, opts Options) {
	for _, s := range sc.Shapes() {
		drawShape(dc, s)
	}
	if opts.Labels {
		drawLabels(dc, sc, opts.LabelColor)
	}
}

func drawLabels(dc *gg.Context, sc board.Scene, c color.RGBA) {
	dc.SetFontFace(basicfont.Face7x13)
	setFill(dc, c)
	for _, cell := range sc.Cells {
		s := cell.Shape.Translate(sc.Origin.X, sc.Origin.Y)
		dc.DrawStringAnchored(strconv.Itoa(cell.Index), s.X+3, s.Y+3, 0, 1)
	}
}

// Image renders sc in board-local coordinates on a transparent square of
// side ceil(sc.Length).
func Image(sc board.Scene, opts Options) image.Image {
	side := int(math.Ceil(sc.Length))
	if side < 1 {
		side = 1
	}
	dc := gg.NewContext(side, side)
	local := sc
	local.Origin.X, local.Origin.Y = 0, 0
	Draw(dc, local, opts)
	return dc.Image()
}

func WritePNG(w io.Writer, sc board.Scene, opts Options) error {
	side := int(math.Ceil(sc.Length))
	if side < 1 {
		return fmt.Errorf("encode png: board length %v too small", sc.Length)
	}
	dc := gg.NewContextForImage(Image(sc, opts))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
