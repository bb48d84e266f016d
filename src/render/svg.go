package render

import (
	"bufio"
	"checkersboard/src/board"
	"checkersboard/src/shape"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// svgo takes integer coordinates, so the document is drawn in hundredths
// of a length unit and scaled back by the viewBox.
const svgScale = 100

func fixed(v float64) int {
	return int(math.Round(v * svgScale))
}

func fillAttrs(c color.RGBA) []string {
	attrs := []string{fmt.Sprintf(`fill="#%02x%02x%02x"`, c.R, c.G, c.B)}
	if c.A != 0xff {
		attrs = append(attrs, `fill-opacity="`+strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)+`"`)
	}
	return attrs
}

func writeSVGShape(canvas *svg.SVG, s shape.Shape) {
	fill := fillAttrs(s.Fill)
	switch {
	case s.Kind == shape.Circle:
		c := s.Center()
		canvas.Circle(fixed(c.X), fixed(c.Y), fixed(s.Radius()), fill...)
	case s.CornerRadius > 0:
		r := fixed(s.CornerRadius)
		canvas.Roundrect(fixed(s.X), fixed(s.Y), fixed(s.W), fixed(s.H), r, r, fill...)
	default:
		canvas.Rect(fixed(s.X), fixed(s.Y), fixed(s.W), fixed(s.H), fill...)
	}
}

// WriteSVG writes sc in board-local coordinates as an SVG document.
func WriteSVG(w io.Writer, sc board.Scene, opts Options) error {
	side := int(math.Ceil(sc.Length))
	if side < 1 {
		return fmt.Errorf("encode svg: board length %v too small", sc.Length)
	}
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	view := fixed(sc.Length)
	canvas.Startview(side, side, 0, 0, view, view)

	for _, s := range sc.Local() {
		writeSVGShape(canvas, s)
	}
	if opts.Labels {
		label := append(fillAttrs(opts.LabelColor), fmt.Sprintf(`font-size="%d"`, 12*svgScale))
		for _, cell := range sc.Cells {
			canvas.Text(fixed(cell.Shape.X+3), fixed(cell.Shape.Y+14), strconv.Itoa(cell.Index), label...)
		}
	}
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return nil
}
