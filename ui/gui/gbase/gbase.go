package gbase

import (
	"checkersboard/src/board"
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW     int     = 900
	WindowH     int     = 900
	BoardLength float64 = 800
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg     color.RGBA
	Square color.RGBA
	Back   color.RGBA
	Marked color.RGBA
	Border color.RGBA
	Label  color.RGBA

	ButtonBg   color.RGBA
	ButtonText color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

func (p Palette) BoardStyle() board.Style {
	return board.Style{
		SquareColor: p.Square,
		BackColor:   p.Back,
		MarkedColor: p.Marked,
		BorderColor: p.Border,
	}
}

var LightPalette = Palette{
	Bg:     color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	Square: color.RGBA{0x76, 0x96, 0x56, 0xff},
	Back:   color.RGBA{0xee, 0xee, 0xd2, 0xff},
	Marked: color.RGBA{0xba, 0xca, 0x44, 0xff},
	Border: color.RGBA{0x5c, 0x40, 0x33, 0xff},
	Label:  color.RGBA{0x22, 0x22, 0x22, 0xff},

	ButtonBg:   color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText: color.RGBA{0x22, 0x22, 0x22, 0xff},
}

var DarkPalette = Palette{
	Bg:     color.RGBA{0x12, 0x12, 0x12, 0xff},
	Square: color.RGBA{0x4a, 0x4a, 0x5a, 0xff},
	Back:   color.RGBA{0x8a, 0x8a, 0x9a, 0xff},
	Marked: color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Border: color.RGBA{0x20, 0x20, 0x20, 0xff},
	Label:  color.RGBA{0xee, 0xee, 0xee, 0xff},

	ButtonBg:   color.RGBA{0x30, 0x30, 0x38, 0xff},
	ButtonText: color.RGBA{0xee, 0xee, 0xee, 0xff},
}

// ParseHexColor accepts #rgb and #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		return c, fmt.Errorf("invalid color %q", s)
	}
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return c, nil
}
