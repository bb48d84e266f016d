package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
	Bold   font.Face
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts builds the faces from the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}

	if fonts.Normal, err = newFace(goregular.TTF, 14); err != nil {
		return nil, err
	}
	if fonts.Small, err = newFace(goregular.TTF, 11); err != nil {
		return nil, err
	}
	// toolbar labels
	if fonts.Bold, err = newFace(gobold.TTF, 14); err != nil {
		return nil, err
	}
	return fonts, nil
}
