package gbase

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#769656")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x76, 0x96, 0x56, 0xff}, c)

	c, err = ParseHexColor(" abc ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 0xff}, c)

	for _, s := range []string{"", "#12", "#zzzzzz"} {
		_, err = ParseHexColor(s)
		assert.Error(t, err, s)
	}
}

func TestPaletteFromString(t *testing.T) {
	assert.Equal(t, DarkPalette, PaletteFromString("dark"))
	assert.Equal(t, LightPalette, PaletteFromString("anything"))
	assert.Equal(t, "dark", DarkPalette.String())

	st := LightPalette.BoardStyle()
	assert.Equal(t, LightPalette.Marked, st.MarkedColor)
}
