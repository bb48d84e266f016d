package gconf

import (
	"checkersboard/src/base"
	"checkersboard/ui/gui/gbase"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "checkers.json"

// Colors overrides palette entries, values are #rrggbb.
type Colors struct {
	Square string `json:"square,omitempty" yaml:"square,omitempty"`
	Back   string `json:"back,omitempty" yaml:"back,omitempty"`
	Marked string `json:"marked,omitempty" yaml:"marked,omitempty"`
	Border string `json:"border,omitempty" yaml:"border,omitempty"`
}

type Config struct {
	Theme       string  `json:"theme" yaml:"theme"`               // light/dark
	BoardLength float64 `json:"board_length" yaml:"board_length"` // outer edge of the board
	WindowW     int     `json:"window_w" yaml:"window_w"`         //
	WindowH     int     `json:"window_h" yaml:"window_h"`         //
	PlayerColor string  `json:"player_color" yaml:"player_color"` // white/black
	ShowLabels  bool    `json:"show_labels" yaml:"show_labels"`   // draw square indices
	Strict      bool    `json:"strict" yaml:"strict"`             // refuse boards without 32 squares
	Colors      Colors  `json:"colors" yaml:"colors"`

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:       "light",
		BoardLength: gbase.BoardLength,
		WindowW:     gbase.WindowW,
		WindowH:     gbase.WindowH,
		PlayerColor: "white",
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// NewGUIConfig reads path, or returns defaults when it does not exist.
func NewGUIConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := defaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &c)
	} else {
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.path = path

	return &c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = DefaultFile
	}
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "    ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToggleLabels flips show_labels and saves the config.
func (c *Config) ToggleLabels() error {
	c.ShowLabels = !c.ShowLabels
	return c.Save()
}

func (c *Config) Player() base.PieceColor {
	pc, err := base.PieceColorFromString(c.PlayerColor)
	if err != nil {
		return base.White
	}
	return pc
}

// Palette applies the colour overrides to the theme palette.
func (c *Config) Palette() (gbase.Palette, error) {
	p := gbase.PaletteFromString(c.Theme)
	for _, o := range []struct {
		val string
		dst *color.RGBA
	}{
		{c.Colors.Square, &p.Square},
		{c.Colors.Back, &p.Back},
		{c.Colors.Marked, &p.Marked},
		{c.Colors.Border, &p.Border},
	} {
		if o.val == "" {
			continue
		}
		clr, err := gbase.ParseHexColor(o.val)
		if err != nil {
			return p, err
		}
		*o.dst = clr
	}
	return p, nil
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if _, err := base.PieceColorFromString(c.PlayerColor); err != nil {
		c.PlayerColor = def.PlayerColor
	}
	if c.BoardLength <= 0 {
		c.BoardLength = def.BoardLength
	}
	if c.WindowW <= 0 || c.WindowH <= 0 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
	}
}
