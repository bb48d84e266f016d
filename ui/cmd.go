package ui

import (
	"checkersboard/src"
	"checkersboard/src/base"
	"checkersboard/src/board"
	"checkersboard/src/logx"
	"checkersboard/src/render"
	clic "checkersboard/ui/cli"
	"checkersboard/ui/gui"
	"checkersboard/ui/gui/gbase"
	"checkersboard/ui/gui/gbase/gconf"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

const logfile string = "checkers.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func openLog() (*os.File, error) {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error open logfile: %v", err)
	}
	return file, nil
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return err
	}
	g, err := gui.NewGUI(src.NewGame(logger), cfg, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	g := src.NewGame(logger)
	if pos := c.String("position"); pos != "" {
		pieces, err := base.ParsePosition(pos)
		if err != nil {
			return err
		}
		if err := g.LoadPieces(pieces, cfg.Player()); err != nil {
			return err
		}
	} else {
		g.StartNewGame(cfg.Player())
	}

	b := board.NewBoard(palette.BoardStyle(), cfg.BoardLength, base.Point{}, logger)
	cl := clic.NewCLI(g, b, logger)
	if err := b.Check(cfg.Strict); err != nil {
		return err
	}
	clic.EnableANSI()
	if c.Bool("line") {
		return cl.RunLineMode()
	}
	return cl.Run()
}

func RunRender(c *cli.Command) error {
	logger := logx.NewLogx(logx.GetLoggerLevelByString(c.String("level")), c.Bool("dev"), true)
	logger.InitLogger(os.Stdout)

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	length := cfg.BoardLength
	if c.IsSet("length") {
		length = c.Float("length")
	}
	b := board.NewBoard(palette.BoardStyle(), length, base.Point{X: length / 2, Y: length / 2}, logger)

	var pieces []base.PieceData
	if pos := c.String("position"); pos != "" {
		pieces, err = base.ParsePosition(pos)
		if err != nil {
			return err
		}
	} else {
		pieces = src.DefaultSetup(cfg.Player())
	}
	squares := make([]base.BoardSquare, base.PlayableSquares)
	for _, m := range c.IntSlice("mark") {
		if i := int(m); i >= 0 && i < len(squares) {
			squares[i].Marked = true
		}
	}
	b.SetPieces(pieces)
	b.SetSquares(squares)
	if err := b.Check(cfg.Strict); err != nil {
		return err
	}

	out := c.String("out")
	format := strings.ToLower(c.String("format"))
	if format == "" {
		format = "png"
		if strings.HasSuffix(strings.ToLower(out), ".svg") {
			format = "svg"
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := render.Options{Labels: c.Bool("labels") || cfg.ShowLabels, LabelColor: palette.Label}
	switch format {
	case "png":
		err = render.WritePNG(f, b.Compose(), opts)
	case "svg":
		err = render.WriteSVG(f, b.Compose(), opts)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	logger.Infof("board written to %s", out)
	return nil
}

func RunCheckers() error {
	cfgf := &cli.StringFlag{
		Name:  "config",
		Usage: "path to JSON or YAML config",
		Value: gconf.DefaultFile,
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "level log",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	pf := &cli.StringFlag{
		Name:  "position",
		Usage: "32 symbols in index order: . w b W B ('/' ignored)",
	}
	// root flags are inherited by every subcommand
	common := []cli.Flag{cfgf, df, lf, cf}

	guiAction := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
			fmt.Printf("error GUI: %v\n", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "checkers",
		Usage: "checkers board",
		Flags: common,
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "open the board in a window",
				Action: guiAction,
			},
			{
				Name:  "cli",
				Usage: "play on the terminal",
				Flags: []cli.Flag{pf, &cli.BoolFlag{
					Name:  "line",
					Usage: "read square indices line by line",
				}},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error checkers: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "write the board to a PNG or SVG file",
				Flags: []cli.Flag{
					pf,
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "output file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "png or svg, guessed from --out when empty",
					},
					&cli.FloatFlag{
						Name:  "length",
						Usage: "board edge length",
					},
					&cli.IntSliceFlag{
						Name:  "mark",
						Usage: "mark square index (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "labels",
						Usage: "draw square indices",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunRender(c)
				},
			},
		},
		Action: guiAction,
	}).Run(context.Background(), os.Args)
}
