package cli

import (
	"bufio"
	"checkersboard/src"
	"checkersboard/src/board"
	"checkersboard/src/logx"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type CLIProcessing struct {
	game   *src.Game
	board  *board.Board
	logger logx.Logger
	cursor int
	in     *os.File
	out    io.Writer
}

// NewCLI wires b's square-clicked event to the game. The terminal plays the
// part of the touch layer: the cursor picks a square, Enter activates it.
func NewCLI(g *src.Game, b *board.Board, logger logx.Logger) *CLIProcessing {
	if logger == nil {
		logger = logx.NewNop()
	}
	c := &CLIProcessing{game: g, board: b, logger: logger, in: os.Stdin, out: os.Stdout}
	b.OnSquareClicked(c.onSquareClicked)
	c.sync()
	return c
}

func (c *CLIProcessing) onSquareClicked(index int) {
	changed, err := c.game.HandleClick(index)
	if err != nil {
		c.logger.Errorf("handle click on %d: %v", index, err)
		fmt.Fprintf(c.out, "\r\nerror: %v\r\n", err)
		return
	}
	if changed {
		c.sync()
	}
}

func (c *CLIProcessing) sync() {
	c.board.SetCells(c.game.Cells())
}

func (c *CLIProcessing) redraw(cursor int) {
	// raw mode needs explicit carriage returns
	s := strings.ReplaceAll(FormatBoard(c.board.Cells(), cursor), "\n", "\r\n")
	fmt.Fprint(c.out, "\033[H\033[2J"+s)
	c.printStatus("\r\n")
}

// raw processing
// - arrow keys move the cursor over the playable squares
// - Enter or space clicks the square under the cursor
// - n starts a new game, q or Ctrl+C exits
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	c.redraw(c.cursor)

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 3, 'q', 'Q': // Ctrl+C
			fmt.Fprint(c.out, "\r\nQuitting\r\n")
			return nil
		case 0x1b: // escape sequence, possible arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' {
				c.cursor = MoveCursor(c.cursor, b2)
			}
		case '\r', '\n', ' ':
			c.board.Activate(c.cursor)
		case 'n', 'N':
			c.game.StartNewGame(c.game.PlayerColor())
			c.sync()
		default:
			continue
		}
		c.redraw(c.cursor)
	}
}

// RunLineMode reads one square index per line and clicks it.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	return c.runLines(scanner)
}

func (c *CLIProcessing) runLines(scanner *bufio.Scanner) error {
	PrintBoard(c.out, c.board.Cells(), -1)
	c.printStatus("\n")
	fmt.Fprintln(c.out, "Enter a square index (0-31) to click it, 'new' to restart, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "Q", "quit":
			return nil
		case "new":
			c.game.StartNewGame(c.game.PlayerColor())
			c.sync()
		default:
			i, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(c.out, "Invalid square: %s\n", line)
				continue
			}
			if !c.board.Activate(i) {
				fmt.Fprintf(c.out, "No square %d\n", i)
				continue
			}
		}
		PrintBoard(c.out, c.board.Cells(), -1)
		c.printStatus("\n")
	}
	return scanner.Err()
}

func (c *CLIProcessing) printStatus(nl string) {
	fmt.Fprintf(c.out, "%s: %d  %s: %d  selected: %d%s",
		c.game.PlayerColor(), c.game.PlayerPieceCount(),
		c.game.PlayerColor().Opposite(), c.game.EnemyPieceCount(),
		c.game.Selected(), nl)
}
