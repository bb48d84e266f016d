package base

import (
	"errors"
	"fmt"
	"strings"
)

var ErrPosition = errors.New("invalid position string")

// A position string lists the 32 playable squares in index order:
// '.' empty, 'w'/'b' men, 'W'/'B' kings. '/' separators are ignored.

func ParsePosition(s string) ([]PieceData, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "")
	if len(s) != PlayableSquares {
		return nil, fmt.Errorf("%w: %d squares, want %d", ErrPosition, len(s), PlayableSquares)
	}
	pieces := make([]PieceData, PlayableSquares)
	for i, r := range s {
		switch r {
		case '.':
		case 'w':
			pieces[i] = PieceData{Active: true, Color: White}
		case 'b':
			pieces[i] = PieceData{Active: true, Color: Black}
		case 'W':
			pieces[i] = PieceData{Active: true, Color: White, King: true}
		case 'B':
			pieces[i] = PieceData{Active: true, Color: Black, King: true}
		default:
			return nil, fmt.Errorf("%w: bad symbol %q at %d", ErrPosition, r, i)
		}
	}
	return pieces, nil
}

func FormatPosition(pieces []PieceData) string {
	var sb strings.Builder
	for i, p := range pieces {
		if i > 0 && i%HalfRow == 0 {
			sb.WriteByte('/')
		}
		sb.WriteByte(PieceSymbol(p))
	}
	return sb.String()
}

func PieceSymbol(p PieceData) byte {
	if !p.Active {
		return '.'
	}
	sym := byte('w')
	if p.Color == Black {
		sym = 'b'
	}
	if p.King {
		sym -= 'a' - 'A'
	}
	return sym
}
