package move

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/uisge/board"
)

// Move takes the piece on From to To. Moves are plain values and compare
// with ==.
type Move struct {
	From uint8
	To   uint8
}

var ErrBadMoveString = errors.New("cannot parse move")

func New(from, to uint8) Move {
	return Move{From: from, To: to}
}

func delta(m Move) int {
	return int(m.To) - int(m.From)
}

// IsJump reports whether m crosses one cell orthogonally. Anything else is
// a one-cell step.
func (m Move) IsJump() bool {
	switch delta(m) {
	case 2, -2, 2 * board.Width, -2 * board.Width:
		return true
	}
	return false
}

// Midpoint returns the cell a jump passes over. Calling it for a move that
// is not a jump is a programming error.
func (m Move) Midpoint() uint8 {
	switch delta(m) {
	case 2:
		return m.From + 1
	case -2:
		return m.From - 1
	case 2 * board.Width:
		return m.From + board.Width
	case -2 * board.Width:
		return m.From - board.Width
	}
	panic(fmt.Sprintf("move %v is not a jump", m))
}

// String is the index form used in logs and principal variations.
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// Algebraic returns the move as two cell names, e.g. "c2e2".
func (m Move) Algebraic() string {
	return board.CellName(m.From) + board.CellName(m.To)
}

// Parse reads a move written as indices ("9->11", "9-11") or as two cell
// names ("c2e2", "c2-e2"). It does not check legality.
func Parse(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sep := range []string{"->", "-", " "} {
		if from, to, ok := strings.Cut(s, sep); ok {
			return parseCells(strings.TrimSpace(from), strings.TrimSpace(to))
		}
	}
	if len(s) == 4 {
		return parseCells(s[:2], s[2:])
	}
	return Move{}, fmt.Errorf("%w: %q", ErrBadMoveString, s)
}

func parseCells(from, to string) (Move, error) {
	f, err := parseCell(from)
	if err != nil {
		return Move{}, err
	}
	t, err := parseCell(to)
	if err != nil {
		return Move{}, err
	}
	return New(f, t), nil
}

func parseCell(s string) (uint8, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= board.NumCells {
			return 0, fmt.Errorf("%w: cell %d is off the board", ErrBadMoveString, n)
		}
		return uint8(n), nil
	}
	if len(s) != 2 || s[0] < 'a' || s[1] < '1' {
		return 0, fmt.Errorf("%w: bad cell %q", ErrBadMoveString, s)
	}
	idx, ok := board.CoordToIndex(s[0]-'a', s[1]-'1')
	if !ok {
		return 0, fmt.Errorf("%w: cell %q is off the board", ErrBadMoveString, s)
	}
	return idx, nil
}
