// Package equity scores positions for the searcher.
package equity

import (
	"fmt"

	"github.com/domino14/uisge/board"
)

// Scores are fixed point: 1000 is one unit, shown as 1.000.
const (
	ScoreMax int32 = 1_000_000_000
	ScoreMin int32 = -ScoreMax
)

// Evaluator statically scores a position from the point of view of the
// side on turn: positive is good for onTurn.
type Evaluator interface {
	Evaluate(b *board.Board, onTurn board.Side, moveCount uint32) int32
}

// FormatScore renders a fixed point score with three decimals.
func FormatScore(score int32) string {
	return fmt.Sprintf("%.3f", float64(score)/1000)
}
