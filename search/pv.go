package search

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/move"
)

// PVLine is a principal variation: the best line of play found from a
// node, best move first.
type PVLine struct {
	Moves []move.Move
	score int32
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = pvLine.Moves[:0]
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(m move.Move, newPVLine PVLine, score int32) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, m)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

// GetPVMove returns the best move of the line.
func (pvLine *PVLine) GetPVMove() move.Move {
	return pvLine.Moves[0]
}

func (pvLine PVLine) Score() int32 {
	return pvLine.score
}

func (pvLine PVLine) Copy() PVLine {
	return PVLine{Moves: append([]move.Move(nil), pvLine.Moves...), score: pvLine.score}
}

// String lists the moves of the line separated by spaces.
func (pvLine PVLine) String() string {
	return FormatLine(pvLine.Moves)
}

// NLBString is the line with its score, for log output.
func (pvLine PVLine) NLBString() string {
	return fmt.Sprintf("PV; val %s; %s", equity.FormatScore(pvLine.score), pvLine.String())
}

func FormatLine(moves []move.Move) string {
	return strings.Join(lo.Map(moves, func(m move.Move, _ int) string {
		return m.String()
	}), " ")
}
