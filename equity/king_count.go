package equity

import "github.com/domino14/uisge/board"

// ScoreKingCount is the value of having n kings. More kings is always
// better, and each extra king is worth a bit more than the last.
var ScoreKingCount = [board.PieceListCapacity + 1]int32{
	0, 1000, 2100, 3300, 4600, 6000, 7500, 9100,
}

// KingCountEvaluator compares the two sides' king counts. The move count
// breaks ties toward quick wins: a side that is ahead loses a point per
// move played, a side that is not ahead gains one.
type KingCountEvaluator struct{}

func (KingCountEvaluator) Evaluate(b *board.Board, onTurn board.Side, moveCount uint32) int32 {
	score := ScoreKingCount[b.WhiteKings.Len()] - ScoreKingCount[b.BlackKings.Len()]
	if score > 0 {
		score -= int32(moveCount)
	} else {
		score += int32(moveCount)
	}
	if onTurn == board.Black {
		return -score
	}
	return score
}
