package zobrist

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a uisge position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	blackToMove uint64

	// indexed by cell, then side*2 + kind
	posTable [board.NumCells][4]uint64
}

func pieceIdx(s board.Side, k board.Kind) int {
	return int(s)*2 + int(k)
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for j := range z.posTable[i] {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.blackToMove = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) Hash(b *board.Board, onTurn board.Side) uint64 {
	key := uint64(0)
	for _, p := range [4]struct {
		s  board.Side
		k  board.Kind
		pl board.PieceList
	}{
		{board.White, board.King, b.WhiteKings},
		{board.White, board.Pawn, b.WhitePawns},
		{board.Black, board.King, b.BlackKings},
		{board.Black, board.Pawn, b.BlackPawns},
	} {
		for c := range p.pl.All() {
			key ^= z.posTable[c][pieceIdx(p.s, p.k)]
		}
	}
	if onTurn == board.Black {
		key ^= z.blackToMove
	}
	return key
}

// AddMove returns the hash of the position after onTurn plays m, given
// the key and board from before the move. The board is only read.
func (z *Zobrist) AddMove(key uint64, b *board.Board, onTurn board.Side, m move.Move) uint64 {
	s, k, ok := b.PieceAt(m.From)
	if !ok || s != onTurn {
		panic(fmt.Sprintf("no %v piece on %d to hash move %v", onTurn, m.From, m))
	}
	key ^= z.posTable[m.From][pieceIdx(s, k)]
	if m.IsJump() {
		k = 1 - k
	}
	key ^= z.posTable[m.To][pieceIdx(s, k)]
	// sides always alternate
	key ^= z.blackToMove
	return key
}
