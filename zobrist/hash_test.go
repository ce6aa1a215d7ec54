package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
)

func TestIncrementalMatchesFullHash(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	g := game.NewGameState()
	h := z.Hash(&g.Board, g.OnTurn)
	for ply := 0; ply < 60; ply++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}
		m := moves[ply%len(moves)]
		h = z.AddMove(h, &g.Board, g.OnTurn, m)
		g.ApplyMove(m)
		is.Equal(h, z.Hash(&g.Board, g.OnTurn))
	}
}

func TestSideToMoveIsHashed(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()
	g := game.NewGameState()
	is.True(z.Hash(&g.Board, g.OnTurn) != z.Hash(&g.Board, g.OnTurn.Opponent()))
}

func TestKindIsHashed(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	pawns := board.NewBoard(board.EmptyPieceList, board.NewPieceList(9, 10),
		board.EmptyPieceList, board.NewPieceList(16))
	kings := board.NewBoard(board.NewPieceList(9), board.NewPieceList(10),
		board.EmptyPieceList, board.NewPieceList(16))
	is.True(z.Hash(&pawns, board.White) != z.Hash(&kings, board.White))

	// list order does not matter
	reordered := board.NewBoard(board.EmptyPieceList, board.NewPieceList(10, 9),
		board.EmptyPieceList, board.NewPieceList(16))
	is.Equal(z.Hash(&pawns, board.White), z.Hash(&reordered, board.White))
}

func TestAddMovePanicsOnEmptyCell(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()
	g := game.NewGameState()
	defer func() {
		is.True(recover() != nil)
	}()
	z.AddMove(0, &g.Board, g.OnTurn, move.New(0, 2))
}
