// Package game holds the state of a game in progress and applies moves
// to it.
package game

import (
	"fmt"
	"strings"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/move"
	"github.com/domino14/uisge/movegen"
)

// GameState is a position plus the side on turn and the number of moves
// played. It holds no pointers; Copy (or assignment) gives an independent
// state.
type GameState struct {
	Board     board.Board
	OnTurn    board.Side
	MoveCount uint32
}

// NewGameState returns the opening position with white to move.
func NewGameState() *GameState {
	return &GameState{
		Board:  board.StandardBoard(),
		OnTurn: board.White,
	}
}

// FromBoard wraps an arbitrary position, e.g. one set up for analysis.
func FromBoard(b board.Board, onTurn board.Side, moveCount uint32) *GameState {
	return &GameState{Board: b, OnTurn: onTurn, MoveCount: moveCount}
}

func (g *GameState) Copy() *GameState {
	c := *g
	return &c
}

// ActivePieces returns the king and pawn lists of the side on turn.
func (g *GameState) ActivePieces() (kings, pawns board.PieceList) {
	return g.Board.Kings(g.OnTurn), g.Board.Pawns(g.OnTurn)
}

// LegalMoves lists the moves of the side on turn in generator order.
func (g *GameState) LegalMoves() []move.Move {
	return movegen.GenAll(&g.Board, g.OnTurn)
}

// ApplyMove plays m for the side on turn. A jumping king becomes a pawn
// and a jumping pawn becomes a king; a step keeps the king a king. The
// moved piece goes to the front of its new list. Nothing is captured.
//
// m must be legal. A from cell that holds none of the mover's pieces
// means the caller's bookkeeping is broken and ApplyMove panics.
func (g *GameState) ApplyMove(m move.Move) {
	kings, pawns := g.ActivePieces()
	jump := m.IsJump()

	switch {
	case kings.Remove(m.From):
		if jump {
			pawns.PushFront(m.To)
		} else {
			kings.PushFront(m.To)
		}
	case pawns.Remove(m.From):
		if !jump {
			panic(fmt.Sprintf("pawn on %d cannot step to %d", m.From, m.To))
		}
		kings.PushFront(m.To)
	default:
		panic(fmt.Sprintf("move %v references a cell with no tracked piece for %v",
			m, g.OnTurn))
	}

	g.Board.SetPieces(g.OnTurn, kings, pawns)
	g.Board.Occupancy = board.JumpBit(g.Board.Occupancy, m.From, m.To)
	g.OnTurn = g.OnTurn.Opponent()
	g.MoveCount++
}

// Winner reports the winner once the side on turn has no legal move.
func (g *GameState) Winner() (board.Side, bool) {
	if len(g.LegalMoves()) > 0 {
		return 0, false
	}
	return g.OnTurn.Opponent(), true
}

// ToDisplayText renders the board followed by the side on turn and the
// move count.
func (g *GameState) ToDisplayText(color bool) string {
	status := fmt.Sprintf("    %s %05d    ", strings.ToUpper(g.OnTurn.String()), g.MoveCount)
	if color {
		if g.OnTurn == board.White {
			status = "\033[97;45m" + status + "\033[0m"
		} else {
			status = "\033[30;45m" + status + "\033[0m"
		}
	}
	return g.Board.ToDisplayText(color) + "\n" + status
}
