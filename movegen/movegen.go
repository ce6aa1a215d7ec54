// Package movegen generates the legal moves of a position.
//
// A move is legal when it lands on an empty cell and leaves every piece on
// the board in a single orthogonally connected group. Kings step to any of
// the eight surrounding cells or jump; pawns only jump. A jump goes two
// cells in a straight orthogonal line over an occupied cell.
package movegen

import (
	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/move"
)

// GenAll returns the legal moves for side. The order is fixed: kings
// before pawns, each piece list in its own order, and for every piece its
// jumps then its steps, each by ascending target cell.
func GenAll(b *board.Board, side board.Side) []move.Move {
	return AppendMoves(nil, b, side)
}

// AppendMoves appends the legal moves for side to dst, in GenAll order.
func AppendMoves(dst []move.Move, b *board.Board, side board.Side) []move.Move {
	occ := b.Occupancy
	for from := range b.Kings(side).All() {
		dst = appendJumps(dst, occ, from)
		dst = appendSteps(dst, occ, from)
	}
	for from := range b.Pawns(side).All() {
		dst = appendJumps(dst, occ, from)
	}
	return dst
}

func appendJumps(dst []move.Move, occ board.BitBoard, from uint8) []move.Move {
	for to := range board.BitIndices(board.JumpNeighbors[from] &^ occ) {
		m := move.New(from, to)
		if !board.IsBitSet(occ, m.Midpoint()) {
			continue
		}
		if board.IsConnected(board.JumpBit(occ, from, to), to) {
			dst = append(dst, m)
		}
	}
	return dst
}

func appendSteps(dst []move.Move, occ board.BitBoard, from uint8) []move.Move {
	for to := range board.BitIndices(board.StepNeighbors[from] &^ occ) {
		if board.IsConnected(board.JumpBit(occ, from, to), to) {
			dst = append(dst, move.New(from, to))
		}
	}
	return dst
}
