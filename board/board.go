package board

import (
	"errors"
	"fmt"
)

// Side is one of the two players.
type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Kind is the type of a piece. A piece changes kind every time it jumps.
type Kind uint8

const (
	King Kind = iota
	Pawn
)

func (k Kind) String() string {
	if k == King {
		return "king"
	}
	return "pawn"
}

var (
	standardWhitePawns = []uint8{9, 10, 15, 16, 17, 18}
	standardBlackPawns = []uint8{23, 24, 25, 26, 31, 32}
)

// Board is a position: the occupancy of every cell plus the cells of each
// side's kings and pawns. It holds no pointers, so assigning a Board
// copies it.
type Board struct {
	Occupancy BitBoard

	WhiteKings PieceList
	WhitePawns PieceList
	BlackKings PieceList
	BlackPawns PieceList
}

// StandardBoard returns the opening position:
//
//	0000000
//	0011000
//	0111100
//	0011110
//	0001100
//	0000000
//
// with the top six pieces white pawns and the bottom six black pawns.
func StandardBoard() Board {
	b := Board{
		WhiteKings: EmptyPieceList,
		WhitePawns: NewPieceList(standardWhitePawns...),
		BlackKings: EmptyPieceList,
		BlackPawns: NewPieceList(standardBlackPawns...),
	}
	b.Occupancy = b.WhitePawns.BitBoard() | b.BlackPawns.BitBoard()
	return b
}

// NewBoard builds a board from piece lists and derives the occupancy.
func NewBoard(whiteKings, whitePawns, blackKings, blackPawns PieceList) Board {
	b := Board{
		WhiteKings: whiteKings,
		WhitePawns: whitePawns,
		BlackKings: blackKings,
		BlackPawns: blackPawns,
	}
	b.Occupancy = whiteKings.BitBoard() | whitePawns.BitBoard() |
		blackKings.BitBoard() | blackPawns.BitBoard()
	return b
}

func (b *Board) Kings(s Side) PieceList {
	if s == White {
		return b.WhiteKings
	}
	return b.BlackKings
}

func (b *Board) Pawns(s Side) PieceList {
	if s == White {
		return b.WhitePawns
	}
	return b.BlackPawns
}

func (b *Board) SetPieces(s Side, kings, pawns PieceList) {
	if s == White {
		b.WhiteKings, b.WhitePawns = kings, pawns
		return
	}
	b.BlackKings, b.BlackPawns = kings, pawns
}

// PieceAt returns the owner and kind of the piece on cell.
func (b *Board) PieceAt(cell uint8) (Side, Kind, bool) {
	switch {
	case b.WhiteKings.Contains(cell):
		return White, King, true
	case b.WhitePawns.Contains(cell):
		return White, Pawn, true
	case b.BlackKings.Contains(cell):
		return Black, King, true
	case b.BlackPawns.Contains(cell):
		return Black, Pawn, true
	}
	return 0, 0, false
}

func (b *Board) NumPieces() int {
	return b.WhiteKings.Len() + b.WhitePawns.Len() + b.BlackKings.Len() + b.BlackPawns.Len()
}

// Mirrored swaps the colours of every piece.
func (b *Board) Mirrored() Board {
	return Board{
		Occupancy:  b.Occupancy,
		WhiteKings: b.BlackKings,
		WhitePawns: b.BlackPawns,
		BlackKings: b.WhiteKings,
		BlackPawns: b.WhitePawns,
	}
}

var ErrInconsistentBoard = errors.New("inconsistent board")

// Validate checks that no cell is listed twice, that every listed cell is
// on the board and that the occupancy is exactly the union of the lists.
func (b *Board) Validate() error {
	var seen BitBoard
	for _, pl := range [4]PieceList{b.WhiteKings, b.WhitePawns, b.BlackKings, b.BlackPawns} {
		for c := range pl.All() {
			if c >= NumCells {
				return fmt.Errorf("%w: cell %d is off the board", ErrInconsistentBoard, c)
			}
			if IsBitSet(seen, c) {
				return fmt.Errorf("%w: cell %d is listed twice", ErrInconsistentBoard, c)
			}
			seen |= 1 << c
		}
	}
	if b.Occupancy&^fullBoard != 0 {
		return fmt.Errorf("%w: occupancy has bits past cell %d", ErrInconsistentBoard, NumCells-1)
	}
	if seen != b.Occupancy {
		return fmt.Errorf("%w: occupancy %#x does not match pieces %#x",
			ErrInconsistentBoard, uint64(b.Occupancy), uint64(seen))
	}
	return nil
}
