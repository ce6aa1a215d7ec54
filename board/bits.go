package board

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

//go:generate go run ../cmd/gentables -out tables.go

const (
	Width    = 7
	Height   = 6
	NumCells = Width * Height
)

// BitBoard is an occupancy mask. Bit i is set iff cell i holds a piece;
// only the low NumCells bits are used.
//
// Cells are numbered row-major:
//
//	00 01 02 03 04 05 06
//	07 08 09 10 11 12 13
//	14 15 16 17 18 19 20
//	21 22 23 24 25 26 27
//	28 29 30 31 32 33 34
//	35 36 37 38 39 40 41
type BitBoard uint64

const fullBoard = BitBoard(1)<<NumCells - 1

// CoordToIndex returns the cell index of (x, y). ok is false for an
// off-board coordinate, which includes coordinates that wrapped around
// after decrementing 0.
func CoordToIndex(x, y uint8) (idx uint8, ok bool) {
	if x >= Width || y >= Height {
		return 0, false
	}
	return Width*y + x, true
}

// IndexToCoord is the inverse of CoordToIndex.
func IndexToCoord(idx uint8) (x, y uint8) {
	return idx % Width, idx / Width
}

// SetBit returns bb with the cell at (x, y) set. Off-board coordinates
// leave bb untouched.
func SetBit(bb BitBoard, x, y uint8) BitBoard {
	idx, ok := CoordToIndex(x, y)
	if !ok {
		return bb
	}
	return bb | 1<<idx
}

func IsBitSet(bb BitBoard, idx uint8) bool {
	if idx >= NumCells {
		return false
	}
	return bb&(1<<idx) != 0
}

func IsCoordSet(bb BitBoard, x, y uint8) bool {
	idx, ok := CoordToIndex(x, y)
	if !ok {
		return false
	}
	return IsBitSet(bb, idx)
}

// JumpBit returns the occupancy after moving the piece on from to to.
func JumpBit(bb BitBoard, from, to uint8) BitBoard {
	return (bb | 1<<to) &^ (1 << from)
}

// BitIndices yields the set cells of bb in ascending order. The sequence
// is recomputed from bb every time it is ranged over.
func BitIndices(bb BitBoard) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for rest := uint64(bb); rest != 0; rest &= rest - 1 {
			if !yield(uint8(bits.TrailingZeros64(rest))) {
				return
			}
		}
	}
}

func (bb BitBoard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// ParseDiagram reads a board drawn as Height rows of Width '0'/'1'
// characters, top row first. Whitespace between cells and rows is
// ignored, so both "0011000\n..." and a single 42-character string work.
func ParseDiagram(s string) (BitBoard, error) {
	var bb BitBoard
	cells := strings.Join(strings.Fields(s), "")
	if len(cells) != NumCells {
		return 0, fmt.Errorf("diagram has %d cells, expected %d", len(cells), NumCells)
	}
	for i, c := range cells {
		switch c {
		case '1', 'x', 'X':
			bb |= 1 << i
		case '0', '.':
		default:
			return 0, fmt.Errorf("unexpected character %q in diagram", c)
		}
	}
	return bb, nil
}

// Diagram is the inverse of ParseDiagram.
func (bb BitBoard) Diagram() string {
	var sb strings.Builder
	for y := uint8(0); y < Height; y++ {
		for x := uint8(0); x < Width; x++ {
			if IsCoordSet(bb, x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
