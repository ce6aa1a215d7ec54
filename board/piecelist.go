package board

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

const (
	// PieceListCapacity is the number of live entries a PieceList can hold.
	// The eighth byte is always the end marker.
	PieceListCapacity = 7
	endOfList         = 0xFF
)

// PieceList is an ordered list of up to seven cells packed into a single
// word, one byte per entry. Byte 0 (the least significant) is the front of
// the list; the first 0xFF byte ends it. Front insertion and removal keep
// the relative order of the remaining entries.
type PieceList uint64

// EmptyPieceList has every byte set to the end marker.
const EmptyPieceList = PieceList(^uint64(0))

// NewPieceList builds a list whose front is cells[0].
func NewPieceList(cells ...uint8) PieceList {
	pl := EmptyPieceList
	for i := len(cells) - 1; i >= 0; i-- {
		pl.PushFront(cells[i])
	}
	return pl
}

// PieceListFromBytes decodes the little-endian byte form of a list.
func PieceListFromBytes(b [8]byte) PieceList {
	return PieceList(binary.LittleEndian.Uint64(b[:]))
}

// Bytes encodes the list little-endian, front entry first.
func (pl PieceList) Bytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(pl))
	return b
}

func (pl PieceList) at(i int) uint8 {
	return uint8(pl >> (8 * i))
}

func (pl PieceList) Len() int {
	for i := 0; i < PieceListCapacity; i++ {
		if pl.at(i) == endOfList {
			return i
		}
	}
	return PieceListCapacity
}

// PushFront inserts cell at the front. Inserting into a full list means
// the board bookkeeping is broken, so it panics.
func (pl *PieceList) PushFront(cell uint8) {
	if pl.at(PieceListCapacity-1) != endOfList {
		panic(fmt.Sprintf("piece list full, cannot add cell %d: %v", cell, *pl))
	}
	*pl = *pl<<8 | PieceList(cell)
}

// Remove deletes cell from the list and reports whether it was there.
// An absent cell leaves the list unchanged.
func (pl *PieceList) Remove(cell uint8) bool {
	for i := 0; i < PieceListCapacity; i++ {
		c := pl.at(i)
		if c == endOfList {
			return false
		}
		if c != cell {
			continue
		}
		shift := 8 * i
		low := *pl & (1<<shift - 1)
		high := *pl >> (shift + 8)
		*pl = low | high<<shift | endOfList<<56
		return true
	}
	return false
}

func (pl PieceList) Contains(cell uint8) bool {
	for c := range pl.All() {
		if c == cell {
			return true
		}
	}
	return false
}

// All yields the cells front to back.
func (pl PieceList) All() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for i := 0; i < PieceListCapacity; i++ {
			c := pl.at(i)
			if c == endOfList || !yield(c) {
				return
			}
		}
	}
}

func (pl PieceList) Cells() []uint8 {
	cells := make([]uint8, 0, PieceListCapacity)
	for c := range pl.All() {
		cells = append(cells, c)
	}
	return cells
}

// BitBoard returns the occupancy of the listed cells.
func (pl PieceList) BitBoard() BitBoard {
	var bb BitBoard
	for c := range pl.All() {
		bb |= 1 << c
	}
	return bb
}

func (pl PieceList) String() string {
	cells := pl.Cells()
	strs := make([]string, len(cells))
	for i, c := range cells {
		strs[i] = fmt.Sprint(c)
	}
	return "[" + strings.Join(strs, " ") + "]"
}
