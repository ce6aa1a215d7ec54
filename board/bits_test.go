package board

import (
	"os"
	"slices"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustDiagram(s string) BitBoard {
	bb, err := ParseDiagram(s)
	if err != nil {
		panic(err)
	}
	return bb
}

func TestSetBit(t *testing.T) {
	is := is.New(t)
	x := mustDiagram(`
		0001000
		0011100
		0011111
		0000010
		0000010
		0000010`)

	is.Equal(SetBit(x, 10, 5), x)
	is.Equal(SetBit(x, 0, 50), x)

	y := SetBit(x, 6, 4)
	is.Equal(y, mustDiagram(`
		0001000
		0011100
		0011111
		0000010
		0000011
		0000010`))
}

func TestIsBitSet(t *testing.T) {
	is := is.New(t)
	x := BitBoard(0b0000000111001)
	expected := []bool{true, false, false, true, true, true, false}
	for i, e := range expected {
		is.Equal(IsBitSet(x, uint8(i)), e)
	}
	is.True(!IsBitSet(^BitBoard(0), NumCells))
}

func TestIsCoordSet(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"0100000",
		"0100000",
		"0100000",
		"1111100",
		"0011100",
		"0001000",
	}
	var diagram string
	for _, r := range rows {
		diagram += r + "\n"
	}
	x := mustDiagram(diagram)

	zero := uint8(0)
	is.True(!IsCoordSet(x, zero-10, 0))
	is.True(!IsCoordSet(x, 10, 0))
	is.True(!IsCoordSet(x, 0, zero-20))
	is.True(!IsCoordSet(x, 0, 20))

	for y, r := range rows {
		for xi, c := range r {
			is.Equal(IsCoordSet(x, uint8(xi), uint8(y)), c == '1')
		}
	}
}

func TestCoordToIndex(t *testing.T) {
	is := is.New(t)
	idx, ok := CoordToIndex(2, 1)
	is.True(ok)
	is.Equal(idx, uint8(9))
	x, y := IndexToCoord(idx)
	is.Equal(x, uint8(2))
	is.Equal(y, uint8(1))

	_, ok = CoordToIndex(7, 0)
	is.True(!ok)
	_, ok = CoordToIndex(0, 6)
	is.True(!ok)
	zero := uint8(0)
	_, ok = CoordToIndex(zero-1, 0)
	is.True(!ok)
}

func TestBitIndices(t *testing.T) {
	is := is.New(t)
	bb := BitBoard(1<<41 | 1<<17 | 1<<3 | 1)

	is.Equal(slices.Collect(BitIndices(bb)), []uint8{0, 3, 17, 41})
	// Ranging again starts over.
	is.Equal(slices.Collect(BitIndices(bb)), []uint8{0, 3, 17, 41})
	is.Equal(len(slices.Collect(BitIndices(0))), 0)

	var first []uint8
	for idx := range BitIndices(bb) {
		first = append(first, idx)
		if len(first) == 2 {
			break
		}
	}
	is.Equal(first, []uint8{0, 3})
}

func TestJumpBit(t *testing.T) {
	is := is.New(t)
	bb := BitBoard(1<<9 | 1<<10)
	is.Equal(JumpBit(bb, 9, 11), BitBoard(1<<10|1<<11))
}

func TestParseDiagram(t *testing.T) {
	is := is.New(t)
	_, err := ParseDiagram("0101")
	is.True(err != nil)
	_, err = ParseDiagram("000000000000000000000000000000000000000002")
	is.True(err != nil)

	bb := mustDiagram("100000000000000000000000000000000000000001")
	is.Equal(bb, BitBoard(1|1<<41))
	is.Equal(mustDiagram(bb.Diagram()), bb)
}

func TestNeighborTables(t *testing.T) {
	is := is.New(t)
	for y := uint8(0); y < Height; y++ {
		for x := uint8(0); x < Width; x++ {
			idx, _ := CoordToIndex(x, y)
			is.Equal(StepNeighbors[idx], ComputeStepNeighbors(x, y))
			is.Equal(JumpNeighbors[idx], ComputeJumpNeighbors(x, y))
		}
	}
	is.Equal(slices.Collect(BitIndices(StepNeighbors[0])), []uint8{1, 7, 8})
	is.Equal(slices.Collect(BitIndices(StepNeighbors[24])), []uint8{16, 17, 18, 23, 25, 30, 31, 32})
	is.Equal(slices.Collect(BitIndices(StepNeighbors[41])), []uint8{33, 34, 40})
	is.Equal(slices.Collect(BitIndices(JumpNeighbors[0])), []uint8{2, 14})
	is.Equal(slices.Collect(BitIndices(JumpNeighbors[17])), []uint8{3, 15, 19, 31})
	is.Equal(slices.Collect(BitIndices(JumpNeighbors[13])), []uint8{11, 27})
}
