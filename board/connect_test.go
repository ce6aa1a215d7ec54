package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestConnectedSingleton(t *testing.T) {
	is := is.New(t)
	bb := BitBoard(1 << 24)
	is.True(IsConnected(bb, 24))
}

func TestConnectedStandard(t *testing.T) {
	is := is.New(t)
	b := StandardBoard()
	for idx := range BitIndices(b.Occupancy) {
		is.True(IsConnected(b.Occupancy, idx))
	}
}

func TestDisjointClusters(t *testing.T) {
	is := is.New(t)
	bb := mustDiagram(`
		1100000
		1100000
		0000000
		0000011
		0000011
		0000001`)
	for idx := range BitIndices(bb) {
		is.True(!IsConnected(bb, idx))
	}
}

func TestDiagonalIsNotConnected(t *testing.T) {
	is := is.New(t)
	bb := mustDiagram(`
		1000000
		0100000
		0000000
		0000000
		0000000
		0000000`)
	is.True(!IsConnected(bb, 0))
	is.True(!IsConnected(bb, 8))
}

func TestNoWrapAcrossRows(t *testing.T) {
	is := is.New(t)
	// Cells 6 and 7 are adjacent indices but sit on different rows.
	bb := BitBoard(1<<6 | 1<<7)
	is.True(!IsConnected(bb, 6))
}

func TestConnectedSnake(t *testing.T) {
	is := is.New(t)
	bb := mustDiagram(`
		1111111
		0000001
		1111111
		1000000
		1111111
		0000001`)
	is.True(IsConnected(bb, 0))
	is.True(IsConnected(bb, 41))
	is.True(!IsConnected(bb&^(1<<13), 0))
}

func TestUnoccupiedStart(t *testing.T) {
	is := is.New(t)
	is.True(!IsConnected(BitBoard(1<<3), 4))
	is.True(!IsConnected(0, 0))
}
