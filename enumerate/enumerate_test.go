package enumerate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/uisge/board"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestNextCombination(t *testing.T) {
	is := is.New(t)
	is.Equal(nextCombination(0b0011), uint64(0b0101))
	is.Equal(nextCombination(0b0101), uint64(0b0110))
	is.Equal(nextCombination(0b0110), uint64(0b1001))
	is.Equal(nextCombination(0b1), uint64(0b10))
}

func TestCounts(t *testing.T) {
	cases := []struct {
		pieces int
		count  int
	}{
		{1, 42},
		{2, 71},
		{3, 178},
		{4, 467},
		{5, 1282},
	}
	for _, c := range cases {
		for _, threads := range []int{1, 4} {
			n, err := Count(context.Background(), c.pieces, threads)
			assert.NoError(t, err)
			assert.Equal(t, c.count, n, "pieces=%d threads=%d", c.pieces, threads)
		}
	}
}

func TestOrderIndependentOfThreads(t *testing.T) {
	is := is.New(t)
	collect := func(threads int) []board.BitBoard {
		var out []board.BitBoard
		err := Enumerate(context.Background(), 4, threads, func(bb board.BitBoard) error {
			out = append(out, bb)
			return nil
		})
		is.NoErr(err)
		return out
	}
	one := collect(1)
	is.Equal(one, collect(8))
	for _, bb := range one {
		is.Equal(bb.Count(), 4)
		is.True(board.IsConnected(bb, lowestCell(bb)))
	}
}

func lowestCell(bb board.BitBoard) uint8 {
	for i := range board.BitIndices(bb) {
		return i
	}
	return board.NumCells
}

func TestAllBoardsFillTheBoard(t *testing.T) {
	is := is.New(t)
	n, err := Count(context.Background(), board.NumCells, 2)
	is.NoErr(err)
	is.Equal(n, 1)
}

func TestBadPieceCount(t *testing.T) {
	is := is.New(t)
	_, err := Count(context.Background(), 0, 1)
	is.True(err != nil)
	_, err = Count(context.Background(), board.NumCells+1, 1)
	is.True(err != nil)
}

func TestEmitErrorStops(t *testing.T) {
	is := is.New(t)
	stop := errors.New("stop")
	seen := 0
	err := Enumerate(context.Background(), 5, 4, func(board.BitBoard) error {
		seen++
		if seen == 10 {
			return stop
		}
		return nil
	})
	is.True(errors.Is(err, stop))
	is.Equal(seen, 10)
}

func TestCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Count(ctx, 6, 2)
	is.True(errors.Is(err, context.Canceled))
}

func TestDumpRoundTrip(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	dw := NewDumpWriter(&buf)
	err := Enumerate(context.Background(), 3, 2, dw.Write)
	is.NoErr(err)
	is.NoErr(dw.Flush())
	is.Equal(dw.Count(), 178)
	is.Equal(buf.Len(), 178*8)

	boards, sum, err := ReadDump(bytes.NewReader(buf.Bytes()))
	is.NoErr(err)
	is.Equal(len(boards), 178)
	is.Equal(sum, dw.Sum64())
	// lowest cell first: the first board is the line of cells 0, 1, 2
	is.Equal(boards[0], board.BitBoard(0b111))
	// big-endian on disk
	is.Equal(buf.Bytes()[:8], []byte{0, 0, 0, 0, 0, 0, 0, 0b111})
}

func TestTruncatedDump(t *testing.T) {
	is := is.New(t)
	_, _, err := ReadDump(bytes.NewReader([]byte{1, 2, 3}))
	is.True(errors.Is(err, ErrTruncatedDump))
}

func TestLoadDump(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "valid_boards_2.bin")
	f, err := os.Create(path)
	is.NoErr(err)
	dw := NewDumpWriter(f)
	is.NoErr(Enumerate(context.Background(), 2, 1, dw.Write))
	is.NoErr(dw.Flush())
	is.NoErr(f.Close())

	boards, sum, err := LoadDump(path, 0.5)
	is.NoErr(err)
	is.Equal(len(boards), 71)
	is.Equal(sum, dw.Sum64())

	_, _, err = LoadDump(path, 0)
	is.True(err != nil)
	_, _, err = LoadDump(filepath.Join(t.TempDir(), "missing.bin"), 0.5)
	is.True(errors.Is(err, os.ErrNotExist))
}

// benchBoards loads the dump written by cmd/validboards when there is one
// and enumerates a smaller set otherwise.
func benchBoards(b *testing.B) []board.BitBoard {
	path := filepath.Join("..", "data", "boards", fmt.Sprintf("valid_boards_%d.bin", DefaultPieces))
	if boards, _, err := LoadDump(path, 0.25); err == nil {
		return boards
	}
	var boards []board.BitBoard
	err := Enumerate(context.Background(), 6, 4, func(bb board.BitBoard) error {
		boards = append(boards, bb)
		return nil
	})
	if err != nil {
		b.Fatal(err)
	}
	return boards
}

func BenchmarkIsConnected(b *testing.B) {
	boards := benchBoards(b)
	for b.Loop() {
		for _, bb := range boards {
			if !board.IsConnected(bb, lowestCell(bb)) {
				b.Fatal("enumerated board is not connected")
			}
		}
	}
}

func BenchmarkCountSix(b *testing.B) {
	for b.Loop() {
		if _, err := Count(context.Background(), 6, 4); err != nil {
			b.Fatal(err)
		}
	}
}
