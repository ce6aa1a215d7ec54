// Package enumerate lists every board occupancy whose pieces form a single
// orthogonally connected group.
package enumerate

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/uisge/board"
)

// DefaultPieces is the number of pieces in a game of uisge.
const DefaultPieces = 12

const (
	partitionBuffer = 4096
	ctxCheckEvery   = 1 << 16
)

// nextCombination returns the next larger word with the same number of set
// bits (Gosper's hack). v must not be zero.
func nextCombination(v uint64) uint64 {
	t := v | (v - 1)
	return (t + 1) | (((^t & -^t) - 1) >> (bits.TrailingZeros64(v) + 1))
}

// partition emits, in ascending order, the connected occupancies of n cells
// whose lowest occupied cell is low.
func partition(ctx context.Context, n int, low uint8, out chan<- board.BitBoard) error {
	// The other n-1 cells are chosen among the cells above low.
	free := board.NumCells - int(low) - 1
	rest := n - 1
	if rest > free {
		return nil
	}
	emit := func(bb board.BitBoard) error {
		if !board.IsConnected(bb, low) {
			return nil
		}
		select {
		case out <- bb:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	lowBit := board.BitBoard(1) << low
	if rest == 0 {
		return emit(lowBit)
	}
	limit := uint64(1) << free
	i := 0
	for v := uint64(1)<<rest - 1; v < limit; v = nextCombination(v) {
		if i++; i%ctxCheckEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if err := emit(lowBit | board.BitBoard(v)<<(low+1)); err != nil {
			return err
		}
	}
	return nil
}

// Enumerate calls emit with every connected occupancy of n pieces. The
// work is split by lowest occupied cell over threads goroutines; boards
// are emitted partition by partition, so the order does not depend on
// scheduling. emit runs on the calling goroutine. An error from emit or a
// cancelled ctx stops the enumeration.
func Enumerate(ctx context.Context, n, threads int, emit func(board.BitBoard) error) error {
	if n <= 0 || n > board.NumCells {
		return fmt.Errorf("cannot place %d pieces on %d cells", n, board.NumCells)
	}
	threads = max(1, threads)
	numParts := board.NumCells - n + 1
	parts := make([]chan board.BitBoard, numParts)
	for i := range parts {
		parts[i] = make(chan board.BitBoard, partitionBuffer)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	go func() {
		for i := range parts {
			low := uint8(i)
			out := parts[i]
			// Go blocks while threads partitions are running, so
			// partitions start in order.
			g.Go(func() error {
				defer close(out)
				return partition(gctx, n, low, out)
			})
		}
	}()

	// Every channel is read to its end, even after an error, since
	// closing it is how each partition reports that it is done.
	var emitErr error
	for i, ch := range parts {
		count := 0
		for bb := range ch {
			if emitErr != nil {
				continue
			}
			if err := emit(bb); err != nil {
				emitErr = err
				cancel()
				continue
			}
			count++
		}
		log.Debug().Int("lowest-cell", i).Int("boards", count).Msg("partition-done")
	}
	err := g.Wait()
	if emitErr != nil {
		return emitErr
	}
	return err
}

// Count returns the number of connected occupancies of n pieces.
func Count(ctx context.Context, n, threads int) (int, error) {
	count := 0
	err := Enumerate(ctx, n, threads, func(board.BitBoard) error {
		count++
		return nil
	})
	return count, err
}
