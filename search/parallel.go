package search

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
)

type rootResult struct {
	score int32
	pv    PVLine
}

// searchRootParallel splits the root moves over threads. The first move
// (the previous principal variation, when there is one) is searched with
// the full window to set α. Every other move is then searched from its
// own goroutine against that fixed α, and the results are combined in
// move order, so the outcome does not depend on scheduling.
func (s *Solver) searchRootParallel(ctx context.Context, root *game.GameState, depth int,
	prevPV []move.Move, pv *PVLine) (int32, error) {

	first := newSearcher(s, prevPV)
	moves := first.generate(root, 0)
	if len(moves) == 0 {
		return equity.ScoreMin, nil
	}
	α, β := equity.ScoreMin, equity.ScoreMax

	var firstPV PVLine
	score, err := first.searchChild(ctx, root, moves[0], true, 0, depth, α, β, &firstPV)
	if err != nil {
		return 0, err
	}
	if score > α {
		α = score
		pv.Update(moves[0], firstPV, score)
	}

	rest := make([]move.Move, len(moves)-1)
	copy(rest, moves[1:])
	results := make([]rootResult, len(rest))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	fixedα := α
	for i, m := range rest {
		g.Go(func() error {
			// Only the first move follows the old line below the root.
			sr := newSearcher(s, nil)
			var childPV PVLine
			sc, err := sr.searchChild(gctx, root, m, false, 0, depth, fixedα, β, &childPV)
			if err != nil {
				return err
			}
			results[i] = rootResult{score: sc, pv: childPV.Copy()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for i, r := range results {
		if r.score > α {
			α = r.score
			pv.Update(rest[i], r.pv, r.score)
		}
	}
	log.Debug().Int("depth", depth).Int("root-moves", len(moves)).
		Int("threads", s.threads).Msg("parallel-root-done")
	return α, nil
}
