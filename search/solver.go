// Package search picks moves for the computer with an iterative deepening
// principal variation search (negascout).
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
	"github.com/domino14/uisge/movegen"
)

// thanks Wikipedia:
/*
function pvs(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node
    for each child of node do
        if child is first child then
            score := −pvs(child, depth − 1, −β, −α, −color)
        else
            score := −pvs(child, depth − 1, −α − 1, −α, −color) (* search with a null window *)
            if α < score < β then
                score := −pvs(child, depth − 1, −β, −score, −color) (* if it failed high, do a full re-search *)
        α := max(α, score)
        if α ≥ β then
            break (* beta cut-off *)
    return α
**/

const (
	DefaultMaxDepth = 11
	// LMRMinDepth is the depth above which quiet late moves get reduced.
	LMRMinDepth = 2
	// Jumps change the material balance, so they are never reduced.
	lmrReduction  = 1
	ctxCheckEvery = 1 << 12
)

var (
	ErrNoMoves = errors.New("side to move has no legal moves")
)

// DepthReport describes one completed iteration of iterative deepening.
type DepthReport struct {
	Elapsed time.Duration
	Depth   int
	Score   int32
	PV      []move.Move
	Nodes   uint64
}

func (r DepthReport) String() string {
	return fmt.Sprintf("%8.3fs | %3d | %9s | %s",
		r.Elapsed.Seconds(), r.Depth, equity.FormatScore(r.Score), FormatLine(r.PV))
}

// Result is what a search found: the move and line from the deepest
// completed iteration, plus a report per iteration.
type Result struct {
	Move    move.Move
	Score   int32
	Depth   int
	PV      []move.Move
	Reports []DepthReport
}

type Solver struct {
	evaluator equity.Evaluator
	threads   int
	logStream io.Writer

	principalVariation PVLine
	bestPVValue        int32

	nodes   atomic.Uint64
	solving atomic.Bool
}

// NewSolver returns a single-threaded solver scoring leaves with e.
func NewSolver(e equity.Evaluator) *Solver {
	s := &Solver{}
	s.Init(e)
	return s
}

// Init initializes the solver
func (s *Solver) Init(e equity.Evaluator) {
	s.evaluator = e
	s.threads = 1
}

// SetThreads sets how many goroutines search the root moves. With more
// than one, the first root move is searched alone and the others are then
// searched in parallel against its score.
func (s *Solver) SetThreads(threads int) {
	s.threads = max(1, threads)
}

// SetLogStream sets where a progress line is written after every
// completed depth. nil turns the progress lines off.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

func (s *Solver) IsSolving() bool {
	return s.solving.Load()
}

func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Think searches g to maxDepth plies and returns the best move found.
func (s *Solver) Think(ctx context.Context, g *game.GameState, maxDepth int) (move.Move, error) {
	res, err := s.Solve(ctx, g, maxDepth)
	if err != nil {
		return move.Move{}, err
	}
	return res.Move, nil
}

// Solve runs iterative deepening from depth 1 to maxDepth. Every
// iteration is a fresh search that tries the previous iteration's
// principal variation first. The context is checked between iterations
// and periodically inside them; a cancelled iteration is thrown away and
// the result of the deepest completed one is returned. g is not modified.
func (s *Solver) Solve(ctx context.Context, g *game.GameState, maxDepth int) (*Result, error) {
	s.solving.Store(true)
	defer s.solving.Store(false)

	maxDepth = max(1, maxDepth)
	root := g.Copy()
	rootMoves := root.LegalMoves()
	if len(rootMoves) == 0 {
		return nil, ErrNoMoves
	}
	log.Debug().Int("max-depth", maxDepth).Int("threads", s.threads).
		Int("root-moves", len(rootMoves)).Msg("search-start")

	s.nodes.Store(0)
	s.principalVariation = PVLine{}
	tstart := time.Now()
	res := &Result{}

	for depth := 1; depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}
		prevPV := s.principalVariation.Moves
		var pv PVLine
		var score int32
		var err error
		if s.threads > 1 {
			score, err = s.searchRootParallel(ctx, root, depth, prevPV, &pv)
		} else {
			sr := newSearcher(s, prevPV)
			score, err = sr.negamax(ctx, root, 0, depth, equity.ScoreMin, equity.ScoreMax, &pv)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info().Int("depth", depth).Msg("search-interrupted")
				break
			}
			return nil, err
		}
		if len(pv.Moves) == 0 {
			// Every move loses; play the first one we would have tried.
			pv.Moves = append(pv.Moves, orderMoves(rootMoves, prevPV, 0)[0])
			pv.score = score
		}
		s.principalVariation = pv.Copy()
		s.bestPVValue = score

		report := DepthReport{
			Elapsed: time.Since(tstart),
			Depth:   depth,
			Score:   score,
			PV:      s.principalVariation.Copy().Moves,
			Nodes:   s.nodes.Load(),
		}
		res.Reports = append(res.Reports, report)
		if s.logStream != nil {
			fmt.Fprintln(s.logStream, report.String())
		}
		log.Info().Int("depth", depth).Str("score", equity.FormatScore(score)).
			Str("pv", FormatLine(report.PV)).Uint64("nodes", report.Nodes).
			Float64("time-elapsed-sec", report.Elapsed.Seconds()).
			Msg("search-depth-done")
	}

	if len(res.Reports) == 0 {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.New("search completed no iteration")
	}
	last := res.Reports[len(res.Reports)-1]
	res.Move = last.PV[0]
	res.Score = last.Score
	res.Depth = last.Depth
	res.PV = last.PV
	return res, nil
}

// orderMoves moves the principal variation's move for this ply, if there
// is one and it is among moves, to the front. The rest keep generator
// order.
func orderMoves(moves []move.Move, pv []move.Move, ply int) []move.Move {
	if ply >= len(pv) {
		return moves
	}
	idx := lo.IndexOf(moves, pv[ply])
	if idx > 0 {
		moves[0], moves[idx] = moves[idx], moves[0]
	}
	return moves
}

// searcher holds the state of one search thread. Positions are copied
// for every child, so searchers never share a mutable position.
type searcher struct {
	solver *Solver
	prevPV []move.Move
	// one move buffer per ply, so generating at a child does not clobber
	// the parent's list.
	moveBufs [][]move.Move
	nodes    uint64
}

func newSearcher(s *Solver, prevPV []move.Move) *searcher {
	return &searcher{solver: s, prevPV: prevPV}
}

func (sr *searcher) generate(g *game.GameState, ply int) []move.Move {
	for len(sr.moveBufs) <= ply {
		sr.moveBufs = append(sr.moveBufs, make([]move.Move, 0, 32))
	}
	moves := movegen.AppendMoves(sr.moveBufs[ply][:0], &g.Board, g.OnTurn)
	sr.moveBufs[ply] = moves
	return orderMoves(moves, sr.prevPV, ply)
}

func (sr *searcher) evaluate(g *game.GameState) int32 {
	return sr.solver.evaluator.Evaluate(&g.Board, g.OnTurn, g.MoveCount)
}

func (sr *searcher) countNode(ctx context.Context) error {
	sr.nodes++
	sr.solver.nodes.Add(1)
	if sr.nodes%ctxCheckEvery == 0 {
		return ctx.Err()
	}
	return nil
}

// negamax returns the score of g for the side on turn, fail-hard within
// [α, β], and fills pv with the best line found.
func (sr *searcher) negamax(ctx context.Context, g *game.GameState, ply, depth int,
	α, β int32, pv *PVLine) (int32, error) {

	if err := sr.countNode(ctx); err != nil {
		return 0, err
	}
	if depth == 0 {
		return sr.evaluate(g), nil
	}
	children := sr.generate(g, ply)
	if len(children) == 0 {
		// No legal move: the side on turn has lost.
		return equity.ScoreMin, nil
	}

	var childPV PVLine
	for idx, m := range children {
		score, err := sr.searchChild(ctx, g, m, idx == 0, ply, depth, α, β, &childPV)
		if err != nil {
			return 0, err
		}
		if score > α {
			α = score
			pv.Update(m, childPV, score)
		}
		childPV.Clear()
		if α >= β {
			break // beta cut-off
		}
	}
	return α, nil
}

// searchChild plays m on a copy of g and scores it from the mover's point
// of view. The first child gets the full window. Later children get a
// null window around α, one ply shallower still if they are quiet and
// deep enough, and are searched again with the full window only if that
// lands strictly inside (α, β).
func (sr *searcher) searchChild(ctx context.Context, g *game.GameState, m move.Move, first bool,
	ply, depth int, α, β int32, childPV *PVLine) (int32, error) {

	child := *g
	child.ApplyMove(m)

	if first {
		v, err := sr.negamax(ctx, &child, ply+1, depth-1, -β, -α, childPV)
		return -v, err
	}

	probeDepth := depth - 1
	if depth > LMRMinDepth && !m.IsJump() {
		probeDepth -= lmrReduction
	}
	v, err := sr.negamax(ctx, &child, ply+1, probeDepth, -α-1, -α, childPV)
	if err != nil {
		return 0, err
	}
	score := -v
	if α < score && score < β {
		childPV.Clear()
		v, err = sr.negamax(ctx, &child, ply+1, depth-1, -β, -α, childPV)
		if err != nil {
			return 0, err
		}
		score = -v
	}
	return score, nil
}
