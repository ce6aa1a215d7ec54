package search

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func newTestSolver() *Solver {
	return NewSolver(equity.KingCountEvaluator{})
}

// White king on b2, white pawn on c1, black pawns on b1 and c2. Of the
// five white moves only the king step b2-a1 leaves black without a move.
func winInOne() *game.GameState {
	b := board.NewBoard(board.NewPieceList(8), board.NewPieceList(2),
		board.EmptyPieceList, board.NewPieceList(1, 9))
	return game.FromBoard(b, board.White, 0)
}

func TestDepthOneReturnsLegalMove(t *testing.T) {
	is := is.New(t)
	g := game.NewGameState()
	s := newTestSolver()
	m, err := s.Think(context.Background(), g, 1)
	is.NoErr(err)
	is.True(lo.Contains(g.LegalMoves(), m))
}

func TestThinkIsDeterministic(t *testing.T) {
	is := is.New(t)
	g := game.NewGameState()
	s := newTestSolver()

	r1, err := s.Solve(context.Background(), g, 5)
	is.NoErr(err)
	r2, err := s.Solve(context.Background(), g, 5)
	is.NoErr(err)
	is.Equal(r1.Move, r2.Move)
	is.Equal(r1.Score, r2.Score)
	is.Equal(r1.PV, r2.PV)
}

func TestSolveDoesNotModifyGame(t *testing.T) {
	is := is.New(t)
	g := game.NewGameState()
	g.ApplyMove(move.New(9, 11))
	before := *g
	s := newTestSolver()
	_, err := s.Solve(context.Background(), g, 4)
	is.NoErr(err)
	is.Equal(*g, before)
}

func TestReportsEveryDepth(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	s := newTestSolver()
	s.SetLogStream(&out)

	res, err := s.Solve(context.Background(), game.NewGameState(), 4)
	is.NoErr(err)
	is.Equal(len(res.Reports), 4)
	for i, r := range res.Reports {
		is.Equal(r.Depth, i+1)
		is.True(len(r.PV) > 0)
		is.True(r.Nodes > 0)
	}
	is.Equal(res.Depth, 4)
	is.Equal(res.Move, res.PV[0])
	is.Equal(res.Score, res.Reports[3].Score)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	is.Equal(len(lines), 4)
	is.True(strings.Contains(lines[0], " | "))
	is.True(!s.IsSolving())
}

func TestPVIsPlayable(t *testing.T) {
	is := is.New(t)
	g := game.NewGameState()
	s := newTestSolver()
	res, err := s.Solve(context.Background(), g, 5)
	is.NoErr(err)

	replay := g.Copy()
	for _, m := range res.PV {
		is.True(lo.Contains(replay.LegalMoves(), m))
		replay.ApplyMove(m)
	}
}

func TestNoMoves(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.EmptyPieceList, board.NewPieceList(3),
		board.EmptyPieceList, board.NewPieceList(2, 4))
	g := game.FromBoard(b, board.White, 0)
	s := newTestSolver()
	_, err := s.Think(context.Background(), g, 3)
	is.True(errors.Is(err, ErrNoMoves))
}

func TestFindsWin(t *testing.T) {
	is := is.New(t)
	g := winInOne()
	is.Equal(g.LegalMoves(), []move.Move{
		move.New(8, 10), move.New(8, 0), move.New(8, 16), move.New(2, 0), move.New(2, 16)})

	s := newTestSolver()
	res, err := s.Solve(context.Background(), g, 4)
	is.NoErr(err)
	is.Equal(res.Move, move.New(8, 0))
	is.Equal(res.Score, equity.ScoreMax)

	after := g.Copy()
	after.ApplyMove(res.Move)
	is.Equal(len(after.LegalMoves()), 0)
}

func TestShallowSearchPrefersKings(t *testing.T) {
	is := is.New(t)
	// At depth one the win is past the horizon, and crowning the pawn
	// scores best.
	s := newTestSolver()
	res, err := s.Solve(context.Background(), winInOne(), 1)
	is.NoErr(err)
	is.Equal(res.Move, move.New(2, 0))
	is.Equal(res.Score, int32(2099))
}

func TestCancelledContext(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newTestSolver()
	_, err := s.Solve(ctx, game.NewGameState(), 6)
	is.True(errors.Is(err, context.Canceled))
}

func TestParallelRoot(t *testing.T) {
	is := is.New(t)
	g := game.NewGameState()
	s := newTestSolver()
	s.SetThreads(4)

	r1, err := s.Solve(context.Background(), g, 5)
	is.NoErr(err)
	r2, err := s.Solve(context.Background(), g, 5)
	is.NoErr(err)
	is.True(lo.Contains(g.LegalMoves(), r1.Move))
	is.Equal(r1.Move, r2.Move)
	is.Equal(r1.Score, r2.Score)
	is.Equal(len(r1.Reports), 5)
}

func TestParallelFindsWin(t *testing.T) {
	is := is.New(t)
	s := newTestSolver()
	s.SetThreads(3)
	res, err := s.Solve(context.Background(), winInOne(), 3)
	is.NoErr(err)
	is.Equal(res.Move, move.New(8, 0))
	is.Equal(res.Score, equity.ScoreMax)
}

func TestOrderMovesPromotesPV(t *testing.T) {
	is := is.New(t)
	moves := []move.Move{move.New(9, 11), move.New(10, 8), move.New(17, 3), move.New(17, 19)}
	pv := []move.Move{move.New(17, 3)}
	is.Equal(orderMoves(moves, pv, 0), []move.Move{
		move.New(17, 3), move.New(10, 8), move.New(9, 11), move.New(17, 19)})
	// no PV move for deeper plies
	is.Equal(orderMoves(moves, pv, 1)[0], move.New(17, 3))
}

func TestPVLine(t *testing.T) {
	is := is.New(t)
	var child PVLine
	child.Update(move.New(23, 9), PVLine{}, -5)
	var pv PVLine
	pv.Update(move.New(9, 11), child, 5)
	is.Equal(pv.String(), "9->11 23->9")
	is.Equal(pv.Score(), int32(5))
	is.Equal(pv.GetPVMove(), move.New(9, 11))
	is.Equal(pv.NLBString(), "PV; val 0.005; 9->11 23->9")

	c := pv.Copy()
	pv.Clear()
	is.Equal(len(pv.Moves), 0)
	is.Equal(len(c.Moves), 2)
}

func BenchmarkOpeningDepth7(b *testing.B) {
	g := game.NewGameState()
	s := newTestSolver()
	for b.Loop() {
		if _, err := s.Think(context.Background(), g, 7); err != nil {
			b.Fatal(err)
		}
	}
}
