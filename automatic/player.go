package automatic

import (
	"context"
	"fmt"
	"strings"

	"lukechampine.com/frand"

	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
	"github.com/domino14/uisge/search"
)

const (
	SearchPlayerName = "search"
	RandomPlayerName = "random"
)

// Player picks a move for the side on turn. The caller guarantees the
// side on turn has at least one legal move.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, g *game.GameState) (move.Move, error)
}

// SearchPlayer plays the principal variation search's choice at a fixed
// depth.
type SearchPlayer struct {
	solver *search.Solver
	depth  int
}

func NewSearchPlayer(depth, threads int) *SearchPlayer {
	s := search.NewSolver(equity.KingCountEvaluator{})
	s.SetThreads(threads)
	return &SearchPlayer{solver: s, depth: depth}
}

func (p *SearchPlayer) Name() string {
	return fmt.Sprintf("%s-%d", SearchPlayerName, p.depth)
}

func (p *SearchPlayer) ChooseMove(ctx context.Context, g *game.GameState) (move.Move, error) {
	return p.solver.Think(ctx, g, p.depth)
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	rng *frand.RNG
}

// NewRandomPlayer seeds the player when seed is not nil, so that a game
// can be replayed; otherwise it draws from the global generator.
func NewRandomPlayer(seed []byte) *RandomPlayer {
	p := &RandomPlayer{}
	if seed != nil {
		p.rng = frand.NewCustom(seed, 1024, 12)
	}
	return p
}

func (p *RandomPlayer) Name() string {
	return RandomPlayerName
}

func (p *RandomPlayer) ChooseMove(ctx context.Context, g *game.GameState) (move.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return move.Move{}, search.ErrNoMoves
	}
	if p.rng != nil {
		return moves[p.rng.Intn(len(moves))], nil
	}
	return moves[frand.Intn(len(moves))], nil
}

// NewPlayer builds a player from its name, "search" or "random".
func NewPlayer(name string, depth, threads int, seed []byte) (Player, error) {
	switch strings.ToLower(name) {
	case SearchPlayerName:
		return NewSearchPlayer(depth, threads), nil
	case RandomPlayerName:
		return NewRandomPlayer(seed), nil
	}
	return nil, fmt.Errorf("unknown player %q, want %q or %q", name, SearchPlayerName, RandomPlayerName)
}
