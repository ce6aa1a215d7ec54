package automatic

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/config"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
)

var DefaultConfig = config.DefaultConfig()

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// scriptedPlayer plays the first of its preferred moves that is legal.
type scriptedPlayer struct {
	prefs []move.Move
}

func (p *scriptedPlayer) Name() string { return "scripted" }

func (p *scriptedPlayer) ChooseMove(ctx context.Context, g *game.GameState) (move.Move, error) {
	legal := g.LegalMoves()
	for _, m := range p.prefs {
		if lo.Contains(legal, m) {
			return m, nil
		}
	}
	return move.Move{}, fmt.Errorf("no scripted move among %v", legal)
}

// Two pawns in the middle, a king above for white and below for black.
// Each king can shuffle sideways forever.
func shufflePosition() *game.GameState {
	b := board.NewBoard(board.NewPieceList(8), board.NewPieceList(15),
		board.NewPieceList(22), board.NewPieceList(16))
	return game.FromBoard(b, board.White, 0)
}

func TestRepetitionIsDraw(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(nil, DefaultConfig)
	r.Init(&scriptedPlayer{[]move.Move{move.New(8, 9), move.New(9, 8)}},
		&scriptedPlayer{[]move.Move{move.New(22, 23), move.New(23, 22)}})

	res, err := r.PlayGameFrom(context.Background(), 1, shufflePosition())
	is.NoErr(err)
	is.True(res.Draw)
	is.Equal(res.Reason, EndRepetition)
	// the start position is seen again after four and eight moves
	is.Equal(res.Moves, 8)
}

func TestMoveCapIsDraw(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(nil, DefaultConfig)
	r.Init(NewRandomPlayer(nil), NewRandomPlayer(nil))
	r.SetMaxMoves(2)
	res, err := r.PlayGame(context.Background(), 7)
	is.NoErr(err)
	is.True(res.Draw)
	is.Equal(res.Reason, EndMoveCap)
	is.Equal(res.Moves, 2)
	is.Equal(res.GameID, 7)
}

func TestRandomGameEnds(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 1000)
	r := NewGameRunner(logchan, DefaultConfig)
	seed := GenerateSeeds(1)[0]
	r.Init(NewRandomPlayer(seed[:]), NewRandomPlayer(nil))

	res, err := r.PlayGame(context.Background(), 3)
	is.NoErr(err)
	is.True(res.Moves > 0)
	is.True(res.Moves <= DefaultConfig.MaxGameMoves())
	if !res.Draw {
		is.Equal(res.Reason, EndNoMoves)
		is.Equal(r.Game().OnTurn, res.Winner.Opponent())
		is.Equal(len(r.Game().LegalMoves()), 0)
	}
	close(logchan)
	lines := 0
	for l := range logchan {
		is.True(strings.HasPrefix(l, "3,"))
		is.Equal(strings.Count(l, ","), strings.Count(MoveLogHeader, ","))
		lines++
	}
	is.Equal(lines, res.Moves)
}

func TestSeededRandomPlayersRepeat(t *testing.T) {
	is := is.New(t)
	seed := GenerateSeeds(1)[0]
	play := func() GameResult {
		r := NewGameRunner(nil, DefaultConfig)
		r.Init(NewRandomPlayer(seed[:]), NewRandomPlayer(seed[:]))
		res, err := r.PlayGame(context.Background(), 0)
		is.NoErr(err)
		return res
	}
	is.Equal(play(), play())
}

func TestSearchPlayerWins(t *testing.T) {
	is := is.New(t)
	// Only the king step b2-a1 leaves black without a move.
	b := board.NewBoard(board.NewPieceList(8), board.NewPieceList(2),
		board.EmptyPieceList, board.NewPieceList(1, 9))
	r := NewGameRunner(nil, DefaultConfig)
	r.Init(NewSearchPlayer(3, 1), NewRandomPlayer(nil))
	res, err := r.PlayGameFrom(context.Background(), 0, game.FromBoard(b, board.White, 0))
	is.NoErr(err)
	is.True(!res.Draw)
	is.Equal(res.Winner, board.White)
	is.Equal(res.Moves, 1)
}

func TestNewPlayer(t *testing.T) {
	is := is.New(t)
	p, err := NewPlayer("Search", 4, 1, nil)
	is.NoErr(err)
	is.Equal(p.Name(), "search-4")
	p, err = NewPlayer("random", 4, 1, nil)
	is.NoErr(err)
	is.Equal(p.Name(), "random")
	_, err = NewPlayer("oracle", 4, 1, nil)
	is.True(err != nil)
}
