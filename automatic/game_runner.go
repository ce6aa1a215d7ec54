// Package automatic plays uisge games between two computer players and
// collects the results.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/config"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/zobrist"
)

// EndReason says why a game stopped.
type EndReason string

const (
	EndNoMoves    EndReason = "no-moves"
	EndRepetition EndReason = "repetition"
	EndMoveCap    EndReason = "move-cap"
	// a position occurring this many times is a draw
	repetitionLimit = 3
)

const MoveLogHeader = "gameID,ply,side,player,move,whitekings,blackkings\n"

// GameResult is the outcome of one game. Winner is only meaningful when
// Draw is false.
type GameResult struct {
	GameID int
	Winner board.Side
	Draw   bool
	Reason EndReason
	Moves  int
	White  string
	Black  string
}

func (r GameResult) String() string {
	if r.Draw {
		return fmt.Sprintf("game %d: draw by %s after %d moves", r.GameID, r.Reason, r.Moves)
	}
	return fmt.Sprintf("game %d: %s wins (%s) after %d moves", r.GameID, r.Winner, r.Reason, r.Moves)
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game     *game.GameState
	players  [2]Player
	zobrist  *zobrist.Zobrist
	maxMoves int

	logchan chan string
}

// NewGameRunner returns a runner with two depth-limited search players.
func NewGameRunner(logchan chan string, cfg *config.Config) *GameRunner {
	r := &GameRunner{logchan: logchan, maxMoves: cfg.MaxGameMoves()}
	r.zobrist = &zobrist.Zobrist{}
	r.zobrist.Initialize()
	p1 := NewSearchPlayer(cfg.MaxDepth(), cfg.Threads())
	p2 := NewSearchPlayer(cfg.MaxDepth(), cfg.Threads())
	r.Init(p1, p2)
	return r
}

// Init sets the players, white first.
func (r *GameRunner) Init(white, black Player) {
	r.players = [2]Player{white, black}
}

func (r *GameRunner) SetMaxMoves(n int) {
	r.maxMoves = n
}

func (r *GameRunner) StartGame() {
	r.game = game.NewGameState()
}

func (r *GameRunner) Game() *game.GameState {
	return r.game
}

// PlayGame plays one game from the opening to the end. The side to move
// with no legal move loses. The third occurrence of the same position with
// the same side to move, or reaching the move cap, is a draw.
func (r *GameRunner) PlayGame(ctx context.Context, gameID int) (GameResult, error) {
	return r.PlayGameFrom(ctx, gameID, game.NewGameState())
}

// PlayGameFrom plays a game starting from a copy of start.
func (r *GameRunner) PlayGameFrom(ctx context.Context, gameID int, start *game.GameState) (GameResult, error) {
	r.game = start.Copy()
	res := GameResult{GameID: gameID, White: r.players[0].Name(), Black: r.players[1].Name()}

	seen := map[uint64]int{}
	key := r.zobrist.Hash(&r.game.Board, r.game.OnTurn)
	seen[key]++

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Moves = int(r.game.MoveCount)
		if winner, over := r.game.Winner(); over {
			res.Winner = winner
			res.Reason = EndNoMoves
			break
		}
		if r.maxMoves > 0 && res.Moves >= r.maxMoves {
			res.Draw = true
			res.Reason = EndMoveCap
			break
		}

		onTurn := r.game.OnTurn
		p := r.players[onTurn]
		m, err := p.ChooseMove(ctx, r.game)
		if err != nil {
			return res, err
		}
		key = r.zobrist.AddMove(key, &r.game.Board, onTurn, m)
		r.game.ApplyMove(m)

		if r.logchan != nil {
			r.logchan <- fmt.Sprintf("%d,%d,%s,%s,%s,%d,%d\n",
				gameID,
				r.game.MoveCount,
				onTurn,
				p.Name(),
				m.String(),
				r.game.Board.WhiteKings.Len(),
				r.game.Board.BlackKings.Len())
		}

		seen[key]++
		if seen[key] >= repetitionLimit {
			res.Moves = int(r.game.MoveCount)
			res.Draw = true
			res.Reason = EndRepetition
			break
		}
	}
	log.Debug().Int("game", gameID).Str("result", res.String()).Msg("game-over")
	return res, nil
}
