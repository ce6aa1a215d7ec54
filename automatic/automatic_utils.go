package automatic

// Data collection for automatic games: computer vs computer matches.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/uisge/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

const GameLogHeader = "gameID,white,black,winner,reason,moves\n"

// MatchOptions describes a computer vs computer match.
type MatchOptions struct {
	NumGames int
	Threads  int
	White    string
	Black    string
	Depth    int
	// Seeds, when set, seed the random players: game i uses seed
	// i modulo len(Seeds).
	Seeds [][32]byte
	// Optional CSV outputs; empty means not written.
	MovesFile string
	GamesFile string
}

func (o MatchOptions) playerFor(name string, gameID int) (Player, error) {
	var seed []byte
	if len(o.Seeds) > 0 {
		s := o.Seeds[gameID%len(o.Seeds)]
		seed = s[:]
	}
	// Search players already run one game per goroutine, so they search
	// single-threaded.
	return NewPlayer(name, o.Depth, 1, seed)
}

type job struct {
	gameID int
}

// PlayMatch plays opts.NumGames games over opts.Threads goroutines and
// returns the aggregated results. Cancelling ctx stops the match after the
// games in progress end; the summary then covers the games completed.
func PlayMatch(ctx context.Context, cfg *config.Config, opts MatchOptions) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if opts.NumGames <= 0 {
		return nil, errors.New("number of games must be positive")
	}
	threads := max(1, opts.Threads)
	if opts.Depth <= 0 {
		opts.Depth = cfg.MaxDepth()
	}
	// Fail on bad player names before starting anything.
	for _, name := range []string{opts.White, opts.Black} {
		if _, err := NewPlayer(name, opts.Depth, 1, nil); err != nil {
			return nil, err
		}
	}

	movesOut, err := createLog(opts.MovesFile)
	if err != nil {
		return nil, err
	}
	gamesOut, err := createLog(opts.GamesFile)
	if err != nil {
		movesOut.Close()
		return nil, err
	}

	log.Info().Int("games", opts.NumGames).Int("threads", threads).
		Str("white", opts.White).Str("black", opts.Black).Int("depth", opts.Depth).
		Msg("starting-match")

	CVCCounter.Set(0)
	jobs := make(chan job, 100)
	logChan := make(chan string, 100)
	gameChan := make(chan string, 10)
	results := make(chan GameResult, 10)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			r := NewGameRunner(logChan, cfg)
			for j := range jobs {
				white, err := opts.playerFor(opts.White, j.gameID)
				if err != nil {
					return err
				}
				black, err := opts.playerFor(opts.Black, j.gameID)
				if err != nil {
					return err
				}
				r.Init(white, black)
				res, err := r.PlayGame(gctx, j.gameID)
				if err != nil {
					if errors.Is(err, context.Canceled) {
						// the feeder has stopped; drop the unfinished game
						continue
					}
					return err
				}
				CVCCounter.Add(1)
				gameChan <- fmt.Sprintf("%d,%s,%s,%s,%s,%d\n", res.GameID, res.White, res.Black,
					winnerString(res), res.Reason, res.Moves)
				results <- res
			}
			return nil
		})
	}

	go func() {
	gameLoop:
		for i := 0; i < opts.NumGames; i++ {
			select {
			case jobs <- job{gameID: i}:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			}
			if (i+1)%1000 == 0 {
				log.Info().Msgf("Queued %v jobs", i+1)
			}
		}
		close(jobs)
	}()

	writersDone := make(chan struct{})
	go func() {
		defer close(writersDone)
		writeLog(movesOut, MoveLogHeader, logChan)
	}()
	gamesDone := make(chan struct{})
	go func() {
		defer close(gamesDone)
		writeLog(gamesOut, GameLogHeader, gameChan)
	}()

	summary := NewSummary(opts.White, opts.Black)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for res := range results {
			summary.Add(res)
		}
	}()

	err = g.Wait()
	close(logChan)
	close(gameChan)
	close(results)
	<-writersDone
	<-gamesDone
	<-collected
	log.Info().Int("games", summary.Games).Msg("All games finished.")
	if err != nil && !errors.Is(err, context.Canceled) {
		return summary, err
	}
	summary.Finalize()
	return summary, nil
}

func winnerString(r GameResult) string {
	if r.Draw {
		return "draw"
	}
	return r.Winner.String()
}

func createLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{io.Discard}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeLog(w io.WriteCloser, header string, lines <-chan string) {
	defer w.Close()
	if _, err := io.WriteString(w, header); err != nil {
		log.Err(err).Msg("writing-log-header")
	}
	for msg := range lines {
		if _, err := io.WriteString(w, msg); err != nil {
			log.Err(err).Msg("writing-log")
		}
	}
}
