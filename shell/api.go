package shell

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/domino14/uisge/automatic"
	"github.com/domino14/uisge/config"
	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/move"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) StringDefault(key, defaultS string) string {
	if v := c.String(key); v != "" {
		return v
	}
	return defaultS
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) display() string {
	out := sc.game.ToDisplayText(sc.config.Color())
	if winner, over := sc.game.Winner(); over {
		out += fmt.Sprintf("\n%s has no moves. %s wins!",
			strings.ToUpper(sc.game.OnTurn.String()), strings.ToUpper(winner.String()))
	}
	return out
}

func (sc *ShellController) gameOver() bool {
	_, over := sc.game.Winner()
	return over
}

// computerReply lets the computer move while it is on turn and the game
// goes on. It returns the text to show for the reply.
func (sc *ShellController) computerReply() (string, error) {
	if !sc.hasComputer || sc.game.OnTurn != sc.computer || sc.gameOver() {
		return "", nil
	}
	m, err := sc.solver.Think(sc.ctx, sc.game, sc.config.MaxDepth())
	if err != nil {
		return "", err
	}
	log.Debug().Str("move", m.String()).Msg("computer-reply")
	sc.game.ApplyMove(m)
	return fmt.Sprintf("Computer plays %s (%s)\n%s", m.Algebraic(), m, sc.display()), nil
}

// afterMove shows the position following a human or bot move, plus the
// computer's answer if it is on turn.
func (sc *ShellController) afterMove(prefix string) (*Response, error) {
	out := prefix + sc.display()
	reply, err := sc.computerReply()
	if err != nil {
		return nil, err
	}
	if reply != "" {
		out += "\n" + reply
	}
	return msg(out), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if sc.solver.IsSolving() {
		return nil, errThinking
	}
	sc.game = game.NewGameState()
	return sc.afterMove("")
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.display()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	legal := sc.game.LegalMoves()
	if len(legal) == 0 {
		return msg("No legal moves."), nil
	}
	var sb strings.Builder
	for i, m := range legal {
		kind := "step"
		if m.IsJump() {
			kind = "jump"
		}
		fmt.Fprintf(&sb, "%3d) %s  %-7s %s\n", i+1, m.Algebraic(), m.String(), kind)
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// parsePlay reads either a 1-based index into the legal move list or a
// move written as cells.
func parsePlay(arg string, legal []move.Move) (move.Move, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(legal) {
			return move.Move{}, fmt.Errorf("move number must be between 1 and %d", len(legal))
		}
		return legal[n-1], nil
	}
	m, err := move.Parse(arg)
	if err != nil {
		return move.Move{}, err
	}
	if !lo.Contains(legal, m) {
		return move.Move{}, fmt.Errorf("%s is not a legal move", m.Algebraic())
	}
	return m, nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: play <n|move>")
	}
	if sc.gameOver() {
		return nil, errGameOver
	}
	m, err := parsePlay(strings.Join(cmd.args, " "), sc.game.LegalMoves())
	if err != nil {
		return nil, err
	}
	sc.game.ApplyMove(m)
	return sc.afterMove("")
}

func (sc *ShellController) searchDepth(cmd *shellcmd) (int, error) {
	depth, err := cmd.options.IntDefault("depth", sc.config.MaxDepth())
	if err != nil {
		return 0, err
	}
	if depth < 1 {
		return 0, errors.New("depth must be at least 1")
	}
	return depth, nil
}

func (sc *ShellController) think(cmd *shellcmd) (*Response, error) {
	if sc.gameOver() {
		return nil, errGameOver
	}
	depth, err := sc.searchDepth(cmd)
	if err != nil {
		return nil, err
	}
	sc.showMessage("    time |   d |     score | pv")
	sc.solver.SetLogStream(sc.out)
	defer sc.solver.SetLogStream(nil)
	res, err := sc.solver.Solve(sc.ctx, sc.game, depth)
	if err != nil {
		return nil, err
	}
	// node counts run into the millions; group their digits
	p := message.NewPrinter(language.English)
	return msg(p.Sprintf("Best move: %s (%s), score %s at depth %d, %d nodes",
		res.Move.Algebraic(), res.Move, equity.FormatScore(res.Score), res.Depth,
		sc.solver.Nodes())), nil
}

func (sc *ShellController) bot(cmd *shellcmd) (*Response, error) {
	if sc.gameOver() {
		return nil, errGameOver
	}
	depth, err := sc.searchDepth(cmd)
	if err != nil {
		return nil, err
	}
	m, err := sc.solver.Think(sc.ctx, sc.game, depth)
	if err != nil {
		return nil, err
	}
	sc.game.ApplyMove(m)
	return sc.afterMove(fmt.Sprintf("Bot plays %s (%s)\n", m.Algebraic(), m))
}

func (sc *ShellController) setComputer(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if !sc.hasComputer {
			return msg("computer: none"), nil
		}
		return msg("computer: " + sc.computer.String()), nil
	}
	side, ok, err := parseComputer(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.computer, sc.hasComputer = side, ok
	sc.config.Set(config.ConfigComputer, strings.ToLower(cmd.args[0]))
	return sc.afterMove("")
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	games, err := cmd.options.IntDefault("games", 100)
	if err != nil {
		return nil, err
	}
	depth, err := cmd.options.IntDefault("depth", 0)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.Threads())
	if err != nil {
		return nil, err
	}
	opts := automatic.MatchOptions{
		NumGames:  games,
		Threads:   threads,
		White:     cmd.options.StringDefault("white", "search"),
		Black:     cmd.options.StringDefault("black", "random"),
		Depth:     depth,
		MovesFile: cmd.options.String("moves"),
		GamesFile: cmd.options.String("gamelog"),
	}
	if seedFile := cmd.options.String("seeds"); seedFile != "" {
		if opts.Seeds, err = seedsFrom(seedFile, games); err != nil {
			return nil, err
		}
	}

	summary, err := automatic.PlayMatch(sc.ctx, sc.config, opts)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(summary.String())
	if err := summary.Histogram(&sb); err != nil {
		return nil, err
	}
	if path := cmd.options.String("summary"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := summary.WriteYAML(f); err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "Summary written to %s", path)
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// seedsFrom loads seeds from path, creating the file with fresh seeds if
// it does not exist yet.
func seedsFrom(path string, n int) ([][32]byte, error) {
	seeds, err := automatic.LoadSeeds(path)
	if err == nil {
		return seeds, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	seeds = automatic.GenerateSeeds(n)
	if err := automatic.SaveSeeds(seeds, path); err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("seeds", n).Msg("wrote-seeds")
	return seeds, nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("depth: %d\nthreads: %d", sc.config.MaxDepth(), sc.config.Threads())), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <depth|threads> <n>")
	}
	n, err := strconv.Atoi(cmd.args[1])
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, errors.New("value must be at least 1")
	}
	switch cmd.args[0] {
	case "depth":
		sc.config.Set(config.ConfigMaxDepth, n)
	case "threads":
		sc.config.Set(config.ConfigThreads, n)
		sc.solver.SetThreads(n)
	default:
		return nil, fmt.Errorf("cannot set %q", cmd.args[0])
	}
	return msg(fmt.Sprintf("set %s to %d", cmd.args[0], n)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}
