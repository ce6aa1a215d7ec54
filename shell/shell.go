// Package shell is the interactive console: a readline prompt that plays
// uisge against the search, or watches it play itself.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/uisge/board"
	"github.com/domino14/uisge/config"
	"github.com/domino14/uisge/equity"
	"github.com/domino14/uisge/game"
	"github.com/domino14/uisge/search"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errGameOver          = errors.New("the game is over; type new to start another")
	errThinking          = errors.New("the computer is thinking")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	gitVersion string

	game   *game.GameState
	solver *search.Solver

	// computer is the side the search plays by itself, if any.
	computer    board.Side
	hasComputer bool

	ctx    context.Context
	cancel context.CancelFunc
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, gitVersion string) *ShellController {
	prompt := "uisge>"
	if cfg.Color() {
		prompt = "\033[35muisge>\033[0m"
	}
	sc := newController(cfg, os.Stderr)
	sc.gitVersion = gitVersion
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt + " ",
		HistoryFile:     filepath.Join(os.TempDir(), "uisge_readline.tmp"),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// newController builds a controller that writes to out and has no
// readline instance.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{
		out:    out,
		config: cfg,
		game:   game.NewGameState(),
		solver: search.NewSolver(equity.KingCountEvaluator{}),
	}
	sc.solver.SetThreads(cfg.Threads())
	sc.ctx, sc.cancel = context.WithCancel(context.Background())
	if side, ok, err := parseComputer(cfg.Computer()); err != nil {
		log.Warn().Err(err).Msg("ignoring-computer-setting")
	} else {
		sc.computer, sc.hasComputer = side, ok
	}
	return sc
}

func parseComputer(s string) (board.Side, bool, error) {
	switch strings.ToLower(s) {
	case "white":
		return board.White, true, nil
	case "black":
		return board.Black, true, nil
	case "none", "":
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("computer must be white, black or none, not %q", s)
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		field := fields[idx]
		if strings.HasPrefix(field, "-") && len(field) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := field[1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, field)
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// standardModeSwitch runs one command line. It returns a nil response
// for exit.
func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit":
		return nil, nil
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "moves", "list":
		return sc.moves(cmd)
	case "play":
		return sc.play(cmd)
	case "think":
		return sc.think(cmd)
	case "bot":
		return sc.bot(cmd)
	case "computer":
		return sc.setComputer(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "set":
		return sc.set(cmd)
	default:
		log.Debug().Msgf("you said: %q", line)
		return nil, fmt.Errorf("unrecognized command %q; type help for a list", cmd.cmd)
	}
}

// Execute runs a single command given on the command line, then asks the
// process to shut down.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if resp, err := sc.standardModeSwitch(line); err != nil {
		sc.showError(err)
	} else if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	sig <- syscall.SIGINT
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	sc.showMessage(fmt.Sprintf("uisge %s. Type help for a list of commands.", sc.gitVersion))
	sc.showMessage(sc.game.ToDisplayText(sc.config.Color()))
	if resp, err := sc.computerReply(); err != nil {
		sc.showError(err)
	} else if resp != "" {
		sc.showMessage(resp)
	}

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp == nil {
			sig <- syscall.SIGINT
			break
		}
		if resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup stops any search still running.
func (sc *ShellController) Cleanup() {
	sc.cancel()
	log.Info().Msg("cleaning up")
}
