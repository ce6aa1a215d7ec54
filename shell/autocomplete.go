package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/uisge/move"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"think": {Options: []string{"-depth"}},
	"bot":   {Options: []string{"-depth"}},
	"autoplay": {
		Options: []string{
			"-games", "-depth", "-white", "-black", "-threads", "-seeds",
			"-moves", "-gamelog", "-summary",
		},
	},
	"computer": {Args: []string{"white", "black", "none"}},
	"set":      {Args: []string{"depth", "threads"}},
	"help": {
		Args: []string{"play", "think", "bot", "computer", "autoplay", "set"},
	},
}

var commandNames = []string{
	"help", "new", "show", "moves", "play", "think", "bot", "computer",
	"autoplay", "set", "exit",
}

var playerNames = []string{"search", "random"}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// unbalanced quotes
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-white" || lastCompleteField == "-black":
			completions = playerNames
		case cmdName == "play" && !strings.HasPrefix(prefix, "-"):
			completions = lo.Map(c.sc.game.LegalMoves(), func(m move.Move, _ int) string {
				return m.Algebraic()
			})
		default:
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
