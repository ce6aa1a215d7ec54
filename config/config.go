package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigMaxDepth     = "max-depth"
	ConfigThreads      = "threads"
	ConfigDebug        = "debug"
	ConfigColor        = "color"
	ConfigComputer     = "computer"
	ConfigMaxGameMoves = "max-game-moves"
	ConfigBoardsPath   = "boards-path"
	ConfigCPUProfile   = "cpu-profile"
	ConfigMemProfile   = "mem-profile"
)

const (
	DefaultMaxDepth     = 11
	DefaultMaxGameMoves = 200
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every default set and nothing read
// from flags or the environment.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigMaxDepth, DefaultMaxDepth)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigColor, true)
	c.SetDefault(ConfigComputer, "black")
	c.SetDefault(ConfigMaxGameMoves, DefaultMaxGameMoves)
	c.SetDefault(ConfigBoardsPath, "./data/boards")
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
}

// Load reads flags from args and UISGE_ environment variables. Flags win
// over the environment, which wins over the defaults. Arguments that are
// not flags are left for the caller in Args; parsing stops at the first
// of them, so "--threads 4 autoplay -games 10" leaves "autoplay -games 10".
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = viper.New()
	c.setDefaults()
	c.SetEnvPrefix("uisge")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("uisge", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.String(ConfigMaxDepth, fmt.Sprint(DefaultMaxDepth), "maximum search depth in plies")
	fs.Int(ConfigThreads, 1, "goroutines used to split the root of a search")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Bool(ConfigColor, true, "draw the board with ANSI colours")
	fs.String(ConfigComputer, "black", "side the computer plays in the console: white, black or none")
	fs.Int(ConfigMaxGameMoves, DefaultMaxGameMoves, "moves after which a self-play game is drawn")
	fs.String(ConfigBoardsPath, "./data/boards", "where the connected-board enumerator writes its dumps")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigMemProfile, "", "write a heap profile to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	// Only flags given on the command line override the environment.
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if err := c.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}
	return fs.Args(), nil
}

// MaxDepth is lenient: anything that is not a positive number falls back
// to the default.
func (c *Config) MaxDepth() int {
	d := c.GetInt(ConfigMaxDepth)
	if d <= 0 {
		if s := c.GetString(ConfigMaxDepth); s != "" && s != fmt.Sprint(d) {
			log.Warn().Str("max-depth", s).Int("using", DefaultMaxDepth).Msg("bad-max-depth")
		}
		return DefaultMaxDepth
	}
	return d
}

func (c *Config) Threads() int {
	return max(1, c.GetInt(ConfigThreads))
}

func (c *Config) Debug() bool {
	return c.GetBool(ConfigDebug)
}

func (c *Config) Color() bool {
	return c.GetBool(ConfigColor)
}

// Computer is "white", "black" or "none".
func (c *Config) Computer() string {
	return strings.ToLower(strings.TrimSpace(c.GetString(ConfigComputer)))
}

func (c *Config) MaxGameMoves() int {
	n := c.GetInt(ConfigMaxGameMoves)
	if n <= 0 {
		return DefaultMaxGameMoves
	}
	return n
}

func (c *Config) BoardsPath() string {
	return c.GetString(ConfigBoardsPath)
}

// AdjustRelativePaths makes a relative boards path relative to basepath,
// normally the executable's directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.BoardsPath()
	if p == "" || filepath.IsAbs(p) {
		return
	}
	c.Set(ConfigBoardsPath, filepath.Join(basepath, p))
}

// SanitizedSettings is every setting, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
