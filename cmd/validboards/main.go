// Command validboards enumerates every board occupancy whose pieces form
// one orthogonally connected group and dumps them as big-endian uint64
// masks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/uisge/config"
	"github.com/domino14/uisge/enumerate"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := config.DefaultConfig()
	pieces := pflag.Int("pieces", enumerate.DefaultPieces, "number of pieces on the board")
	threads := pflag.Int("threads", runtime.NumCPU(), "worker goroutines")
	out := pflag.String("out", "", "dump file; defaults to <boards-path>/valid_boards_<pieces>.bin")
	countOnly := pflag.Bool("count", false, "only count the boards")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if *countOnly {
		n, err := enumerate.Count(ctx, *pieces, *threads)
		if err != nil {
			log.Fatal().Err(err).Msg("enumeration-failed")
		}
		log.Info().Int("pieces", *pieces).Int("boards", n).
			Dur("elapsed", time.Since(start)).Msg("count-done")
		return
	}

	path := *out
	if path == "" {
		path = filepath.Join(cfg.BoardsPath(), fmt.Sprintf("valid_boards_%d.bin", *pieces))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("creating-output-dir")
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Msg("creating-dump")
	}
	defer f.Close()

	dw := enumerate.NewDumpWriter(f)
	if err := enumerate.Enumerate(ctx, *pieces, *threads, dw.Write); err != nil {
		log.Fatal().Err(err).Msg("enumeration-failed")
	}
	if err := dw.Flush(); err != nil {
		log.Fatal().Err(err).Msg("flushing-dump")
	}
	log.Info().Str("path", path).Int("pieces", *pieces).Int("boards", dw.Count()).
		Str("xxhash", fmt.Sprintf("%016x", dw.Sum64())).
		Dur("elapsed", time.Since(start)).Msg("dump-written")
}
