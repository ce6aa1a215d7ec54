// Command gentables writes board/tables.go, the precomputed step and jump
// neighbour masks for every cell.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/uisge/board"
)

type table struct {
	name    string
	doc     string
	compute func(x, y uint8) board.BitBoard
}

var tables = []table{
	{"StepNeighbors", "holds, for every cell, the cells a king can step to.", board.ComputeStepNeighbors},
	{"JumpNeighbors", "holds, for every cell, the cells two orthogonal steps away.", board.ComputeJumpNeighbors},
}

func generate(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gentables; DO NOT EDIT.\n\npackage board\n")
	for _, t := range tables {
		fmt.Fprintf(&buf, "\n// %s %s\nvar %s = [NumCells]BitBoard{\n", t.name, t.doc, t.name)
		for y := uint8(0); y < board.Height; y++ {
			for x := uint8(0); x < board.Width; x++ {
				idx, _ := board.CoordToIndex(x, y)
				fmt.Fprintf(&buf, "\t0b%042b, // %d\n", uint64(t.compute(x, y)), idx)
			}
		}
		buf.WriteString("}\n")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func main() {
	out := pflag.String("out", "", "output file; stdout when empty")
	pflag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("creating-output")
		}
		defer f.Close()
		w = f
	}
	if err := generate(w); err != nil {
		log.Fatal().Err(err).Msg("generating-tables")
	}
}
