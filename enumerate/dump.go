package enumerate

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/uisge/board"
)

// A dump is a flat sequence of big-endian uint64 occupancy masks, eight
// bytes per board, with no header.

const recordSize = 8

var ErrTruncatedDump = errors.New("dump length is not a multiple of 8 bytes")

// DumpWriter writes boards in dump format and keeps an xxhash digest of
// every byte written.
type DumpWriter struct {
	w     *bufio.Writer
	h     hash.Hash64
	count int
	buf   [recordSize]byte
}

func NewDumpWriter(w io.Writer) *DumpWriter {
	return &DumpWriter{w: bufio.NewWriter(w), h: xxhash.New()}
}

func (d *DumpWriter) Write(bb board.BitBoard) error {
	binary.BigEndian.PutUint64(d.buf[:], uint64(bb))
	if _, err := d.w.Write(d.buf[:]); err != nil {
		return err
	}
	d.h.Write(d.buf[:])
	d.count++
	return nil
}

func (d *DumpWriter) Flush() error {
	return d.w.Flush()
}

func (d *DumpWriter) Count() int {
	return d.count
}

func (d *DumpWriter) Sum64() uint64 {
	return d.h.Sum64()
}

// ReadDump loads a dump and returns its boards and digest.
func ReadDump(r io.Reader) ([]board.BitBoard, uint64, error) {
	br := bufio.NewReader(r)
	h := xxhash.New()
	var boards []board.BitBoard
	var buf [recordSize]byte
	for {
		n, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: %d trailing bytes", ErrTruncatedDump, n)
		}
		if err != nil {
			return nil, 0, err
		}
		h.Write(buf[:])
		boards = append(boards, board.BitBoard(binary.BigEndian.Uint64(buf[:])))
	}
	return boards, h.Sum64(), nil
}

// LoadDump reads the dump at path. It refuses dumps that would take more
// than fractionOfMemory of the machine's memory once loaded.
func LoadDump(path string, fractionOfMemory float64) ([]board.BitBoard, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	totalMem := memory.TotalMemory()
	allowed := fractionOfMemory * float64(totalMem)
	// Loaded boards take as many bytes as the file.
	if totalMem > 0 && float64(st.Size()) > allowed {
		return nil, 0, fmt.Errorf("dump %s is %d bytes; only %.0f allowed", path, st.Size(), allowed)
	}
	log.Debug().Str("path", path).Int64("dump-bytes", st.Size()).
		Uint64("total-system-memory-bytes", totalMem).Msg("loading-dump")
	return ReadDump(f)
}
