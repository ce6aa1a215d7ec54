package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/domino14/uisge/board"
)

// AnalyzeLogFile reads a games CSV written by PlayMatch and rebuilds the
// match summary from it.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return AnalyzeGameLog(file)
}

func AnalyzeGameLog(in io.Reader) (*Summary, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = 6

	// Record looks like:
	// gameID,white,black,winner,reason,moves
	var s *Summary
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == "gameID" {
			// this is the header line
			continue
		}
		if s == nil {
			s = NewSummary(record[1], record[2])
		}
		moves, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("game %s: bad move count: %w", record[0], err)
		}
		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad game id %q: %w", record[0], err)
		}
		res := GameResult{GameID: id, Reason: EndReason(record[4]), Moves: moves,
			White: record[1], Black: record[2]}
		switch record[3] {
		case "draw":
			res.Draw = true
		case board.White.String():
			res.Winner = board.White
		case board.Black.String():
			res.Winner = board.Black
		default:
			return nil, fmt.Errorf("game %s: bad winner %q", record[0], record[3])
		}
		s.Add(res)
	}
	if s == nil {
		return NewSummary("", ""), nil
	}
	s.Finalize()
	return s, nil
}
