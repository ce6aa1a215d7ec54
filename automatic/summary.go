package automatic

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"

	"github.com/domino14/uisge/board"
)

const histogramBins = 10

// Summary aggregates the results of a match.
type Summary struct {
	White string `yaml:"white"`
	Black string `yaml:"black"`

	Games     int `yaml:"games"`
	WhiteWins int `yaml:"white_wins"`
	BlackWins int `yaml:"black_wins"`
	Draws     int `yaml:"draws"`

	DrawsByRepetition int `yaml:"draws_by_repetition"`
	DrawsByMoveCap    int `yaml:"draws_by_move_cap"`

	// White's score counts a draw as half a win.
	WhiteScore    float64 `yaml:"white_score"`
	WhiteScoreLow float64 `yaml:"white_score_ci95_low"`
	WhiteScoreHi  float64 `yaml:"white_score_ci95_high"`

	MeanLength  float64 `yaml:"mean_length"`
	StdevLength float64 `yaml:"stdev_length"`
	MinLength   int     `yaml:"min_length"`
	MaxLength   int     `yaml:"max_length"`

	lengths []float64
}

func NewSummary(white, black string) *Summary {
	return &Summary{White: white, Black: black}
}

func (s *Summary) Add(r GameResult) {
	s.Games++
	switch {
	case r.Draw:
		s.Draws++
		if r.Reason == EndRepetition {
			s.DrawsByRepetition++
		} else {
			s.DrawsByMoveCap++
		}
	case r.Winner == board.White:
		s.WhiteWins++
	default:
		s.BlackWins++
	}
	if len(s.lengths) == 0 || r.Moves < s.MinLength {
		s.MinLength = r.Moves
	}
	s.MaxLength = max(s.MaxLength, r.Moves)
	s.lengths = append(s.lengths, float64(r.Moves))
}

// zVal returns the two-tailed Z-value for a confidence interval given in
// percent.
func zVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}

// Finalize computes the derived statistics. Call it after the last Add.
func (s *Summary) Finalize() {
	if s.Games == 0 {
		return
	}
	s.MeanLength, s.StdevLength = stat.MeanStdDev(s.lengths, nil)
	if math.IsNaN(s.StdevLength) {
		// a single game
		s.StdevLength = 0
	}

	n := float64(s.Games)
	p := (float64(s.WhiteWins) + 0.5*float64(s.Draws)) / n
	se := math.Sqrt(p * (1 - p) / n)
	z := zVal(95)
	s.WhiteScore = p
	s.WhiteScoreLow = math.Max(0, p-z*se)
	s.WhiteScoreHi = math.Min(1, p+z*se)
}

// Histogram draws the distribution of game lengths.
func (s *Summary) Histogram(w io.Writer) error {
	if len(s.lengths) == 0 {
		return nil
	}
	hist := histogram.Hist(histogramBins, s.lengths)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

func (s *Summary) String() string {
	var sb strings.Builder
	pct := func(n int) float64 {
		if s.Games == 0 {
			return 0
		}
		return 100 * float64(n) / float64(s.Games)
	}
	fmt.Fprintf(&sb, "Games played: %d (%s vs %s)\n", s.Games, s.White, s.Black)
	fmt.Fprintf(&sb, "White wins: %d (%.3f%%)\n", s.WhiteWins, pct(s.WhiteWins))
	fmt.Fprintf(&sb, "Black wins: %d (%.3f%%)\n", s.BlackWins, pct(s.BlackWins))
	fmt.Fprintf(&sb, "Draws: %d (%.3f%%); repetition %d, move cap %d\n",
		s.Draws, pct(s.Draws), s.DrawsByRepetition, s.DrawsByMoveCap)
	fmt.Fprintf(&sb, "White score: %.3f (95%% CI %.3f - %.3f)\n",
		s.WhiteScore, s.WhiteScoreLow, s.WhiteScoreHi)
	fmt.Fprintf(&sb, "Game length: mean %.3f  stdev %.3f  min %d  max %d\n",
		s.MeanLength, s.StdevLength, s.MinLength, s.MaxLength)
	return sb.String()
}

// WriteYAML exports the summary.
func (s *Summary) WriteYAML(w io.Writer) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
