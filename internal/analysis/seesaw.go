package analysis

import (
	"math"

	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

// SweepPoint is one sample of a parameter sweep.
type SweepPoint struct {
	Param float64
	Value float64
}

// SeesawStats summarises the generator domain.
type SeesawStats struct {
	Total          int
	Clean          int
	AcceptanceRate float64
	ExpectedDraws  float64
	MinAnswer      float64
	MaxAnswer      float64
	// MaxMomentError is the largest |correct·distP2 − weightP1·distP1|
	// over the clean puzzles.
	MaxMomentError float64
	Deterministic  bool
}

// EnumerateSeesaw visits every integer puzzle the generator can draw.
// Rows of person 1 weights are scanned concurrently and merged.
func EnumerateSeesaw() SeesawStats {
	rows := equilibrium.MaxWeightP1 - equilibrium.MinWeightP1 + 1
	partial := make([]SeesawStats, rows)

	equilibrium.ParallelFor(rows, 8, func(start, end int) {
		for i := start; i < end; i++ {
			partial[i] = enumerateRow(equilibrium.MinWeightP1 + i)
		}
	})

	stats := SeesawStats{MinAnswer: math.Inf(1), MaxAnswer: math.Inf(-1)}
	for _, row := range partial {
		stats.Total += row.Total
		stats.Clean += row.Clean
		stats.MinAnswer = math.Min(stats.MinAnswer, row.MinAnswer)
		stats.MaxAnswer = math.Max(stats.MaxAnswer, row.MaxAnswer)
		stats.MaxMomentError = math.Max(stats.MaxMomentError, row.MaxMomentError)
	}

	if stats.Clean > 0 {
		stats.AcceptanceRate = float64(stats.Clean) / float64(stats.Total)
		stats.ExpectedDraws = 1 / stats.AcceptanceRate
	}
	stats.Deterministic = stats.MaxMomentError <= equilibrium.AnswerTolerance
	return stats
}

func enumerateRow(w int) SeesawStats {
	row := SeesawStats{MinAnswer: math.Inf(1), MaxAnswer: math.Inf(-1)}
	for d1 := equilibrium.MinDistP1; d1 <= equilibrium.MaxDistP1; d1 += equilibrium.DistP1Step {
		for d2 := equilibrium.MinDistP2; d2 <= equilibrium.MaxDistP2; d2++ {
			row.Total++
			p := physics.Puzzle{WeightP1: w, DistP1: d1, DistP2: d2}
			if !p.Clean() {
				continue
			}
			row.Clean++

			answer := p.CorrectWeightP2()
			row.MinAnswer = math.Min(row.MinAnswer, answer)
			row.MaxAnswer = math.Max(row.MaxAnswer, answer)

			diff := math.Abs(answer*float64(d2) - p.MomentP1())
			row.MaxMomentError = math.Max(row.MaxMomentError, diff)
		}
	}
	return row
}

// SeesawSweep samples the board tilt for n weights evenly spaced over
// [lo, hi]. Weights inside the acceptance window report a level board.
func SeesawSweep(p physics.Puzzle, lo, hi float64, n int) []SweepPoint {
	if n <= 1 {
		n = 2
	}
	step := (hi - lo) / float64(n-1)
	momentP1 := p.MomentP1()

	points := make([]SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		w := lo + float64(i)*step
		tilt := physics.TiltAngle(momentP1, w*float64(p.DistP2), p.Balances(w))
		points = append(points, SweepPoint{Param: w, Value: tilt})
	}
	return points
}

// Values extracts the sampled values, ready for plotting.
func Values(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Value
	}
	return out
}
