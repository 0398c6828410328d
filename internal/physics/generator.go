package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/staticsim/internal/equilibrium"
)

// Puzzle is one seesaw configuration. Weights are in kilograms and
// distances in centimetres from the pivot.
type Puzzle struct {
	WeightP1 int `yaml:"weight_p1" json:"weight_p1"`
	DistP1   int `yaml:"dist_p1" json:"dist_p1"`
	DistP2   int `yaml:"dist_p2" json:"dist_p2"`
}

// CorrectWeightP2 is the counterweight that balances the seesaw.
func (p Puzzle) CorrectWeightP2() float64 {
	return float64(p.WeightP1*p.DistP1) / float64(p.DistP2)
}

// Balances reports whether weightP2 is accepted as the answer. The ratio
// test is equivalent to an absolute tolerance of [equilibrium.Epsilon]
// kilograms.
func (p Puzzle) Balances(weightP2 float64) bool {
	correct := p.CorrectWeightP2()
	return math.Abs(weightP2/correct-1) <= equilibrium.Epsilon/correct
}

// MomentP1 is the moment of person 1 about the pivot, in kg·cm.
func (p Puzzle) MomentP1() float64 {
	return float64(p.WeightP1 * p.DistP1)
}

// Clean reports whether the answer has at most four decimals.
func (p Puzzle) Clean() bool {
	return equilibrium.IsClean(p.CorrectWeightP2())
}

// Validate checks the puzzle against the generator domain and the clean
// answer invariant.
func (p Puzzle) Validate() error {
	if p.WeightP1 < equilibrium.MinWeightP1 || p.WeightP1 > equilibrium.MaxWeightP1 {
		return fmt.Errorf("%w: weight_p1=%d not in [%d,%d]", equilibrium.ErrParameterBounds,
			p.WeightP1, equilibrium.MinWeightP1, equilibrium.MaxWeightP1)
	}
	if p.DistP1 < equilibrium.MinDistP1 || p.DistP1 > equilibrium.MaxDistP1 || p.DistP1%equilibrium.DistP1Step != 0 {
		return fmt.Errorf("%w: dist_p1=%d not a multiple of %d in [%d,%d]", equilibrium.ErrParameterBounds,
			p.DistP1, equilibrium.DistP1Step, equilibrium.MinDistP1, equilibrium.MaxDistP1)
	}
	if p.DistP2 < equilibrium.MinDistP2 || p.DistP2 > equilibrium.MaxDistP2 {
		return fmt.Errorf("%w: dist_p2=%d not in [%d,%d]", equilibrium.ErrParameterBounds,
			p.DistP2, equilibrium.MinDistP2, equilibrium.MaxDistP2)
	}
	if !p.Clean() {
		return fmt.Errorf("%w: %v", equilibrium.ErrUncleanAnswer, p.CorrectWeightP2())
	}
	return nil
}

// Generator draws seesaw puzzles uniformly from the integer domain and keeps
// the first one with a clean answer.
type Generator struct {
	rng      equilibrium.Rand
	maxDraws int
}

func NewGenerator(rng equilibrium.Rand, maxDraws int) *Generator {
	if maxDraws <= 0 {
		maxDraws = MaxGeneratorDraws
	}
	return &Generator{rng: rng, maxDraws: maxDraws}
}

// Draw makes one unconstrained draw from the domain.
func (g *Generator) Draw() Puzzle {
	return Puzzle{
		WeightP1: randomInt(g.rng, equilibrium.MinWeightP1, equilibrium.MaxWeightP1),
		DistP1:   randomMultiple(g.rng, equilibrium.MinDistP1, equilibrium.MaxDistP1, equilibrium.DistP1Step),
		DistP2:   randomInt(g.rng, equilibrium.MinDistP2, equilibrium.MaxDistP2),
	}
}

// Generate draws until a clean puzzle appears and reports how many draws it
// took. Running past the cap returns a *equilibrium.GenerationError wrapping
// [equilibrium.ErrGeneratorExhausted].
func (g *Generator) Generate() (Puzzle, int, error) {
	for draws := 1; draws <= g.maxDraws; draws++ {
		p := g.Draw()
		if p.Clean() {
			return p, draws, nil
		}
	}
	return Puzzle{}, g.maxDraws, &equilibrium.GenerationError{
		Draws:   g.maxDraws,
		Wrapped: equilibrium.ErrGeneratorExhausted,
	}
}

// randomInt returns an integer in [lo, hi].
func randomInt(rng equilibrium.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// randomMultiple returns a multiple of step in [lo, hi].
func randomMultiple(rng equilibrium.Rand, lo, hi, step int) int {
	first, last := lo/step, hi/step
	return (first + rng.Intn(last-first+1)) * step
}
