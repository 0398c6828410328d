package physics_test

import (
	"errors"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

var _ = Describe("Puzzle", func() {
	It("computes the counterweight exactly across the whole domain", func() {
		for w := equilibrium.MinWeightP1; w <= equilibrium.MaxWeightP1; w++ {
			for d1 := equilibrium.MinDistP1; d1 <= equilibrium.MaxDistP1; d1 += equilibrium.DistP1Step {
				for d2 := equilibrium.MinDistP2; d2 <= equilibrium.MaxDistP2; d2++ {
					p := physics.Puzzle{WeightP1: w, DistP1: d1, DistP2: d2}
					want := float64(w) * float64(d1) / float64(d2)
					Expect(math.Abs(p.CorrectWeightP2() - want)).To(BeNumerically("<", 1e-6))
					Expect(p.CorrectWeightP2() * float64(d2)).To(BeNumerically("~", p.MomentP1(), 1e-6))
				}
			}
		}
	})

	DescribeTable("Validate",
		func(p physics.Puzzle, want error) {
			err := p.Validate()
			if want == nil {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(err).To(MatchError(want))
		},
		Entry("clean puzzle", physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100}, nil),
		Entry("light person 1", physics.Puzzle{WeightP1: 49, DistP1: 20, DistP2: 100}, equilibrium.ErrParameterBounds),
		Entry("heavy person 1", physics.Puzzle{WeightP1: 121, DistP1: 20, DistP2: 100}, equilibrium.ErrParameterBounds),
		Entry("off-step distance", physics.Puzzle{WeightP1: 100, DistP1: 30, DistP2: 100}, equilibrium.ErrParameterBounds),
		Entry("far person 2", physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 101}, equilibrium.ErrParameterBounds),
		Entry("near person 2", physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 9}, equilibrium.ErrParameterBounds),
		Entry("repeating answer", physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 30}, equilibrium.ErrUncleanAnswer),
	)
})

var _ = Describe("Generator", func() {
	It("only yields clean puzzles inside the domain", func() {
		for seed := int64(1); seed <= 200; seed++ {
			gen := physics.NewGenerator(rand.New(rand.NewSource(seed)), 0)
			p, draws, err := gen.Generate()
			Expect(err).NotTo(HaveOccurred())
			Expect(draws).To(BeNumerically(">=", 1))
			Expect(p.Validate()).To(Succeed())
			v := p.CorrectWeightP2()
			Expect(math.Abs(v - equilibrium.RoundTo(v, 4))).To(BeNumerically("<", 1e-6))
		}
	})

	It("draws person 1 distances from the multiples of twenty", func() {
		gen := physics.NewGenerator(rand.New(rand.NewSource(7)), 0)
		seen := map[int]bool{}
		for i := 0; i < 500; i++ {
			p := gen.Draw()
			Expect(p.DistP1 % equilibrium.DistP1Step).To(BeZero())
			seen[p.DistP1] = true
		}
		Expect(seen).To(HaveLen(5))
	})

	It("maps the edges of the random source onto the domain bounds", func() {
		low := physics.NewGenerator(domainRand{}, 1).Draw()
		Expect(low).To(Equal(physics.Puzzle{WeightP1: 50, DistP1: 20, DistP2: 10}))

		high := physics.NewGenerator(domainRand{71: 70, 5: 4, 91: 90}, 1).Draw()
		Expect(high).To(Equal(physics.Puzzle{WeightP1: 120, DistP1: 100, DistP2: 100}))
	})

	It("fails loudly when the draw cap is exceeded", func() {
		// weight 100, distance 20 and 30 never give a clean answer
		gen := physics.NewGenerator(domainRand{71: 50, 5: 0, 91: 20}, 25)
		_, draws, err := gen.Generate()
		Expect(draws).To(Equal(25))
		Expect(err).To(MatchError(equilibrium.ErrGeneratorExhausted))

		var genErr *equilibrium.GenerationError
		Expect(errors.As(err, &genErr)).To(BeTrue())
		Expect(genErr.Draws).To(Equal(25))
	})
})
