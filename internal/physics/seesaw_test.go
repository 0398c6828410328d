package physics_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

var _ = Describe("Seesaw", func() {
	var ss *physics.Seesaw

	BeforeEach(func() {
		var err error
		ss, err = physics.NewSeesaw(rand.New(rand.NewSource(42)), physics.WithLogger(quiet))
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts with a clean generated puzzle", func() {
		Expect(ss.Puzzle().Validate()).To(Succeed())
		Expect(ss.Won()).To(BeFalse())
		Expect(ss.TiltAngle()).To(BeZero())
		Expect(ss.ID()).NotTo(BeEmpty())
	})

	Context("with weight 100 at 20 cm against 100 cm", func() {
		BeforeEach(func() {
			Expect(ss.Load(physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100})).To(Succeed())
			Expect(ss.CorrectWeightP2()).To(BeNumerically("==", 20))
		})

		It("accepts the exact answer", func() {
			res := ss.Evaluate(20)
			Expect(res.Kind).To(Equal(equilibrium.Success))
			Expect(res.Balanced).To(BeTrue())
			Expect(res.MomentP1).To(BeNumerically("==", 2000))
			Expect(res.MomentP2).To(BeNumerically("==", 2000))
			Expect(res.Tilt).To(BeZero())
			Expect(ss.Won()).To(BeTrue())
		})

		It("accepts answers within half a kilogram", func() {
			Expect(ss.Evaluate(20.4).Kind).To(Equal(equilibrium.Success))
			Expect(ss.Evaluate(19.6).Kind).To(Equal(equilibrium.Success))
		})

		It("rejects answers beyond half a kilogram", func() {
			res := ss.Evaluate(20.6)
			Expect(res.Kind).To(Equal(equilibrium.Mismatch))
			Expect(res.Balanced).To(BeFalse())
			Expect(res.MomentP2).To(BeNumerically("~", 2060, 1e-9))
			Expect(res.Tilt).To(BeNumerically("~", -60.0/12000*15, 1e-9))
			Expect(ss.Evaluate(19.4).Kind).To(Equal(equilibrium.Mismatch))
		})

		It("allows unlimited retries", func() {
			for i := 0; i < 50; i++ {
				Expect(ss.Evaluate(30).Kind).To(Equal(equilibrium.Mismatch))
			}
			Expect(ss.Evaluate(20).Kind).To(Equal(equilibrium.Success))
		})

		It("re-judges after a win", func() {
			Expect(ss.Evaluate(20).Kind).To(Equal(equilibrium.Success))
			Expect(ss.Evaluate(25).Kind).To(Equal(equilibrium.Mismatch))
			Expect(ss.Won()).To(BeFalse())
		})

		DescribeTable("rejects unusable weights without touching the moments",
			func(w float64) {
				ss.Evaluate(20.6)
				res := ss.Evaluate(w)
				Expect(res.Kind).To(Equal(equilibrium.InvalidInput))
				Expect(res.Reason).To(Equal(physics.MsgInvalidWeight))
				Expect(res.Balanced).To(BeFalse())
				m1, m2 := ss.Moments()
				Expect(m1).To(BeNumerically("==", 2000))
				Expect(m2).To(BeNumerically("~", 2060, 1e-9))
				Expect(res.Tilt).To(BeNumerically("~", ss.TiltAngle(), 1e-12))
			},
			Entry("zero", 0.0),
			Entry("threshold", 0.01),
			Entry("negative", -5.0),
			Entry("NaN", math.NaN()),
			Entry("infinity", math.Inf(1)),
			Entry("overflowing weight", 1e308),
			Entry("overflowing moment", 1e306),
		)

		It("keeps a win through invalid input", func() {
			ss.Evaluate(20)
			res := ss.Evaluate(0)
			Expect(res.Kind).To(Equal(equilibrium.InvalidInput))
			Expect(ss.Won()).To(BeTrue())
		})
	})

	It("keeps the current puzzle when loading an invalid one", func() {
		before := ss.Puzzle()
		Expect(ss.Load(physics.Puzzle{WeightP1: 10, DistP1: 20, DistP2: 100})).To(MatchError(equilibrium.ErrParameterBounds))
		Expect(ss.Puzzle()).To(Equal(before))
	})

	It("resets the game on every new game", func() {
		ss.Evaluate(ss.CorrectWeightP2())
		Expect(ss.Won()).To(BeTrue())

		for i := 0; i < 2; i++ {
			Expect(ss.NewGame()).To(Succeed())
			Expect(ss.Won()).To(BeFalse())
			Expect(ss.Puzzle().Clean()).To(BeTrue())
			Expect(ss.WeightP2()).To(BeZero())
			m1, m2 := ss.Moments()
			Expect(m1).To(BeZero())
			Expect(m2).To(BeZero())
		}
	})

	It("reports generator exhaustion from NewSeesaw", func() {
		_, err := physics.NewSeesaw(domainRand{71: 50, 5: 0, 91: 20},
			physics.WithLogger(quiet), physics.WithMaxDraws(10))
		Expect(err).To(MatchError(equilibrium.ErrGeneratorExhausted))
	})
})

var _ = DescribeTable("TiltAngle",
	func(m1, m2 float64, won bool, want float64) {
		Expect(physics.TiltAngle(m1, m2, won)).To(BeNumerically("~", want, 1e-12))
	},
	Entry("level when equal", 2000.0, 2000.0, false, 0.0),
	Entry("person 1 heavier", 8000.0, 2000.0, false, 7.5),
	Entry("person 2 heavier", 2000.0, 8000.0, false, -7.5),
	Entry("clamped high", 30000.0, 0.0, false, 15.0),
	Entry("clamped low", 0.0, 30000.0, false, -15.0),
	Entry("won rests level", 30000.0, 0.0, true, 0.0),
)
