package analysis

import (
	"math"

	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

// BalancedWindow returns the open interval of hanging masses m2 that
// balance a block of mass m1 on the ramp. The lower bound never drops
// below zero.
func BalancedWindow(angleDeg, m1, mu float64) (lo, hi float64) {
	sin, cos := equilibrium.SinCos(angleDeg)
	slack := equilibrium.Epsilon / equilibrium.Gravity

	lo = m1*(sin-mu*cos) - slack
	hi = m1*(sin+mu*cos) + slack
	return math.Max(0, lo), hi
}

// InclineSweep samples the balance margin Ff_max + ε − |net| for n hanging
// masses evenly spaced over [lo, hi]. Positive values balance.
func InclineSweep(angleDeg, m1, mu, lo, hi float64, n int) []SweepPoint {
	if n <= 1 {
		n = 2
	}
	step := (hi - lo) / float64(n-1)

	points := make([]SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		m2 := lo + float64(i)*step
		f := physics.ResolveIncline(angleDeg, m1, m2, mu)
		margin := f.MaxFriction + equilibrium.Epsilon - math.Abs(f.NetForce)
		points = append(points, SweepPoint{Param: m2, Value: margin})
	}
	return points
}
