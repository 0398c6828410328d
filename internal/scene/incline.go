package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

const (
	rampBase      = 400.0
	rampMaxHeight = 350.0
	blockSlot     = 0.45
	pulleyGap     = 20.0
	ropeDrop      = 120.0
)

// InclineLayout is the fixed geometry of the ramp for one angle. The ramp
// descends to the right from Top to Foot; Corner is the right angle.
type InclineLayout struct {
	Angle  int
	Top    mgl64.Vec2
	Corner mgl64.Vec2
	Foot   mgl64.Vec2
	Block1 mgl64.Vec2
	Pulley mgl64.Vec2
	Block2 mgl64.Vec2
}

// LayoutIncline places the ramp, both blocks and the pulley.
func LayoutIncline(angleDeg int) InclineLayout {
	theta := equilibrium.ToRad(float64(angleDeg))
	base := rampBase
	h := base * math.Tan(theta)
	if h > rampMaxHeight {
		h = rampMaxHeight
		base = h / math.Tan(theta)
	}

	top := mgl64.Vec2{0, h}
	foot := mgl64.Vec2{base, 0}
	slope := foot.Sub(top)
	length := slope.Len()
	down := slope.Normalize()

	pulley := top.Sub(down.Mul(pulleyGap))
	return InclineLayout{
		Angle:  angleDeg,
		Top:    top,
		Corner: mgl64.Vec2{0, 0},
		Foot:   foot,
		Block1: top.Add(down.Mul(blockSlot * length)),
		Pulley: pulley,
		Block2: pulley.Sub(mgl64.Vec2{0, ropeDrop}),
	}
}

// Bounds encloses the ramp, pulley and hanging block.
func (l InclineLayout) Bounds() Bounds {
	return boundsOf(l.Top, l.Corner, l.Foot, l.Block1, l.Pulley, l.Block2)
}

// DownSlope is the unit vector pointing down the ramp.
func (l InclineLayout) DownSlope() mgl64.Vec2 {
	sin, cos := equilibrium.SinCos(float64(l.Angle))
	return mgl64.Vec2{cos, -sin}
}

// Normal is the outward unit normal of the ramp surface.
func (l InclineLayout) Normal() mgl64.Vec2 {
	sin, cos := equilibrium.SinCos(float64(l.Angle))
	return mgl64.Vec2{sin, cos}
}

// InclineScene is a ramp with the forces of one evaluation.
type InclineScene struct {
	InclineLayout
	OnRamp  []Arrow
	Hanging []Arrow
}

// Arrows lists the ramp block arrows followed by the hanging block arrows.
func (sc InclineScene) Arrows() []Arrow {
	return append(append([]Arrow{}, sc.OnRamp...), sc.Hanging...)
}

// ProjectIncline builds the force arrows for an accepted evaluation.
// Results without forces, such as rejected input, produce no arrows.
func ProjectIncline(res physics.InclineResult) InclineScene {
	sc := InclineScene{InclineLayout: LayoutIncline(res.Angle)}
	if res.Weight1 == 0 {
		return sc
	}

	gravity := mgl64.Vec2{0, -1}
	down := sc.DownSlope()
	up := down.Mul(-1)
	friction := down
	if res.FrictionDirection == equilibrium.UpSlope {
		friction = up
	}

	sc.OnRamp = []Arrow{
		{Label: "Weight (W1)", Formula: "m1 * g", Origin: sc.Block1, Dir: gravity, Magnitude: res.Weight1},
		{Label: "Normal (N1)", Formula: "W1 * cos(θ)", Origin: sc.Block1, Dir: sc.Normal(), Magnitude: res.NormalForce},
		{Label: "Parallel W", Formula: "W1 * sin(θ)", Origin: sc.Block1, Dir: down, Magnitude: res.ParallelWeight},
		{Label: "Friction", Formula: "μ * N1", Origin: sc.Block1, Dir: friction, Magnitude: res.Friction},
		{Label: "Tension", Formula: "T", Origin: sc.Block1, Dir: up, Magnitude: res.Tension},
	}
	sc.Hanging = []Arrow{
		{Label: "Weight (W2)", Formula: "m2 * g", Origin: sc.Block2, Dir: gravity, Magnitude: res.Weight2},
		{Label: "Tension", Formula: "T", Origin: sc.Block2, Dir: mgl64.Vec2{0, 1}, Magnitude: res.Tension},
	}
	return sc
}
