package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

const (
	BoardWidth = 600.0
	// PivotHeight is the height of the board centre above the ground.
	PivotHeight = 100.0
)

// SeesawScene is the board, both persons and their weight arrows.
type SeesawScene struct {
	Tilt    float64
	Pivot   mgl64.Vec2
	Left    mgl64.Vec2
	Right   mgl64.Vec2
	Person1 mgl64.Vec2
	Person2 mgl64.Vec2
	Arrows  []Arrow
}

// ProjectSeesaw lays out the board for a puzzle. Person 1 sits left of the
// pivot; a positive tilt lowers that side. Weight arrows appear only once a
// usable weight for person 2 has been entered.
func ProjectSeesaw(p physics.Puzzle, weightP2, tilt float64) SeesawScene {
	pivot := mgl64.Vec2{0, PivotHeight}
	along := mgl64.Rotate2D(equilibrium.ToRad(tilt)).Mul2x1(mgl64.Vec2{1, 0})

	at := func(offset float64) mgl64.Vec2 {
		return pivot.Add(along.Mul(offset))
	}

	sc := SeesawScene{
		Tilt:    tilt,
		Pivot:   pivot,
		Left:    at(-BoardWidth / 2),
		Right:   at(BoardWidth / 2),
		Person1: at(-float64(p.DistP1) * BoardWidth / 200),
		Person2: at(float64(p.DistP2) * BoardWidth / 200),
	}

	if weightP2 > equilibrium.MinWeightP2 {
		down := mgl64.Vec2{0, -1}
		sc.Arrows = []Arrow{
			{Label: "Moment P1", Formula: "weight * distance", Origin: sc.Person1, Dir: down, Magnitude: float64(p.WeightP1) * equilibrium.Gravity},
			{Label: "Moment P2", Formula: "weight * distance", Origin: sc.Person2, Dir: down, Magnitude: weightP2 * equilibrium.Gravity},
		}
	}
	return sc
}

// Bounds encloses the board, the ground below the pivot and both persons.
func (s SeesawScene) Bounds() Bounds {
	return boundsOf(s.Left, s.Right, s.Person1, s.Person2, mgl64.Vec2{0, 0})
}
