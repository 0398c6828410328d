// Package scene projects engine results into renderer-ready geometry.
//
// Coordinates use a y-up frame in abstract scene units. Nothing here
// decides balance; the functions only turn result values into positions,
// directions and magnitudes that a renderer can scale and draw.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Arrow is one force drawn from Origin along the unit vector Dir.
type Arrow struct {
	Label     string
	Formula   string
	Origin    mgl64.Vec2
	Dir       mgl64.Vec2
	Magnitude float64
}

// Vector is the arrow scaled to scene units.
func (a Arrow) Vector(scale float64) mgl64.Vec2 {
	return a.Dir.Mul(a.Magnitude * scale)
}

// Tip is where the arrow head sits.
func (a Arrow) Tip(scale float64) mgl64.Vec2 {
	return a.Origin.Add(a.Vector(scale))
}

// Visible reports whether the arrow has a finite length worth drawing.
func (a Arrow) Visible() bool {
	return a.Magnitude > 1e-9 && !math.IsInf(a.Magnitude, 0)
}

// ArrowScale returns the scale that draws the largest visible arrow reach
// units long. It is zero when no arrow is visible.
func ArrowScale(arrows []Arrow, reach float64) float64 {
	largest := 0.0
	for _, a := range arrows {
		if a.Visible() && a.Magnitude > largest {
			largest = a.Magnitude
		}
	}
	if largest == 0 {
		return 0
	}
	return reach / largest
}

// Bounds is an axis-aligned box enclosing a scene.
type Bounds struct {
	Min, Max mgl64.Vec2
}

func (b Bounds) Size() mgl64.Vec2 {
	return b.Max.Sub(b.Min)
}

func boundsOf(points ...mgl64.Vec2) Bounds {
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 2; i++ {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}
