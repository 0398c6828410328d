package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/staticsim/internal/physics"
	"github.com/san-kum/staticsim/internal/scene"
	"github.com/san-kum/staticsim/internal/viz"
)

func TestInclineToSVG(t *testing.T) {
	res := physics.InclineResult{Forces: physics.ResolveIncline(37, 20, 5, 0.8), Angle: 37}
	svg := InclineToSVG(scene.ProjectIncline(res), 800, 600)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `width="800" height="600"`)
	assert.Contains(t, svg, "θ = 37°")
	assert.Contains(t, svg, "Weight (W1) 196.00 N")
	assert.Contains(t, svg, "Weight (W2) 49.00 N")
	// three strokes per arrow
	assert.Equal(t, 3*7, strings.Count(svg, forceColor+`" stroke-width`))
}

func TestInclineToSVG_NoForces(t *testing.T) {
	sc := scene.InclineScene{InclineLayout: scene.LayoutIncline(45)}
	svg := InclineToSVG(sc, 400, 300)
	assert.NotContains(t, svg, " N</text>")
	assert.Contains(t, svg, "<polygon")
}

func TestSeesawToSVG(t *testing.T) {
	p := physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100}
	tilt := physics.TiltAngle(p.MomentP1(), 1500, false)
	svg := SeesawToSVG(scene.ProjectSeesaw(p, 15, tilt), 800, 400)

	assert.Positive(t, tilt)
	assert.Contains(t, svg, fmt.Sprintf("tilt %.2f°", tilt))
	assert.Contains(t, svg, "Moment P1 980.00 N")
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
}

func TestSeesawToSVG_OverflowingWeight(t *testing.T) {
	p := physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100}
	svg := SeesawToSVG(scene.ProjectSeesaw(p, 1e308, -15), 800, 400)

	assert.Contains(t, svg, "Moment P1 980.00 N")
	assert.NotContains(t, svg, "Moment P2")
	assert.NotContains(t, svg, "NaN")
}

func TestCanvasToSVG(t *testing.T) {
	assert.Empty(t, CanvasToSVG(nil, 4))

	c := viz.NewCanvas(4, 2)
	assert.Equal(t, 0, strings.Count(CanvasToSVG(c, 4), "<circle"))

	c.Set(0, 0)
	c.Set(7, 7)
	svg := CanvasToSVG(c, 4)
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, `width="32" height="32"`)
}
