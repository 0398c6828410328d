package viz

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/staticsim/internal/scene"
)

// blank is the empty braille cell. Each cell holds a 2x4 block of dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
const blank rune = 0x2800

var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid. Dot coordinates run Width*2 across and
// Height*4 down from the top-left corner.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(blank), w))
	}
	return &Canvas{Width: w, Height: h, Grid: grid}
}

// Set lights the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= 2*c.Width || y >= 4*c.Height {
		return
	}
	c.Grid[y/4][x/2] |= dotBits[y%4][x%2]
}

// DrawLine lights every dot between two points (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}

	for e := dx + dy; ; {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Dots calls fn for every lit dot, row by row.
func (c *Canvas) Dots(fn func(x, y int)) {
	for row, cells := range c.Grid {
		for col, r := range cells {
			if r == blank {
				continue
			}
			for dy, bits := range dotBits {
				for dx, bit := range bits {
					if r&bit != 0 {
						fn(col*2+dx, row*4+dy)
					}
				}
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Viewport maps scene coordinates, y up, onto canvas sub-pixels with a
// uniform scale.
type Viewport struct {
	min    mgl64.Vec2
	scale  float64
	offset mgl64.Vec2
	height int
}

// Fit returns the viewport that centres b on the canvas, leaving margin
// scene units on every side.
func (c *Canvas) Fit(b scene.Bounds, margin float64) Viewport {
	w, h := float64(c.Width*2-1), float64(c.Height*4-1)
	size := b.Size().Add(mgl64.Vec2{2 * margin, 2 * margin})

	scale := 1.0
	if size.X() > 0 && size.Y() > 0 {
		scale = math.Min(w/size.X(), h/size.Y())
	}
	offset := mgl64.Vec2{(w - size.X()*scale) / 2, (h - size.Y()*scale) / 2}

	return Viewport{
		min:    b.Min.Sub(mgl64.Vec2{margin, margin}),
		scale:  scale,
		offset: offset,
		height: c.Height * 4,
	}
}

// Project returns the sub-pixel for a scene point.
func (v Viewport) Project(p mgl64.Vec2) (int, int) {
	q := p.Sub(v.min).Mul(v.scale).Add(v.offset)
	return int(math.Round(q.X())), v.height - 1 - int(math.Round(q.Y()))
}

// near reports whether p projects within far sub-pixels of the origin.
// NaN coordinates are never near.
func (v Viewport) near(p mgl64.Vec2, far float64) bool {
	q := p.Sub(v.min).Mul(v.scale).Add(v.offset)
	return math.Abs(q.X()) <= far && math.Abs(q.Y()) <= far
}

// Length converts a scene distance to sub-pixels.
func (v Viewport) Length(d float64) float64 { return d * v.scale }

// Segment draws a straight line between two scene points. Segments with
// an end that is not finite, or lies far off the canvas, are skipped.
func (c *Canvas) Segment(v Viewport, a, b mgl64.Vec2) {
	far := float64(8 * (c.Width + c.Height))
	if !v.near(a, far) || !v.near(b, far) {
		return
	}
	x0, y0 := v.Project(a)
	x1, y1 := v.Project(b)
	c.DrawLine(x0, y0, x1, y1)
}

// Polygon draws a closed outline through pts.
func (c *Canvas) Polygon(v Viewport, pts ...mgl64.Vec2) {
	for i := range pts {
		c.Segment(v, pts[i], pts[(i+1)%len(pts)])
	}
}

// Box outlines an axis-aligned square of half-size half around center.
func (c *Canvas) Box(v Viewport, center mgl64.Vec2, half float64) {
	c.Polygon(v,
		center.Add(mgl64.Vec2{-half, -half}),
		center.Add(mgl64.Vec2{half, -half}),
		center.Add(mgl64.Vec2{half, half}),
		center.Add(mgl64.Vec2{-half, half}),
	)
}

// Arrow draws a shaft from a's origin to its tip with a two-stroke head.
func (c *Canvas) Arrow(v Viewport, a scene.Arrow, scale float64) {
	if !a.Visible() {
		return
	}
	tip := a.Tip(scale)
	c.Segment(v, a.Origin, tip)

	head := a.Vector(scale).Len() * 0.2
	back := a.Dir.Mul(-head)
	side := mgl64.Vec2{-a.Dir.Y(), a.Dir.X()}.Mul(head * 0.5)
	c.Segment(v, tip, tip.Add(back).Add(side))
	c.Segment(v, tip, tip.Add(back).Sub(side))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
