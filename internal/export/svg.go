// Package export renders puzzle scenes as standalone SVG documents.
package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/staticsim/internal/scene"
	"github.com/san-kum/staticsim/internal/viz"
)

const (
	background  = "#0a0a0a"
	strokeColor = "#cccccc"
	forceColor  = "#ff00ff"
	arrowReach  = 90.0
	margin      = 120.0
)

// CanvasToSVG traces a braille canvas, one circle per lit dot, with
// scale pixels between neighbouring dots.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	var sb strings.Builder
	writeHeader(&sb, float64(canvas.Width*2)*scale, float64(canvas.Height*4)*scale)
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", strokeColor))
	canvas.Dots(func(x, y int) {
		cx := (float64(x) + 0.5) * scale
		cy := (float64(y) + 0.5) * scale
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, scale*0.4))
	})
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// InclineToSVG draws the ramp scene with labelled force arrows.
func InclineToSVG(sc scene.InclineScene, width, height int) string {
	f := newFrame(sc.Bounds(), width, height)

	var sb strings.Builder
	writeHeader(&sb, float64(width), float64(height))
	f.polygon(&sb, sc.Top, sc.Corner, sc.Foot)
	f.circle(&sb, sc.Pulley, 8)
	f.line(&sb, sc.Block1, sc.Pulley, strokeColor)
	f.line(&sb, sc.Pulley, sc.Block2, strokeColor)
	f.square(&sb, sc.Block1.Add(sc.Normal().Mul(18)), 18)
	f.square(&sb, sc.Block2, 18)

	arrows := sc.Arrows()
	scale := scene.ArrowScale(arrows, arrowReach)
	for _, a := range arrows {
		f.arrow(&sb, a, scale)
	}
	sb.WriteString(fmt.Sprintf("<text x=\"12\" y=\"24\" fill=\"%s\" font-family=\"monospace\" font-size=\"16\">θ = %d°</text>\n", strokeColor, sc.Angle))

	sb.WriteString("</svg>")
	return sb.String()
}

// SeesawToSVG draws the board, pivot, both persons and their weight arrows.
func SeesawToSVG(sc scene.SeesawScene, width, height int) string {
	f := newFrame(sc.Bounds(), width, height)

	var sb strings.Builder
	writeHeader(&sb, float64(width), float64(height))
	f.line(&sb, mgl64.Vec2{sc.Left.X(), 0}, mgl64.Vec2{sc.Right.X(), 0}, strokeColor)
	f.polygon(&sb, sc.Pivot, mgl64.Vec2{-25, 0}, mgl64.Vec2{25, 0})
	f.line(&sb, sc.Left, sc.Right, strokeColor)
	f.circle(&sb, sc.Person1.Add(mgl64.Vec2{0, 20}), 16)
	f.circle(&sb, sc.Person2.Add(mgl64.Vec2{0, 20}), 16)

	scale := scene.ArrowScale(sc.Arrows, arrowReach)
	for _, a := range sc.Arrows {
		f.arrow(&sb, a, scale)
	}
	sb.WriteString(fmt.Sprintf("<text x=\"12\" y=\"24\" fill=\"%s\" font-family=\"monospace\" font-size=\"16\">tilt %.2f°</text>\n", strokeColor, sc.Tilt))

	sb.WriteString("</svg>")
	return sb.String()
}

func writeHeader(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// frame maps scene coordinates, y up, onto SVG user space, y down.
type frame struct {
	min    mgl64.Vec2
	scale  float64
	offset mgl64.Vec2
	height float64
}

func newFrame(b scene.Bounds, width, height int) frame {
	size := b.Size().Add(mgl64.Vec2{2 * margin, 2 * margin})
	w, h := float64(width), float64(height)
	scale := math.Min(w/size.X(), h/size.Y())
	return frame{
		min:    b.Min.Sub(mgl64.Vec2{margin, margin}),
		scale:  scale,
		offset: mgl64.Vec2{(w - size.X()*scale) / 2, (h - size.Y()*scale) / 2},
		height: h,
	}
}

func (f frame) point(p mgl64.Vec2) (x, y float64) {
	q := p.Sub(f.min).Mul(f.scale).Add(f.offset)
	return q.X(), f.height - q.Y()
}

func (f frame) line(sb *strings.Builder, a, b mgl64.Vec2, color string) {
	x0, y0 := f.point(a)
	x1, y1 := f.point(b)
	sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"2\"/>\n", x0, y0, x1, y1, color))
}

func (f frame) polygon(sb *strings.Builder, pts ...mgl64.Vec2) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		x, y := f.point(p)
		coords[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	sb.WriteString(fmt.Sprintf("<polygon points=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\"/>\n", strings.Join(coords, " "), strokeColor))
}

func (f frame) square(sb *strings.Builder, center mgl64.Vec2, half float64) {
	f.polygon(sb,
		center.Add(mgl64.Vec2{-half, -half}),
		center.Add(mgl64.Vec2{half, -half}),
		center.Add(mgl64.Vec2{half, half}),
		center.Add(mgl64.Vec2{-half, half}),
	)
}

func (f frame) circle(sb *strings.Builder, center mgl64.Vec2, r float64) {
	x, y := f.point(center)
	sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\"/>\n", x, y, r*f.scale, strokeColor))
}

func (f frame) arrow(sb *strings.Builder, a scene.Arrow, scale float64) {
	tip := a.Tip(scale)
	if !a.Visible() || math.IsNaN(tip.X()+tip.Y()) || math.IsInf(tip.X()+tip.Y(), 0) {
		return
	}
	f.line(sb, a.Origin, tip, forceColor)

	head := a.Vector(scale).Len() * 0.2
	back := a.Dir.Mul(-head)
	side := mgl64.Vec2{-a.Dir.Y(), a.Dir.X()}.Mul(head * 0.5)
	f.line(sb, tip, tip.Add(back).Add(side), forceColor)
	f.line(sb, tip, tip.Add(back).Sub(side), forceColor)

	x, y := f.point(tip)
	label := html.EscapeString(fmt.Sprintf("%s %.2f N", a.Label, a.Magnitude))
	sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" fill=\"%s\" font-family=\"monospace\" font-size=\"12\">%s</text>\n", x+4, y-4, forceColor, label))
}
