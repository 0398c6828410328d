package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/staticsim/internal/config"
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/i18n"
	"github.com/san-kum/staticsim/internal/physics"
	"github.com/san-kum/staticsim/internal/scene"
)

const (
	canvasCols = 56
	canvasRows = 18
	blockHalf  = 18.0
	arrowReach = 90.0
)

var inclineParams = []string{"m1", "m2", "mu"}

var inclineLabels = map[string]string{
	"m1": i18n.KeyMass1,
	"m2": i18n.KeyMass2,
	"mu": i18n.KeyFriction,
}

type inclineScreen struct {
	plane   *physics.InclinedPlane
	tr      *i18n.Translator
	cfg     config.InclineConfig
	inputs  physics.InclineInputs
	cursor  int
	editing bool
	editBuf string
	last    *physics.InclineResult
	message string
	outcome equilibrium.Outcome
}

func newInclineScreen(plane *physics.InclinedPlane, tr *i18n.Translator, cfg config.InclineConfig) inclineScreen {
	s := inclineScreen{plane: plane, tr: tr, cfg: cfg}
	if cfg.Angle != 0 {
		s.reset()
	} else {
		s.clearInputs()
	}
	return s
}

func (s *inclineScreen) clearInputs() {
	s.inputs = physics.InclineInputs{Mass1: s.cfg.M1, Mass2: s.cfg.M2, Mu: s.cfg.Mu}
	s.cursor = 0
	s.editing, s.editBuf = false, ""
	s.last = nil
	s.message = ""
}

func (s *inclineScreen) reset() {
	if s.cfg.Angle == 0 || s.plane.ResetWithAngle(s.cfg.Angle) != nil {
		s.plane.Reset()
	}
	s.clearInputs()
}

// handleKey applies one key press and reports whether to leave the level.
func (s *inclineScreen) handleKey(msg tea.KeyMsg) bool {
	if s.editing {
		s.editKey(msg)
		return false
	}
	switch msg.String() {
	case "esc", "q":
		return true
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(inclineParams)-1 {
			s.cursor++
		}
	case "left", "h":
		s.nudge(-1)
	case "right", "l":
		s.nudge(1)
	case "enter", " ":
		s.editing, s.editBuf = true, ""
	case "c":
		s.check()
	case "r":
		s.reset()
	}
	return false
}

func (s *inclineScreen) editKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(strings.TrimSpace(s.editBuf), 64); err == nil {
			_ = s.inputs.SetParam(inclineParams[s.cursor], v)
		}
		s.editing, s.editBuf = false, ""
	case "esc":
		s.editing, s.editBuf = false, ""
	case "backspace":
		if len(s.editBuf) > 0 {
			s.editBuf = s.editBuf[:len(s.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				s.editBuf += string(c)
			}
		}
	}
}

// sliderRange is the nudge range and step of a field.
func (s *inclineScreen) sliderRange(name string) (lo, hi, step float64) {
	if name == "mu" {
		return 0, s.cfg.MuMax, s.cfg.MuStep
	}
	return s.cfg.MassMin, s.cfg.MassMax, s.cfg.MassStep
}

func (s *inclineScreen) nudge(dir float64) {
	name := inclineParams[s.cursor]
	lo, hi, step := s.sliderRange(name)
	v := s.inputs.GetParams()[name] + dir*step
	_ = s.inputs.SetParam(name, equilibrium.Clamp(equilibrium.RoundTo(v, 2), lo, hi))
}

func (s *inclineScreen) check() {
	res := s.plane.Evaluate(s.inputs.Mass1, s.inputs.Mass2, s.inputs.Mu)
	s.message = s.tr.Incline(res)
	s.outcome = res.Kind
	if res.Weight1 != 0 {
		s.last = &res
	}
}

func (s *inclineScreen) layout() scene.InclineScene {
	if s.last != nil {
		return scene.ProjectIncline(*s.last)
	}
	return scene.InclineScene{InclineLayout: scene.LayoutIncline(s.plane.Angle())}
}

// DrawIncline renders the ramp, both blocks, the pulley and the force
// arrows of sc.
func DrawIncline(c *Canvas, sc scene.InclineScene) {
	v := c.Fit(sc.Bounds(), arrowReach+blockHalf)

	c.Polygon(v, sc.Top, sc.Corner, sc.Foot)

	down, normal := sc.DownSlope(), sc.Normal()
	c.Polygon(v,
		sc.Block1.Sub(down.Mul(blockHalf)),
		sc.Block1.Add(down.Mul(blockHalf)),
		sc.Block1.Add(down.Mul(blockHalf)).Add(normal.Mul(2*blockHalf)),
		sc.Block1.Sub(down.Mul(blockHalf)).Add(normal.Mul(2*blockHalf)),
	)
	c.Box(v, sc.Pulley, 6)
	c.Segment(v, sc.Block1.Add(normal.Mul(blockHalf)), sc.Pulley)
	c.Segment(v, sc.Pulley, sc.Block2.Add(mgl64.Vec2{0, blockHalf}))
	c.Box(v, sc.Block2, blockHalf)

	arrows := sc.Arrows()
	scale := scene.ArrowScale(arrows, arrowReach)
	for _, a := range arrows {
		c.Arrow(v, a, scale)
	}
}

func (s *inclineScreen) view(st styles) string {
	c := NewCanvas(canvasCols, canvasRows)
	DrawIncline(c, s.layout())

	var b strings.Builder
	b.WriteString(st.title.Render(s.tr.Text(i18n.KeyLevel1)) + "\n")
	b.WriteString(st.subtle.Render(fmt.Sprintf("θ = %d°", s.plane.Angle())) + "  ")
	b.WriteString(st.warning.Render(AttemptsBar(s.plane.AttemptsRemaining(), equilibrium.StartingAttempts)) + " ")
	b.WriteString(st.subtle.Render(s.tr.Attempts(s.plane.AttemptsRemaining())) + "\n\n")

	params := s.inputs.GetParams()
	for i, name := range inclineParams {
		lo, hi, _ := s.sliderRange(name)
		val := fmt.Sprintf("%8.2f", params[name])
		if s.editing && i == s.cursor {
			val = st.edit.Render(fmt.Sprintf("%8s", s.editBuf+"_"))
		}
		line := st.label.Render(s.tr.Text(inclineLabels[name])) + SliderBar(params[name], lo, hi, 10) + " " + val
		if i == s.cursor {
			b.WriteString(st.cursor.Render("▸ ") + st.selected.Render(line) + "\n")
		} else {
			b.WriteString("  " + st.value.Render(line) + "\n")
		}
	}

	if s.last != nil {
		b.WriteString("\n" + forceTable(st, s.layout()))
	}
	if s.message != "" {
		b.WriteString("\n" + st.outcome(s.outcome).Render(s.message) + "\n")
	}
	b.WriteString("\n" + st.keyHints("j/k", "select", "h/l", "adjust", "enter", "type", "c", "check", "r", "reset", "esc", "menu") + "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, c.String(), st.panel.Render(b.String()))
}

func forceTable(st styles, sc scene.InclineScene) string {
	var b strings.Builder
	for _, a := range sc.Arrows() {
		b.WriteString(st.force.Render(fmt.Sprintf("%-12s %-12s %8.2f N", a.Label, a.Formula, a.Magnitude)) + "\n")
	}
	return b.String()
}
