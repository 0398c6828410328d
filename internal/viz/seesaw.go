package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/i18n"
	"github.com/san-kum/staticsim/internal/physics"
	"github.com/san-kum/staticsim/internal/scene"
)

const (
	personHalf = 20.0
	pivotHalf  = 25.0
)

type seesawScreen struct {
	seesaw     *physics.Seesaw
	tr         *i18n.Translator
	showAnswer bool
	editBuf    string
	message    string
	outcome    equilibrium.Outcome
}

func newSeesawScreen(ss *physics.Seesaw, tr *i18n.Translator, showAnswer bool) seesawScreen {
	return seesawScreen{seesaw: ss, tr: tr, showAnswer: showAnswer}
}

// handleKey applies one key press and reports whether to leave the level.
func (s *seesawScreen) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "q":
		return true
	case "c", "enter":
		s.check()
	case "n":
		s.newGame()
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
	return false
}

func (s *seesawScreen) check() {
	w, err := strconv.ParseFloat(strings.TrimSpace(s.editBuf), 64)
	if err != nil {
		w = 0
	}
	res := s.seesaw.Evaluate(w)
	s.message = s.tr.Seesaw(res)
	s.outcome = res.Kind
}

func (s *seesawScreen) newGame() {
	if err := s.seesaw.NewGame(); err != nil {
		s.message = err.Error()
		s.outcome = equilibrium.InvalidInput
		return
	}
	s.editBuf = ""
	s.message = ""
}

// DrawSeesaw renders the ground, pivot, tilted board, both persons and
// their weight arrows.
func DrawSeesaw(c *Canvas, sc scene.SeesawScene) {
	v := c.Fit(sc.Bounds(), arrowReach+2*personHalf)

	ground := 0.0
	c.Segment(v, mgl64.Vec2{sc.Left.X(), ground}, mgl64.Vec2{sc.Right.X(), ground})
	c.Polygon(v, sc.Pivot, mgl64.Vec2{-pivotHalf, ground}, mgl64.Vec2{pivotHalf, ground})
	c.Segment(v, sc.Left, sc.Right)

	lift := mgl64.Vec2{0, personHalf}
	c.Box(v, sc.Person1.Add(lift), personHalf)
	c.Box(v, sc.Person2.Add(lift), personHalf)

	scale := scene.ArrowScale(sc.Arrows, arrowReach)
	for _, a := range sc.Arrows {
		c.Arrow(v, a, scale)
	}
}

func (s *seesawScreen) view(st styles) string {
	c := NewCanvas(canvasCols, canvasRows)
	DrawSeesaw(c, scene.ProjectSeesaw(s.seesaw.Puzzle(), s.seesaw.WeightP2(), s.seesaw.TiltAngle()))

	row := func(key, value string) string {
		return st.label.Render(s.tr.Text(key)) + st.value.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(st.title.Render(s.tr.Text(i18n.KeyLevel2)) + "\n")
	b.WriteString(st.subtle.Render(s.tr.Text(i18n.KeySeesawPrompt)) + "\n\n")
	b.WriteString(row(i18n.KeyWeightP1, fmt.Sprintf("%d", s.seesaw.WeightP1())))
	b.WriteString(row(i18n.KeyDistP1, fmt.Sprintf("%d", s.seesaw.DistP1())))
	b.WriteString(row(i18n.KeyDistP2, fmt.Sprintf("%d", s.seesaw.DistP2())))
	b.WriteString(st.label.Render(s.tr.Text(i18n.KeyWeightP2)) + st.edit.Render(s.editBuf+"_") + "\n\n")

	m1, m2 := s.seesaw.Moments()
	b.WriteString(st.force.Render(fmt.Sprintf("M1 = %.2f kg·cm", m1)) + "\n")
	b.WriteString(st.force.Render(fmt.Sprintf("M2 = %.2f kg·cm", m2)) + "\n")
	b.WriteString(st.subtle.Render(fmt.Sprintf("tilt %.2f°", s.seesaw.TiltAngle())) + "\n")
	if s.showAnswer {
		b.WriteString(st.subtle.Render(fmt.Sprintf("answer %.4f", s.seesaw.CorrectWeightP2())) + "\n")
	}

	if s.message != "" {
		b.WriteString("\n" + st.outcome(s.outcome).Render(s.message) + "\n")
	}
	b.WriteString("\n" + st.keyHints("0-9", "type", "c", "check", "n", "new game", "esc", "menu") + "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, c.String(), st.panel.Render(b.String()))
}
