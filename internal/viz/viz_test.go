package viz

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/staticsim/internal/config"
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
	"github.com/san-kum/staticsim/internal/scene"
)

func newTestApp(t *testing.T, mutate func(*config.Config)) App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Incline.Angle = 45
	if mutate != nil {
		mutate(cfg)
	}
	app, err := NewApp(cfg, rand.New(rand.NewSource(1)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}

func press(m App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(App)
	}
	return m
}

func typed(s string) []string {
	keys := make([]string, 0, len(s))
	for _, r := range s {
		keys = append(keys, string(r))
	}
	return keys
}

func TestMenu_Navigation(t *testing.T) {
	m := newTestApp(t, nil)

	view := m.View()
	assert.Contains(t, view, "Level 1: Inclined plane")
	assert.Contains(t, view, "Level 2: Seesaw")

	m = press(m, "j", "enter")
	assert.Equal(t, screenSeesaw, m.screen)

	m = press(m, "esc", "k", "enter")
	assert.Equal(t, screenIncline, m.screen)

	m = press(m, "esc", "2")
	assert.Equal(t, screenSeesaw, m.screen)
}

func TestMenu_Quit(t *testing.T) {
	m := newTestApp(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestIncline_WinMarksMenu(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(m, "enter", "j", "enter")
	m = press(m, typed("3.5355")...)
	m = press(m, "enter", "c")

	assert.Equal(t, equilibrium.Success, m.incline.outcome)
	assert.True(t, m.Won(LevelIncline))
	assert.False(t, m.Won(LevelSeesaw))

	view := m.View()
	assert.Contains(t, view, "EQUILIBRIUM! YOU WIN.")
	assert.Contains(t, view, "Tension")

	m = press(m, "esc")
	assert.Contains(t, m.View(), "won")
}

func TestIncline_SliderClamps(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(m, "enter")

	for i := 0; i < 20; i++ {
		m = press(m, "h")
	}
	assert.Equal(t, 0.5, m.incline.inputs.Mass1)

	m = press(m, "l")
	assert.Equal(t, 1.0, m.incline.inputs.Mass1)

	m = press(m, "j", "j")
	for i := 0; i < 30; i++ {
		m = press(m, "h")
	}
	assert.Equal(t, 0.0, m.incline.inputs.Mu)

	m = press(m, "l", "l")
	assert.InDelta(t, 0.02, m.incline.inputs.Mu, 1e-9)
}

func TestIncline_AttemptsAndReset(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(m, "enter", "j", "enter", "1", "enter")

	m = press(m, "c")
	assert.Equal(t, equilibrium.RetryAvailable, m.incline.outcome)
	assert.Contains(t, m.View(), "Not balanced. Attempts left: 2")

	m = press(m, "c", "c")
	assert.Equal(t, equilibrium.GameOver, m.incline.outcome)
	assert.Equal(t, 0, m.incline.plane.AttemptsRemaining())

	m = press(m, "c")
	assert.Equal(t, equilibrium.GameOver, m.incline.outcome)

	m = press(m, "r")
	assert.Equal(t, 3, m.incline.plane.AttemptsRemaining())
	assert.Equal(t, 45, m.incline.plane.Angle())
	assert.Equal(t, 5.0, m.incline.inputs.Mass2)
	assert.Empty(t, m.incline.message)
	assert.False(t, m.Won(LevelIncline))
}

func TestIncline_InvalidTypedMass(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(m, "enter", "enter", "0", "enter", "c")

	assert.Equal(t, equilibrium.InvalidInput, m.incline.outcome)
	assert.Equal(t, "enter valid masses (>0)", m.incline.message)
	assert.Equal(t, 3, m.incline.plane.AttemptsRemaining())
	assert.Nil(t, m.incline.last)
}

func TestIncline_EditCancel(t *testing.T) {
	m := newTestApp(t, nil)
	theme := m.theme.Name

	m = press(m, "enter", "enter", "7", "t", "backspace", "9", "esc")
	assert.False(t, m.incline.editing)
	assert.Equal(t, 5.0, m.incline.inputs.Mass1)
	assert.Equal(t, theme, m.theme.Name)
	assert.Equal(t, screenIncline, m.screen)
}

func TestSeesaw_WinAndNewGame(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(m, "j", "enter")
	require.NoError(t, m.seesaw.seesaw.Load(physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100}))

	m = press(m, "2", "1", "c")
	assert.Equal(t, equilibrium.Mismatch, m.seesaw.outcome)
	assert.Contains(t, m.View(), "UNBALANCED: enter another weight.")

	m = press(m, "backspace", "0", "c")
	assert.Equal(t, equilibrium.Success, m.seesaw.outcome)
	assert.True(t, m.Won(LevelSeesaw))
	assert.Contains(t, m.View(), "EQUILIBRIUM REACHED! YOU WIN.")

	m = press(m, "n")
	assert.Empty(t, m.seesaw.editBuf)
	assert.False(t, m.seesaw.seesaw.Won())
	assert.True(t, m.Won(LevelSeesaw))
}

func TestSeesaw_InvalidWeight(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(m, "2", "c")

	assert.Equal(t, equilibrium.InvalidInput, m.seesaw.outcome)
	assert.Equal(t, "enter a valid weight for P2", m.seesaw.message)
	assert.False(t, m.Won(LevelSeesaw))
}

func TestSeesaw_ShowAnswer(t *testing.T) {
	m := newTestApp(t, func(c *config.Config) { c.Seesaw.ShowAnswer = true })
	m = press(m, "2")
	require.NoError(t, m.seesaw.seesaw.Load(physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100}))
	assert.Contains(t, m.View(), "answer 20.0000")

	hidden := newTestApp(t, nil)
	hidden = press(hidden, "2")
	assert.NotContains(t, hidden.View(), "answer")
}

func TestSpanishMenu(t *testing.T) {
	m := newTestApp(t, func(c *config.Config) { c.Lang = "es" })
	assert.Contains(t, m.View(), "NIVEL 2: Sube y Baja")

	m = press(m, "2")
	assert.Contains(t, m.View(), "Peso P2 (kg)")
}

func TestThemes(t *testing.T) {
	m := newTestApp(t, nil)
	assert.Equal(t, "cyberpunk", m.theme.Name)

	m = press(m, "t")
	assert.Equal(t, "chalkboard", m.theme.Name)

	assert.Len(t, ThemeNames(), len(Themes))
	assert.Equal(t, "cyberpunk", GetTheme("nope").Name)
	assert.Equal(t, "cyberpunk", NextTheme("paper").Name)
	assert.Equal(t, "cyberpunk", NextTheme("nope").Name)
}

func TestViewport_Project(t *testing.T) {
	c := NewCanvas(10, 5)
	v := c.Fit(scene.Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}}, 0)

	x, y := v.Project(mgl64.Vec2{0, 0})
	assert.Equal(t, 0, x)
	assert.Equal(t, 19, y)

	x, y = v.Project(mgl64.Vec2{10, 10})
	assert.Equal(t, 19, x)
	assert.Equal(t, 0, y)
}

func TestCanvas_SetAndDots(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	assert.Equal(t, "⠁⢀\n", c.String())

	var got [][2]int
	c.Dots(func(x, y int) { got = append(got, [2]int{x, y}) })
	assert.Equal(t, [][2]int{{0, 0}, {3, 3}}, got)
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(7, 0, 0, 0)
	n := 0
	c.Dots(func(x, y int) {
		assert.Equal(t, 0, y)
		n++
	})
	assert.Equal(t, 8, n)

	c = NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	first, last := [2]int{-1, -1}, [2]int{}
	c.Dots(func(x, y int) {
		if first[0] < 0 {
			first = [2]int{x, y}
		}
		last = [2]int{x, y}
	})
	assert.Equal(t, [2]int{0, 0}, first)
	assert.Equal(t, [2]int{7, 15}, last)
}

func TestCanvas_Arrow(t *testing.T) {
	blank := NewCanvas(10, 5).String()

	c := NewCanvas(10, 5)
	v := c.Fit(scene.Bounds{Min: mgl64.Vec2{-10, -10}, Max: mgl64.Vec2{10, 10}}, 0)
	c.Arrow(v, scene.Arrow{Origin: mgl64.Vec2{0, 0}, Dir: mgl64.Vec2{0, -1}, Magnitude: 0}, 1)
	assert.Equal(t, blank, c.String())

	c.Arrow(v, scene.Arrow{Origin: mgl64.Vec2{0, 0}, Dir: mgl64.Vec2{0, -1}, Magnitude: 8}, 1)
	assert.NotEqual(t, blank, c.String())
}

func TestDrawSeesaw_OverflowingWeight(t *testing.T) {
	p := physics.Puzzle{WeightP1: 100, DistP1: 20, DistP2: 100}
	sc := scene.ProjectSeesaw(p, 1e308, -equilibrium.MaxTilt)

	done := make(chan string, 1)
	go func() {
		c := NewCanvas(50, 15)
		DrawSeesaw(c, sc)
		done <- c.String()
	}()

	select {
	case out := <-done:
		assert.NotEmpty(t, out)
	case <-time.After(5 * time.Second):
		t.Fatal("drawing did not finish")
	}
}

func TestCanvas_SegmentSkipsUnusableEnds(t *testing.T) {
	c := NewCanvas(10, 5)
	blank := c.String()
	v := c.Fit(scene.Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}}, 0)

	c.Segment(v, mgl64.Vec2{0, 0}, mgl64.Vec2{math.NaN(), 1})
	c.Segment(v, mgl64.Vec2{0, 0}, mgl64.Vec2{math.Inf(1), 1})
	c.Segment(v, mgl64.Vec2{0, 0}, mgl64.Vec2{1e300, 1})
	assert.Equal(t, blank, c.String())

	c.Segment(v, mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10})
	assert.NotEqual(t, blank, c.String())
}

func TestBars(t *testing.T) {
	assert.Equal(t, "██░", AttemptsBar(2, 3))
	assert.Equal(t, "░░░", AttemptsBar(-1, 3))
	assert.Equal(t, "███", AttemptsBar(7, 3))

	assert.Equal(t, "[====]", SliderBar(1, 0, 1, 4))
	assert.Equal(t, "[----]", SliderBar(math.NaN(), 0, 1, 4))
	assert.Equal(t, "[==--]", SliderBar(50, 0, 100, 4))
}
