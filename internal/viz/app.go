package viz

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/staticsim/internal/config"
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/i18n"
	"github.com/san-kum/staticsim/internal/physics"
)

const (
	screenMenu = iota
	screenIncline
	screenSeesaw
)

// Level indexes the menu entries.
const (
	LevelIncline = iota
	LevelSeesaw
)

var levelKeys = []string{i18n.KeyLevel1, i18n.KeyLevel2}

// App is the Bubble Tea model for the whole game: a level menu and one
// screen per level. A level stays marked as won for the session.
type App struct {
	screen  int
	cursor  int
	tr      *i18n.Translator
	theme   Theme
	st      styles
	won     [2]bool
	incline inclineScreen
	seesaw  seesawScreen
}

// NewApp builds both engines from cfg. It fails only when the seesaw
// generator cannot produce a first puzzle.
func NewApp(cfg *config.Config, rng equilibrium.Rand, logger *slog.Logger) (App, error) {
	opts := []physics.Option{physics.WithLogger(logger), physics.WithMaxDraws(cfg.Seesaw.MaxDraws)}

	plane := physics.NewInclinedPlane(rng, opts...)
	ss, err := physics.NewSeesaw(rng, opts...)
	if err != nil {
		return App{}, err
	}

	tr := i18n.New(cfg.Lang)
	theme := GetTheme(cfg.Theme)
	return App{
		tr:      tr,
		theme:   theme,
		st:      newStyles(theme),
		incline: newInclineScreen(plane, tr, cfg.Incline),
		seesaw:  newSeesawScreen(ss, tr, cfg.Seesaw.ShowAnswer),
	}, nil
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.String() == "t" && !m.typing() {
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		return m.menuKey(key)
	case screenIncline:
		if m.incline.handleKey(key) {
			m.screen = screenMenu
		}
		if m.incline.plane.Won() {
			m.won[LevelIncline] = true
		}
	case screenSeesaw:
		if m.seesaw.handleKey(key) {
			m.screen = screenMenu
		}
		if m.seesaw.seesaw.Won() {
			m.won[LevelSeesaw] = true
		}
	}
	return m, nil
}

// typing reports whether letter keys are text input on the current screen.
func (m App) typing() bool {
	return m.screen == screenIncline && m.incline.editing
}

func (m App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(levelKeys)-1 {
			m.cursor++
		}
	case "1":
		m.screen = screenIncline
	case "2":
		m.screen = screenSeesaw
	case "enter", " ":
		m.screen = screenIncline + m.cursor
	}
	return m, nil
}

// Won reports whether level has been won during the session.
func (m App) Won(level int) bool { return m.won[level] }

func (m App) View() string {
	switch m.screen {
	case screenIncline:
		return m.incline.view(m.st)
	case screenSeesaw:
		return m.seesaw.view(m.st)
	}
	return m.viewMenu()
}

func (m App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + m.st.title.Render(strings.ToUpper(m.tr.Text(i18n.KeyTitle))) + "\n")
	b.WriteString("    " + m.st.separator(30) + "\n\n")

	for i, key := range levelKeys {
		name := fmt.Sprintf("%-28s", m.tr.Text(key))
		mark := ""
		if m.won[i] {
			mark = m.st.success.Render("✓ " + m.tr.Text(i18n.KeyWon))
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", m.st.cursor.Render("▸"), m.st.selected.Render(name), mark))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", m.st.subtle.Render(name), mark))
		}
	}

	b.WriteString("\n    " + m.st.keyHints("j/k", "navigate", "enter", "select", "t", "theme "+m.theme.Name, "q", "quit") + "\n")
	return b.String()
}

// RunInteractive runs app full screen until the player quits.
func RunInteractive(app App) error {
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
