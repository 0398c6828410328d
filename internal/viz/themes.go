package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette shared by the menu and both levels.
type Theme struct {
	Name    string
	Heading lipgloss.Color
	Input   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Force   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Heading: lipgloss.Color("#00ffff"),
		Input:   lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Force:   lipgloss.Color("#ff00ff"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ff8800"),
		Error:   lipgloss.Color("#ff0000"),
	}

	// ThemeChalkboard is pastel chalk on slate.
	ThemeChalkboard = Theme{
		Name:    "chalkboard",
		Heading: lipgloss.Color("#f5f5dc"),
		Input:   lipgloss.Color("#ffd1dc"),
		Text:    lipgloss.Color("#e8e8e8"),
		Muted:   lipgloss.Color("#7a8a80"),
		Force:   lipgloss.Color("#fff5a0"),
		Success: lipgloss.Color("#a8e6a1"),
		Warning: lipgloss.Color("#ffc98b"),
		Error:   lipgloss.Color("#ff8b8b"),
	}

	ThemeBlueprint = Theme{
		Name:    "blueprint",
		Heading: lipgloss.Color("#ffffff"),
		Input:   lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#dbe9ff"),
		Muted:   lipgloss.Color("#5a7fb0"),
		Force:   lipgloss.Color("#ffd700"),
		Success: lipgloss.Color("#7fffd4"),
		Warning: lipgloss.Color("#ffb347"),
		Error:   lipgloss.Color("#ff6f61"),
	}

	// ThemePaper suits light terminals.
	ThemePaper = Theme{
		Name:    "paper",
		Heading: lipgloss.Color("#1a1a1a"),
		Input:   lipgloss.Color("#0050a0"),
		Text:    lipgloss.Color("#222222"),
		Muted:   lipgloss.Color("#8c8c8c"),
		Force:   lipgloss.Color("#b00020"),
		Success: lipgloss.Color("#1b7f3b"),
		Warning: lipgloss.Color("#b36b00"),
		Error:   lipgloss.Color("#c62828"),
	}

	// Themes in the order `t` cycles through them.
	Themes = []Theme{ThemeCyberpunk, ThemeChalkboard, ThemeBlueprint, ThemePaper}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	if i := themeIndex(name); i >= 0 {
		return Themes[i]
	}
	return Themes[0]
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	return Themes[(themeIndex(name)+1)%len(Themes)]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return -1
}
