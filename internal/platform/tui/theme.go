package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Theme names accepted by ParseTheme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme is the color scheme of the shell and the game screens. It only
// changes how things look.
type Theme struct {
	Name      string
	Dark      bool
	Palette   map[core.Color]lipgloss.Style
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Border    lipgloss.Color
}

// ParseTheme validates a theme name. The empty string means auto.
func ParseTheme(name string) (string, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", ThemeAuto:
		return ThemeAuto, nil
	case ThemeLight, ThemeDark:
		return n, nil
	default:
		return "", fmt.Errorf("tui: unknown theme %q (want auto, light or dark)", name)
	}
}

// ResolveTheme returns the theme for a name. Auto asks the terminal for its
// background color. Unknown names fall back to auto.
func ResolveTheme(name string) Theme {
	n, err := ParseTheme(name)
	if err != nil {
		n = ThemeAuto
	}
	if n == ThemeAuto {
		if lipgloss.HasDarkBackground() {
			n = ThemeDark
		} else {
			n = ThemeLight
		}
	}
	if n == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DarkTheme is tuned for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Name: ThemeDark,
		Dark: true,
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Subtle:    fg("241"),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Border:    lipgloss.Color("240"),
	}
}

// LightTheme is tuned for light terminal backgrounds. White and yellow
// would vanish there, so they map to darker shades.
func LightTheme() Theme {
	return Theme{
		Name: ThemeLight,
		Dark: false,
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("124"),
			core.ColorGreen:         fg("28"),
			core.ColorYellow:        fg("136"),
			core.ColorBlue:          fg("19"),
			core.ColorMagenta:       fg("90"),
			core.ColorCyan:          fg("30"),
			core.ColorWhite:         fg("236"),
			core.ColorBrightRed:     fg("160"),
			core.ColorBrightGreen:   fg("34"),
			core.ColorBrightYellow:  fg("172"),
			core.ColorBrightBlue:    fg("27"),
			core.ColorBrightMagenta: fg("127"),
			core.ColorBrightCyan:    fg("31"),
			core.ColorBrightWhite:   fg("232"),
			core.ColorOrange:        fg("166"),
			core.ColorGray:          fg("244"),
		},
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("57")),
		Subtle:    fg("245"),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")),
		Border:    lipgloss.Color("250"),
	}
}

// Style returns the style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}
