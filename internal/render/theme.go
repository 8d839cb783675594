package render

import (
	"log/slog"
	"strings"

	darkmode "github.com/thiagokokada/dark-mode-go"
)

type ThemePreference int

const (
	ThemeAuto ThemePreference = iota
	ThemeLight
	ThemeDark
)

func (p ThemePreference) String() string {
	switch p {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

func ThemePreferenceFromString(raw string) ThemePreference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ThemeDark.String():
		return ThemeDark
	case ThemeLight.String():
		return ThemeLight
	default:
		return ThemeAuto
	}
}

// Palette holds the SVG colors for one theme. Lane colors cycle by column
// index, based on gitk's defaults.
type Palette struct {
	Dark       bool
	Background string
	Text       string
	MutedText  string
	NodeFill   string
	HeadFill   string
	BlockFill  string
	EdgeDim    string
	Lanes      []string
}

var (
	lightPalette = Palette{
		Dark:       false,
		Background: "#ffffff",
		Text:       "#111111",
		MutedText:  "#555555",
		NodeFill:   "#ffffff",
		HeadFill:   "#ffd75e",
		BlockFill:  "#f4f4f4",
		EdgeDim:    "#b0b0b0",
		Lanes:      []string{"#00cc00", "#cc0000", "#0055cc", "#aa00aa", "#555555", "#8b4513", "#ff8c00"},
	}
	darkPalette = Palette{
		Dark:       true,
		Background: "#1e1e1e",
		Text:       "#eaeaea",
		MutedText:  "#a0a0a0",
		NodeFill:   "#1e1e1e",
		HeadFill:   "#b58900",
		BlockFill:  "#2a2a2a",
		EdgeDim:    "#5a5a5a",
		Lanes:      []string{"#00ff00", "#ff5c5c", "#4fa3ff", "#d56bff", "#a0a0a0", "#d09a6b", "#ffb347"},
	}
	detectDarkMode = darkmode.IsDarkMode
)

// PaletteFor resolves a theme preference, consulting the OS appearance when
// the preference is auto. Detection failures fall back to the light palette.
func PaletteFor(pref ThemePreference) Palette {
	switch pref {
	case ThemeDark:
		return darkPalette
	case ThemeLight:
		return lightPalette
	default:
		if detectDarkMode != nil {
			if dark, err := detectDarkMode(); err == nil {
				if dark {
					return darkPalette
				}
			} else {
				slog.Debug("dark mode detection failed", slog.Any("error", err))
			}
		}
		return lightPalette
	}
}

// Lane returns the color for a column index.
func (p Palette) Lane(col int) string {
	if len(p.Lanes) == 0 {
		return p.Text
	}
	if col < 0 {
		col = 0
	}
	return p.Lanes[col%len(p.Lanes)]
}
