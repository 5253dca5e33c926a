package highlighter

import "fmt"

// Theme is one of the color schemes offered by the theme picker.
type Theme int

const (
	SolarizedDark Theme = iota
	SolarizedLight
	CatppuccinMocha
	CatppuccinLatte
	Dracula
	GitHub
	Monokai
	Nord
)

// Themes lists every theme in picker order.
var Themes = []Theme{
	SolarizedDark,
	SolarizedLight,
	CatppuccinMocha,
	CatppuccinLatte,
	Dracula,
	GitHub,
	Monokai,
	Nord,
}

// DefaultTheme is used at startup.
const DefaultTheme = SolarizedDark

var themeInfo = map[Theme]struct {
	name  string
	style string
	dark  bool
}{
	SolarizedDark:   {"Solarized Dark", "solarized-dark", true},
	SolarizedLight:  {"Solarized Light", "solarized-light", false},
	CatppuccinMocha: {"Catppuccin Mocha", "catppuccin-mocha", true},
	CatppuccinLatte: {"Catppuccin Latte", "catppuccin-latte", false},
	Dracula:         {"Dracula", "dracula", true},
	GitHub:          {"GitHub", "github", false},
	Monokai:         {"Monokai", "monokai", true},
	Nord:            {"Nord", "nord", true},
}

func (t Theme) String() string {
	if info, ok := themeInfo[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// StyleName returns the chroma style id for the theme.
func (t Theme) StyleName() string {
	if info, ok := themeInfo[t]; ok {
		return info.style
	}
	return themeInfo[DefaultTheme].style
}

func (t Theme) IsDark() bool {
	if info, ok := themeInfo[t]; ok {
		return info.dark
	}
	return true
}

// Valid reports whether t is one of Themes.
func (t Theme) Valid() bool {
	_, ok := themeInfo[t]
	return ok
}
