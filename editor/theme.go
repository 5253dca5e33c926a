package editor

import "github.com/charmbracelet/lipgloss"

// Palette styles the chrome around the editor pane.
type Palette struct {
	Toolbar           lipgloss.Style
	Button            lipgloss.Style
	ButtonHovered     lipgloss.Style
	ButtonDisabled    lipgloss.Style
	Tooltip           lipgloss.Style
	Picker            lipgloss.Style
	PickerItem        lipgloss.Style
	PickerItemCurrent lipgloss.Style
	StatusLine        lipgloss.Style
	StatusError       lipgloss.Style
	LineNumber        lipgloss.Style
	CurrentLineNumber lipgloss.Style
	Selection         lipgloss.Style
	Cursor            lipgloss.Style
}

var DarkPalette = Palette{
	Toolbar:           lipgloss.NewStyle().Background(lipgloss.Color("235")),
	Button:            lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	ButtonHovered:     lipgloss.NewStyle().Background(lipgloss.Color("69")).Foreground(lipgloss.Color("255")).Bold(true),
	ButtonDisabled:    lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("244")),
	Tooltip:           lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("252")),
	Picker:            lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("255")),
	PickerItem:        lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("252")),
	PickerItemCurrent: lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	StatusLine:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
	StatusError:       lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("208")),
	LineNumber:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	CurrentLineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Selection:         lipgloss.NewStyle().Background(lipgloss.Color("24")),
	Cursor:            lipgloss.NewStyle().Reverse(true),
}

var LightPalette = Palette{
	Toolbar:           lipgloss.NewStyle().Background(lipgloss.Color("254")),
	Button:            lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	ButtonHovered:     lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255")).Bold(true),
	ButtonDisabled:    lipgloss.NewStyle().Background(lipgloss.Color("251")).Foreground(lipgloss.Color("245")),
	Tooltip:           lipgloss.NewStyle().Background(lipgloss.Color("230")).Foreground(lipgloss.Color("235")),
	Picker:            lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235")),
	PickerItem:        lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	PickerItemCurrent: lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	StatusLine:        lipgloss.NewStyle().Background(lipgloss.Color("253")).Foreground(lipgloss.Color("236")),
	StatusError:       lipgloss.NewStyle().Background(lipgloss.Color("253")).Foreground(lipgloss.Color("160")),
	LineNumber:        lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	CurrentLineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	Selection:         lipgloss.NewStyle().Background(lipgloss.Color("153")),
	Cursor:            lipgloss.NewStyle().Reverse(true),
}

// PaletteFor returns the palette matching the window theme.
func PaletteFor(w WindowTheme) Palette {
	if w == WindowLight {
		return LightPalette
	}
	return DarkPalette
}
