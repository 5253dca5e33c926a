package editor

import (
	"fmt"

	"github.com/ionut-t/teaedit/highlighter"
)

const (
	windowTitle = "Editor"
	newFileText = "New file"
)

// WindowTheme is the palette of the chrome around the editor pane.
type WindowTheme int

const (
	WindowDark WindowTheme = iota
	WindowLight
)

// Button is a toolbar action. OnPress is nil when the button is disabled.
type Button struct {
	Icon    string
	Label   string
	OnPress Message
}

func (b Button) Enabled() bool {
	return b.OnPress != nil
}

type ThemePicker struct {
	Options  []highlighter.Theme
	Selected highlighter.Theme
}

type Toolbar struct {
	Buttons []Button
	Picker  ThemePicker
}

type StatusBar struct {
	Left  string
	Right string
}

// Layout is the widget tree projected from a Model.
type Layout struct {
	Title   string
	Toolbar Toolbar
	Pane    highlighter.Settings
	Status  StatusBar
	Window  WindowTheme
}

// Project builds the widget tree for the current state.
func (m Model) Project() Layout {
	var save Message
	if m.dirty {
		save = SaveMsg{}
	}

	return Layout{
		Title: windowTitle,
		Toolbar: Toolbar{
			Buttons: []Button{
				{Icon: "✚", Label: "New file", OnPress: NewMsg{}},
				{Icon: "⇱", Label: "Open file", OnPress: OpenMsg{}},
				{Icon: "⤓", Label: "Save file", OnPress: save},
			},
			Picker: ThemePicker{
				Options:  highlighter.Themes,
				Selected: m.theme,
			},
		},
		Pane:   m.Settings(),
		Status: m.statusBar(),
		Window: windowThemeFor(m.theme),
	}
}

func (m Model) statusBar() StatusBar {
	var left string
	switch {
	case m.err != nil:
		left = m.err.Error()
	case m.path != "":
		left = m.path
	default:
		left = newFileText
	}

	line, column := m.content.CursorPosition()
	return StatusBar{
		Left:  left,
		Right: fmt.Sprintf("%d:%d", line+1, column+1),
	}
}

func windowThemeFor(theme highlighter.Theme) WindowTheme {
	if theme.IsDark() {
		return WindowDark
	}
	return WindowLight
}
