package highlighter

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultExtension is used when the document has no usable extension.
const DefaultExtension = "rs"

// Settings is what the editor pane hands to the highlighter.
type Settings struct {
	Theme     Theme
	Extension string
}

// SettingsFor derives highlighter settings from the document path (empty
// when the document has none) and the selected theme.
func SettingsFor(path string, theme Theme) Settings {
	return Settings{Theme: theme, Extension: extensionOf(path)}
}

func extensionOf(path string) string {
	if path == "" {
		return DefaultExtension
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || !utf8.ValidString(ext) {
		return DefaultExtension
	}
	return strings.ToLower(ext)
}
