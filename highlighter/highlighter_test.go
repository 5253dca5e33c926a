package highlighter

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFor_Extension(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "no path falls back", path: "", want: "rs"},
		{name: "markdown", path: "/tmp/a.md", want: "md"},
		{name: "lowercased", path: "/tmp/README.MD", want: "md"},
		{name: "final extension only", path: "/tmp/archive.tar.gz", want: "gz"},
		{name: "no extension falls back", path: "/tmp/Makefile", want: "rs"},
		{name: "trailing dot falls back", path: "/tmp/notes.", want: "rs"},
		{name: "invalid utf8 falls back", path: "/tmp/a.\xff\xfe", want: "rs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SettingsFor(tt.path, Dracula)
			assert.Equal(t, tt.want, s.Extension)
			assert.Equal(t, Dracula, s.Theme)
		})
	}
}

func TestThemes_AreValidAndNamed(t *testing.T) {
	require.NotEmpty(t, Themes)
	assert.Equal(t, SolarizedDark, Themes[0])

	for _, theme := range Themes {
		assert.True(t, theme.Valid())
		assert.NotEmpty(t, theme.String())
		assert.NotEmpty(t, theme.StyleName())
	}

	assert.True(t, SolarizedDark.IsDark())
	assert.False(t, SolarizedLight.IsDark())
	assert.False(t, GitHub.IsDark())
	assert.False(t, Theme(99).Valid())
}

func TestNew_ResolvesLexerFromExtension(t *testing.T) {
	assert.Equal(t, "Rust", New(SettingsFor("", SolarizedDark)).Language())
	assert.Equal(t, "Go", New(SettingsFor("/src/main.go", SolarizedDark)).Language())
	assert.Equal(t, "markdown", New(SettingsFor("/tmp/a.md", SolarizedDark)).Language())
}

func TestTokensForLine_SplitsMultiLineTokens(t *testing.T) {
	h := New(SettingsFor("main.go", Monokai))
	lines := []string{"/* a", "b */", "x := 1"}

	var first, second string
	for _, tok := range h.TokensForLine(0, lines) {
		first += tok.Value
	}
	for _, tok := range h.TokensForLine(1, lines) {
		second += tok.Value
	}

	assert.Equal(t, "/* a", first)
	assert.Equal(t, "b */", second)
	for _, tok := range h.TokensForLine(1, lines) {
		assert.Equal(t, chroma.CommentMultiline, tok.Type)
	}
}

func TestInvalidate_Retokenizes(t *testing.T) {
	h := New(SettingsFor("main.go", Monokai))
	h.Tokenize([]string{"a"})

	h.Invalidate()
	tokens := h.TokensForLine(0, []string{"package main"})

	var got string
	for _, tok := range tokens {
		got += tok.Value
	}
	assert.Equal(t, "package main", got)
}

func TestSpans_RuneColumns(t *testing.T) {
	spans := Spans([]chroma.Token{{Value: "πα"}, {Value: " x"}})

	require.Len(t, spans, 2)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 2, spans[0].End)
	assert.Equal(t, 2, spans[1].Start)
	assert.Equal(t, 4, spans[1].End)
}

func TestStyleFor_CachesStyles(t *testing.T) {
	h := New(SettingsFor("main.go", Monokai))

	a := h.StyleFor(chroma.Keyword)
	b := h.StyleFor(chroma.Keyword)

	assert.Equal(t, a.GetForeground(), b.GetForeground())
	_, ok := h.Background()
	assert.True(t, ok)
}
