package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter tokenizes buffer lines with chroma and maps token types to
// lipgloss styles for the editor pane.
type Highlighter struct {
	settings   Settings
	lexer      chroma.Lexer
	style      *chroma.Style
	cache      map[int][]chroma.Token
	styleCache map[chroma.TokenType]lipgloss.Style
	mu         sync.RWMutex
}

// Span is a token placed on a line, in rune columns [Start, End).
type Span struct {
	Token chroma.Token
	Start int
	End   int
}

// New creates a highlighter for the given settings.
func New(settings Settings) *Highlighter {
	return &Highlighter{
		settings:   settings,
		lexer:      chroma.Coalesce(lexerFor(settings.Extension)),
		style:      styles.Get(settings.Theme.StyleName()),
		cache:      make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

func lexerFor(extension string) chroma.Lexer {
	if lexer := lexers.Match("file." + extension); lexer != nil {
		return lexer
	}
	if lexer := lexers.Get(extension); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}

// Settings returns the settings the highlighter was built with.
func (h *Highlighter) Settings() Settings {
	return h.settings
}

// Language is the name of the resolved lexer.
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Invalidate drops cached tokens. Call it when the buffer changes.
func (h *Highlighter) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cache = make(map[int][]chroma.Token)
}

// Tokenize tokenizes the whole document so multi-line constructs (block
// comments, fenced code) are coloured correctly, then caches tokens per line.
func (h *Highlighter) Tokenize(lines []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cache = make(map[int][]chroma.Token)

	content := strings.Join(lines, "\n")
	if content == "" {
		h.cache[0] = []chroma.Token{}
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		for i := range lines {
			h.cache[i] = []chroma.Token{}
		}
		return
	}

	lineNum := 0
	h.cache[lineNum] = []chroma.Token{}

	for _, token := range iterator.Tokens() {
		value := token.Value
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				h.cache[lineNum] = append(h.cache[lineNum], chroma.Token{Type: token.Type, Value: before})
			}
			lineNum++
			h.cache[lineNum] = []chroma.Token{}
			value = after
		}
		if value != "" {
			h.cache[lineNum] = append(h.cache[lineNum], chroma.Token{Type: token.Type, Value: value})
		}
	}
}

// TokensForLine returns the tokens of one line, tokenizing on a cold cache.
func (h *Highlighter) TokensForLine(lineNum int, lines []string) []chroma.Token {
	h.mu.RLock()
	_, cached := h.cache[0]
	h.mu.RUnlock()

	if !cached {
		h.Tokenize(lines)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cache[lineNum]
}

// StyleFor converts a chroma token type into a lipgloss style.
func (h *Highlighter) StyleFor(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.RLock()
	style, ok := h.styleCache[tokenType]
	h.mu.RUnlock()
	if ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.mu.Lock()
	h.styleCache[tokenType] = style
	h.mu.Unlock()

	return style
}

// Background returns the theme's background colour, if it defines one.
func (h *Highlighter) Background() (lipgloss.Color, bool) {
	entry := h.style.Get(chroma.Background)
	if !entry.Background.IsSet() {
		return "", false
	}
	return lipgloss.Color(entry.Background.String()), true
}

// Spans places tokens on a line by rune column.
func Spans(tokens []chroma.Token) []Span {
	spans := make([]Span, 0, len(tokens))
	col := 0
	for _, token := range tokens {
		n := len([]rune(token.Value))
		spans = append(spans, Span{Token: token, Start: col, End: col + n})
		col += n
	}
	return spans
}
