package inline

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
)

// RenderSource writes the source text of tokens to w, styling each token by
// the spans it belongs to. With color disabled the output equals
// tokens.Source().
func RenderSource(w io.Writer, tokens Tokens, opts ...RenderOption) error {
	cfg := newRenderConfig(opts)
	styles := cfg.theme.Styles()
	var spans spanState
	var b strings.Builder
	for _, tok := range tokens {
		text := tok.Content
		if tok.Kind == kindEscapedGrapheme {
			text = escapeGrapheme + text
		}
		var st Style
		switch {
		case tok.Kind.IsOpen():
			st = styles.Marker
			spans.enter(tok.Kind)
		case tok.Kind.IsClose():
			st = styles.Marker
			spans.leave(tok.Kind.Counterpart())
		case tok.Kind == kindEscapedGrapheme:
			st = styles.Escaped
		default:
			st = spans.style(styles)
		}
		b.WriteString(paint(st, text, cfg.color))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTable writes one line per token: position, kind and quoted content.
func RenderTable(w io.Writer, tokens Tokens, opts ...RenderOption) error {
	cfg := newRenderConfig(opts)
	styles := cfg.theme.Styles()
	posWidth, kindWidth := 0, 0
	for _, tok := range tokens {
		posWidth = max(posWidth, runewidth.StringWidth(formatPosition(tok.Position)))
		kindWidth = max(kindWidth, runewidth.StringWidth(tok.Kind.String()))
	}

	var b strings.Builder
	for _, tok := range tokens {
		var row strings.Builder
		if cfg.positions {
			row.WriteString(paint(styles.Position, padding.String(formatPosition(tok.Position), uint(posWidth)), cfg.color))
			row.WriteString("  ")
		}
		row.WriteString(paint(kindStyle(styles, tok.Kind), padding.String(tok.Kind.String(), uint(kindWidth)), cfg.color))
		row.WriteString("  ")
		content := strconv.Quote(tok.Content)
		if cfg.width > 0 {
			content = truncateWithEllipsis(content, cfg.width-ansi.PrintableRuneWidth(row.String()))
		}
		row.WriteString(content)
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatPosition(p Position) string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

func paint(st Style, text string, color bool) string {
	if !color || st.Prefix == "" || text == "" {
		return text
	}
	return st.Prefix + text + ansiReset
}

func kindStyle(styles Styles, kind tokenKind) Style {
	switch kind {
	case kindItalicOpen, kindItalicClose:
		return styles.Italic
	case kindBoldOpen, kindBoldClose:
		return styles.Bold
	case kindBoldItalicOpen, kindBoldItalicClose:
		return styles.BoldItalic
	case kindVerbatimOpen, kindVerbatimClose:
		return styles.Verbatim
	case kindTextGroupOpen, kindTextGroupClose:
		return styles.TextGroup
	case kindEscapedGrapheme:
		return styles.Escaped
	}
	return styles.Text
}

// spanState counts the open spans while walking a token sequence.
type spanState struct {
	italic, bold, verbatim, group int
}

func (s *spanState) enter(kind tokenKind) { s.add(kind, 1) }
func (s *spanState) leave(kind tokenKind) { s.add(kind, -1) }

func (s *spanState) add(kind tokenKind, d int) {
	switch kind {
	case kindItalicOpen:
		s.italic += d
	case kindBoldOpen:
		s.bold += d
	case kindBoldItalicOpen:
		s.italic += d
		s.bold += d
	case kindVerbatimOpen:
		s.verbatim += d
	case kindTextGroupOpen:
		s.group += d
	}
}

func (s *spanState) style(styles Styles) Style {
	switch {
	case s.verbatim > 0:
		return styles.Verbatim
	case s.bold > 0 && s.italic > 0:
		return styles.BoldItalic
	case s.bold > 0:
		return styles.Bold
	case s.italic > 0:
		return styles.Italic
	case s.group > 0:
		return styles.TextGroup
	}
	return styles.Text
}
