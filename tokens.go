package inline

import "strings"

// Position locates a token in the input. Line and column are zero-based and
// counted in grapheme clusters.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Token is a typed slice of the input.
type Token struct {
	Kind     TokenKind `json:"kind" yaml:"kind"`
	Content  string    `json:"content" yaml:"content"`
	Position Position  `json:"position" yaml:"position"`
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind.
type TokenKind = tokenKind

const (
	kindPlain tokenKind = iota
	kindSpace
	kindNewLine
	kindEscapedGrapheme
	kindBoldOpen
	kindBoldClose
	kindItalicOpen
	kindItalicClose
	kindBoldItalicOpen
	kindBoldItalicClose
	kindVerbatimOpen
	kindVerbatimClose
	kindTextGroupOpen
	kindTextGroupClose
	kindEndOfInput
)

const (
	// Plain is literal text.
	Plain TokenKind = kindPlain
	// Space is a run of non-newline whitespace.
	Space TokenKind = kindSpace
	// NewLine is a single line break.
	NewLine TokenKind = kindNewLine
	// EscapedGrapheme is a grapheme preceded by a backslash. Content holds the
	// grapheme without the backslash.
	EscapedGrapheme TokenKind = kindEscapedGrapheme

	// BoldOpen is the "**" starting a bold span.
	BoldOpen TokenKind = kindBoldOpen
	// BoldClose is the "**" ending a bold span.
	BoldClose TokenKind = kindBoldClose
	// ItalicOpen is the "*" starting an italic span.
	ItalicOpen TokenKind = kindItalicOpen
	// ItalicClose is the "*" ending an italic span.
	ItalicClose TokenKind = kindItalicClose
	// BoldItalicOpen is a "***" run starting bold and italic at once.
	BoldItalicOpen TokenKind = kindBoldItalicOpen
	// BoldItalicClose is a "***" run ending a bold italic span.
	BoldItalicClose TokenKind = kindBoldItalicClose
	// VerbatimOpen is the backtick starting a verbatim span.
	VerbatimOpen TokenKind = kindVerbatimOpen
	// VerbatimClose is the backtick ending a verbatim span.
	VerbatimClose TokenKind = kindVerbatimClose
	// TextGroupOpen is the "[" starting a text group.
	TextGroupOpen TokenKind = kindTextGroupOpen
	// TextGroupClose is the "]" ending a text group.
	TextGroupClose TokenKind = kindTextGroupClose

	// EndOfInput only stops a text group body. It never reaches callers.
	EndOfInput TokenKind = kindEndOfInput
)

var kindNames = [...]string{
	kindPlain:           "Plain",
	kindSpace:           "Space",
	kindNewLine:         "NewLine",
	kindEscapedGrapheme: "EscapedGrapheme",
	kindBoldOpen:        "BoldOpen",
	kindBoldClose:       "BoldClose",
	kindItalicOpen:      "ItalicOpen",
	kindItalicClose:     "ItalicClose",
	kindBoldItalicOpen:  "BoldItalicOpen",
	kindBoldItalicClose: "BoldItalicClose",
	kindVerbatimOpen:    "VerbatimOpen",
	kindVerbatimClose:   "VerbatimClose",
	kindTextGroupOpen:   "TextGroupOpen",
	kindTextGroupClose:  "TextGroupClose",
	kindEndOfInput:      "EndOfInput",
}

func (k tokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k tokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsOpen reports whether k opens a pairable span.
func (k tokenKind) IsOpen() bool {
	switch k {
	case kindBoldOpen, kindItalicOpen, kindBoldItalicOpen, kindVerbatimOpen, kindTextGroupOpen:
		return true
	}
	return false
}

// IsClose reports whether k closes a pairable span.
func (k tokenKind) IsClose() bool {
	switch k {
	case kindBoldClose, kindItalicClose, kindBoldItalicClose, kindVerbatimClose, kindTextGroupClose:
		return true
	}
	return false
}

// Counterpart returns the other half of a pairable kind, or k itself.
func (k tokenKind) Counterpart() tokenKind {
	switch {
	case k.IsOpen():
		return k + 1
	case k.IsClose():
		return k - 1
	}
	return k
}

func (k tokenKind) isEmphasis() bool {
	switch k {
	case kindBoldOpen, kindBoldClose, kindItalicOpen, kindItalicClose, kindBoldItalicOpen, kindBoldItalicClose:
		return true
	}
	return false
}

// Tokens is the ordered result of a tokenization call.
type Tokens []Token

// Source reassembles the input the tokens were produced from.
func (ts Tokens) Source() string {
	var b strings.Builder
	for _, tok := range ts {
		if tok.Kind == kindEscapedGrapheme {
			b.WriteString(escapeGrapheme)
		}
		b.WriteString(tok.Content)
	}
	return b.String()
}

// Text returns the textual content without any markers.
func (ts Tokens) Text() string {
	var b strings.Builder
	for _, tok := range ts {
		if tok.Kind.IsOpen() || tok.Kind.IsClose() {
			continue
		}
		b.WriteString(tok.Content)
	}
	return b.String()
}
