package inline

// openMap maps a pairable open kind to the buffer index of its live token.
type openMap map[tokenKind]int

// pendingRun is a delimiter run whose kind is not decided until the grapheme
// after it is known.
type pendingRun struct {
	trigger    trigger
	count      int
	pos        Position
	afterSpace bool
}

type tokenizer struct {
	cur *cursor
	pos Position
	buf []Token

	// open and scopeStart belong to the innermost text group being scanned.
	open       openMap
	scopeStart int

	pending   pendingRun
	escape    bool
	escapePos Position
}

func newTokenizer(input string, start Position) *tokenizer {
	return &tokenizer{
		cur:  newCursor(input),
		pos:  start,
		buf:  make([]Token, 0, len(input)/4+1),
		open: openMap{},
	}
}

// scan consumes graphemes until the end of input or, for a text group body,
// until its closing bracket. It returns TextGroupClose and the bracket
// position in the latter case and EndOfInput otherwise.
func (t *tokenizer) scan(inGroup bool) (tokenKind, Position, error) {
	for {
		g, ok := t.cur.next()
		if !ok {
			return kindEndOfInput, t.pos, nil
		}
		at := t.pos
		t.advance(g)

		if t.escape {
			t.escape = false
			t.buf = append(t.buf, Token{Kind: kindEscapedGrapheme, Content: g, Position: t.escapePos})
			continue
		}

		trig := classify(g)
		if t.pending.count > 0 && !(trig == triggerAsterisk && t.pending.trigger == triggerAsterisk) {
			boundary := trig == triggerSpace || trig == triggerNewLine || (trig == triggerGroupClose && inGroup)
			t.fixate(boundary)
		}

		switch trig {
		case triggerEscape:
			t.escape = true
			t.escapePos = at
		case triggerAsterisk, triggerBacktick:
			t.pushDelimiter(trig, at)
		case triggerSpace:
			t.appendMerged(kindSpace, g, at)
		case triggerNewLine:
			t.buf = append(t.buf, Token{Kind: kindNewLine, Content: g, Position: at})
		case triggerGroupOpen:
			if err := t.group(at); err != nil {
				return kindEndOfInput, at, err
			}
		case triggerGroupClose:
			if inGroup {
				return kindTextGroupClose, at, nil
			}
			t.appendMerged(kindPlain, g, at)
		default:
			t.appendMerged(kindPlain, g, at)
		}
	}
}

func (t *tokenizer) advance(g string) {
	if classify(g) == triggerNewLine {
		t.pos.Line++
		t.pos.Column = 0
		return
	}
	t.pos.Column++
}

// appendMerged appends a Plain or Space token, extending the previous token
// of the same kind when there is one in the current scope.
func (t *tokenizer) appendMerged(kind tokenKind, content string, at Position) {
	if n := len(t.buf); n > t.scopeStart && t.buf[n-1].Kind == kind {
		t.buf[n-1].Content += content
		return
	}
	t.buf = append(t.buf, Token{Kind: kind, Content: content, Position: at})
}

// atBoundary reports whether the next token would directly follow whitespace,
// a newline or the start of the current scope.
func (t *tokenizer) atBoundary() bool {
	n := len(t.buf)
	if n == t.scopeStart {
		return true
	}
	switch t.buf[n-1].Kind {
	case kindSpace, kindNewLine:
		return true
	}
	return false
}
