package inline

import "strings"

func (t *tokenizer) pushDelimiter(trig trigger, at Position) {
	if t.pending.count > 0 && t.pending.trigger == trig && trig == triggerAsterisk {
		t.pending.count++
		return
	}
	t.pending = pendingRun{trigger: trig, count: 1, pos: at, afterSpace: t.atBoundary()}
}

// fixate decides the kinds of the pending run. boundary is set when the run
// is followed by whitespace, a newline or the end of the scope.
func (t *tokenizer) fixate(boundary bool) {
	run := t.pending
	if run.count == 0 {
		return
	}
	t.pending = pendingRun{}
	switch run.trigger {
	case triggerAsterisk:
		t.resolveEmphasis(run, boundary)
	case triggerBacktick:
		t.resolveVerbatim(run, boundary)
	}
}

func (t *tokenizer) resolveEmphasis(run pendingRun, boundary bool) {
	rest := run.count
	pos := run.pos
	emit := func(kind tokenKind, n int) int {
		content := strings.Repeat(asteriskGrapheme, n)
		if kind == kindPlain {
			t.appendMerged(kindPlain, content, pos)
		} else {
			t.buf = append(t.buf, Token{Kind: kind, Content: content, Position: pos})
		}
		pos.Column += n
		rest -= n
		return len(t.buf) - 1
	}

	// A close looks up its own open. closeAt demotes anything opened after
	// that open, so an inner Italic does not shield an outer Bold.
	if !run.afterSpace {
	closing:
		for rest > 0 {
			if idx, ok := t.open[kindBoldItalicOpen]; ok {
				switch {
				case rest >= 3:
					t.closeAt(idx)
					emit(kindBoldItalicClose, 3)
				case rest == 2:
					t.split(idx, kindItalicOpen, kindBoldOpen)
					t.closeAt(idx + 1)
					emit(kindBoldClose, 2)
				default:
					t.split(idx, kindBoldOpen, kindItalicOpen)
					t.closeAt(idx + 1)
					emit(kindItalicClose, 1)
				}
				continue
			}
			italicIdx, italicOpen := t.open[kindItalicOpen]
			boldIdx, boldOpen := t.open[kindBoldOpen]
			switch {
			case rest >= 3 && italicOpen && boldOpen:
				if italicIdx > boldIdx {
					t.closeAt(italicIdx)
					emit(kindItalicClose, 1)
					t.closeAt(boldIdx)
					emit(kindBoldClose, 2)
				} else {
					t.closeAt(boldIdx)
					emit(kindBoldClose, 2)
					t.closeAt(italicIdx)
					emit(kindItalicClose, 1)
				}
			case rest >= 2 && boldOpen:
				t.closeAt(boldIdx)
				emit(kindBoldClose, 2)
			case italicOpen:
				t.closeAt(italicIdx)
				emit(kindItalicClose, 1)
			default:
				break closing
			}
		}
	}
	if rest == 0 {
		return
	}
	if boundary {
		emit(kindPlain, rest)
		return
	}

	italicBusy := t.isOpen(kindItalicOpen) || t.isOpen(kindBoldItalicOpen)
	boldBusy := t.isOpen(kindBoldOpen) || t.isOpen(kindBoldItalicOpen)
	if rest > 3 {
		emit(kindPlain, rest-3)
	}
	switch rest {
	case 3:
		switch {
		case !italicBusy && !boldBusy:
			t.register(emit(kindBoldItalicOpen, 3))
		case !boldBusy:
			// Only reachable after whitespace with Italic live: the first
			// asterisk stays text, the second ends the italic span and the
			// third starts a new one.
			emit(kindPlain, 1)
			t.closeAt(t.open[kindItalicOpen])
			emit(kindItalicClose, 1)
			t.register(emit(kindItalicOpen, 1))
		case !italicBusy:
			emit(kindPlain, 2)
			t.register(emit(kindItalicOpen, 1))
		default:
			emit(kindPlain, 3)
		}
	case 2:
		if boldBusy {
			emit(kindPlain, 2)
			return
		}
		t.register(emit(kindBoldOpen, 2))
	case 1:
		if italicBusy {
			emit(kindPlain, 1)
			return
		}
		t.register(emit(kindItalicOpen, 1))
	}
}

func (t *tokenizer) resolveVerbatim(run pendingRun, boundary bool) {
	if idx, ok := t.open[kindVerbatimOpen]; ok && !run.afterSpace {
		t.closeAt(idx)
		t.buf = append(t.buf, Token{Kind: kindVerbatimClose, Content: backtickGrapheme, Position: run.pos})
		return
	}
	if boundary {
		t.appendMerged(kindPlain, backtickGrapheme, run.pos)
		return
	}
	t.buf = append(t.buf, Token{Kind: kindVerbatimOpen, Content: backtickGrapheme, Position: run.pos})
	t.register(len(t.buf) - 1)
}

func (t *tokenizer) isOpen(kind tokenKind) bool {
	_, ok := t.open[kind]
	return ok
}

// register makes the open token at idx live. A second live open of the same
// kind is demoted to Plain.
func (t *tokenizer) register(idx int) {
	kind := t.buf[idx].Kind
	if _, ok := t.open[kind]; ok {
		t.buf[idx].Kind = kindPlain
		return
	}
	t.open[kind] = idx
}

// closeAt consumes the live open at idx. Opens registered after it can no
// longer be closed without crossing this pair and are demoted to Plain.
func (t *tokenizer) closeAt(idx int) {
	t.invalidateAfter(idx)
	delete(t.open, t.buf[idx].Kind)
}

func (t *tokenizer) invalidateAfter(idx int) {
	for kind, at := range t.open {
		if at > idx {
			t.buf[at].Kind = kindPlain
			delete(t.open, kind)
		}
	}
}

// split replaces the BoldItalicOpen at idx with outer at idx and inner at
// idx+1, both live.
func (t *tokenizer) split(idx int, outer, inner tokenKind) {
	t.invalidateAfter(idx)
	delete(t.open, kindBoldItalicOpen)

	tok := t.buf[idx]
	outerLen := 1
	if outer == kindBoldOpen {
		outerLen = 2
	}
	t.buf[idx] = Token{Kind: outer, Content: tok.Content[:outerLen], Position: tok.Position}
	innerTok := Token{
		Kind:     inner,
		Content:  tok.Content[outerLen:],
		Position: Position{Line: tok.Position.Line, Column: tok.Position.Column + outerLen},
	}
	t.buf = append(t.buf, Token{})
	copy(t.buf[idx+2:], t.buf[idx+1:])
	t.buf[idx+1] = innerTok
	t.open[outer] = idx
	t.open[inner] = idx + 1
}
