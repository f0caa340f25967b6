package inline

// finish closes the top-level scan.
func (t *tokenizer) finish() {
	if t.escape {
		t.escape = false
		t.appendMerged(kindPlain, escapeGrapheme, t.escapePos)
	}
	t.finalize()
}

// finalize treats the end of the current scope as a boundary, demotes every
// open that is still live to Plain and merges adjacent Plain tokens.
func (t *tokenizer) finalize() {
	t.fixate(true)

	for _, idx := range t.open {
		t.buf[idx].Kind = kindPlain
	}
	t.open = openMap{}

	t.mergePlain(t.scopeStart)
}

func (t *tokenizer) mergePlain(from int) {
	out := t.buf[:from]
	for _, tok := range t.buf[from:] {
		if n := len(out); tok.Kind == kindPlain && n > from && out[n-1].Kind == kindPlain {
			out[n-1].Content += tok.Content
			continue
		}
		out = append(out, tok)
	}
	t.buf = out
}
