package inline

// group tokenizes the body of a text group opened at at. The body gets an
// empty open map so that no formatting crosses the group boundary; the
// caller's map is restored once the closing bracket has been appended.
func (t *tokenizer) group(at Position) error {
	if next, ok := t.cur.peek(); !ok || isBoundary(next) {
		t.appendMerged(kindPlain, groupOpenGrapheme, at)
		return nil
	}

	outer, outerStart := t.open, t.scopeStart
	t.buf = append(t.buf, Token{Kind: kindTextGroupOpen, Content: groupOpenGrapheme, Position: at})
	t.open, t.scopeStart = openMap{}, len(t.buf)

	end, closeAt, err := t.scan(true)
	if err != nil {
		return err
	}
	if end != kindTextGroupClose {
		return &ClosingViolationError{Position: at}
	}
	t.finalize()
	t.buf = append(t.buf, Token{Kind: kindTextGroupClose, Content: groupCloseGrapheme, Position: closeAt})

	t.open, t.scopeStart = outer, outerStart
	return nil
}
