package inline

// Tokenize splits input into inline tokens. Positions start at line 0,
// column 0.
//
// The only error is a *ClosingViolationError (matching ErrClosingViolation)
// for a text group that is still open at the end of input. No tokens are
// returned in that case.
func Tokenize(input string) (Tokens, error) {
	return TokenizeWithOffset(input, Position{})
}

// TokenizeWithOffset is Tokenize for a span that starts at start within a
// larger document. The start column applies to the first line only.
func TokenizeWithOffset(input string, start Position) (Tokens, error) {
	t := newTokenizer(input, start)
	if _, _, err := t.scan(false); err != nil {
		return nil, err
	}
	t.finish()
	return Tokens(t.buf), nil
}

// TokenizeBytes validates src with ValidateInput before tokenizing it.
func TokenizeBytes(src []byte, start Position) (Tokens, error) {
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	return TokenizeWithOffset(string(src), start)
}
