package inline

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

var corpusAlphabet = []string{"*", "*", "`", "[", "]", "\\", " ", "\n", "a", "b"}

// corpus returns every string up to length 4 over corpusAlphabet plus a set of
// longer random strings.
func corpus() []string {
	alphabet := uniqueStrings(corpusAlphabet)
	out := []string{""}
	level := []string{""}
	for n := 0; n < 4; n++ {
		var next []string
		for _, prefix := range level {
			for _, g := range alphabet {
				next = append(next, prefix+g)
			}
		}
		out = append(out, next...)
		level = next
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 3000; i++ {
		var b strings.Builder
		n := 5 + rng.Intn(30)
		for j := 0; j < n; j++ {
			b.WriteString(corpusAlphabet[rng.Intn(len(corpusAlphabet))])
		}
		out = append(out, b.String())
	}
	return out
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func TestTokenizeProperties(t *testing.T) {
	for _, input := range corpus() {
		tokens, err := Tokenize(input)
		if err != nil {
			if !errors.Is(err, ErrClosingViolation) {
				t.Fatalf("unexpected error for %q: %v", input, err)
			}
			if !strings.Contains(input, "[") {
				t.Fatalf("closing violation without a bracket for %q", input)
			}
			continue
		}
		if src := tokens.Source(); src != input {
			t.Fatalf("round trip for %q: got %q", input, src)
		}
		checkWellNested(t, input, tokens)
		checkPositions(t, input, tokens)
	}
}

func checkWellNested(t *testing.T, input string, tokens Tokens) {
	t.Helper()
	var stack []TokenKind
	for i, tok := range tokens {
		if tok.Content == "" {
			t.Fatalf("empty token %d for %q: %v", i, input, tokens)
		}
		if tok.Kind == EndOfInput {
			t.Fatalf("end of input token leaked for %q", input)
		}
		if i > 0 && tok.Kind == Plain && tokens[i-1].Kind == Plain {
			t.Fatalf("adjacent plain tokens at %d for %q: %v", i, input, tokens)
		}
		switch {
		case tok.Kind.IsOpen():
			stack = append(stack, tok.Kind)
		case tok.Kind.IsClose():
			if len(stack) == 0 || stack[len(stack)-1] != tok.Kind.Counterpart() {
				t.Fatalf("unmatched %v at %d for %q: %v", tok.Kind, i, input, tokens)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		t.Fatalf("dangling opens %v for %q: %v", stack, input, tokens)
	}
}

func checkPositions(t *testing.T, input string, tokens Tokens) {
	t.Helper()
	var pos Position
	for i, tok := range tokens {
		if tok.Position != pos {
			t.Fatalf("token %d of %q at %+v, want %+v: %v", i, input, tok.Position, pos, tokens)
		}
		text := tok.Content
		if tok.Kind == EscapedGrapheme {
			text = escapeGrapheme + text
		}
		c := newCursor(text)
		for g, ok := c.next(); ok; g, ok = c.next() {
			if classify(g) == triggerNewLine {
				pos.Line++
				pos.Column = 0
				continue
			}
			pos.Column++
		}
	}
}

func TestOpenMapStaysConsistent(t *testing.T) {
	for _, input := range corpus() {
		if strings.ContainsAny(input, "[]") {
			continue
		}
		tz := newTokenizer(input, Position{})
		if _, _, err := tz.scan(false); err != nil {
			t.Fatalf("scan %q: %v", input, err)
		}
		tz.fixate(true)
		seen := make(map[int]TokenKind, len(tz.open))
		for kind, idx := range tz.open {
			if !kind.IsOpen() {
				t.Fatalf("non-open kind %v registered for %q", kind, input)
			}
			if idx < 0 || idx >= len(tz.buf) || tz.buf[idx].Kind != kind {
				t.Fatalf("open map entry %v -> %d is stale for %q: %v", kind, idx, input, tz.buf)
			}
			if other, ok := seen[idx]; ok {
				t.Fatalf("index %d shared by %v and %v for %q", idx, other, kind, input)
			}
			seen[idx] = kind
		}
		if tz.isOpen(BoldItalicOpen) && (tz.isOpen(BoldOpen) || tz.isOpen(ItalicOpen)) {
			t.Fatalf("bold italic open alongside bold or italic for %q: %v", input, tz.buf)
		}
	}
}

func TestTokenizeIsIndependentPerCall(t *testing.T) {
	inputs := []string{"*a", "**b**", "[c]", "`d`", "e*"}
	first := make([]Tokens, len(inputs))
	for i, in := range inputs {
		toks, err := Tokenize(in)
		if err != nil {
			t.Fatalf("tokenize %q: %v", in, err)
		}
		first[i] = toks
	}
	for i := len(inputs) - 1; i >= 0; i-- {
		toks, err := Tokenize(inputs[i])
		if err != nil {
			t.Fatalf("tokenize %q: %v", inputs[i], err)
		}
		if toks.Source() != first[i].Source() || len(toks) != len(first[i]) {
			t.Fatalf("tokenize %q changed between calls: %v vs %v", inputs[i], first[i], toks)
		}
	}
}
