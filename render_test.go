package inline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestRenderSourceWithoutColorIsSource(t *testing.T) {
	inputs := []string{
		"plain text *italic*",
		"***both*** and `code` [group \\*]",
		"*****bold**\nnext line",
	}
	for _, input := range inputs {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatalf("tokenize %q: %v", input, err)
		}
		var out bytes.Buffer
		if err := RenderSource(&out, tokens, WithColor(false)); err != nil {
			t.Fatalf("render source: %v", err)
		}
		if out.String() != input {
			t.Fatalf("render source mismatch: got %q want %q", out.String(), input)
		}
	}
}

func TestRenderSourceStylesSpans(t *testing.T) {
	tokens, err := Tokenize("**strong** text")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	styles := DefaultTheme().Styles()
	var out bytes.Buffer
	if err := RenderSource(&out, tokens, WithColor(true)); err != nil {
		t.Fatalf("render source: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, styles.Bold.Prefix+"strong"+ansiReset) {
		t.Fatalf("expected bold styled content: %q", got)
	}
	if !strings.Contains(got, styles.Marker.Prefix+"**"+ansiReset) {
		t.Fatalf("expected styled marker: %q", got)
	}
	if strings.Contains(got, styles.Bold.Prefix+"text") {
		t.Fatalf("text after the close should not be bold: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	tokens, err := Tokenize("*a*")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var out bytes.Buffer
	if err := RenderTable(&out, tokens); err != nil {
		t.Fatalf("render table: %v", err)
	}
	want := strings.Join([]string{
		`0:0  ItalicOpen   "*"`,
		`0:1  Plain        "a"`,
		`0:2  ItalicClose  "*"`,
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRenderTableWithoutPositions(t *testing.T) {
	tokens, err := Tokenize("a b")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var out bytes.Buffer
	if err := RenderTable(&out, tokens, WithPositions(false)); err != nil {
		t.Fatalf("render table: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "Space") {
		t.Fatalf("unexpected table: %q", out.String())
	}
}

func TestRenderTableTruncatesToWidth(t *testing.T) {
	tokens, err := Tokenize(strings.Repeat("long", 20))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var out bytes.Buffer
	if err := RenderTable(&out, tokens, WithWidth(30), WithColor(true)); err != nil {
		t.Fatalf("render table: %v", err)
	}
	line := strings.TrimSuffix(out.String(), "\n")
	if w := ansi.PrintableRuneWidth(line); w > 30 {
		t.Fatalf("row wider than limit: %d %q", w, line)
	}
	if !strings.HasSuffix(line, "…") {
		t.Fatalf("expected ellipsis: %q", line)
	}
}
