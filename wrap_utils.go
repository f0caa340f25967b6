package inline

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}
