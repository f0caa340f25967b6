// Package inline tokenizes the inline markup of a structured-text language.
//
// The tokenizer walks the input one grapheme cluster at a time and produces a
// flat, well-nested token sequence: plain text, whitespace, newlines, escaped
// graphemes and paired open/close markers for bold, italic, the ambiguous
// bold-italic run, verbatim spans and bracketed text groups. A run of asterisks
// is not self-describing; its role is decided once the grapheme after the run
// is known, against the set of markers that are still open.
//
// Core properties:
//   - Every grapheme of the input is covered by exactly one token
//   - Open markers without a matching close come back as Plain text
//   - Formatting never crosses a text group boundary
//   - An unterminated text group is the only error
//
// Example:
//
//	tokens, err := inline.Tokenize("plain text *italic*")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tok := range tokens {
//		fmt.Println(tok.Kind, tok.Content)
//	}
//
// RenderSource and RenderTable print token sequences for terminals.
package inline
