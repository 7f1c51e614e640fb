package ingest

import "strings"

// Tokenizer splits normalized text into tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WhitespaceTokenizer splits on whitespace only. Apostrophes and any other
// characters left by normalization stay inside their tokens, so token level
// contraction matching still sees "don't".
type WhitespaceTokenizer struct{}

// NewTokenizer returns the whitespace tokenizer.
func NewTokenizer() WhitespaceTokenizer {
	return WhitespaceTokenizer{}
}

// Tokenize splits text on runs of whitespace.
func (WhitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}
