package ingest

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"
)

// TaggedToken is a token with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger assigns part-of-speech tags to a token sequence. Implementations
// may re-tokenize; callers match results back by token text.
type Tagger interface {
	Tag(tokens []string) ([]TaggedToken, error)
}

// IsContentTag reports whether a Penn Treebank tag marks a noun, verb or
// adjective.
func IsContentTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "VB") ||
		strings.HasPrefix(tag, "JJ")
}

// ProseTagger tags tokens with prose's averaged perceptron model.
type ProseTagger struct{}

// NewProseTagger returns a tagger backed by github.com/jdkato/prose/v2.
func NewProseTagger() ProseTagger {
	return ProseTagger{}
}

// Tag implements Tagger.
func (ProseTagger) Tag(tokens []string) ([]TaggedToken, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(
		strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tag tokens: %w", err)
	}

	out := make([]TaggedToken, 0, len(tokens))
	for _, tok := range doc.Tokens() {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// Stemmer reduces a token to its stem.
type Stemmer interface {
	Stem(token string) string
}

// SnowballStemmer is the English Snowball (Porter2) stemmer.
type SnowballStemmer struct{}

// NewSnowballStemmer returns a stemmer backed by github.com/kljensen/snowball.
func NewSnowballStemmer() SnowballStemmer {
	return SnowballStemmer{}
}

// Stem implements Stemmer. Stopwords have already been removed upstream, so
// they are not special-cased.
func (SnowballStemmer) Stem(token string) string {
	return english.Stem(token, true)
}
