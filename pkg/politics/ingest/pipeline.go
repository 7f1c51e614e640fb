package ingest

import (
	"github.com/coshx/tweet-politics/pkg/politics/lexicon"
	"github.com/coshx/tweet-politics/pkg/politics/stoplist"
)

// Pipeline orchestrates the text-to-token flow:
// text → normalization → tokenization → postprocessing
type Pipeline struct {
	normalizer *Normalizer
	tokenizer  Tokenizer
	post       *Postprocessor
}

// NewPipeline creates a pipeline with the given components
func NewPipeline(normalizer *Normalizer, tokenizer Tokenizer, post *Postprocessor) *Pipeline {
	return &Pipeline{
		normalizer: normalizer,
		tokenizer:  tokenizer,
		post:       post,
	}
}

// NewDefaultPipeline wires the built-in English contraction table and
// stopword set.
func NewDefaultPipeline(opts ...PostprocessOption) *Pipeline {
	contractions := lexicon.English()
	return NewPipeline(
		NewNormalizer(contractions),
		NewTokenizer(),
		NewPostprocessor(contractions, stoplist.English(), opts...),
	)
}

// ProcessedDoc represents a document after ingestion processing
type ProcessedDoc struct {
	Text   string
	Tokens []string
}

// Empty reports whether nothing survived postprocessing. Empty documents
// carry no signal and are dropped from any corpus.
func (d ProcessedDoc) Empty() bool {
	return len(d.Tokens) == 0
}

// Process runs a document through the full pipeline
func (p *Pipeline) Process(text string) (ProcessedDoc, error) {
	// 1. Normalize (retweets, punctuation, case, mentions, links, ...)
	normalized := p.normalizer.Normalize(text)

	// 2. Tokenize on whitespace
	tokens := p.tokenizer.Tokenize(normalized)

	// 3. Expand contractions, drop stopwords and short tokens
	tokens, err := p.post.Postprocess(tokens)
	if err != nil {
		return ProcessedDoc{}, err
	}

	return ProcessedDoc{
		Text:   normalized,
		Tokens: tokens,
	}, nil
}
