package ingest

import (
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/coshx/tweet-politics/pkg/politics/lexicon"
	"github.com/coshx/tweet-politics/pkg/politics/stoplist"
)

// DefaultMinTokenLength drops tokens of two characters or fewer.
const DefaultMinTokenLength = 3

// Postprocessor cleans a token sequence: contraction expansion, optional
// part-of-speech filtering, stopword removal, short token removal and
// optional stemming, in that order. Stems pass the stopword and length
// filters again.
type Postprocessor struct {
	contractions *lexicon.Contractions
	stopwords    *stoplist.Set
	minLength    int
	tagger       Tagger
	stemmer      Stemmer
}

// PostprocessOption configures a Postprocessor.
type PostprocessOption func(*Postprocessor)

// WithTagger enables the part-of-speech filter. Only nouns, verbs and
// adjectives are kept.
func WithTagger(t Tagger) PostprocessOption {
	return func(p *Postprocessor) {
		p.tagger = t
	}
}

// WithStemmer reduces surviving tokens to their stems.
func WithStemmer(s Stemmer) PostprocessOption {
	return func(p *Postprocessor) {
		p.stemmer = s
	}
}

// WithMinTokenLength overrides DefaultMinTokenLength. Values below 1 are
// ignored.
func WithMinTokenLength(n int) PostprocessOption {
	return func(p *Postprocessor) {
		if n > 0 {
			p.minLength = n
		}
	}
}

// NewPostprocessor creates a postprocessor. Nil lexicons behave as empty ones.
func NewPostprocessor(contractions *lexicon.Contractions, stopwords *stoplist.Set, opts ...PostprocessOption) *Postprocessor {
	if contractions == nil {
		contractions = lexicon.New(nil)
	}
	if stopwords == nil {
		stopwords = stoplist.New(nil)
	}
	p := &Postprocessor{
		contractions: contractions,
		stopwords:    stopwords,
		minLength:    DefaultMinTokenLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Postprocess runs the token pipeline. It only fails when the tagger does.
func (p *Postprocessor) Postprocess(tokens []string) ([]string, error) {
	tokens = p.expandContractions(tokens)

	if p.tagger != nil {
		var err error
		tokens, err = p.keepContentWords(tokens)
		if err != nil {
			return nil, err
		}
	}

	tokens = lo.Filter(tokens, p.keep)

	// Stems are filtered again: "ups" stems to "up", a stopword.
	if p.stemmer != nil {
		tokens = lo.Filter(lo.Map(tokens, func(tok string, _ int) string {
			return p.stemmer.Stem(tok)
		}), p.keep)
	}

	return tokens, nil
}

func (p *Postprocessor) keep(tok string, _ int) bool {
	return !p.stopwords.IsStop(tok) && utf8.RuneCountInString(tok) >= p.minLength
}

func (p *Postprocessor) expandContractions(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		expanded, _ := p.contractions.ExpandToken(tok)
		out = append(out, expanded...)
	}
	return out
}

func (p *Postprocessor) keepContentWords(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}
	tagged, err := p.tagger.Tag(tokens)
	if err != nil {
		return nil, fmt.Errorf("pos filter: %w", err)
	}

	content := make(map[string]struct{}, len(tagged))
	for _, tt := range tagged {
		if IsContentTag(tt.Tag) {
			content[tt.Text] = struct{}{}
		}
	}

	return lo.Filter(tokens, func(tok string, _ int) bool {
		_, ok := content[tok]
		return ok
	}), nil
}
