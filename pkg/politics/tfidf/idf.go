package tfidf

import (
	"fmt"
	"math"
	"sort"

	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
)

// IDFTable holds frozen inverse document frequency scores learned from a
// training corpus. It is never modified after construction and is safe for
// concurrent use.
type IDFTable struct {
	scores     map[string]float64
	corpusSize int
}

// Snapshot is the serializable form of an IDFTable.
type Snapshot struct {
	CorpusSize int                `json:"corpus_size"`
	Scores     map[string]float64 `json:"scores"`
}

// LookupIDF returns the score for term, or ln(corpusSize) when the term was
// never seen. Unknown terms are treated as rare rather than irrelevant.
func LookupIDF(scores map[string]float64, term string, corpusSize int) float64 {
	if score, ok := scores[term]; ok {
		return score
	}
	return math.Log(float64(corpusSize))
}

// BuildIDFTable computes the vocabulary of corpus and the IDF of every term
// in it:
//
//	idf(t) = ln(N / (df(t) + 1))
//
// A term present in every document gets a small negative score. An empty
// corpus is rejected since ln(0) is undefined.
func BuildIDFTable(corpus [][]string) (*IDFTable, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: idf over an empty corpus", internalerr.ErrInvalidArgument)
	}

	counter := NewCounter()
	for _, doc := range corpus {
		counter.Process(doc)
	}

	n := float64(counter.TotalDocs())
	vocab := counter.Vocabulary()
	scores := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		scores[term] = math.Log(n / float64(counter.DF(term)+1))
	}

	return &IDFTable{scores: scores, corpusSize: len(corpus)}, nil
}

// FromSnapshot restores a table saved with Snapshot.
func FromSnapshot(s Snapshot) (*IDFTable, error) {
	if s.CorpusSize <= 0 {
		return nil, fmt.Errorf("%w: idf snapshot corpus size %d", internalerr.ErrInvalidArgument, s.CorpusSize)
	}
	scores := make(map[string]float64, len(s.Scores))
	for term, score := range s.Scores {
		scores[term] = score
	}
	return &IDFTable{scores: scores, corpusSize: s.CorpusSize}, nil
}

// Lookup returns the IDF of term with the unknown-term fallback.
func (t *IDFTable) Lookup(term string) float64 {
	return LookupIDF(t.scores, term, t.corpusSize)
}

// Contains reports whether term is in the training vocabulary.
func (t *IDFTable) Contains(term string) bool {
	_, ok := t.scores[term]
	return ok
}

// CorpusSize returns the number of training documents.
func (t *IDFTable) CorpusSize() int {
	return t.corpusSize
}

// Len returns the vocabulary size.
func (t *IDFTable) Len() int {
	return len(t.scores)
}

// Vocabulary returns the training vocabulary, sorted.
func (t *IDFTable) Vocabulary() []string {
	vocab := make([]string, 0, len(t.scores))
	for term := range t.scores {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	return vocab
}

// Snapshot returns a copy of the table suitable for serialization.
func (t *IDFTable) Snapshot() Snapshot {
	scores := make(map[string]float64, len(t.scores))
	for term, score := range t.scores {
		scores[term] = score
	}
	return Snapshot{CorpusSize: t.corpusSize, Scores: scores}
}
