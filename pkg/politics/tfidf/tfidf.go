// Package tfidf scores token documents with term frequency times inverse
// document frequency.
//
// A document is a token slice and a corpus is a slice of documents. IDF is
// learned once into an IDFTable and reused; scoring never recomputes it.
package tfidf

import (
	"fmt"
	"math"
	"strings"

	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
)

// Algorithm selects how term frequency is measured.
type Algorithm string

const (
	// Raw counts occurrences.
	Raw Algorithm = "RAW"
	// Bool is 1 when the term occurs and 0 otherwise.
	Bool Algorithm = "BOOL"
	// Log is the natural log of the raw count. It is undefined for absent
	// terms.
	Log Algorithm = "LOG"
)

// FeatureMap maps each distinct term of one document to its weight. Absent
// terms implicitly weigh zero.
type FeatureMap map[string]float64

// ParseAlgorithm parses RAW, BOOL or LOG, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	if err := alg.Validate(); err != nil {
		return "", err
	}
	return alg, nil
}

// Validate rejects unsupported algorithms.
func (a Algorithm) Validate() error {
	switch a {
	case Raw, Bool, Log:
		return nil
	default:
		return fmt.Errorf("%w: tf cannot use algorithm %q", internalerr.ErrInvalidArgument, string(a))
	}
}

// TermFrequency measures how often term occurs in document.
func TermFrequency(term string, document []string, alg Algorithm) (float64, error) {
	count := 0
	for _, tok := range document {
		if tok == term {
			count++
		}
	}
	return tfFromCount(term, count, alg)
}

func tfFromCount(term string, count int, alg Algorithm) (float64, error) {
	switch alg {
	case Raw:
		return float64(count), nil
	case Bool:
		if count > 0 {
			return 1, nil
		}
		return 0, nil
	case Log:
		if count == 0 {
			return 0, fmt.Errorf("%w: log tf of absent term %q", internalerr.ErrInvalidArgument, term)
		}
		return math.Log(float64(count)), nil
	default:
		return 0, alg.Validate()
	}
}

// InverseDocumentFrequency computes ln(N / (df + 1)) for term over corpus.
// The +1 keeps the ratio defined for terms that occur nowhere.
func InverseDocumentFrequency(term string, corpus [][]string) (float64, error) {
	if len(corpus) == 0 {
		return 0, fmt.Errorf("%w: idf over an empty corpus", internalerr.ErrInvalidArgument)
	}

	docsWithTerm := 0
	for _, doc := range corpus {
		for _, tok := range doc {
			if tok == term {
				docsWithTerm++
				break
			}
		}
	}

	return math.Log(float64(len(corpus)) / float64(docsWithTerm+1)), nil
}

// ScoreDocument weighs every distinct term of document by tf * idf.
func ScoreDocument(document []string, alg Algorithm, table *IDFTable) (FeatureMap, error) {
	if err := alg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: nil idf table", internalerr.ErrInvalidArgument)
	}

	counts := make(map[string]int, len(document))
	for _, tok := range document {
		counts[tok]++
	}

	features := make(FeatureMap, len(counts))
	for term, count := range counts {
		tf, err := tfFromCount(term, count, alg)
		if err != nil {
			return nil, err
		}
		features[term] = tf * table.Lookup(term)
	}
	return features, nil
}

// ScoreCorpus returns one FeatureMap per document, aligned with corpus.
func ScoreCorpus(corpus [][]string, alg Algorithm, table *IDFTable) ([]FeatureMap, error) {
	if err := alg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: nil idf table", internalerr.ErrInvalidArgument)
	}

	out := make([]FeatureMap, len(corpus))
	for i, doc := range corpus {
		features, err := ScoreDocument(doc, alg, table)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out[i] = features
	}
	return out, nil
}
