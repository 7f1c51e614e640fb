package tfidf

import "sort"

// Counter aggregates document frequencies over a token corpus.
type Counter struct {
	totalDocs int64
	tokenDF   map[string]int64
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		tokenDF: make(map[string]int64),
	}
}

// Process consumes one document's tokens. Repeated tokens count once.
func (c *Counter) Process(tokens []string) {
	c.totalDocs++

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		c.tokenDF[tok]++
	}
}

// TotalDocs returns the number of documents processed.
func (c *Counter) TotalDocs() int64 {
	return c.totalDocs
}

// DF returns the number of documents containing token.
func (c *Counter) DF(token string) int64 {
	return c.tokenDF[token]
}

// Vocabulary returns every distinct token seen, sorted.
func (c *Counter) Vocabulary() []string {
	vocab := make([]string, 0, len(c.tokenDF))
	for tok := range c.tokenDF {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)
	return vocab
}
