package stoplist

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is an immutable set of lowercase stopwords.
type Set struct {
	stops map[string]struct{}
}

// New creates a stopword set. Terms are lowercased and trimmed; empty terms
// are ignored.
func New(terms []string) *Set {
	stops := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		stops[term] = struct{}{}
	}
	return &Set{stops: stops}
}

// English returns the built-in English stopword set.
func English() *Set {
	return New(english)
}

// LoadFromYAML loads stopwords from a YAML file of the form
//
//	terms: [a, about, above]
func LoadFromYAML(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}

	return New(sl.Terms), nil
}

// IsStop checks if a token is a stopword. The token is expected to be
// lowercase already.
func (s *Set) IsStop(token string) bool {
	_, ok := s.stops[token]
	return ok
}

// Len returns the number of stopwords.
func (s *Set) Len() int {
	return len(s.stops)
}

// All returns all stopwords, sorted.
func (s *Set) All() []string {
	result := make([]string, 0, len(s.stops))
	for term := range s.stops {
		result = append(result, term)
	}
	sort.Strings(result)
	return result
}
