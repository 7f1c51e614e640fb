package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Contraction pairs a shortened word form with its expansion.
type Contraction struct {
	Contracted string `yaml:"contracted"`
	Expanded   string `yaml:"expanded"`
}

// Contractions is an immutable, ordered contraction table.
//
// Order is the tie-break for matching: the first entry that matches a token
// wins, and text-level expansion applies entries in table order.
type Contractions struct {
	entries []Contraction
	// contracted form with apostrophes removed, parallel to entries
	bare []string
}

// New builds a contraction table. Entries with an empty side are skipped.
func New(entries []Contraction) *Contractions {
	c := &Contractions{
		entries: make([]Contraction, 0, len(entries)),
		bare:    make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Contracted == "" || strings.TrimSpace(e.Expanded) == "" {
			continue
		}
		c.entries = append(c.entries, e)
		c.bare = append(c.bare, stripApostrophes(e.Contracted))
	}
	return c
}

// English returns the built-in English contraction table.
func English() *Contractions {
	return New(english)
}

// LoadFromYAML loads a contraction table from a YAML file.
//
// Expected format:
//
//	contractions:
//	  - contracted: "don't"
//	    expanded: "do not"
//	  - contracted: "y'all"
//	    expanded: "you all"
func LoadFromYAML(path string) (*Contractions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Contractions []Contraction `yaml:"contractions"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse contractions %s: %w", path, err)
	}

	return New(config.Contractions), nil
}

// Len returns the number of entries in the table.
func (c *Contractions) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the table in match order.
func (c *Contractions) Entries() []Contraction {
	out := make([]Contraction, len(c.entries))
	copy(out, c.entries)
	return out
}

// ExpandText replaces every literal occurrence of each contracted form with
// its expansion. Matching is case-sensitive and runs in table order.
func (c *Contractions) ExpandText(text string) string {
	for _, e := range c.entries {
		if strings.Contains(text, e.Contracted) {
			text = strings.ReplaceAll(text, e.Contracted, e.Expanded)
		}
	}
	return text
}

// ExpandToken expands a single token. A token matches an entry when it equals
// the contracted form, or the contracted form with its apostrophes removed
// ("dont" matches "don't"). Only the first matching entry is applied.
//
// The second return value reports whether a match was found; when it is false
// the token is returned unchanged as the only element.
func (c *Contractions) ExpandToken(token string) ([]string, bool) {
	for i, e := range c.entries {
		if token == e.Contracted || token == c.bare[i] {
			return strings.Fields(e.Expanded), true
		}
	}
	return []string{token}, false
}

func stripApostrophes(s string) string {
	return strings.ReplaceAll(s, "'", "")
}
