package config

import (
	"fmt"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/lexicon"
	"github.com/coshx/tweet-politics/pkg/politics/stoplist"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	StoplistPath     string
	ContractionsPath string
	POSFilter        bool
	Stem             bool
	MinTokenLength   int
}

// Components holds all loaded configuration components
type Components struct {
	Contractions *lexicon.Contractions
	Stoplist     *stoplist.Set
	Pipeline     *ingest.Pipeline
}

// Load reads all configuration files and returns initialized components.
// Missing paths fall back to the built-in English tables.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load stoplist
	if l.StoplistPath != "" {
		sl, err := stoplist.LoadFromYAML(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = sl
	} else {
		comp.Stoplist = stoplist.English()
	}

	// Load contractions
	if l.ContractionsPath != "" {
		c, err := lexicon.LoadFromYAML(l.ContractionsPath)
		if err != nil {
			return nil, fmt.Errorf("load contractions: %w", err)
		}
		comp.Contractions = c
	} else {
		comp.Contractions = lexicon.English()
	}

	var opts []ingest.PostprocessOption
	if l.MinTokenLength > 0 {
		opts = append(opts, ingest.WithMinTokenLength(l.MinTokenLength))
	}
	if l.POSFilter {
		opts = append(opts, ingest.WithTagger(ingest.NewProseTagger()))
	}
	if l.Stem {
		opts = append(opts, ingest.WithStemmer(ingest.NewSnowballStemmer()))
	}

	comp.Pipeline = ingest.NewPipeline(
		ingest.NewNormalizer(comp.Contractions),
		ingest.NewTokenizer(),
		ingest.NewPostprocessor(comp.Contractions, comp.Stoplist, opts...),
	)

	return comp, nil
}
