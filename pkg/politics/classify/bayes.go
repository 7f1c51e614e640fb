// Package classify implements a two-class naive Bayes classifier over
// feature maps.
package classify

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/coshx/tweet-politics/pkg/politics/featureset"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/tfidf"
)

// NaiveBayes models each feature as present or absent in a document.
// Presence is a map key; the weight itself is not used, since TF-IDF weights
// on a small corpus are mostly zero.
type NaiveBayes struct {
	politicalDocs int
	otherDocs     int
	political     map[string]int
	other         map[string]int
}

// Snapshot is the serializable form of a NaiveBayes model.
type Snapshot struct {
	PoliticalDocs   int            `json:"political_docs"`
	OtherDocs       int            `json:"other_docs"`
	PoliticalCounts map[string]int `json:"political_counts"`
	OtherCounts     map[string]int `json:"other_counts"`
}

// Informative describes how strongly a feature points at one label.
type Informative struct {
	Feature   string
	Political bool
	Ratio     float64
}

// Train counts feature presence per label.
func Train(examples []featureset.LabeledExample) (*NaiveBayes, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: no training examples", internalerr.ErrInvalidArgument)
	}

	nb := &NaiveBayes{
		political: make(map[string]int),
		other:     make(map[string]int),
	}
	for _, ex := range examples {
		counts := nb.other
		if ex.Political {
			nb.politicalDocs++
			counts = nb.political
		} else {
			nb.otherDocs++
		}
		for feature := range ex.Features {
			counts[feature]++
		}
	}
	return nb, nil
}

// FromSnapshot restores a model saved with Snapshot.
func FromSnapshot(s Snapshot) (*NaiveBayes, error) {
	if s.PoliticalDocs < 0 || s.OtherDocs < 0 || s.PoliticalDocs+s.OtherDocs == 0 {
		return nil, fmt.Errorf("%w: classifier snapshot has no documents", internalerr.ErrInvalidArgument)
	}
	return &NaiveBayes{
		politicalDocs: s.PoliticalDocs,
		otherDocs:     s.OtherDocs,
		political:     copyCounts(s.PoliticalCounts),
		other:         copyCounts(s.OtherCounts),
	}, nil
}

// Snapshot returns a copy of the model suitable for serialization.
func (nb *NaiveBayes) Snapshot() Snapshot {
	return Snapshot{
		PoliticalDocs:   nb.politicalDocs,
		OtherDocs:       nb.otherDocs,
		PoliticalCounts: copyCounts(nb.political),
		OtherCounts:     copyCounts(nb.other),
	}
}

// Classify reports whether features look political.
func (nb *NaiveBayes) Classify(features tfidf.FeatureMap) bool {
	pol, oth := nb.logScores(features)
	return pol > oth
}

// Prob returns the posterior probability that features are political.
func (nb *NaiveBayes) Prob(features tfidf.FeatureMap) float64 {
	pol, oth := nb.logScores(features)
	return 1 / (1 + math.Exp(oth-pol))
}

// Vocabulary returns every feature seen during training, sorted.
func (nb *NaiveBayes) Vocabulary() []string {
	vocab := lo.Uniq(lo.Keys(nb.political, nb.other))
	sort.Strings(vocab)
	return vocab
}

// MostInformativeFeatures returns up to n features ordered by the ratio
// between their likelihoods under the two labels.
func (nb *NaiveBayes) MostInformativeFeatures(n int) []Informative {
	if n <= 0 {
		return nil
	}

	out := lo.Map(nb.Vocabulary(), func(feature string, _ int) Informative {
		pPol := nb.likelihood(feature, true)
		pOth := nb.likelihood(feature, false)
		if pPol >= pOth {
			return Informative{Feature: feature, Political: true, Ratio: pPol / pOth}
		}
		return Informative{Feature: feature, Political: false, Ratio: pOth / pPol}
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ratio > out[j].Ratio
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// logScores returns the unnormalized log posterior of each label. Features
// never seen in training carry no evidence and are skipped.
func (nb *NaiveBayes) logScores(features tfidf.FeatureMap) (float64, float64) {
	total := float64(nb.politicalDocs + nb.otherDocs)
	pol := math.Log(float64(nb.politicalDocs+1) / (total + 2))
	oth := math.Log(float64(nb.otherDocs+1) / (total + 2))

	for feature := range features {
		if nb.political[feature] == 0 && nb.other[feature] == 0 {
			continue
		}
		pol += math.Log(nb.likelihood(feature, true))
		oth += math.Log(nb.likelihood(feature, false))
	}
	return pol, oth
}

// likelihood is P(feature present | label) with Laplace smoothing.
func (nb *NaiveBayes) likelihood(feature string, political bool) float64 {
	if political {
		return float64(nb.political[feature]+1) / float64(nb.politicalDocs+2)
	}
	return float64(nb.other[feature]+1) / float64(nb.otherDocs+2)
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
