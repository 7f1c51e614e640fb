// Package featureset turns tweet corpora into TF-IDF feature maps.
//
// Train learns an IDF table once from a training corpus. The returned
// Featureset is immutable and scores any later corpus against that table, so
// training and prediction always share one vocabulary.
package featureset

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/tfidf"
)

// Options configures training and scoring.
type Options struct {
	// Algorithm is the term frequency measure. Defaults to tfidf.Bool.
	Algorithm tfidf.Algorithm
	// Workers bounds the pipeline fan-out. Defaults to GOMAXPROCS.
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Algorithm == "" {
		o.Algorithm = tfidf.Bool
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// LabeledExample pairs one surviving document's features with its label.
type LabeledExample struct {
	ID        ingest.TweetID   `json:"id"`
	Features  tfidf.FeatureMap `json:"features"`
	Political bool             `json:"political"`
}

// Featureset is trained state: the pipeline, the frozen IDF table and the
// term frequency algorithm.
type Featureset struct {
	pipeline  *ingest.Pipeline
	idf       *tfidf.IDFTable
	algorithm tfidf.Algorithm
	workers   int
	dropped   int
}

// Snapshot is the serializable trained state.
type Snapshot struct {
	Algorithm tfidf.Algorithm `json:"algorithm"`
	IDF       tfidf.Snapshot  `json:"idf"`
}

// Train runs the pipeline over corpus, drops documents with no tokens left
// and learns the IDF table from the survivors.
func Train(ctx context.Context, pipeline *ingest.Pipeline, corpus []ingest.Tweet, opts Options) (*Featureset, error) {
	opts = opts.withDefaults()
	if err := opts.Algorithm.Validate(); err != nil {
		return nil, err
	}
	if pipeline == nil {
		return nil, fmt.Errorf("%w: nil pipeline", internalerr.ErrInvalidArgument)
	}

	fs := &Featureset{
		pipeline:  pipeline,
		algorithm: opts.Algorithm,
		workers:   opts.Workers,
	}

	docs, err := fs.process(ctx, corpus)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no document survived preprocessing (%d in corpus)",
			internalerr.ErrInvalidArgument, len(corpus))
	}

	tokens := make([][]string, len(docs))
	for i, d := range docs {
		tokens[i] = d.tokens
	}
	table, err := tfidf.BuildIDFTable(tokens)
	if err != nil {
		return nil, err
	}

	fs.idf = table
	fs.dropped = len(corpus) - len(docs)
	return fs, nil
}

// Restore rebuilds a Featureset from a snapshot. opts.Algorithm is ignored;
// the snapshot's algorithm wins.
func Restore(pipeline *ingest.Pipeline, snap Snapshot, opts Options) (*Featureset, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("%w: nil pipeline", internalerr.ErrInvalidArgument)
	}
	if err := snap.Algorithm.Validate(); err != nil {
		return nil, err
	}
	table, err := tfidf.FromSnapshot(snap.IDF)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	return &Featureset{
		pipeline:  pipeline,
		idf:       table,
		algorithm: snap.Algorithm,
		workers:   opts.Workers,
	}, nil
}

// Snapshot captures the trained state for persistence.
func (f *Featureset) Snapshot() Snapshot {
	return Snapshot{
		Algorithm: f.algorithm,
		IDF:       f.idf.Snapshot(),
	}
}

// Algorithm returns the term frequency measure in use.
func (f *Featureset) Algorithm() tfidf.Algorithm {
	return f.algorithm
}

// IDF returns the frozen IDF table.
func (f *Featureset) IDF() *tfidf.IDFTable {
	return f.idf
}

// TrainingSize returns the number of documents the IDF table was learned
// from.
func (f *Featureset) TrainingSize() int {
	return f.idf.CorpusSize()
}

// Dropped returns how many training documents were empty after
// preprocessing. It is zero for restored featuresets.
func (f *Featureset) Dropped() int {
	return f.dropped
}

// BuildFeatureset scores every surviving document of corpus against the
// trained IDF table. Empty documents are dropped; the output keeps the
// relative order of the survivors.
func (f *Featureset) BuildFeatureset(ctx context.Context, corpus []ingest.Tweet) ([]tfidf.FeatureMap, error) {
	docs, err := f.process(ctx, corpus)
	if err != nil {
		return nil, err
	}

	out := make([]tfidf.FeatureMap, len(docs))
	for i, d := range docs {
		features, err := tfidf.ScoreDocument(d.tokens, f.algorithm, f.idf)
		if err != nil {
			return nil, fmt.Errorf("tweet %q: %w", d.tweet.ID, err)
		}
		out[i] = features
	}
	return out, nil
}

// BuildTaggedFeatureset is BuildFeatureset with labels attached. A dropped
// document drops its label with it. Every surviving document must be
// labeled.
func (f *Featureset) BuildTaggedFeatureset(ctx context.Context, corpus []ingest.Tweet) ([]LabeledExample, error) {
	docs, err := f.process(ctx, corpus)
	if err != nil {
		return nil, err
	}

	out := make([]LabeledExample, len(docs))
	for i, d := range docs {
		if !d.tweet.Labeled() {
			return nil, fmt.Errorf("%w: tweet %q has no label", internalerr.ErrInvalidArgument, d.tweet.ID)
		}
		features, err := tfidf.ScoreDocument(d.tokens, f.algorithm, f.idf)
		if err != nil {
			return nil, fmt.Errorf("tweet %q: %w", d.tweet.ID, err)
		}
		out[i] = LabeledExample{
			ID:        d.tweet.ID,
			Features:  features,
			Political: *d.tweet.Political,
		}
	}
	return out, nil
}

// Featurize scores a single text. It returns ErrNoFeatures when nothing
// survives preprocessing.
func (f *Featureset) Featurize(text string) (tfidf.FeatureMap, error) {
	doc, err := f.pipeline.Process(text)
	if err != nil {
		return nil, err
	}
	if doc.Empty() {
		return nil, internalerr.ErrNoFeatures
	}
	return tfidf.ScoreDocument(doc.Tokens, f.algorithm, f.idf)
}

type processedDoc struct {
	tweet  ingest.Tweet
	tokens []string
}

// process runs the pipeline over corpus in parallel and returns the
// non-empty documents in input order.
func (f *Featureset) process(ctx context.Context, corpus []ingest.Tweet) ([]processedDoc, error) {
	slots := make([]processedDoc, len(corpus))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i := range corpus {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := f.pipeline.Process(corpus[i].Text)
			if err != nil {
				return fmt.Errorf("tweet %q: %w", corpus[i].ID, err)
			}
			slots[i] = processedDoc{tweet: corpus[i], tokens: doc.Tokens}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	survivors := slots[:0]
	for _, d := range slots {
		if len(d.tokens) > 0 {
			survivors = append(survivors, d)
		}
	}
	return survivors, nil
}
