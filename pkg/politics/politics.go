// Package politics classifies tweets as political or not.
//
// An Engine keeps tweets and manual labels in a store, trains a TF-IDF
// featureset and a naive Bayes classifier from the labeled ones, and
// classifies new text with the latest trained model.
package politics

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"

	"github.com/coshx/tweet-politics/pkg/politics/classify"
	"github.com/coshx/tweet-politics/pkg/politics/featureset"
	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/store"
)

// Engine is the main tweet classification facade
type Engine struct {
	store    store.Store
	pipeline *ingest.Pipeline
	fsOpts   featureset.Options
	now      func() time.Time

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy

	mu    sync.RWMutex
	model *trainedModel
}

// Options configures an Engine
type Options struct {
	Store      store.Store
	Pipeline   *ingest.Pipeline
	Featureset featureset.Options
	// Now stamps new models. Defaults to time.Now.
	Now func() time.Time
}

type trainedModel struct {
	id         string
	createdAt  time.Time
	features   *featureset.Featureset
	classifier *classify.NaiveBayes
}

// New creates an Engine with the given dependencies. A nil pipeline means
// the built-in English pipeline.
func New(opts Options) *Engine {
	pipeline := opts.Pipeline
	if pipeline == nil {
		pipeline = ingest.NewDefaultPipeline()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:    opts.Store,
		pipeline: pipeline,
		fsOpts:   opts.Featureset,
		now:      now,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Close cleanly shuts down the engine
func (e *Engine) Close() error {
	return e.store.Close()
}

// Import stores tweets. A tweet without a label keeps any label already
// stored for its ID.
func (e *Engine) Import(ctx context.Context, tweets []ingest.Tweet) (int, error) {
	for i, t := range tweets {
		if err := e.store.UpsertTweet(ctx, t); err != nil {
			return i, fmt.Errorf("import tweet %q: %w", t.ID, err)
		}
	}
	return len(tweets), nil
}

// Label records a manual label for a stored tweet
func (e *Engine) Label(ctx context.Context, id ingest.TweetID, political bool) error {
	return e.store.SetLabel(ctx, id, political)
}

// TrainResult summarizes a training run
type TrainResult struct {
	ModelID    string
	Documents  int
	Dropped    int
	Retweets   int
	Vocabulary int
}

// Train builds a model from every labeled original tweet in the store,
// persists it and makes it the active model. Retweets are skipped.
func (e *Engine) Train(ctx context.Context) (TrainResult, error) {
	labeled, err := e.store.ListTweets(ctx, store.TweetFilter{LabeledOnly: true})
	if err != nil {
		return TrainResult{}, fmt.Errorf("list labeled tweets: %w", err)
	}
	tweets := lo.Reject(labeled, func(t ingest.Tweet, _ int) bool {
		return t.Retweet
	})
	if len(tweets) == 0 {
		return TrainResult{}, fmt.Errorf("%w: no labeled tweets to train on", internalerr.ErrInvalidArgument)
	}

	// 1. Learn the IDF table
	fs, err := featureset.Train(ctx, e.pipeline, tweets, e.fsOpts)
	if err != nil {
		return TrainResult{}, fmt.Errorf("train featureset: %w", err)
	}

	// 2. Score the labeled corpus against it
	examples, err := fs.BuildTaggedFeatureset(ctx, tweets)
	if err != nil {
		return TrainResult{}, fmt.Errorf("build tagged featureset: %w", err)
	}

	// 3. Fit the classifier
	nb, err := classify.Train(examples)
	if err != nil {
		return TrainResult{}, fmt.Errorf("train classifier: %w", err)
	}

	// 4. Persist and activate
	model := &trainedModel{
		id:         e.newModelID(),
		createdAt:  e.now().UTC(),
		features:   fs,
		classifier: nb,
	}
	if err := e.saveModel(ctx, model); err != nil {
		return TrainResult{}, err
	}

	return TrainResult{
		ModelID:    model.id,
		Documents:  fs.TrainingSize(),
		Dropped:    fs.Dropped(),
		Retweets:   len(labeled) - len(tweets),
		Vocabulary: fs.IDF().Len(),
	}, nil
}

// Verdict is the classification of a single text
type Verdict struct {
	ModelID     string
	Political   bool
	Probability float64
	Features    []string
}

// Classify labels text with the active model, loading the latest stored
// model on first use. Text with no tokens left after preprocessing yields
// ErrNoFeatures.
func (e *Engine) Classify(ctx context.Context, text string) (Verdict, error) {
	model, err := e.activeModel(ctx)
	if err != nil {
		return Verdict{}, err
	}

	features, err := model.features.Featurize(text)
	if err != nil {
		return Verdict{}, err
	}

	names := lo.Keys(features)
	sort.Strings(names)
	return Verdict{
		ModelID:     model.id,
		Political:   model.classifier.Classify(features),
		Probability: model.classifier.Prob(features),
		Features:    names,
	}, nil
}

// MostInformativeFeatures reports the strongest features of the active model
func (e *Engine) MostInformativeFeatures(ctx context.Context, n int) ([]classify.Informative, error) {
	model, err := e.activeModel(ctx)
	if err != nil {
		return nil, err
	}
	return model.classifier.MostInformativeFeatures(n), nil
}

// ModelSnapshot is the portable JSON form of a trained model
type ModelSnapshot struct {
	ID         string              `json:"id"`
	CreatedAt  time.Time           `json:"created_at"`
	Featureset featureset.Snapshot `json:"featureset"`
	Classifier classify.Snapshot   `json:"classifier"`
}

// ExportModel returns the active model as a snapshot
func (e *Engine) ExportModel(ctx context.Context) (ModelSnapshot, error) {
	model, err := e.activeModel(ctx)
	if err != nil {
		return ModelSnapshot{}, err
	}
	return ModelSnapshot{
		ID:         model.id,
		CreatedAt:  model.createdAt,
		Featureset: model.features.Snapshot(),
		Classifier: model.classifier.Snapshot(),
	}, nil
}

// ImportModel restores a snapshot, stores it and makes it the active model
func (e *Engine) ImportModel(ctx context.Context, snap ModelSnapshot) error {
	if snap.ID == "" {
		return fmt.Errorf("%w: model snapshot has no id", internalerr.ErrInvalidArgument)
	}
	model, err := e.restore(snap.ID, snap.CreatedAt, snap.Featureset, snap.Classifier)
	if err != nil {
		return err
	}
	return e.saveModel(ctx, model)
}

func (e *Engine) activeModel(ctx context.Context) (*trainedModel, error) {
	e.mu.RLock()
	model := e.model
	e.mu.RUnlock()
	if model != nil {
		return model, nil
	}

	stored, err := e.store.LatestModel(ctx)
	if err != nil {
		return nil, err
	}

	var (
		fsSnap featureset.Snapshot
		nbSnap classify.Snapshot
	)
	if err := json.Unmarshal(stored.Featureset, &fsSnap); err != nil {
		return nil, fmt.Errorf("decode featureset of model %s: %w", stored.ID, err)
	}
	if err := json.Unmarshal(stored.Classifier, &nbSnap); err != nil {
		return nil, fmt.Errorf("decode classifier of model %s: %w", stored.ID, err)
	}
	model, err = e.restore(stored.ID, stored.CreatedAt, fsSnap, nbSnap)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model == nil {
		e.model = model
	}
	return e.model, nil
}

func (e *Engine) restore(id string, createdAt time.Time, fsSnap featureset.Snapshot, nbSnap classify.Snapshot) (*trainedModel, error) {
	fs, err := featureset.Restore(e.pipeline, fsSnap, e.fsOpts)
	if err != nil {
		return nil, fmt.Errorf("restore featureset of model %s: %w", id, err)
	}
	nb, err := classify.FromSnapshot(nbSnap)
	if err != nil {
		return nil, fmt.Errorf("restore classifier of model %s: %w", id, err)
	}
	return &trainedModel{id: id, createdAt: createdAt, features: fs, classifier: nb}, nil
}

func (e *Engine) saveModel(ctx context.Context, model *trainedModel) error {
	fsJSON, err := json.Marshal(model.features.Snapshot())
	if err != nil {
		return fmt.Errorf("encode featureset: %w", err)
	}
	nbJSON, err := json.Marshal(model.classifier.Snapshot())
	if err != nil {
		return fmt.Errorf("encode classifier: %w", err)
	}

	err = e.store.SaveModel(ctx, store.Model{
		ID:           model.id,
		CreatedAt:    model.createdAt,
		Algorithm:    string(model.features.Algorithm()),
		TrainingSize: model.features.TrainingSize(),
		Featureset:   fsJSON,
		Classifier:   nbJSON,
	})
	if err != nil {
		return fmt.Errorf("save model %s: %w", model.id, err)
	}

	e.mu.Lock()
	e.model = model
	e.mu.Unlock()
	return nil
}

func (e *Engine) newModelID() string {
	e.idMu.Lock()
	defer e.idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(e.now()), e.entropy).String()
}
