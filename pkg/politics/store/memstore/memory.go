package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	order  []ingest.TweetID
	tweets map[ingest.TweetID]ingest.Tweet
	models map[string]store.Model
	latest string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		tweets: make(map[ingest.TweetID]ingest.Tweet),
		models: make(map[string]store.Model),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertTweet inserts or updates a tweet, keeping an existing label when the
// update has none.
func (s *Store) UpsertTweet(ctx context.Context, t ingest.Tweet) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tweets[t.ID]
	if !ok {
		s.order = append(s.order, t.ID)
	} else if t.Political == nil {
		t.Political = existing.Political
	}
	s.tweets[t.ID] = copyTweet(t)
	return nil
}

// GetTweet returns a tweet by ID.
func (s *Store) GetTweet(ctx context.Context, id ingest.TweetID) (ingest.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tweets[id]
	if !ok {
		return ingest.Tweet{}, fmt.Errorf("%w: tweet %q", internalerr.ErrNotFound, id)
	}
	return copyTweet(t), nil
}

// ListTweets returns tweets in insertion order.
func (s *Store) ListTweets(ctx context.Context, filter store.TweetFilter) ([]ingest.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ingest.Tweet
	for _, id := range s.order {
		t := s.tweets[id]
		if filter.LabeledOnly && !t.Labeled() {
			continue
		}
		out = append(out, copyTweet(t))
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// SetLabel records a label on an existing tweet.
func (s *Store) SetLabel(ctx context.Context, id ingest.TweetID, political bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tweets[id]
	if !ok {
		return fmt.Errorf("%w: tweet %q", internalerr.ErrNotFound, id)
	}
	t.Political = ingest.Bool(political)
	s.tweets[id] = t
	return nil
}

// SaveModel stores a model.
func (s *Store) SaveModel(ctx context.Context, m store.Model) error {
	if m.ID == "" {
		return fmt.Errorf("%w: model id is required", internalerr.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.models[m.ID] = copyModel(m)
	if m.ID > s.latest {
		s.latest = m.ID
	}
	return nil
}

// GetModel returns a model by ID.
func (s *Store) GetModel(ctx context.Context, id string) (store.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.models[id]
	if !ok {
		return store.Model{}, fmt.Errorf("%w: model %q", internalerr.ErrNotFound, id)
	}
	return copyModel(m), nil
}

// LatestModel returns the model with the greatest ID.
func (s *Store) LatestModel(ctx context.Context) (store.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == "" {
		return store.Model{}, fmt.Errorf("%w: no trained model", internalerr.ErrNotFound)
	}
	return copyModel(s.models[s.latest]), nil
}

func copyTweet(t ingest.Tweet) ingest.Tweet {
	if t.Political != nil {
		t.Political = ingest.Bool(*t.Political)
	}
	return t
}

func copyModel(m store.Model) store.Model {
	m.Featureset = append([]byte(nil), m.Featureset...)
	m.Classifier = append([]byte(nil), m.Classifier...)
	return m
}
