package store

import (
	"context"
	"time"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
)

// Store is the main interface for persisting tweets, labels and trained
// models. Lookups of missing records return internalerr.ErrNotFound.
type Store interface {
	Close() error

	// Tweets
	UpsertTweet(ctx context.Context, t ingest.Tweet) error
	GetTweet(ctx context.Context, id ingest.TweetID) (ingest.Tweet, error)
	ListTweets(ctx context.Context, filter TweetFilter) ([]ingest.Tweet, error)
	SetLabel(ctx context.Context, id ingest.TweetID, political bool) error

	// Models
	SaveModel(ctx context.Context, m Model) error
	GetModel(ctx context.Context, id string) (Model, error)
	LatestModel(ctx context.Context) (Model, error)
}

// TweetFilter narrows ListTweets. Results are in insertion order.
type TweetFilter struct {
	LabeledOnly bool
	Limit       int // 0 means no limit
}

// Model is a persisted training run. Featureset and Classifier hold the
// JSON snapshots of the trained state.
type Model struct {
	ID           string
	CreatedAt    time.Time
	Algorithm    string
	TrainingSize int
	Featureset   []byte
	Classifier   []byte
}
