package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS tweets (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT UNIQUE NOT NULL,
	text TEXT NOT NULL,
	political INTEGER,
	retweet INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS tweets_labeled ON tweets(political) WHERE political IS NOT NULL;

CREATE TABLE IF NOT EXISTS models (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	algorithm TEXT NOT NULL,
	training_size INTEGER NOT NULL,
	featureset BLOB NOT NULL,
	classifier BLOB NOT NULL
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertTweet inserts or updates a tweet. An existing label survives an
// update that carries none.
func (s *sqliteStore) UpsertTweet(ctx context.Context, t ingest.Tweet) error {
	if err := t.Validate(); err != nil {
		return err
	}

	const stmt = `
INSERT INTO tweets (id, text, political, retweet)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	text=excluded.text,
	political=COALESCE(excluded.political, tweets.political),
	retweet=excluded.retweet;
`
	_, err := s.db.ExecContext(ctx, stmt, string(t.ID), t.Text, nullableBool(t.Political), boolToInt(t.Retweet))
	return err
}

// GetTweet retrieves a tweet by ID
func (s *sqliteStore) GetTweet(ctx context.Context, id ingest.TweetID) (ingest.Tweet, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, text, political, retweet FROM tweets WHERE id = ?`, string(id))
	t, err := scanTweet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ingest.Tweet{}, fmt.Errorf("%w: tweet %q", internalerr.ErrNotFound, id)
	}
	return t, err
}

// ListTweets returns tweets in insertion order
func (s *sqliteStore) ListTweets(ctx context.Context, filter store.TweetFilter) ([]ingest.Tweet, error) {
	query := `SELECT id, text, political, retweet FROM tweets`
	if filter.LabeledOnly {
		query += ` WHERE political IS NOT NULL`
	}
	query += ` ORDER BY seq`

	args := []interface{}{}
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ingest.Tweet
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SetLabel records a manual label for an existing tweet
func (s *sqliteStore) SetLabel(ctx context.Context, id ingest.TweetID, political bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tweets SET political = ? WHERE id = ?`, boolToInt(political), string(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: tweet %q", internalerr.ErrNotFound, id)
	}
	return nil
}

// SaveModel persists a trained model
func (s *sqliteStore) SaveModel(ctx context.Context, m store.Model) error {
	if m.ID == "" {
		return fmt.Errorf("%w: model id is required", internalerr.ErrInvalidArgument)
	}

	const stmt = `
INSERT INTO models (id, created_at, algorithm, training_size, featureset, classifier)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	algorithm=excluded.algorithm,
	training_size=excluded.training_size,
	featureset=excluded.featureset,
	classifier=excluded.classifier;
`
	_, err := s.db.ExecContext(ctx, stmt,
		m.ID,
		m.CreatedAt.UTC().Format(time.RFC3339Nano),
		m.Algorithm,
		m.TrainingSize,
		m.Featureset,
		m.Classifier,
	)
	return err
}

// GetModel retrieves a model by ID
func (s *sqliteStore) GetModel(ctx context.Context, id string) (store.Model, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, algorithm, training_size, featureset, classifier
FROM models WHERE id = ?`, id)
	m, err := scanModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Model{}, fmt.Errorf("%w: model %q", internalerr.ErrNotFound, id)
	}
	return m, err
}

// LatestModel returns the most recent model. Model IDs are ULIDs, so the
// greatest ID is the newest.
func (s *sqliteStore) LatestModel(ctx context.Context) (store.Model, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, algorithm, training_size, featureset, classifier
FROM models ORDER BY id DESC LIMIT 1`)
	m, err := scanModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Model{}, fmt.Errorf("%w: no trained model", internalerr.ErrNotFound)
	}
	return m, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTweet(sc scanner) (ingest.Tweet, error) {
	var (
		t         ingest.Tweet
		id        string
		political sql.NullInt64
		retweet   int
	)
	if err := sc.Scan(&id, &t.Text, &political, &retweet); err != nil {
		return ingest.Tweet{}, err
	}
	t.ID = ingest.TweetID(id)
	if political.Valid {
		t.Political = ingest.Bool(political.Int64 != 0)
	}
	t.Retweet = retweet != 0
	return t, nil
}

func scanModel(sc scanner) (store.Model, error) {
	var (
		m         store.Model
		createdAt string
	)
	if err := sc.Scan(&m.ID, &createdAt, &m.Algorithm, &m.TrainingSize, &m.Featureset, &m.Classifier); err != nil {
		return store.Model{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Model{}, fmt.Errorf("model %q created_at: %w", m.ID, err)
	}
	m.CreatedAt = ts
	return m, nil
}

func nullableBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return boolToInt(*b)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
