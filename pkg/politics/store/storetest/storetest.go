// Package storetest holds behaviour checks shared by every store.Store
// backend.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/store"
)

// Run exercises a backend. open must return a fresh, empty store.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	t.Run("TweetRoundTrip", func(t *testing.T) { testTweetRoundTrip(t, open(t)) })
	t.Run("UpsertKeepsLabel", func(t *testing.T) { testUpsertKeepsLabel(t, open(t)) })
	t.Run("ListTweets", func(t *testing.T) { testListTweets(t, open(t)) })
	t.Run("SetLabel", func(t *testing.T) { testSetLabel(t, open(t)) })
	t.Run("RejectsInvalidTweet", func(t *testing.T) { testRejectsInvalidTweet(t, open(t)) })
	t.Run("Models", func(t *testing.T) { testModels(t, open(t)) })
}

func testTweetRoundTrip(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	in := ingest.Tweet{ID: "101", Text: "Congress passed the bill", Political: ingest.Bool(true), Retweet: true}
	require.NoError(t, st.UpsertTweet(ctx, in))

	got, err := st.GetTweet(ctx, "101")
	require.NoError(t, err)
	require.Equal(t, in, got)

	_, err = st.GetTweet(ctx, "missing")
	require.ErrorIs(t, err, internalerr.ErrNotFound)
}

func testUpsertKeepsLabel(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.UpsertTweet(ctx, ingest.Tweet{ID: "1", Text: "old text", Political: ingest.Bool(false)}))
	require.NoError(t, st.UpsertTweet(ctx, ingest.Tweet{ID: "1", Text: "new text"}))

	got, err := st.GetTweet(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "new text", got.Text)
	require.NotNil(t, got.Political)
	require.False(t, *got.Political)

	require.NoError(t, st.UpsertTweet(ctx, ingest.Tweet{ID: "1", Text: "new text", Political: ingest.Bool(true)}))
	got, err = st.GetTweet(ctx, "1")
	require.NoError(t, err)
	require.True(t, *got.Political)
}

func testListTweets(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	for _, tw := range []ingest.Tweet{
		{ID: "3", Text: "third", Political: ingest.Bool(true)},
		{ID: "1", Text: "first"},
		{ID: "2", Text: "second", Political: ingest.Bool(false)},
	} {
		require.NoError(t, st.UpsertTweet(ctx, tw))
	}

	all, err := st.ListTweets(ctx, store.TweetFilter{})
	require.NoError(t, err)
	require.Equal(t, []ingest.TweetID{"3", "1", "2"}, ids(all))

	labeled, err := st.ListTweets(ctx, store.TweetFilter{LabeledOnly: true})
	require.NoError(t, err)
	require.Equal(t, []ingest.TweetID{"3", "2"}, ids(labeled))

	limited, err := st.ListTweets(ctx, store.TweetFilter{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []ingest.TweetID{"3", "1"}, ids(limited))
}

func testSetLabel(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, st.UpsertTweet(ctx, ingest.Tweet{ID: "7", Text: "vote today"}))
	require.NoError(t, st.SetLabel(ctx, "7", true))

	got, err := st.GetTweet(ctx, "7")
	require.NoError(t, err)
	require.True(t, got.Labeled())
	require.True(t, *got.Political)

	require.ErrorIs(t, st.SetLabel(ctx, "missing", true), internalerr.ErrNotFound)
}

func testRejectsInvalidTweet(t *testing.T, st store.Store) {
	defer st.Close()

	err := st.UpsertTweet(context.Background(), ingest.Tweet{ID: "1"})
	require.ErrorIs(t, err, internalerr.ErrInvalidInput)
}

func testModels(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	_, err := st.LatestModel(ctx)
	require.ErrorIs(t, err, internalerr.ErrNotFound)

	created := time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC)
	older := store.Model{
		ID:           "01HZZZZZZZZZZZZZZZZZZZZZZ0",
		CreatedAt:    created,
		Algorithm:    "BOOL",
		TrainingSize: 2,
		Featureset:   []byte(`{"algorithm":"BOOL"}`),
		Classifier:   []byte(`{"political_docs":1}`),
	}
	newer := older
	newer.ID = "01J00000000000000000000000"
	newer.CreatedAt = created.Add(time.Hour)
	newer.TrainingSize = 5

	require.NoError(t, st.SaveModel(ctx, newer))
	require.NoError(t, st.SaveModel(ctx, older))

	latest, err := st.LatestModel(ctx)
	require.NoError(t, err)
	require.Equal(t, newer.ID, latest.ID)
	require.Equal(t, 5, latest.TrainingSize)
	require.True(t, newer.CreatedAt.Equal(latest.CreatedAt))
	require.Equal(t, newer.Featureset, latest.Featureset)

	got, err := st.GetModel(ctx, older.ID)
	require.NoError(t, err)
	require.Equal(t, older.Classifier, got.Classifier)

	_, err = st.GetModel(ctx, "nope")
	require.ErrorIs(t, err, internalerr.ErrNotFound)

	require.ErrorIs(t, st.SaveModel(ctx, store.Model{}), internalerr.ErrInvalidArgument)
}

func ids(tweets []ingest.Tweet) []ingest.TweetID {
	out := make([]ingest.TweetID, len(tweets))
	for i, tw := range tweets {
		out[i] = tw.ID
	}
	return out
}
