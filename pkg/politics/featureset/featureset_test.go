package featureset

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/tfidf"
)

func labeled(id, text string, political bool) ingest.Tweet {
	return ingest.Tweet{ID: ingest.TweetID(id), Text: text, Political: ingest.Bool(political)}
}

func sanityCorpus() []ingest.Tweet {
	return []ingest.Tweet{
		labeled("1", "taxes congress senate", true),
		labeled("2", "puppy sunshine rainbow", false),
	}
}

func TestTrainSanityCorpus(t *testing.T) {
	fs, err := Train(context.Background(), ingest.NewDefaultPipeline(), sanityCorpus(), Options{})
	require.NoError(t, err)

	require.Equal(t, tfidf.Bool, fs.Algorithm())
	require.Equal(t, 2, fs.TrainingSize())
	require.Equal(t, 0, fs.Dropped())
	require.Equal(t, []string{"congress", "puppy", "rainbow", "senate", "sunshine", "taxes"}, fs.IDF().Vocabulary())
}

func TestTrainRejectsEmptyCorpus(t *testing.T) {
	pipeline := ingest.NewDefaultPipeline()

	_, err := Train(context.Background(), pipeline, nil, Options{})
	require.ErrorIs(t, err, internalerr.ErrInvalidArgument)

	noise := []ingest.Tweet{
		{ID: "1", Text: "RT @someone: http://x.co"},
		{ID: "2", Text: "I am so to do it"},
	}
	_, err = Train(context.Background(), pipeline, noise, Options{})
	require.ErrorIs(t, err, internalerr.ErrInvalidArgument)
}

func TestTrainRejectsUnknownAlgorithm(t *testing.T) {
	_, err := Train(context.Background(), ingest.NewDefaultPipeline(), sanityCorpus(), Options{Algorithm: "SQRT"})
	require.ErrorIs(t, err, internalerr.ErrInvalidArgument)
}

func TestTrainCountsDropped(t *testing.T) {
	corpus := append(sanityCorpus(), ingest.Tweet{ID: "3", Text: "RT @someone: http://x.co"})

	fs, err := Train(context.Background(), ingest.NewDefaultPipeline(), corpus, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, fs.TrainingSize())
	require.Equal(t, 1, fs.Dropped())
}

func TestBuildFeaturesetDropsEmptyDocuments(t *testing.T) {
	ctx := context.Background()
	corpus := []ingest.Tweet{
		{ID: "1", Text: "senate vote"},
		{ID: "2", Text: "RT @someone: http://x.co"},
		{ID: "3", Text: "senate budget"},
		{ID: "4", Text: "pizza weekend"},
	}

	fs, err := Train(ctx, ingest.NewDefaultPipeline(), corpus, Options{})
	require.NoError(t, err)
	require.Equal(t, 3, fs.TrainingSize())

	features, err := fs.BuildFeatureset(ctx, corpus)
	require.NoError(t, err)
	require.Len(t, features, 3)

	require.Equal(t, tfidf.FeatureMap{
		"senate": math.Log(3.0 / 3.0),
		"vote":   math.Log(3.0 / 2.0),
	}, features[0])
	require.Contains(t, features[1], "budget")
	require.Contains(t, features[2], "pizza")
}

func TestBuildFeaturesetRawAlgorithm(t *testing.T) {
	ctx := context.Background()
	corpus := []ingest.Tweet{
		{ID: "1", Text: "vote vote vote senate"},
		{ID: "2", Text: "pizza"},
		{ID: "3", Text: "weekend"},
	}

	fs, err := Train(ctx, ingest.NewDefaultPipeline(), corpus, Options{Algorithm: tfidf.Raw})
	require.NoError(t, err)

	features, err := fs.BuildFeatureset(ctx, corpus[:1])
	require.NoError(t, err)
	require.Len(t, features, 1)
	require.InDelta(t, 3*math.Log(3.0/2.0), features[0]["vote"], 1e-12)
}

func TestBuildTaggedFeatureset(t *testing.T) {
	ctx := context.Background()
	fs, err := Train(ctx, ingest.NewDefaultPipeline(), sanityCorpus(), Options{})
	require.NoError(t, err)

	corpus := []ingest.Tweet{
		labeled("1", "taxes congress senate", true),
		{ID: "2", Text: "RT @someone: http://x.co"},
		labeled("3", "puppy sunshine rainbow", false),
	}

	examples, err := fs.BuildTaggedFeatureset(ctx, corpus)
	require.NoError(t, err)
	require.Len(t, examples, 2)

	require.Equal(t, ingest.TweetID("1"), examples[0].ID)
	require.True(t, examples[0].Political)
	require.Contains(t, examples[0].Features, "taxes")

	require.Equal(t, ingest.TweetID("3"), examples[1].ID)
	require.False(t, examples[1].Political)
	require.Contains(t, examples[1].Features, "puppy")
}

func TestBuildTaggedFeaturesetRequiresLabels(t *testing.T) {
	ctx := context.Background()
	fs, err := Train(ctx, ingest.NewDefaultPipeline(), sanityCorpus(), Options{})
	require.NoError(t, err)

	_, err = fs.BuildTaggedFeatureset(ctx, []ingest.Tweet{{ID: "9", Text: "senate hearing"}})
	require.ErrorIs(t, err, internalerr.ErrInvalidArgument)
}

func TestWorkerCountDoesNotChangeOutput(t *testing.T) {
	ctx := context.Background()
	topics := []string{"senate", "budget", "pizza", "weekend", "congress", "rainbow", "taxes"}

	corpus := make([]ingest.Tweet, 0, 60)
	for i := 0; i < 60; i++ {
		text := fmt.Sprintf("%s %s tweet%d", topics[i%len(topics)], topics[(i*3)%len(topics)], i)
		if i%9 == 0 {
			text = "RT @noise: http://x.co"
		}
		corpus = append(corpus, labeled(fmt.Sprint(i), text, i%2 == 0))
	}

	pipeline := ingest.NewDefaultPipeline()
	serial, err := Train(ctx, pipeline, corpus, Options{Workers: 1})
	require.NoError(t, err)
	parallel, err := Train(ctx, pipeline, corpus, Options{Workers: 8})
	require.NoError(t, err)

	require.Equal(t, serial.Snapshot(), parallel.Snapshot())

	serialOut, err := serial.BuildTaggedFeatureset(ctx, corpus)
	require.NoError(t, err)
	parallelOut, err := parallel.BuildTaggedFeatureset(ctx, corpus)
	require.NoError(t, err)
	require.Equal(t, serialOut, parallelOut)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Train(ctx, ingest.NewDefaultPipeline(), sanityCorpus(), Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	pipeline := ingest.NewDefaultPipeline()
	fs, err := Train(ctx, pipeline, sanityCorpus(), Options{Algorithm: tfidf.Raw})
	require.NoError(t, err)

	raw, err := json.Marshal(fs.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))

	restored, err := Restore(pipeline, snap, Options{Algorithm: tfidf.Log})
	require.NoError(t, err)
	require.Equal(t, tfidf.Raw, restored.Algorithm())
	require.Equal(t, fs.TrainingSize(), restored.TrainingSize())

	want, err := fs.BuildFeatureset(ctx, sanityCorpus())
	require.NoError(t, err)
	got, err := restored.BuildFeatureset(ctx, sanityCorpus())
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = Restore(pipeline, Snapshot{Algorithm: "nope", IDF: snap.IDF}, Options{})
	require.ErrorIs(t, err, internalerr.ErrInvalidArgument)
}

func TestFeaturize(t *testing.T) {
	fs, err := Train(context.Background(), ingest.NewDefaultPipeline(), sanityCorpus(), Options{})
	require.NoError(t, err)

	features, err := fs.Featurize("The Senate passed new taxes!")
	require.NoError(t, err)
	require.Contains(t, features, "senate")
	require.Contains(t, features, "taxes")
	require.InDelta(t, math.Log(2), features["passed"], 1e-12)

	_, err = fs.Featurize("RT @someone: http://x.co")
	require.ErrorIs(t, err, internalerr.ErrNoFeatures)
}
