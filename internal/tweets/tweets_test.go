package tweets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "tweets.json", `[
  {"id": 541234567890123456, "text": "Tax &amp; spend", "political": true},
  {"id": "abc", "text": "puppy pics"},
  {"id": 3},
  {"id": 4, "text": "weekend", "political": false, "lang": "en"}
]`)

	got, err := LoadJSON(path)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, ingest.TweetID("541234567890123456"), got[0].ID)
	require.Equal(t, "Tax & spend", got[0].Text)
	require.True(t, *got[0].Political)

	require.Equal(t, ingest.TweetID("abc"), got[1].ID)
	require.Nil(t, got[1].Political)

	require.False(t, *got[2].Political)
}

func TestLoadJSONL(t *testing.T) {
	path := writeFile(t, "tweets.jsonl", `{"id": 1, "text": "senate vote"}
not json

{"id": 2, "text": "pizza", "political": false}
`)

	got, err := LoadJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, ingest.TweetID("1"), got[0].ID)
	require.Equal(t, "pizza", got[1].Text)
}

func TestLoadDetectsFormat(t *testing.T) {
	array := writeFile(t, "a.json", ` [{"id": 1, "text": "senate"}]`)
	lines := writeFile(t, "b.json", `{"id": 1, "text": "senate"}`+"\n"+`{"id": 2, "text": "vote"}`)

	got, err := Load(array)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = Load(lines)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestLoadMarksRetweets(t *testing.T) {
	path := writeFile(t, "tweets.jsonl", `{"id": 1, "text": "RT @gop: senate vote", "retweeted_status": {"id": 9}}
{"id": 2, "text": "senate vote", "retweeted_status": null}
{"id": 3, "text": "budget talks", "retweet": true}
{"id": 4, "text": "pizza"}
`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.True(t, got[0].Retweet)
	require.False(t, got[1].Retweet)
	require.True(t, got[2].Retweet)
	require.False(t, got[3].Retweet)
	require.Equal(t, "RT @gop: senate vote", got[0].Text)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadJSON(writeFile(t, "empty.json", `[{"id": 1}]`))
	require.Error(t, err)

	_, err = LoadJSON(writeFile(t, "broken.json", `[{"id": 1,`))
	require.Error(t, err)

	_, err = LoadJSONL(writeFile(t, "empty.jsonl", "\n\n"))
	require.Error(t, err)
}

func TestRecordsLabelAndSave(t *testing.T) {
	path := writeFile(t, "tweets.json", `[
  {"id": 541234567890123456, "text": "Congress &amp; taxes", "user": {"name": "x"}},
  {"id": 2, "text": "pizza", "political": true}
]`)

	recs, err := OpenRecords(path)
	require.NoError(t, err)
	require.Equal(t, 2, recs.Len())

	tw, err := recs.Tweet(0)
	require.NoError(t, err)
	require.Equal(t, ingest.TweetID("541234567890123456"), tw.ID)
	require.Equal(t, "Congress & taxes", tw.Text)
	require.False(t, tw.Labeled())

	recs.SetLabel(0, true)
	recs.SetLabel(1, false)
	require.NoError(t, recs.Save())

	var saved []map[string]json.RawMessage
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Len(t, saved, 2)
	require.JSONEq(t, `{"name": "x"}`, string(saved[0]["user"]))
	require.Equal(t, "541234567890123456", string(saved[0]["id"]))
	require.Equal(t, "true", string(saved[0]["political"]))
	require.Equal(t, "false", string(saved[1]["political"]))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	require.True(t, *loaded[0].Political)
	require.False(t, *loaded[1].Political)
}
