// Package tweets loads tweet corpora from JSON and JSONL files.
package tweets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/coshx/tweet-politics/pkg/politics/ingest"
)

// Load reads a tweet corpus, picking the format from the file contents: a
// JSON array or one JSON object per line.
func Load(path string) ([]ingest.Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return parseJSON(path, data)
	}
	return parseJSONL(path, data)
}

// LoadJSON loads tweets from a JSON array file, the format written by the
// labeling tool.
func LoadJSON(path string) ([]ingest.Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return parseJSON(path, data)
}

// LoadJSONL loads tweets from a JSONL file with proper error handling
func LoadJSONL(path string) ([]ingest.Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return parseJSONL(path, data)
}

func parseJSON(path string, data []byte) ([]ingest.Tweet, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var items []ingest.Tweet
	for i, msg := range raw {
		tw, err := decodeTweet(msg)
		if err != nil {
			log.Printf("Warning: skipping tweet %d in %s: %v", i, path, err)
			continue
		}
		items = append(items, tw)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid tweets found in %s", path)
	}
	return items, nil
}

func parseJSONL(path string, data []byte) ([]ingest.Tweet, error) {
	var items []ingest.Tweet
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tw, err := decodeTweet([]byte(line))
		if err != nil {
			log.Printf("Warning: skipping malformed tweet at line %d in %s: %v", i+1, path, err)
			continue
		}
		items = append(items, tw)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid tweets found in %s", path)
	}
	return items, nil
}

// decodeTweet also marks API-style retweets, which carry the original tweet
// under retweeted_status.
func decodeTweet(data []byte) (ingest.Tweet, error) {
	var raw struct {
		ingest.Tweet
		RetweetedStatus json.RawMessage `json:"retweeted_status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ingest.Tweet{}, err
	}
	tw := raw.Tweet
	if len(raw.RetweetedStatus) > 0 && string(raw.RetweetedStatus) != "null" {
		tw.Retweet = true
	}
	tw.Text = html.UnescapeString(tw.Text)
	if err := tw.Validate(); err != nil {
		return ingest.Tweet{}, err
	}
	return tw, nil
}

// Records is a JSON array of tweet objects edited in place. Fields other
// than the label are written back untouched.
type Records struct {
	path  string
	items []map[string]json.RawMessage
}

// OpenRecords reads a JSON array file for labeling.
func OpenRecords(path string) (*Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Records{path: path, items: items}, nil
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.items)
}

// Tweet decodes record i.
func (r *Records) Tweet(i int) (ingest.Tweet, error) {
	data, err := json.Marshal(r.items[i])
	if err != nil {
		return ingest.Tweet{}, err
	}
	return decodeTweet(data)
}

// SetLabel sets the political field of record i.
func (r *Records) SetLabel(i int, political bool) {
	if political {
		r.items[i]["political"] = json.RawMessage("true")
	} else {
		r.items[i]["political"] = json.RawMessage("false")
	}
}

// Save writes the records back to their file, replacing it atomically.
func (r *Records) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.items); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".tweets-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
