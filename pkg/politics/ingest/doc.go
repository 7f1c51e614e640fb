package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// TweetID is an opaque tweet identifier. It decodes from either a JSON number
// or a JSON string and encodes numeric IDs back as numbers.
type TweetID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *TweetID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("tweet id: %w", err)
		}
		*id = TweetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("tweet id: %w", err)
	}
	*id = TweetID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler.
func (id TweetID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Tweet is a document fed to the featureset builder. Retweets are stored but
// left out of training.
type Tweet struct {
	ID        TweetID `json:"id"`
	Text      string  `json:"text" validate:"required"`
	Political *bool   `json:"political,omitempty"`
	Retweet   bool    `json:"retweet,omitempty"`
}

// Labeled reports whether the tweet carries a manual label.
func (t Tweet) Labeled() bool {
	return t.Political != nil
}

// Validate checks that the tweet has the fields the pipeline needs.
func (t Tweet) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: tweet %q: %v", internalerr.ErrInvalidInput, t.ID, err)
	}
	return nil
}

// Bool returns a pointer to b, for building labeled tweets.
func Bool(b bool) *bool {
	return &b
}
