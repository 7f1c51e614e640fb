package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/coshx/tweet-politics/pkg/politics/lexicon"
)

// punctuation is ASCII punctuation minus the characters later steps match on:
// apostrophes (possessives, contractions), '#' (hashtags) and '@' (mentions,
// emails). '.' is handled separately in removePunctuation.
const punctuation = "!\"$%&()*+,-/:;<=>?[\\]^_`{|}~"

var (
	retweetPattern    = regexp.MustCompile(`(?:^|\s+)RT(?:\s+|$)`)
	possessivePattern = regexp.MustCompile(`'s(\s|$)`)
	hashtagPattern    = regexp.MustCompile(`(?:^|\s)#\S*`)
	mentionPattern    = regexp.MustCompile(`(?:^|\s+)@\S+`)
	emailPattern      = regexp.MustCompile(`[^@\s]+@[^@\s]+\.[^@\s]+`)
	linkPattern       = regexp.MustCompile(`(?:^|\s)(?:https|http|ftp)\S+`)
	whitespacePattern = regexp.MustCompile(`\s{2,}`)

	camelBoundary   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// step is a single named text rewrite.
type step struct {
	name  string
	apply func(string) string
}

// Normalizer cleans raw tweet text before tokenization by folding an ordered
// list of rewrites over the input.
//
// Order:
//
//	retweets -> punctuation -> possessives -> contractions -> hashtags ->
//	lowercase -> usernames -> emails -> links -> ascii -> whitespace
//
// Hashtags are expanded before lowercasing so camel-case boundaries are still
// visible; the expansion lowercases its own output.
type Normalizer struct {
	steps []step
}

// NewNormalizer builds a normalizer. A nil contraction table disables text
// level contraction expansion.
func NewNormalizer(contractions *lexicon.Contractions) *Normalizer {
	if contractions == nil {
		contractions = lexicon.New(nil)
	}
	return &Normalizer{
		steps: []step{
			{name: "retweets", apply: removeRetweets},
			{name: "punctuation", apply: removePunctuation},
			{name: "possessives", apply: removePossessives},
			{name: "contractions", apply: contractions.ExpandText},
			{name: "hashtags", apply: expandHashtags},
			{name: "lowercase", apply: strings.ToLower},
			{name: "usernames", apply: removeUsernames},
			{name: "emails", apply: removeEmails},
			{name: "links", apply: removeLinks},
			{name: "ascii", apply: toASCII},
			{name: "whitespace", apply: normalizeWhitespace},
		},
	}
}

// Normalize applies every step in order, each on the previous step's output.
// The result may be empty.
func (n *Normalizer) Normalize(text string) string {
	for _, s := range n.steps {
		text = s.apply(text)
	}
	return text
}

// Steps returns the step names in the order they are applied.
func (n *Normalizer) Steps() []string {
	names := make([]string, len(n.steps))
	for i, s := range n.steps {
		names[i] = s.name
	}
	return names
}

// removeRetweets repeats until no marker is left, since one match consumes
// the whitespace a following "RT" needs.
func removeRetweets(text string) string {
	for {
		out := retweetPattern.ReplaceAllString(text, " ")
		if out == text {
			return out
		}
		text = out
	}
}

// removePunctuation strips punctuation. A '.' survives only between two
// letters or digits, which keeps domains intact for the email and link steps.
func removePunctuation(text string) string {
	rs := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range rs {
		if r == '.' {
			if i > 0 && i < len(rs)-1 && isWordRune(rs[i-1]) && isWordRune(rs[i+1]) {
				b.WriteRune(r)
			}
			continue
		}
		if strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func removePossessives(text string) string {
	return possessivePattern.ReplaceAllString(text, "$1")
}

// expandHashtags turns "#TeamJacob" into " team jacob ".
func expandHashtags(text string) string {
	return hashtagPattern.ReplaceAllStringFunc(text, func(match string) string {
		tag := strings.TrimLeft(strings.TrimSpace(match), "#")
		if tag == "" {
			return " "
		}
		return " " + strings.ToLower(splitCamelCase(tag)) + " "
	})
}

func splitCamelCase(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "$1 $2")
	return camelBoundary.ReplaceAllString(s, "$1 $2")
}

func removeUsernames(text string) string {
	return mentionPattern.ReplaceAllString(text, " ")
}

func removeEmails(text string) string {
	return emailPattern.ReplaceAllString(text, " ")
}

func removeLinks(text string) string {
	return linkPattern.ReplaceAllString(text, " ")
}

func toASCII(text string) string {
	// runes.Remove cannot fail on string input
	out, _, _ := transform.String(runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})), text)
	return out
}

func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
