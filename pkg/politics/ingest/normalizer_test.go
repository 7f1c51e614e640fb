package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coshx/tweet-politics/pkg/politics/lexicon"
)

func TestNormalizerSteps(t *testing.T) {
	n := NewNormalizer(lexicon.English())

	require.Equal(t, []string{
		"retweets", "punctuation", "possessives", "contractions", "hashtags",
		"lowercase", "usernames", "emails", "links", "ascii", "whitespace",
	}, n.Steps())
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(lexicon.English())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "retweet mention and link", input: "RT @someone: check http://x.co", want: "check"},
		{name: "only noise", input: "RT @someone: http://x.co", want: ""},
		{name: "retweet marker inside text", input: "this is RT worthy", want: "this is worthy"},
		{name: "repeated retweet markers", input: "RT RT senate vote", want: "senate vote"},
		{name: "retweet markers back to back mid text", input: "so RT RT RT true", want: "so true"},
		{name: "rt inside a word is kept", input: "ARTS and PARTS", want: "arts and parts"},
		{name: "punctuation", input: "Hello, world! (really?)", want: "hello world really"},
		{name: "sentence dots dropped", input: "End of story. Next", want: "end of story next"},
		{name: "inner dots kept", input: "the u.s. senate", want: "the u.s senate"},
		{name: "possessive", input: "Obama's speech", want: "obama speech"},
		{name: "text contraction", input: "We don't know", want: "we do not know"},
		{name: "capitalized contraction left for tokens", input: "Don't stop", want: "don't stop"},
		{name: "hashtag", input: "I love #TeamJacob forever", want: "i love team jacob forever"},
		{name: "hashtag acronym", input: "#USAToday reports", want: "usa today reports"},
		{name: "mention", input: "thanks @bob_smith for voting", want: "thanks for voting"},
		{name: "email", input: "mail bob@house.gov today", want: "mail today"},
		{name: "https link", input: "read https://t.co/AbC123 now", want: "read now"},
		{name: "ftp link", input: "get ftp://files.gov/budget", want: "get"},
		{name: "scheme inside a word is kept", input: "giftpack for leftpanel voters", want: "giftpack for leftpanel voters"},
		{name: "link at start", input: "http://x.co/a senate", want: "senate"},
		{name: "non ascii", input: "café ☕ time", want: "caf time"},
		{name: "whitespace", input: "  lots\t\tof   space  ", want: "lots of space"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestExpandHashtagsPadsAndSplits(t *testing.T) {
	require.Equal(t, " team jacob ", expandHashtags("#TeamJacob"))
	require.Equal(t, "go team jacob ", expandHashtags("go #TeamJacob"))
	require.Equal(t, "a ", expandHashtags("a #"))
	require.Equal(t, "mid#word", expandHashtags("mid#word"))
}

func TestNormalizeHashtagSubstring(t *testing.T) {
	n := NewNormalizer(nil)

	out := n.Normalize("Vote #TeamJacob now")
	require.Contains(t, " "+out+" ", " team jacob ")
}

func TestNormalizeWithoutContractions(t *testing.T) {
	n := NewNormalizer(nil)

	require.Equal(t, "we don't know", n.Normalize("We don't know"))
}

func TestNormalizeOutputShape(t *testing.T) {
	n := NewNormalizer(lexicon.English())

	inputs := []string{
		"RT @POTUS: The Senate's vote   is TODAY!!! https://t.co/xyz #VoteNow",
		"Ünïcödé   text\n\nwith\tbreaks",
		"  @a @b @c  ",
		"Email me: jane.doe@example.com or visit http://example.com/path?q=1",
		"Can't stop won't stop #NeverGiveUp 🇺🇸",
	}

	for _, input := range inputs {
		out := n.Normalize(input)

		require.Equal(t, strings.ToLower(out), out, "output is lowercase: %q", input)
		require.Equal(t, normalizeWhitespace(out), out, "whitespace already collapsed: %q", input)
		require.Equal(t, strings.TrimSpace(out), out)
		for _, r := range out {
			require.LessOrEqual(t, r, rune(127), "non-ascii rune in %q", out)
		}

		again := n.Normalize(out)
		require.Equal(t, strings.ToLower(again), again)
		require.Equal(t, normalizeWhitespace(again), again)
	}
}
