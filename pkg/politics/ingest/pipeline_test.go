package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coshx/tweet-politics/pkg/politics/stoplist"
)

func TestPipelineProcess(t *testing.T) {
	p := NewDefaultPipeline()

	doc, err := p.Process("RT @someone: Congress passed the tax bill! http://t.co/x #Senate2024")
	require.NoError(t, err)
	require.Equal(t, "congress passed the tax bill senate2024", doc.Text)
	require.Equal(t, []string{"congress", "passed", "tax", "bill", "senate2024"}, doc.Tokens)
	require.False(t, doc.Empty())
}

func TestPipelineDropsNoise(t *testing.T) {
	p := NewDefaultPipeline()

	doc, err := p.Process("RT @someone: http://x.co")
	require.NoError(t, err)
	require.True(t, doc.Empty())

	doc, err = p.Process("I don't know what to do")
	require.NoError(t, err)
	require.Equal(t, []string{"know"}, doc.Tokens)
}

func TestPipelineTokenContractions(t *testing.T) {
	p := NewDefaultPipeline()

	// capitalized contractions escape the text step and are expanded per token
	doc, err := p.Process("Don't vote")
	require.NoError(t, err)
	require.Equal(t, "don't vote", doc.Text)
	require.Equal(t, []string{"vote"}, doc.Tokens)
}

func TestPipelineNeverEmitsStopwordsOrShortTokens(t *testing.T) {
	p := NewDefaultPipeline()
	stops := stoplist.English()

	inputs := []string{
		"The President's speech on taxes was, frankly, too long!!",
		"We're not gonna take it #NoMoreTaxes @gop",
		"it's a dog's life :) http://pics.example.com/dog.jpg",
		"Y'all should've voted. I'd've voted twice if I could've",
		"a an the of to in on at by",
	}
	for _, input := range inputs {
		doc, err := p.Process(input)
		require.NoError(t, err)
		for _, tok := range doc.Tokens {
			require.Greater(t, len(tok), 2, "short token %q from %q", tok, input)
			require.False(t, stops.IsStop(tok), "stopword %q from %q", tok, input)
		}
	}
}

func TestPipelineStemsPassStopwordAndLengthFilters(t *testing.T) {
	p := NewDefaultPipeline(WithStemmer(NewSnowballStemmer()))
	stops := stoplist.English()

	doc, err := p.Process("Ads and ups and outs of the ins and ones")
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, doc.Tokens)

	doc, err = p.Process("Senators were voting on the taxes")
	require.NoError(t, err)
	require.NotEmpty(t, doc.Tokens)
	for _, tok := range doc.Tokens {
		require.Greater(t, len(tok), 2, "short stem %q", tok)
		require.False(t, stops.IsStop(tok), "stopword stem %q", tok)
	}
}
