package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoaderAllEmpty(t *testing.T) {
	loader := Loader{}

	comp, err := loader.Load()
	require.NoError(t, err)
	require.NotNil(t, comp.Pipeline)
	require.True(t, comp.Stoplist.IsStop("the"))
	require.Greater(t, comp.Contractions.Len(), 100)

	doc, err := comp.Pipeline.Process("I don't know what to do")
	require.NoError(t, err)
	require.Equal(t, []string{"know"}, doc.Tokens)
}

func TestLoaderCustomFiles(t *testing.T) {
	loader := Loader{
		StoplistPath:     writeFile(t, "stoplist.yaml", "terms: [senate, vote]\n"),
		ContractionsPath: writeFile(t, "contractions.yaml", "contractions:\n  - contracted: \"gov't\"\n    expanded: government\n"),
		MinTokenLength:   4,
	}

	comp, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 2, comp.Stoplist.Len())
	require.Equal(t, 1, comp.Contractions.Len())

	doc, err := comp.Pipeline.Process("The senate and gov't vote on taxes")
	require.NoError(t, err)
	require.Equal(t, []string{"government", "taxes"}, doc.Tokens)
}

func TestLoaderNonExistentStoplist(t *testing.T) {
	loader := Loader{StoplistPath: "/nonexistent/stoplist.yaml"}

	_, err := loader.Load()
	require.Error(t, err)
}

func TestLoaderNonExistentContractions(t *testing.T) {
	loader := Loader{ContractionsPath: "/nonexistent/contractions.yaml"}

	_, err := loader.Load()
	require.Error(t, err)
}

func TestLoaderStemming(t *testing.T) {
	loader := Loader{Stem: true}

	comp, err := loader.Load()
	require.NoError(t, err)

	doc, err := comp.Pipeline.Process("senators voting")
	require.NoError(t, err)
	require.Equal(t, []string{"senat", "vote"}, doc.Tokens)
}
