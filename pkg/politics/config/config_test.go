package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/tfidf"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "BOOL", cfg.Algorithm)
	require.Equal(t, 3, cfg.MinTokenLength)
	require.Equal(t, "politics.db", cfg.Database)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "politics.yaml", `
stoplist: stop.yaml
algorithm: log
workers: 4
min_token_length: 4
pos_filter: true
database: /tmp/tweets.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "LOG", cfg.Algorithm)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 4, cfg.MinTokenLength)
	require.True(t, cfg.POSFilter)
	require.False(t, cfg.Stem)
	require.Equal(t, "stop.yaml", cfg.Stoplist)
	require.Equal(t, "/tmp/tweets.db", cfg.Database)

	opts, err := cfg.FeaturesetOptions()
	require.NoError(t, err)
	require.Equal(t, tfidf.Log, opts.Algorithm)
	require.Equal(t, 4, opts.Workers)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "politics.yaml", "workers: 4\nalgorithm: RAW\n")
	t.Setenv("POLITICS_WORKERS", "8")
	t.Setenv("POLITICS_STEM", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
	require.True(t, cfg.Stem)
	require.Equal(t, "RAW", cfg.Algorithm)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, content := range map[string]string{
		"algorithm":  "algorithm: sqrt\n",
		"workers":    "workers: -1\n",
		"min length": "min_token_length: 0\n",
		"database":   "database: \"\"\n",
		"yaml":       "workers: [1, 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "politics.yaml", content))
			require.ErrorIs(t, err, internalerr.ErrInvalidConfig)
		})
	}

	t.Run("env", func(t *testing.T) {
		t.Setenv("POLITICS_WORKERS", "many")
		_, err := Load("")
		require.ErrorIs(t, err, internalerr.ErrInvalidConfig)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigLoader(t *testing.T) {
	cfg := Default()
	cfg.Stoplist = "stop.yaml"
	cfg.Stem = true

	l := cfg.Loader()
	require.Equal(t, "stop.yaml", l.StoplistPath)
	require.True(t, l.Stem)
	require.Equal(t, 3, l.MinTokenLength)
}
