package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/coshx/tweet-politics/pkg/politics/featureset"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/tfidf"
)

// EnvPrefix prefixes every environment override, e.g. POLITICS_WORKERS.
const EnvPrefix = "POLITICS"

var validate = validator.New()

// Config is the application configuration
type Config struct {
	Stoplist       string `yaml:"stoplist" envconfig:"STOPLIST"`
	Contractions   string `yaml:"contractions" envconfig:"CONTRACTIONS"`
	// Algorithm picks the term frequency weighting of exported feature
	// maps. The classifier only looks at which features are present, so
	// verdicts do not depend on it.
	Algorithm      string `yaml:"algorithm" envconfig:"ALGORITHM" validate:"oneof=RAW BOOL LOG"`
	Workers        int    `yaml:"workers" envconfig:"WORKERS" validate:"gte=0"`
	MinTokenLength int    `yaml:"min_token_length" envconfig:"MIN_TOKEN_LENGTH" validate:"gte=1"`
	POSFilter      bool   `yaml:"pos_filter" envconfig:"POS_FILTER"`
	Stem           bool   `yaml:"stem" envconfig:"STEM"`
	Database       string `yaml:"database" envconfig:"DATABASE" validate:"required"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Algorithm:      string(tfidf.Bool),
		MinTokenLength: 3,
		Database:       "politics.db",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// POLITICS_* environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes the algorithm name and checks every field
func (c *Config) Validate() error {
	c.Algorithm = strings.ToUpper(strings.TrimSpace(c.Algorithm))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

// FeaturesetOptions converts the config to featureset options
func (c Config) FeaturesetOptions() (featureset.Options, error) {
	alg, err := tfidf.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return featureset.Options{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return featureset.Options{Algorithm: alg, Workers: c.Workers}, nil
}

// Loader returns a Loader for the lexicon paths and pipeline switches
func (c Config) Loader() Loader {
	return Loader{
		StoplistPath:     c.Stoplist,
		ContractionsPath: c.Contractions,
		POSFilter:        c.POSFilter,
		Stem:             c.Stem,
		MinTokenLength:   c.MinTokenLength,
	}
}
