package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/coshx/tweet-politics/internal/tweets"
	"github.com/coshx/tweet-politics/pkg/politics"
	"github.com/coshx/tweet-politics/pkg/politics/config"
	"github.com/coshx/tweet-politics/pkg/politics/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config YAML file (optional)")
		dbPath     = flag.String("db", "", "Database path (overrides config)")
		inputPath  = flag.String("input", "", "Labeled tweet corpus, JSON array or JSONL (optional)")
		outPath    = flag.String("out", "", "Write the trained model snapshot to this file (optional)")
		top        = flag.Int("top", 10, "Number of most informative features to print")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}

	loader := cfg.Loader()
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load lexicons:", err)
	}
	fsOpts, err := cfg.FeaturesetOptions()
	if err != nil {
		log.Fatal("Invalid featureset options:", err)
	}

	ctx := context.Background()

	store, err := sqlite.OpenSQLite(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	engine := politics.New(politics.Options{
		Store:      store,
		Pipeline:   components.Pipeline,
		Featureset: fsOpts,
	})
	defer engine.Close()

	if *inputPath != "" {
		items, err := tweets.Load(*inputPath)
		if err != nil {
			log.Fatal("Failed to load tweets:", err)
		}
		n, err := engine.Import(ctx, items)
		if err != nil {
			log.Fatalf("Failed to import tweets (%d stored): %v", n, err)
		}
		log.Printf("Imported %d tweets from %s", n, *inputPath)
	}

	result, err := engine.Train(ctx)
	if err != nil {
		log.Fatal("Training failed:", err)
	}
	log.Printf("Trained model %s on %d tweets (%d dropped as empty, %d retweets skipped), vocabulary %d, algorithm %s",
		result.ModelID, result.Documents, result.Dropped, result.Retweets, result.Vocabulary, fsOpts.Algorithm)

	features, err := engine.MostInformativeFeatures(ctx, *top)
	if err != nil {
		log.Fatal("Failed to read model:", err)
	}
	fmt.Println("Most informative features")
	for _, f := range features {
		label := "other"
		if f.Political {
			label = "political"
		}
		fmt.Printf("%20s  %-9s  %6.1f : 1.0\n", f.Feature, label, f.Ratio)
	}

	if *outPath != "" {
		snap, err := engine.ExportModel(ctx)
		if err != nil {
			log.Fatal("Failed to export model:", err)
		}
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			log.Fatal("Failed to encode model:", err)
		}
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			log.Fatal("Failed to write model:", err)
		}
		log.Printf("Wrote model snapshot to %s", *outPath)
	}
}
