package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/coshx/tweet-politics/pkg/politics"
	"github.com/coshx/tweet-politics/pkg/politics/config"
	"github.com/coshx/tweet-politics/pkg/politics/internalerr"
	"github.com/coshx/tweet-politics/pkg/politics/store"
	"github.com/coshx/tweet-politics/pkg/politics/store/memstore"
	"github.com/coshx/tweet-politics/pkg/politics/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config YAML file (optional)")
		dbPath     = flag.String("db", "", "Database path (overrides config)")
		modelPath  = flag.String("model", "", "Model snapshot file; skips the database")
		text       = flag.String("text", "", "Text to classify; reads stdin lines when empty")
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

	ctx := context.Background()

	var st store.Store
	if *modelPath != "" {
		st = memstore.New()
	} else {
		st, err = sqlite.OpenSQLite(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
	}

	engine := politics.New(politics.Options{Store: st, Pipeline: components.Pipeline})
	defer engine.Close()

	if *modelPath != "" {
		data, err := os.ReadFile(*modelPath)
		if err != nil {
			log.Fatal("Failed to read model:", err)
		}
		var snap politics.ModelSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			log.Fatal("Failed to decode model:", err)
		}
		if err := engine.ImportModel(ctx, snap); err != nil {
			log.Fatal("Failed to load model:", err)
		}
	}

	if *text != "" {
		classify(ctx, engine, *text)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		classify(ctx, engine, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("Failed to read stdin:", err)
	}
}

func classify(ctx context.Context, engine *politics.Engine, text string) {
	verdict, err := engine.Classify(ctx, text)
	if errors.Is(err, internalerr.ErrNoFeatures) {
		fmt.Printf("unknown\t-\t%s\n", text)
		return
	}
	if err != nil {
		log.Fatal("Classification failed:", err)
	}

	label := "other"
	if verdict.Political {
		label = "political"
	}
	fmt.Printf("%s\t%.3f\t%s\n", label, verdict.Probability, text)
}
