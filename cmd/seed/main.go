// Command seed writes the built-in sample dataset as JSON, producing an
// editable starting point for SEED_FILE.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"finboard/internal/logger"
	"finboard/internal/store"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	output := fs.String("o", "", "write to this file instead of stdout")
	empty := fs.Bool("empty", false, "write an empty seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed := store.SampleSeed()
	if *empty {
		seed = store.Seed{}
	}
	if err := seed.Validate(); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}

	w := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *output, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(seed); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}

	if *output != "" {
		logger.Get().Infof("Wrote seed to %s", *output)
	}
	return nil
}
