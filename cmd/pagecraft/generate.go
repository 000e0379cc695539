package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagecraft/backend/config"
	"github.com/pagecraft/backend/internal/agent"
	"github.com/pagecraft/backend/internal/infrastructure/ollama"
	"github.com/pagecraft/backend/internal/infrastructure/store"
)

// inputFile is the expected input shape: either a product collection or a
// single top-level record.
type inputFile struct {
	Products []map[string]string `json:"products"`
}

var generateCmd = &cobra.Command{
	Use:   "generate [input-file]",
	Short: "Run the content pipeline over a product input file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		path := "data/products.json"
		if len(args) == 1 {
			path = args[0]
		}

		records, err := loadRecords(path)
		if err != nil {
			return err
		}
		log.Printf("[Generate] Loaded %d product record(s) from %s", len(records), path)

		generator := ollama.NewClient(ollama.Config{
			BaseURL:     cfg.Ollama.BaseURL,
			Model:       cfg.Ollama.Model,
			Timeout:     cfg.Ollama.Timeout,
			MaxTokens:   cfg.Ollama.MaxTokens,
			Temperature: cfg.Ollama.Temperature,
		})
		if cfg.Server.Environment == "development" {
			generator.SetDebug(true)
		}

		registry := agent.BuildRegistry(generator, cfg.Generation.FAQSize)
		workflow := agent.NewWorkflow(registry)

		result, err := workflow.Run(cmd.Context(), records)
		if err != nil {
			return fmt.Errorf("pipeline failed: %w", err)
		}

		fileStore := store.NewFileStore(cfg.Output.Dir)
		if err := fileStore.SaveRun(cmd.Context(), result); err != nil {
			return fmt.Errorf("failed to save run artifacts: %w", err)
		}

		log.Printf("[Generate] Done: %d questions, %d FAQ answers, %d product page(s), comparison: %v",
			len(result.Questions), result.FAQ.TotalQuestions,
			len(result.ProductPages), result.Comparison != nil)
		return nil
	},
}

// loadRecords reads the input JSON, accepting both {"products": [...]} and a
// single bare record.
func loadRecords(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var in inputFile
	if err := json.Unmarshal(data, &in); err == nil && len(in.Products) > 0 {
		return in.Products, nil
	}

	var single map[string]string
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return []map[string]string{single}, nil
}
