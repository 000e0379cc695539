// Package store persists run artifacts as JSON files in an output directory,
// one file per generated page.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pagecraft/backend/internal/domain"
)

// Artifact file names.
const (
	questionsFile  = "questions.json"
	faqFile        = "faq.json"
	comparisonFile = "comparison_page.json"
)

// FileStore is a file-backed PageStore.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// SaveRun writes every artifact of a run: questions.json, faq.json, one
// product_page_N.json per product (1-based), and comparison_page.json when a
// comparison was produced.
func (s *FileStore) SaveRun(ctx context.Context, result *domain.RunResult) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := s.writeJSON(questionsFile, result.Questions); err != nil {
		return err
	}
	if err := s.writeJSON(faqFile, result.FAQ); err != nil {
		return err
	}
	for i, page := range result.ProductPages {
		if err := s.writeJSON(productPageFile(i+1), page); err != nil {
			return err
		}
	}
	if result.Comparison != nil {
		if err := s.writeJSON(comparisonFile, result.Comparison); err != nil {
			return err
		}
	}

	log.Printf("[Store] Saved run artifacts to %s", s.dir)
	return nil
}

// LoadRun reads a previously saved run. Questions, FAQ, and at least one
// product page are required; the comparison page is optional.
func (s *FileStore) LoadRun(ctx context.Context) (*domain.RunResult, error) {
	result := &domain.RunResult{}

	if err := s.readJSON(questionsFile, &result.Questions); err != nil {
		return nil, err
	}
	if err := s.readJSON(faqFile, &result.FAQ); err != nil {
		return nil, err
	}

	for i := 1; ; i++ {
		var page domain.ProductPage
		err := s.readJSON(productPageFile(i), &page)
		if err != nil {
			if i == 1 {
				return nil, err
			}
			break
		}
		result.ProductPages = append(result.ProductPages, &page)
	}

	var comparison domain.ComparisonPage
	if err := s.readJSON(comparisonFile, &comparison); err == nil {
		result.Comparison = &comparison
	}

	return result, nil
}

func productPageFile(n int) string {
	return fmt.Sprintf("product_page_%d.json", n)
}

func (s *FileStore) writeJSON(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) readJSON(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s (run generate first)", domain.ErrPageNotFound, name)
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}
