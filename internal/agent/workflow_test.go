package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/pagecraft/backend/internal/domain"
)

// failingGenerator forces every narrative path down its deterministic fallback.
type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("generator unavailable")
}

func rawProductA() map[string]string {
	return map[string]string{
		"product_id":      "GLOW_001",
		"name":            "GlowBoost Vitamin C Serum",
		"concentration":   "20% Vitamin C",
		"skin_type":       "All skin types",
		"key_ingredients": "Vitamin C, Hyaluronic Acid, Vitamin E",
		"benefits":        "Brightening, Anti-aging, Hydration",
		"how_to_use":      "Apply 2-3 drops to face in the morning",
		"side_effects":    "Mild tingling for first-time users",
		"price":           "₹699",
	}
}

func rawProductB() map[string]string {
	return map[string]string{
		"product_id":      "CLEAR_002",
		"name":            "ClearSkin Niacinamide Serum",
		"concentration":   "10% Niacinamide",
		"skin_type":       "Oily, Acne-prone",
		"key_ingredients": "Niacinamide, Zinc PCA",
		"benefits":        "Oil control, Pore minimizing",
		"how_to_use":      "Apply morning and evening",
		"side_effects":    "None reported",
		"price":           "₹799",
	}
}

func TestWorkflowRun(t *testing.T) {
	ctx := context.Background()

	t.Run("produces every artifact for two products", func(t *testing.T) {
		w := NewWorkflow(BuildRegistry(failingGenerator{}, 5))

		result, err := w.Run(ctx, []map[string]string{rawProductA(), rawProductB()})
		if err != nil {
			t.Fatal(err)
		}

		if len(result.Products) != 2 {
			t.Fatalf("parsed %d products, want 2", len(result.Products))
		}
		if len(result.Questions) < 15 {
			t.Errorf("question bank has %d entries, want at least 15", len(result.Questions))
		}
		if result.FAQ == nil || result.FAQ.TotalQuestions != 5 {
			t.Fatalf("FAQ = %+v, want 5 questions", result.FAQ)
		}
		seen := make(map[domain.QuestionCategory]bool)
		for _, a := range result.FAQ.Questions {
			if seen[a.Category] {
				t.Errorf("FAQ repeats category %q", a.Category)
			}
			seen[a.Category] = true
			if a.Text == "" {
				t.Errorf("FAQ answer for %q is empty", a.Question)
			}
		}
		if len(result.ProductPages) != 2 {
			t.Fatalf("built %d product pages, want 2", len(result.ProductPages))
		}
		for _, page := range result.ProductPages {
			if page.Description == "" {
				t.Errorf("page %q has empty description", page.Title)
			}
		}
		if result.Comparison == nil {
			t.Fatal("Comparison is nil for a two-product run")
		}
		if result.Comparison.DetailedComparison.Cheaper != "GlowBoost Vitamin C Serum" {
			t.Errorf("Cheaper = %q", result.Comparison.DetailedComparison.Cheaper)
		}
	})

	t.Run("skips the comparison for a single product", func(t *testing.T) {
		w := NewWorkflow(BuildRegistry(failingGenerator{}, 5))

		result, err := w.Run(ctx, []map[string]string{rawProductA()})
		if err != nil {
			t.Fatal(err)
		}
		if result.Comparison != nil {
			t.Error("Comparison is set for a single-product run")
		}
		if len(result.ProductPages) != 1 {
			t.Errorf("built %d product pages, want 1", len(result.ProductPages))
		}
	})

	t.Run("compares only the first two of many products", func(t *testing.T) {
		w := NewWorkflow(BuildRegistry(failingGenerator{}, 5))
		third := rawProductA()
		third["product_id"] = "GLOW_003"
		third["name"] = "GlowBoost Retinol Serum"

		result, err := w.Run(ctx, []map[string]string{rawProductA(), rawProductB(), third})
		if err != nil {
			t.Fatal(err)
		}
		if len(result.ProductPages) != 3 {
			t.Errorf("built %d product pages, want 3", len(result.ProductPages))
		}
		if result.Comparison == nil {
			t.Fatal("Comparison is nil")
		}
		if result.Comparison.ProductB.Name != "ClearSkin Niacinamide Serum" {
			t.Errorf("compared against %q, want the second product", result.Comparison.ProductB.Name)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		w := NewWorkflow(BuildRegistry(failingGenerator{}, 5))
		_, err := w.Run(ctx, nil)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("aborts on an invalid record", func(t *testing.T) {
		w := NewWorkflow(BuildRegistry(failingGenerator{}, 5))
		bad := rawProductA()
		delete(bad, "price")

		_, err := w.Run(ctx, []map[string]string{bad})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
	})

	t.Run("fails fast on an empty registry", func(t *testing.T) {
		w := NewWorkflow(NewRegistry())
		_, err := w.Run(ctx, []map[string]string{rawProductA()})
		if !errors.Is(err, domain.ErrCapabilityNotFound) {
			t.Errorf("error = %v, want ErrCapabilityNotFound", err)
		}
	})
}

func TestAgentInputValidation(t *testing.T) {
	ctx := context.Background()
	r := BuildRegistry(failingGenerator{}, 5)

	tests := []struct {
		capability string
		input      any
	}{
		{CapParseProduct, 42},
		{CapGenerateQuestion, "not a product"},
		{CapGenerateFAQ, &domain.ProductRecord{}},
		{CapGenerateProduct, map[string]string{}},
		{CapCompareProducts, &domain.ProductRecord{}},
	}
	for _, tt := range tests {
		a, err := r.Resolve(tt.capability)
		if err != nil {
			t.Fatalf("resolve %q: %v", tt.capability, err)
		}
		if _, err := a.Process(ctx, tt.input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: error = %v, want ErrInvalidInput", tt.capability, err)
		}
	}
}
