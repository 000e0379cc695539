package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/pagecraft/backend/internal/domain"
)

func TestBuildProductPage(t *testing.T) {
	ctx := context.Background()
	product := testProductA()

	t.Run("assembles the page from the record", func(t *testing.T) {
		s := NewProductPageService(&stubGenerator{failing: true})
		page := s.BuildPage(ctx, product)

		if page.PageType != domain.PageTypeProduct {
			t.Errorf("PageType = %q", page.PageType)
		}
		if page.Title != product.Name {
			t.Errorf("Title = %q", page.Title)
		}
		if page.ProductID != product.ID {
			t.Errorf("ProductID = %q", page.ProductID)
		}
		if page.Tagline != "Experience the Power of 20% Vitamin C" {
			t.Errorf("Tagline = %q", page.Tagline)
		}
		if page.Specifications["price"] != "₹699" {
			t.Errorf("Specifications[price] = %q", page.Specifications["price"])
		}
		if len(page.UsageGuide) != 4 {
			t.Errorf("UsageGuide has %d steps, want 4", len(page.UsageGuide))
		}
		if len(page.TargetAudience) != 3 {
			t.Errorf("TargetAudience has %d entries, want 3", len(page.TargetAudience))
		}
		if !page.SafetyInfo.PatchTestRecommended {
			t.Error("PatchTestRecommended = false")
		}
		if page.SafetyInfo.SideEffects != product.SideEffects {
			t.Errorf("SafetyInfo.SideEffects = %q", page.SafetyInfo.SideEffects)
		}
		if page.GeneratedAt == "" {
			t.Error("GeneratedAt is empty")
		}
	})

	t.Run("uses the generated description when available", func(t *testing.T) {
		s := NewProductPageService(&stubGenerator{response: "A radiant glow in a bottle.\n"})
		page := s.BuildPage(ctx, product)
		if page.Description != "A radiant glow in a bottle." {
			t.Errorf("Description = %q", page.Description)
		}
	})

	t.Run("falls back to the template description", func(t *testing.T) {
		s := NewProductPageService(&stubGenerator{failing: true})
		page := s.BuildPage(ctx, product)
		if !strings.Contains(page.Description, product.Name) {
			t.Errorf("fallback description %q does not name the product", page.Description)
		}
		if len(strings.Split(page.Description, "\n\n")) != 3 {
			t.Error("fallback description is not three paragraphs")
		}
	})

	t.Run("degrades benefits and description independently", func(t *testing.T) {
		s := NewProductPageService(nil)
		page := s.BuildPage(ctx, product)
		if len(page.Benefits) == 0 {
			t.Error("Benefits is empty without a generator")
		}
		if page.Description == "" {
			t.Error("Description is empty without a generator")
		}
	})
}
