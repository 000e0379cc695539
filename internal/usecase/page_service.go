package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pagecraft/backend/internal/domain"
)

// Fixed product-page content blocks.
var pageWarnings = []string{
	"Perform a patch test before first use",
	"Avoid contact with eyes",
	"Use sunscreen during the day",
}

// ProductPageService builds the narrative product page for one record. The
// description and benefit elaborations use the external collaborator; both
// degrade to deterministic templates on failure.
type ProductPageService struct {
	generator domain.TextGenerator
}

// NewProductPageService creates a product page service.
func NewProductPageService(generator domain.TextGenerator) *ProductPageService {
	return &ProductPageService{generator: generator}
}

// BuildPage assembles the full product page. It never fails: content-quality
// degradations are absorbed by deterministic substitutes.
func (s *ProductPageService) BuildPage(ctx context.Context, product *domain.ProductRecord) *domain.ProductPage {
	log.Printf("[ProductPage] Building page for %q", product.Name)

	benefits := ExtractBenefits(ctx, s.generator, product)

	return &domain.ProductPage{
		PageType:    domain.PageTypeProduct,
		Title:       product.Name,
		ProductID:   product.ID,
		Tagline:     fmt.Sprintf("Experience the Power of %s", product.Concentration),
		Description: s.description(ctx, product, BenefitSummary(benefits)),
		Benefits:    benefits,
		Specifications: map[string]string{
			"concentration":    product.Concentration,
			"skin_type":        product.SkinType,
			"key_ingredients":  product.KeyIngredients,
			"benefits_summary": product.Benefits,
			"usage":            product.HowToUse,
			"side_effects":     product.SideEffects,
			"price":            product.Price,
		},
		UsageGuide: []string{
			"Cleanse your face thoroughly before application",
			product.HowToUse,
			"Follow with moisturizer and sunscreen",
			"Use consistently for best results",
		},
		TargetAudience: []string{
			fmt.Sprintf("People with %s skin", strings.ToLower(product.SkinType)),
			fmt.Sprintf("Those seeking %s", strings.ToLower(product.Benefits)),
			"Anyone wanting to improve skin radiance",
		},
		SafetyInfo: domain.SafetyInfo{
			SideEffects:          product.SideEffects,
			Warnings:             pageWarnings,
			PatchTestRecommended: true,
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// description asks the collaborator for the three-paragraph narrative and
// falls back to a deterministic rendition so the field is never empty.
func (s *ProductPageService) description(ctx context.Context, product *domain.ProductRecord, benefitSummary string) string {
	if s.generator != nil {
		text, err := s.generator.Generate(ctx, descriptionPrompt(product))
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
		if err != nil {
			log.Printf("[ProductPage] Description generation unavailable, using template: %v", err)
		}
	}
	return fallbackDescription(product, benefitSummary)
}

// fallbackDescription is the deterministic three-paragraph description.
func fallbackDescription(product *domain.ProductRecord, benefitSummary string) string {
	para1 := fmt.Sprintf("%s is a targeted skincare serum featuring %s, formulated for %s skin.",
		product.Name, product.Concentration, product.SkinType)
	para2 := fmt.Sprintf("Its key ingredients, %s, work together to deliver %s.",
		product.KeyIngredients, strings.ToLower(benefitSummary))
	para3 := fmt.Sprintf("Used as directed (%s), it fits easily into a daily routine at a price of %s.",
		strings.TrimSuffix(product.HowToUse, "."), product.Price)
	return para1 + "\n\n" + para2 + "\n\n" + para3
}

func descriptionPrompt(product *domain.ProductRecord) string {
	return fmt.Sprintf(`Write a compelling 3-paragraph product description for this skincare product:

Product: %s
Concentration: %s
Skin Type: %s
Ingredients: %s
Benefits: %s
Usage: %s
Price: %s

PARAGRAPH 1: Introduction - What is this product and why it's special
PARAGRAPH 2: Key benefits and how the ingredients work together
PARAGRAPH 3: Expected results and why customers love it

Requirements:
- Professional, marketing-focused tone
- Each paragraph should be 3-4 sentences
- Make it compelling but factual
- Do NOT use bullet points

Write the 3 paragraphs now:`,
		product.Name, product.Concentration, product.SkinType,
		product.KeyIngredients, product.Benefits, product.HowToUse, product.Price)
}
