package usecase

import (
	"log"
	"strings"

	"github.com/pagecraft/backend/internal/domain"
)

// categoryOrder fixes the synthesis order. Repeated calls on identical input
// must produce byte-identical output, so templates are held in slices keyed
// by this order, never iterated from a map.
var categoryOrder = []domain.QuestionCategory{
	domain.CategoryInformational,
	domain.CategorySafety,
	domain.CategoryUsage,
	domain.CategoryPurchase,
	domain.CategoryIngredients,
	domain.CategoryResults,
	domain.CategoryComparison,
}

// questionTemplates holds the parameterized question bank. Placeholders are
// substituted verbatim from product fields; no paraphrasing.
var questionTemplates = map[domain.QuestionCategory][]string{
	domain.CategoryInformational: {
		"What is {product_name} and what does it do?",
		"What is the concentration of {active_ingredient} in {product_name}?",
		"What skin types is {product_name} suitable for?",
	},
	domain.CategorySafety: {
		"Are there any side effects of using {product_name}?",
		"Can I use {product_name} if I have sensitive skin?",
		"Should I do a patch test before using {product_name}?",
	},
	domain.CategoryUsage: {
		"How do I apply {product_name} correctly?",
		"When is the best time to use {product_name}?",
		"Can I use {product_name} with other skincare products?",
	},
	domain.CategoryPurchase: {
		"What is the price of {product_name}?",
		"How long will one bottle of {product_name} last?",
	},
	domain.CategoryIngredients: {
		"What are the key ingredients in {product_name}?",
		"How does {concentration} work for {benefits}?",
	},
	domain.CategoryResults: {
		"How long does it take to see results from {product_name}?",
		"What results can I expect from using {product_name}?",
	},
	domain.CategoryComparison: {
		"How does {product_name} compare to other products?",
		"Is {product_name} worth the price compared to alternatives?",
	},
}

// QuestionService deterministically derives the categorized question bank
// from a product record. No randomness, no external calls.
type QuestionService struct{}

// NewQuestionService creates a question synthesis service.
func NewQuestionService() *QuestionService {
	return &QuestionService{}
}

// Synthesize returns the ordered question sequence for a product: every
// category in fixed order, every template in declaration order.
func (s *QuestionService) Synthesize(product *domain.ProductRecord) []domain.Question {
	replacer := templateReplacer(product)

	var questions []domain.Question
	for _, category := range categoryOrder {
		for _, template := range questionTemplates[category] {
			questions = append(questions, domain.Question{
				Text:     replacer.Replace(template),
				Category: category,
			})
		}
	}

	log.Printf("[Questions] Synthesized %d questions across %d categories for %q",
		len(questions), len(categoryOrder), product.Name)
	return questions
}

// templateReplacer builds the placeholder substitution for one product.
func templateReplacer(product *domain.ProductRecord) *strings.Replacer {
	return strings.NewReplacer(
		"{product_name}", product.Name,
		"{concentration}", product.Concentration,
		"{active_ingredient}", ActiveIngredient(product.KeyIngredients),
		"{benefits}", strings.ToLower(product.Benefits),
		"{skin_type}", product.SkinType,
	)
}

// ActiveIngredient returns the first comma-delimited token of a
// key-ingredients list, the primary comparison axis.
func ActiveIngredient(keyIngredients string) string {
	first, _, _ := strings.Cut(keyIngredients, ",")
	return strings.TrimSpace(first)
}
