package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pagecraft/backend/internal/domain"
)

// categoryPriority fixes the FAQ selection order so a page always spans the
// five highest-priority categories present in the question bank.
var categoryPriority = []domain.QuestionCategory{
	domain.CategoryInformational,
	domain.CategorySafety,
	domain.CategoryUsage,
	domain.CategoryPurchase,
	domain.CategoryIngredients,
	domain.CategoryResults,
	domain.CategoryComparison,
}

// Fixed caveats appended by the derived-composition rules.
const (
	patchTestCaveat  = "Always perform a patch test on a small area of skin before first use."
	morningSPFCaveat = "Since it is used in the morning, follow with a broad-spectrum sunscreen, as some actives increase sun sensitivity."
)

// AnswerService resolves answers for questions using a fixed priority ladder:
// direct field extraction, then derived composition, then external text
// generation with a deterministic fallback.
type AnswerService struct {
	generator domain.TextGenerator
}

// NewAnswerService creates an answer resolution service. The generator is the
// narrative-text collaborator used only for the generation fallback.
func NewAnswerService(generator domain.TextGenerator) *AnswerService {
	return &AnswerService{generator: generator}
}

// Resolve produces one answer for a question against its originating product.
// It never returns an error: external-service failures are absorbed by the
// deterministic fallback.
func (s *AnswerService) Resolve(ctx context.Context, question domain.Question, product *domain.ProductRecord) domain.Answer {
	answer := domain.Answer{
		Question: question.Text,
		Category: question.Category,
	}

	if text, ok := s.extract(question, product); ok {
		answer.Text = text
		answer.Source = domain.AnswerExtracted
		return answer
	}

	if text, ok := s.derive(question, product); ok {
		answer.Text = text
		answer.Source = domain.AnswerDerived
		return answer
	}

	answer.Text = s.generate(ctx, question, product)
	answer.Source = domain.AnswerGenerated
	return answer
}

// extract handles categories with an unambiguous 1:1 field mapping.
func (s *AnswerService) extract(question domain.Question, product *domain.ProductRecord) (string, bool) {
	text := strings.ToLower(question.Text)

	switch question.Category {
	case domain.CategoryPurchase:
		if strings.Contains(text, "price") {
			return fmt.Sprintf("The price of %s is %s.", product.Name, product.Price), true
		}
	case domain.CategoryIngredients:
		if strings.Contains(text, "key ingredients") {
			return fmt.Sprintf("The key ingredients in %s are: %s.", product.Name, product.KeyIngredients), true
		}
	case domain.CategoryInformational:
		if strings.Contains(text, "skin type") {
			return fmt.Sprintf("%s is suitable for %s skin.", product.Name, product.SkinType), true
		}
		if strings.Contains(text, "concentration") {
			return fmt.Sprintf("%s contains %s.", product.Name, product.Concentration), true
		}
	}
	return "", false
}

// derive handles categories answered by combining fields with a fixed rule.
func (s *AnswerService) derive(question domain.Question, product *domain.ProductRecord) (string, bool) {
	switch question.Category {
	case domain.CategorySafety:
		return fmt.Sprintf("The known side effects are: %s. %s",
			product.SideEffects, patchTestCaveat), true
	case domain.CategoryUsage:
		text := fmt.Sprintf("Usage instructions: %s.", strings.TrimSuffix(product.HowToUse, "."))
		if strings.Contains(strings.ToLower(product.HowToUse), "morning") {
			text += " " + morningSPFCaveat
		}
		return text, true
	case domain.CategoryResults:
		return fmt.Sprintf("With consistent use, %s is formulated to deliver %s. Most users notice gradual improvement over several weeks of regular use.",
			product.Name, strings.ToLower(product.Benefits)), true
	}
	return "", false
}

// generate delegates to the external collaborator, falling back to a
// deterministic field concatenation when it fails or returns empty text.
func (s *AnswerService) generate(ctx context.Context, question domain.Question, product *domain.ProductRecord) string {
	prompt := answerPrompt(question.Text, product)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("[Answers] Falling back to template answer for %q: %v", question.Text, err)
		return fallbackAnswer(product)
	}
	return strings.TrimSpace(text)
}

// SelectForFAQ picks up to count questions with explicit category diversity:
// one question per distinct category in fixed priority order, then remaining
// questions in generation order if slots are left.
func (s *AnswerService) SelectForFAQ(questions []domain.Question, count int) []domain.Question {
	var selected []domain.Question
	chosen := make(map[int]bool)

	for _, category := range categoryPriority {
		if len(selected) >= count {
			break
		}
		for i, q := range questions {
			if q.Category == category && !chosen[i] {
				selected = append(selected, q)
				chosen[i] = true
				break
			}
		}
	}

	for i, q := range questions {
		if len(selected) >= count {
			break
		}
		if !chosen[i] {
			selected = append(selected, q)
			chosen[i] = true
		}
	}

	return selected
}

// BuildFAQPage selects questions, resolves each answer, and assembles the
// serializable FAQ page.
func (s *AnswerService) BuildFAQPage(ctx context.Context, questions []domain.Question, product *domain.ProductRecord, count int) *domain.FAQPage {
	selected := s.SelectForFAQ(questions, count)

	answers := make([]domain.Answer, 0, len(selected))
	for _, q := range selected {
		answers = append(answers, s.Resolve(ctx, q, product))
	}

	return &domain.FAQPage{
		PageType:       domain.PageTypeFAQ,
		Title:          "Frequently Asked Questions",
		ProductName:    product.Name,
		Questions:      answers,
		TotalQuestions: len(answers),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// answerPrompt builds the bounded context prompt for one question.
func answerPrompt(question string, product *domain.ProductRecord) string {
	return fmt.Sprintf(`Answer this customer question about the product using ONLY the provided information:

Product Information:
%s

Customer Question: %s

Provide a clear, helpful answer in 2-3 sentences. Be informative but concise. Use only the facts provided above.

Answer:`, productContext(product), question)
}

// productContext renders the record as a compact fact sheet for prompts.
func productContext(product *domain.ProductRecord) string {
	lines := []string{
		"Product Name: " + product.Name,
		"Concentration: " + product.Concentration,
		"Suitable for: " + product.SkinType,
		"Key Ingredients: " + product.KeyIngredients,
		"Benefits: " + product.Benefits,
		"How to Use: " + product.HowToUse,
		"Side Effects: " + product.SideEffects,
		"Price: " + product.Price,
	}
	return strings.Join(lines, "\n")
}

// fallbackAnswer concatenates the relevant fields into a deterministic answer
// used whenever the collaborator is unavailable.
func fallbackAnswer(product *domain.ProductRecord) string {
	return fmt.Sprintf("%s is a skincare product featuring %s, suitable for %s skin. Its key ingredients are %s, and it offers %s.",
		product.Name, product.Concentration, product.SkinType,
		product.KeyIngredients, strings.ToLower(product.Benefits))
}
