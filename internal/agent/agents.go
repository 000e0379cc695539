package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/pagecraft/backend/internal/domain"
	"github.com/pagecraft/backend/internal/usecase"
)

// Task identifiers the built-in agents register for.
const (
	CapParseProduct     = "parse_product"
	CapGenerateQuestion = "generate_questions"
	CapCategorize       = "categorize_questions"
	CapGenerateFAQ      = "generate_faq"
	CapAnswerQuestions  = "answer_questions"
	CapGenerateProduct  = "generate_product_page"
	CapExtractBenefits  = "extract_benefits"
	CapCompareProducts  = "generate_comparison"
	CapAnalyzeProducts  = "analyze_products"
)

// FAQInput is the FAQ agent's input: the question bank plus its product.
type FAQInput struct {
	Questions []domain.Question
	Product   domain.ProductRecord
}

// ParserAgent normalizes raw records into canonical products.
type ParserAgent struct {
	normalizer *usecase.Normalizer
}

func NewParserAgent(normalizer *usecase.Normalizer) *ParserAgent {
	return &ParserAgent{normalizer: normalizer}
}

func (a *ParserAgent) Name() string { return "ParserAgent" }

func (a *ParserAgent) Capabilities() []string { return []string{CapParseProduct} }

func (a *ParserAgent) Process(ctx context.Context, input any) (any, error) {
	raw, ok := input.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants map[string]string, got %T", domain.ErrInvalidInput, a.Name(), input)
	}
	product, err := a.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}
	log.Printf("[%s] Parsed %q", a.Name(), product.Name)
	return product, nil
}

// QuestionAgent synthesizes the categorized question bank.
type QuestionAgent struct {
	questions *usecase.QuestionService
}

func NewQuestionAgent(questions *usecase.QuestionService) *QuestionAgent {
	return &QuestionAgent{questions: questions}
}

func (a *QuestionAgent) Name() string { return "QuestionGeneratorAgent" }

func (a *QuestionAgent) Capabilities() []string {
	return []string{CapGenerateQuestion, CapCategorize}
}

func (a *QuestionAgent) Process(ctx context.Context, input any) (any, error) {
	product, ok := input.(*domain.ProductRecord)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants *domain.ProductRecord, got %T", domain.ErrInvalidInput, a.Name(), input)
	}
	return a.questions.Synthesize(product), nil
}

// FAQAgent selects questions and resolves their answers into an FAQ page.
type FAQAgent struct {
	answers *usecase.AnswerService
	faqSize int
}

func NewFAQAgent(answers *usecase.AnswerService, faqSize int) *FAQAgent {
	if faqSize <= 0 {
		faqSize = 5
	}
	return &FAQAgent{answers: answers, faqSize: faqSize}
}

func (a *FAQAgent) Name() string { return "FAQAgent" }

func (a *FAQAgent) Capabilities() []string {
	return []string{CapGenerateFAQ, CapAnswerQuestions}
}

func (a *FAQAgent) Process(ctx context.Context, input any) (any, error) {
	in, ok := input.(FAQInput)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants agent.FAQInput, got %T", domain.ErrInvalidInput, a.Name(), input)
	}
	log.Printf("[%s] Building FAQ for %q from %d questions", a.Name(), in.Product.Name, len(in.Questions))
	return a.answers.BuildFAQPage(ctx, in.Questions, &in.Product, a.faqSize), nil
}

// ProductPageAgent builds the narrative product page.
type ProductPageAgent struct {
	pages *usecase.ProductPageService
}

func NewProductPageAgent(pages *usecase.ProductPageService) *ProductPageAgent {
	return &ProductPageAgent{pages: pages}
}

func (a *ProductPageAgent) Name() string { return "ProductPageAgent" }

func (a *ProductPageAgent) Capabilities() []string {
	return []string{CapGenerateProduct, CapExtractBenefits}
}

func (a *ProductPageAgent) Process(ctx context.Context, input any) (any, error) {
	product, ok := input.(*domain.ProductRecord)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants *domain.ProductRecord, got %T", domain.ErrInvalidInput, a.Name(), input)
	}
	return a.pages.BuildPage(ctx, product), nil
}

// ComparisonAgent builds the head-to-head comparison page.
type ComparisonAgent struct {
	comparisons *usecase.ComparisonService
}

func NewComparisonAgent(comparisons *usecase.ComparisonService) *ComparisonAgent {
	return &ComparisonAgent{comparisons: comparisons}
}

func (a *ComparisonAgent) Name() string { return "ComparisonAgent" }

func (a *ComparisonAgent) Capabilities() []string {
	return []string{CapCompareProducts, CapAnalyzeProducts}
}

func (a *ComparisonAgent) Process(ctx context.Context, input any) (any, error) {
	products, ok := input.([]domain.ProductRecord)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants []domain.ProductRecord, got %T", domain.ErrInvalidInput, a.Name(), input)
	}
	log.Printf("[%s] Comparing %d products", a.Name(), len(products))
	return a.comparisons.BuildPage(ctx, products)
}

// BuildRegistry wires the default agents, in fixed registration order, around
// one narrative-text collaborator.
func BuildRegistry(generator domain.TextGenerator, faqSize int) *Registry {
	registry := NewRegistry()
	registry.Register(NewParserAgent(usecase.NewNormalizer()))
	registry.Register(NewQuestionAgent(usecase.NewQuestionService()))
	registry.Register(NewFAQAgent(usecase.NewAnswerService(generator), faqSize))
	registry.Register(NewProductPageAgent(usecase.NewProductPageService(generator)))
	registry.Register(NewComparisonAgent(usecase.NewComparisonService(generator)))
	return registry
}
