package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/pagecraft/backend/internal/domain"
)

// Workflow drives the fixed five-step pipeline. It never references an agent
// by identity: each step resolves a capability through the registry and feeds
// the previous step's output forward. A structural failure aborts the
// remaining steps; no partial recovery is attempted.
type Workflow struct {
	registry *Registry
}

// NewWorkflow creates a sequencer over a fully populated registry. The
// registry must not be mutated once Run is called.
func NewWorkflow(registry *Registry) *Workflow {
	return &Workflow{registry: registry}
}

// Run executes the pipeline over the raw input records and returns every
// generated artifact. The comparison step runs only when at least two
// products are present.
func (w *Workflow) Run(ctx context.Context, rawRecords []map[string]string) (*domain.RunResult, error) {
	if len(rawRecords) == 0 {
		return nil, fmt.Errorf("%w: no product records supplied", domain.ErrInvalidInput)
	}

	// Step 1: normalize every record.
	log.Printf("[Workflow] Step 1: parsing %d product record(s)", len(rawRecords))
	products := make([]domain.ProductRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		out, err := w.process(ctx, CapParseProduct, raw)
		if err != nil {
			return nil, err
		}
		products = append(products, *out.(*domain.ProductRecord))
	}

	// Step 2: synthesize the question bank for the first product.
	log.Printf("[Workflow] Step 2: generating questions")
	out, err := w.process(ctx, CapGenerateQuestion, &products[0])
	if err != nil {
		return nil, err
	}
	questions := out.([]domain.Question)

	// Step 3: resolve FAQ answers for the first product.
	log.Printf("[Workflow] Step 3: building FAQ page")
	out, err = w.process(ctx, CapGenerateFAQ, FAQInput{Questions: questions, Product: products[0]})
	if err != nil {
		return nil, err
	}
	faq := out.(*domain.FAQPage)

	// Step 4: build a product page per product.
	log.Printf("[Workflow] Step 4: building %d product page(s)", len(products))
	pages := make([]*domain.ProductPage, 0, len(products))
	for i := range products {
		out, err = w.process(ctx, CapGenerateProduct, &products[i])
		if err != nil {
			return nil, err
		}
		pages = append(pages, out.(*domain.ProductPage))
	}

	// Step 5: compare the first two products.
	var comparison *domain.ComparisonPage
	if len(products) >= 2 {
		log.Printf("[Workflow] Step 5: comparing %q and %q", products[0].Name, products[1].Name)
		out, err = w.process(ctx, CapCompareProducts, products[:2])
		if err != nil {
			return nil, err
		}
		comparison = out.(*domain.ComparisonPage)
	} else {
		log.Printf("[Workflow] Step 5: skipped, need two products for a comparison")
	}

	return &domain.RunResult{
		Products:     products,
		Questions:    questions,
		FAQ:          faq,
		ProductPages: pages,
		Comparison:   comparison,
	}, nil
}

// process resolves one capability and runs its agent.
func (w *Workflow) process(ctx context.Context, capability string, input any) (any, error) {
	a, err := w.registry.Resolve(capability)
	if err != nil {
		return nil, err
	}
	out, err := a.Process(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("step %q (%s): %w", capability, a.Name(), err)
	}
	return out, nil
}
