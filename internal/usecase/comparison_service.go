package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/pagecraft/backend/internal/domain"
)

// Skin-type breadth classifications.
const (
	breadthBroad  = "broad"
	breadthNarrow = "narrow"
)

// ComparisonService computes the structured head-to-head comparison between
// exactly two products. Every comparison field is pure; only the optional
// page narrative touches the external collaborator.
type ComparisonService struct {
	generator domain.TextGenerator
}

// NewComparisonService creates a comparison service.
func NewComparisonService(generator domain.TextGenerator) *ComparisonService {
	return &ComparisonService{generator: generator}
}

// Compare returns the structured comparison of exactly two product records.
// Fails with domain.ErrComparison for any other product count.
func (s *ComparisonService) Compare(products []domain.ProductRecord) (*domain.Comparison, error) {
	if len(products) != 2 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrComparison, len(products))
	}
	a, b := products[0], products[1]

	priceA, err := ParsePrice(a.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: product %q: %v", domain.ErrComparison, a.Name, err)
	}
	priceB, err := ParsePrice(b.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: product %q: %v", domain.ErrComparison, b.Name, err)
	}

	common := ingredientIntersection(a.KeyIngredients, b.KeyIngredients)

	cmp := &domain.Comparison{
		ProductAName: a.Name,
		ProductBName: b.Name,

		PriceA:    priceA,
		PriceB:    priceB,
		PriceDiff: math.Abs(priceB - priceA),
		Cheaper:   cheaperOf(a.Name, priceA, b.Name, priceB),

		ActiveIngredientA: ActiveIngredient(a.KeyIngredients),
		ActiveIngredientB: ActiveIngredient(b.KeyIngredients),

		CommonIngredients: common,
		IngredientOverlap: overlapLabel(common),
		Complementary:     len(common) == 0,

		SkinBreadthA:  skinBreadth(a.SkinType),
		SkinBreadthB:  skinBreadth(b.SkinType),
		MoreVersatile: moreVersatile(a, b),

		UsageFrequencyA: usageFrequency(a.HowToUse),
		UsageFrequencyB: usageFrequency(b.HowToUse),
	}
	cmp.MoreFrequentUse = moreFrequentUse(a.Name, cmp.UsageFrequencyA, b.Name, cmp.UsageFrequencyB)
	cmp.Recommendations = recommendations(a, b, cmp)

	return cmp, nil
}

// BuildPage assembles the full comparison page. The narrative paragraph is
// produced by the external collaborator when available; its failure falls
// back to the rule-based analysis and never blocks the structured result.
func (s *ComparisonService) BuildPage(ctx context.Context, products []domain.ProductRecord) (*domain.ComparisonPage, error) {
	cmp, err := s.Compare(products)
	if err != nil {
		return nil, err
	}
	a, b := products[0], products[1]

	analysis := ruleBasedAnalysis(a, b, cmp)
	if s.generator != nil {
		if text, genErr := s.generator.Generate(ctx, comparisonPrompt(a, b, cmp)); genErr == nil && strings.TrimSpace(text) != "" {
			analysis = strings.TrimSpace(text)
		} else if genErr != nil {
			log.Printf("[Comparison] Narrative generation unavailable, using rule-based analysis: %v", genErr)
		}
	}

	return &domain.ComparisonPage{
		PageType:           domain.PageTypeComparison,
		Title:              fmt.Sprintf("%s vs %s", a.Name, b.Name),
		ProductA:           summarize(a),
		ProductB:           summarize(b),
		DetailedComparison: cmp,
		ComparisonAnalysis: analysis,
		Recommendations:    cmp.Recommendations,
		Insights:           insights(cmp),
		ComparisonTable:    comparisonTable(a, b),
		Winner:             winner(cmp),
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func summarize(p domain.ProductRecord) domain.ProductSummary {
	return domain.ProductSummary{
		Name:          p.Name,
		Concentration: p.Concentration,
		SkinType:      p.SkinType,
		Ingredients:   p.KeyIngredients,
		Benefits:      p.Benefits,
		Price:         p.Price,
	}
}

func cheaperOf(nameA string, priceA float64, nameB string, priceB float64) string {
	switch {
	case priceA < priceB:
		return nameA
	case priceB < priceA:
		return nameB
	default:
		return domain.ComparisonTie
	}
}

// splitIngredients tokenizes a comma-delimited ingredient list: trimmed,
// case-normalized, order-preserving.
func splitIngredients(list string) []string {
	var tokens []string
	for _, part := range strings.Split(list, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ingredientIntersection returns the common tokens in A-list order.
func ingredientIntersection(listA, listB string) []string {
	inB := make(map[string]bool)
	for _, token := range splitIngredients(listB) {
		inB[token] = true
	}

	var common []string
	seen := make(map[string]bool)
	for _, token := range splitIngredients(listA) {
		if inB[token] && !seen[token] {
			common = append(common, token)
			seen[token] = true
		}
	}
	return common
}

func overlapLabel(common []string) string {
	if len(common) == 0 {
		return "no common active ingredients"
	}
	return "common ingredients: " + strings.Join(common, ", ")
}

// skinBreadth classifies a skin-type descriptor as broad when it carries an
// all-inclusive marker, else narrow.
func skinBreadth(skinType string) string {
	if strings.Contains(strings.ToLower(skinType), "all") {
		return breadthBroad
	}
	return breadthNarrow
}

// moreVersatile names the product with the broader skin-type coverage. Same
// breadth falls through to the longer enumerated list; full ties report
// "equally versatile".
func moreVersatile(a, b domain.ProductRecord) string {
	breadthA, breadthB := skinBreadth(a.SkinType), skinBreadth(b.SkinType)
	if breadthA == breadthBroad && breadthB == breadthNarrow {
		return a.Name
	}
	if breadthB == breadthBroad && breadthA == breadthNarrow {
		return b.Name
	}

	countA := len(strings.Split(a.SkinType, ","))
	countB := len(strings.Split(b.SkinType, ","))
	switch {
	case countA > countB:
		return a.Name
	case countB > countA:
		return b.Name
	default:
		return domain.EquallyVersatile
	}
}

// usageFrequency counts the daily applications implied by the usage text.
func usageFrequency(howToUse string) int {
	text := strings.ToLower(howToUse)
	switch {
	case strings.Contains(text, "three times"), strings.Contains(text, "3 times"):
		return 3
	case strings.Contains(text, "twice"),
		strings.Contains(text, "morning") && strings.Contains(text, "evening"),
		strings.Contains(text, "morning") && strings.Contains(text, "night"):
		return 2
	default:
		return 1
	}
}

func moreFrequentUse(nameA string, freqA int, nameB string, freqB int) string {
	switch {
	case freqA > freqB:
		return nameA
	case freqB > freqA:
		return nameB
	default:
		return domain.EqualUsageFrequency
	}
}

// recommendations fills the fixed use-case decision table from the computed
// comparison fields. No external calls.
func recommendations(a, b domain.ProductRecord, cmp *domain.Comparison) map[string]string {
	recs := make(map[string]string, 4)

	if cmp.Cheaper == domain.ComparisonTie {
		recs[domain.RecommendBudget] = "Both products (same price)"
	} else {
		recs[domain.RecommendBudget] = cmp.Cheaper
	}

	if cmp.MoreVersatile == domain.EquallyVersatile {
		recs[domain.RecommendVersatility] = "Both products"
	} else {
		recs[domain.RecommendVersatility] = cmp.MoreVersatile
	}

	recs[domain.RecommendSensitiveSkin] = sensitiveSkinPick(a, b)

	if cmp.Complementary {
		recs[domain.RecommendRoutine] = fmt.Sprintf("Use %s and %s together", a.Name, b.Name)
	} else {
		recs[domain.RecommendRoutine] = "Choose one; the formulas share active ingredients"
	}

	return recs
}

func sensitiveSkinPick(a, b domain.ProductRecord) string {
	suits := func(skinType string) bool {
		s := strings.ToLower(skinType)
		return strings.Contains(s, "sensitive") || strings.Contains(s, "all")
	}
	suitsA, suitsB := suits(a.SkinType), suits(b.SkinType)
	switch {
	case suitsA && !suitsB:
		return a.Name
	case suitsB && !suitsA:
		return b.Name
	default:
		return "Both products suitable"
	}
}

// winner scores price and versatility; full ties are reported as such,
// so swapping the inputs consistently flips the result.
func winner(cmp *domain.Comparison) string {
	scoreA, scoreB := 0, 0

	switch cmp.Cheaper {
	case cmp.ProductAName:
		scoreA++
	case cmp.ProductBName:
		scoreB++
	}
	switch cmp.MoreVersatile {
	case cmp.ProductAName:
		scoreA++
	case cmp.ProductBName:
		scoreB++
	}

	switch {
	case scoreA > scoreB:
		return cmp.ProductAName
	case scoreB > scoreA:
		return cmp.ProductBName
	default:
		return "Tie - Both excellent choices"
	}
}

func insights(cmp *domain.Comparison) []string {
	return []string{
		fmt.Sprintf("Price difference: %.2f", cmp.PriceDiff),
		fmt.Sprintf("Active ingredients: %s vs %s", cmp.ActiveIngredientA, cmp.ActiveIngredientB),
		fmt.Sprintf("Ingredient overlap: %s", cmp.IngredientOverlap),
		fmt.Sprintf("Skin type versatility: %s", cmp.MoreVersatile),
	}
}

func comparisonTable(a, b domain.ProductRecord) []domain.ComparisonRow {
	return []domain.ComparisonRow{
		{Feature: "Concentration", ProductA: a.Concentration, ProductB: b.Concentration},
		{Feature: "Skin Type", ProductA: a.SkinType, ProductB: b.SkinType},
		{Feature: "Key Ingredients", ProductA: a.KeyIngredients, ProductB: b.KeyIngredients},
		{Feature: "Benefits", ProductA: a.Benefits, ProductB: b.Benefits},
		{Feature: "Price", ProductA: a.Price, ProductB: b.Price},
	}
}

// ruleBasedAnalysis renders the three-paragraph comparison narrative from the
// computed fields alone. Deterministic; used whenever the collaborator is
// unavailable.
func ruleBasedAnalysis(a, b domain.ProductRecord, cmp *domain.Comparison) string {
	para1 := fmt.Sprintf("Both %s and %s are skincare serums designed to improve skin health and appearance. %s features %s and is formulated for %s skin, while %s contains %s and targets %s skin. These products serve different needs in a comprehensive skincare routine.",
		a.Name, b.Name, a.Name, a.Concentration, a.SkinType, b.Name, b.Concentration, b.SkinType)

	priceNote := fmt.Sprintf("%s is the more affordable option", cmp.Cheaper)
	if cmp.Cheaper == domain.ComparisonTie {
		priceNote = "Both products are priced identically"
	}
	para2 := fmt.Sprintf("Key differences include formulation and targeting. The formulations show %s, with %s built around %s and %s built around %s. In terms of pricing, %s, with a difference of %.2f.",
		cmp.IngredientOverlap, a.Name, a.KeyIngredients, b.Name, b.KeyIngredients, priceNote, cmp.PriceDiff)

	versatilityNote := fmt.Sprintf("%s offers greater versatility in skin type compatibility.", cmp.MoreVersatile)
	if cmp.MoreVersatile == domain.EquallyVersatile {
		versatilityNote = "Both products are equally versatile in skin type compatibility."
	}
	para3 := fmt.Sprintf("%s For those seeking %s, %s is the clear choice, while %s excels at %s. The price difference should be weighed against your specific skin concerns and budget.",
		versatilityNote, strings.ToLower(a.Benefits), a.Name, b.Name, strings.ToLower(b.Benefits))

	return para1 + "\n\n" + para2 + "\n\n" + para3
}

// comparisonPrompt builds the narrative-enrichment prompt from the computed
// structured fields.
func comparisonPrompt(a, b domain.ProductRecord, cmp *domain.Comparison) string {
	return fmt.Sprintf(`Write a short, factual three-paragraph comparison of two skincare products using ONLY these computed facts:

Product A: %s (%s, for %s skin, ingredients: %s, price %s)
Product B: %s (%s, for %s skin, ingredients: %s, price %s)
Price difference: %.2f (cheaper: %s)
Ingredient overlap: %s
More versatile: %s

Do not invent any facts. Keep a neutral, informative tone.`,
		a.Name, a.Concentration, a.SkinType, a.KeyIngredients, a.Price,
		b.Name, b.Concentration, b.SkinType, b.KeyIngredients, b.Price,
		cmp.PriceDiff, cmp.Cheaper, cmp.IngredientOverlap, cmp.MoreVersatile)
}
