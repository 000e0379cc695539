package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pagecraft/backend/internal/domain"
)

// ExtractBenefits elaborates the record's comma-delimited benefits list into
// named benefits with one-line explanations. The collaborator's response is
// parsed line by line; any failure falls back to a deterministic expansion of
// the listed benefits.
func ExtractBenefits(ctx context.Context, generator domain.TextGenerator, product *domain.ProductRecord) []domain.Benefit {
	if generator != nil {
		response, err := generator.Generate(ctx, benefitsPrompt(product))
		if err == nil {
			if benefits := parseBenefitLines(response); len(benefits) > 0 {
				return benefits
			}
		} else {
			log.Printf("[Benefits] Generation unavailable, using listed benefits: %v", err)
		}
	}
	return fallbackBenefits(product.Benefits)
}

// parseBenefitLines parses "1. Name - Description" style lines. Lines that
// do not split on a dash are skipped.
func parseBenefitLines(response string) []domain.Benefit {
	var benefits []domain.Benefit
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "0123456789.-* ")
		name, description, found := strings.Cut(line, "-")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		description = strings.TrimSpace(description)
		if name == "" || description == "" {
			continue
		}
		benefits = append(benefits, domain.Benefit{Name: name, Description: description})
	}
	return benefits
}

// fallbackBenefits expands the raw comma-delimited benefits field directly.
func fallbackBenefits(rawBenefits string) []domain.Benefit {
	var benefits []domain.Benefit
	for _, part := range strings.Split(rawBenefits, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		benefits = append(benefits, domain.Benefit{
			Name:        name,
			Description: fmt.Sprintf("This product provides %s benefits.", strings.ToLower(name)),
		})
	}
	return benefits
}

// BenefitSummary joins up to three benefit names into one phrase.
func BenefitSummary(benefits []domain.Benefit) string {
	if len(benefits) == 0 {
		return "multiple skincare benefits"
	}

	names := make([]string, 0, 3)
	for _, b := range benefits {
		if len(names) == 3 {
			break
		}
		names = append(names, b.Name)
	}

	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func benefitsPrompt(product *domain.ProductRecord) string {
	return fmt.Sprintf(`Extract and elaborate on the benefits of this product:

Product: %s
Listed Benefits: %s
Ingredients: %s

For each benefit, provide a brief 1-sentence explanation.

Format your response as:
1. [Benefit Name] - [How it works]
2. [Benefit Name] - [How it works]

Generate the benefits now:`, product.Name, product.Benefits, product.KeyIngredients)
}
