package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pagecraft/backend/internal/domain"
)

// requiredFields lists the eight input fields every product record must carry,
// in validation order.
var requiredFields = []string{
	"name",
	"concentration",
	"skin_type",
	"key_ingredients",
	"benefits",
	"how_to_use",
	"side_effects",
	"price",
}

// currencySymbols are the leading currency markers stripped before price
// parsing. At most one is removed.
var currencySymbols = []string{"₹", "$", "€", "£", "¥", "Rs."}

// Normalizer validates raw key/value records and reshapes them into canonical
// ProductRecords. Pure apart from ID generation for records without one.
type Normalizer struct{}

// NewNormalizer creates a normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize validates one raw record and returns its canonical form.
// Fails with domain.ErrValidation if any required field is missing or empty,
// or if the price does not parse to a non-negative value.
func (n *Normalizer) Normalize(raw map[string]string) (*domain.ProductRecord, error) {
	for _, field := range requiredFields {
		if strings.TrimSpace(raw[field]) == "" {
			return nil, fmt.Errorf("%w: missing or empty field %q", domain.ErrValidation, field)
		}
	}

	if _, err := ParsePrice(raw["price"]); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(raw["product_id"])
	if id == "" {
		id = uuid.NewString()
	}

	return &domain.ProductRecord{
		ID:             id,
		Name:           strings.TrimSpace(raw["name"]),
		Concentration:  strings.TrimSpace(raw["concentration"]),
		SkinType:       strings.TrimSpace(raw["skin_type"]),
		KeyIngredients: strings.TrimSpace(raw["key_ingredients"]),
		Benefits:       strings.TrimSpace(raw["benefits"]),
		HowToUse:       strings.TrimSpace(raw["how_to_use"]),
		SideEffects:    strings.TrimSpace(raw["side_effects"]),
		Price:          strings.TrimSpace(raw["price"]),
	}, nil
}

// ParsePrice converts a currency-tagged numeric string to its numeric value.
// A single leading currency symbol and thousands separators are stripped.
// Fails with domain.ErrValidation for non-numeric or negative values.
func ParsePrice(price string) (float64, error) {
	s := strings.TrimSpace(price)
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimSpace(strings.TrimPrefix(s, sym))
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not numeric", domain.ErrValidation, price)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: price %q is negative", domain.ErrValidation, price)
	}
	return value, nil
}
