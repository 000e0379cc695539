package domain

// Tie markers used by the comparison fields below.
const (
	ComparisonTie       = "tie"
	EquallyVersatile    = "equally versatile"
	EqualUsageFrequency = "equal"
)

// Recommendation keys of the fixed decision table.
const (
	RecommendBudget        = "for_budget_conscious"
	RecommendVersatility   = "for_versatility"
	RecommendSensitiveSkin = "for_sensitive_skin"
	RecommendRoutine       = "for_comprehensive_routine"
)

// Comparison is the structured result of comparing exactly two products.
// All fields are computed algorithmically; no external call is involved.
type Comparison struct {
	ProductAName string `json:"product_a_name"`
	ProductBName string `json:"product_b_name"`

	PriceA    float64 `json:"price_a"`
	PriceB    float64 `json:"price_b"`
	PriceDiff float64 `json:"price_diff"`
	// Cheaper is the cheaper product's name, or "tie".
	Cheaper string `json:"cheaper_product"`

	// Active ingredient is the first comma-delimited key_ingredients token.
	ActiveIngredientA string `json:"active_ingredient_a"`
	ActiveIngredientB string `json:"active_ingredient_b"`

	CommonIngredients []string `json:"common_ingredients"`
	IngredientOverlap string   `json:"ingredient_overlap"`
	Complementary     bool     `json:"complementary"`

	// Skin-type breadth: "broad" or "narrow".
	SkinBreadthA string `json:"skin_breadth_a"`
	SkinBreadthB string `json:"skin_breadth_b"`
	// MoreVersatile is a product name, or "equally versatile".
	MoreVersatile string `json:"more_versatile"`

	UsageFrequencyA int `json:"usage_frequency_a"`
	UsageFrequencyB int `json:"usage_frequency_b"`
	// MoreFrequentUse is a product name, or "equal".
	MoreFrequentUse string `json:"more_frequent_use"`

	// Recommendations maps use-case keys to a product name or combined-use
	// suggestion.
	Recommendations map[string]string `json:"recommendations"`
}
