package domain

// ProductRecord is the canonical product representation produced by the
// normalizer. All eight content fields are guaranteed present and non-empty,
// and Price is guaranteed to parse to a non-negative value.
type ProductRecord struct {
	ID             string `json:"product_id"`
	Name           string `json:"name"`
	Concentration  string `json:"concentration"`
	SkinType       string `json:"skin_type"`
	KeyIngredients string `json:"key_ingredients"` // comma-delimited, order-preserving
	Benefits       string `json:"benefits"`        // comma-delimited
	HowToUse       string `json:"how_to_use"`
	SideEffects    string `json:"side_effects"`
	Price          string `json:"price"` // currency-tagged numeric string, e.g. "₹699"
}

// QuestionCategory is the closed set of question categories.
type QuestionCategory string

const (
	CategoryInformational QuestionCategory = "Informational"
	CategorySafety        QuestionCategory = "Safety"
	CategoryUsage         QuestionCategory = "Usage"
	CategoryPurchase      QuestionCategory = "Purchase"
	CategoryIngredients   QuestionCategory = "Ingredients"
	CategoryResults       QuestionCategory = "Results"
	CategoryComparison    QuestionCategory = "Comparison"
)

// Question is one candidate question derived from a product record.
type Question struct {
	Text     string           `json:"question"`
	Category QuestionCategory `json:"category"`
}

// AnswerSource records how an answer was produced. Diagnostic only; it is
// not part of the serialized output.
type AnswerSource string

const (
	AnswerExtracted AnswerSource = "extracted"
	AnswerDerived   AnswerSource = "derived"
	AnswerGenerated AnswerSource = "generated"
)

// Answer pairs a question with its resolved answer text. The question text
// is copied in by value, not referenced.
type Answer struct {
	Question string           `json:"question"`
	Text     string           `json:"answer"`
	Category QuestionCategory `json:"category"`
	Source   AnswerSource     `json:"-"`
}
