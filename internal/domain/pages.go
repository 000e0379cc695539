package domain

// Page type markers.
const (
	PageTypeFAQ        = "FAQ"
	PageTypeProduct    = "Product Description"
	PageTypeComparison = "Product Comparison"
)

// FAQPage is the serializable FAQ output.
type FAQPage struct {
	PageType       string   `json:"page_type"`
	Title          string   `json:"title"`
	ProductName    string   `json:"product_name"`
	Questions      []Answer `json:"questions"`
	TotalQuestions int      `json:"total_questions"`
	GeneratedAt    string   `json:"generated_at"`
}

// Benefit is one named product benefit with a short explanation.
type Benefit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SafetyInfo groups the safety-related fields of a product page.
type SafetyInfo struct {
	SideEffects          string   `json:"side_effects"`
	Warnings             []string `json:"warnings"`
	PatchTestRecommended bool     `json:"patch_test_recommended"`
}

// ProductPage is the serializable narrative product page.
type ProductPage struct {
	PageType       string            `json:"page_type"`
	Title          string            `json:"title"`
	ProductID      string            `json:"product_id"`
	Tagline        string            `json:"tagline"`
	Description    string            `json:"description"`
	Benefits       []Benefit         `json:"benefits"`
	Specifications map[string]string `json:"specifications"`
	UsageGuide     []string          `json:"usage_guide"`
	TargetAudience []string          `json:"target_audience"`
	SafetyInfo     SafetyInfo        `json:"safety_info"`
	GeneratedAt    string            `json:"generated_at"`
}

// ProductSummary is the condensed product view embedded in a comparison page.
type ProductSummary struct {
	Name          string `json:"name"`
	Concentration string `json:"concentration"`
	SkinType      string `json:"skin_type"`
	Ingredients   string `json:"ingredients"`
	Benefits      string `json:"benefits"`
	Price         string `json:"price"`
}

// ComparisonRow is one feature row of the comparison table.
type ComparisonRow struct {
	Feature  string `json:"feature"`
	ProductA string `json:"product_a"`
	ProductB string `json:"product_b"`
}

// ComparisonPage is the serializable head-to-head comparison output.
type ComparisonPage struct {
	PageType           string            `json:"page_type"`
	Title              string            `json:"title"`
	ProductA           ProductSummary    `json:"product_a"`
	ProductB           ProductSummary    `json:"product_b"`
	DetailedComparison *Comparison       `json:"detailed_comparison"`
	ComparisonAnalysis string            `json:"comparison_analysis"`
	Recommendations    map[string]string `json:"recommendations"`
	Insights           []string          `json:"insights"`
	ComparisonTable    []ComparisonRow   `json:"comparison_table"`
	Winner             string            `json:"winner"`
	GeneratedAt        string            `json:"generated_at"`
}

// RunResult collects every artifact of one pipeline run.
type RunResult struct {
	Products     []ProductRecord `json:"products"`
	Questions    []Question      `json:"questions"`
	FAQ          *FAQPage        `json:"faq"`
	ProductPages []*ProductPage  `json:"product_pages"`
	Comparison   *ComparisonPage `json:"comparison,omitempty"`
}
