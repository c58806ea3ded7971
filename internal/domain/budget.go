package domain

// BudgetCategory selects which spend bucket Categorize reports on.
type BudgetCategory string

// The four budget buckets plus the "all" superset view.
// "all" is every costed item, not the sum of the other four: a stop that
// matches none of the keyword sets still appears in "all", and a stop can
// appear in more than one keyword bucket across separate calls.
const (
	CategoryAll           BudgetCategory = "all"
	CategoryAccommodation BudgetCategory = "accommodation"
	CategoryTransport     BudgetCategory = "transport"
	CategoryFood          BudgetCategory = "food"
	CategoryAttraction    BudgetCategory = "attraction"
)

// BudgetItem is one costed line in a budget report, in its original currency.
type BudgetItem struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Currency string `json:"currency"`
	Note     string `json:"note,omitempty"`
}

// BudgetReport is the categorizer output for one category.
// Total is expressed in the trip's home currency. ColorTag is the display
// hint the frontend styles the report header with.
type BudgetReport struct {
	Items    []BudgetItem `json:"items"`
	Total    int          `json:"total"`
	Title    string       `json:"title"`
	ColorTag string       `json:"color"`
}
