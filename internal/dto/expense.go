package dto

// CreateExpenseRequest carries amounts as strings so they parse into exact
// decimals instead of floats.
type CreateExpenseRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Micro       bool   `json:"micro"`
	Date        string `json:"date"` // YYYY-MM-DD, defaults to today
}

type ExpenseResponse struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Micro        bool   `json:"micro"`
	DailyCeiling string `json:"daily_ceiling,omitempty"`
	Date         string `json:"date"`
	CreatedAt    string `json:"created_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}
