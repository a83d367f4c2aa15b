package models

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction dates are calendar days in YYYY-MM-DD form,
// which keeps lexicographic and chronological order identical.
type Transaction struct {
	ID          string
	UserID      string
	Type        string
	Description string
	Amount      float64
	Category    string
	Date        string
}
