package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a shared expense.
// The string values are persisted verbatim, so they must not change.
type ExpenseCategory string

const (
	ExpenseFood       ExpenseCategory = "Food"
	ExpenseHotel      ExpenseCategory = "Hotel"
	ExpenseTravel     ExpenseCategory = "Travel"
	ExpenseShopping   ExpenseCategory = "Shopping"
	ExpenseActivities ExpenseCategory = "Activities"
	ExpenseMisc       ExpenseCategory = "Misc"
)

// ParseExpenseCategory validates a raw token against the known categories.
// Returns ErrValidation for anything else, including the empty string.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch c := ExpenseCategory(s); c {
	case ExpenseFood, ExpenseHotel, ExpenseTravel, ExpenseShopping, ExpenseActivities, ExpenseMisc:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown expense category %q", ErrValidation, s)
}

// Expense is money spent on behalf of the whole group.
// Amount must be positive; that is enforced by the service layer before an
// expense reaches the store, not by this type.
// PaidBy references a Member ID and may dangle after that member is removed.
type Expense struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category ExpenseCategory `json:"category"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes,omitempty"`
	PaidBy   string          `json:"paidBy"`
}
