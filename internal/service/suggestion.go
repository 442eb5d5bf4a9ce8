package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pmorken/tripmate/internal/domain"
)

// ExpenseSuggestion is the structured candidate a receipt-scanning
// collaborator extracts from an image or free text. It is untrusted input:
// committing it runs through exactly the same validation as manual entry,
// so a garbled scan can never put a bad expense into the trip.
type ExpenseSuggestion struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Date   string `json:"date,omitempty"`
}

// CommitSuggestion validates a scanned suggestion and records it as an
// expense paid by the given member. An empty category falls back to Misc,
// since scanners return only title, amount, and date.
func (s *TripService) CommitSuggestion(ctx context.Context, sug ExpenseSuggestion, paidBy string, category domain.ExpenseCategory) (domain.Trip, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(sug.Amount))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%w: suggested amount %q is not a number", domain.ErrValidation, sug.Amount)
	}

	if category == "" {
		category = domain.ExpenseMisc
	}

	expense := domain.Expense{
		Title:    strings.TrimSpace(sug.Title),
		Amount:   amount,
		Category: category,
		PaidBy:   paidBy,
	}

	if sug.Date != "" {
		date, err := parseSuggestedDate(sug.Date)
		if err != nil {
			return domain.Trip{}, err
		}
		expense.Date = date
	}

	return s.AddExpense(ctx, expense)
}

// parseSuggestedDate accepts the two formats scanners produce: a full
// RFC 3339 timestamp or a bare calendar date.
func parseSuggestedDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: suggested date %q is not ISO-8601", domain.ErrValidation, raw)
}
