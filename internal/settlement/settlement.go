// Package settlement computes who pays whom to zero out a trip's balances.
//
// The engine is a pure function over a Trip snapshot and its derived
// aggregates. It assumes the equal-share policy: every member owes the same
// fraction of total spend regardless of who benefited from which expense.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/pmorken/tripmate/internal/domain"
)

// Settlement is a single directed payment instruction: From owes To Amount.
// From and To are member display names, ready for rendering.
type Settlement struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Calculate reduces per-member balances into pairwise payment instructions.
//
// Each member's balance is their contribution minus an equal share of
// totalExpenses (members absent from memberContributions contributed zero).
// Debtors and creditors are matched greedily in member-sequence order: the
// first debtor pays the first creditor as much as either side can bear, and
// whichever side reaches zero advances. The result lists all payments for
// the first debtor (in creditor order), then the next debtor, and so on.
//
// The greedy matching is deterministic but not transfer-count minimal; that
// trade-off is part of the engine's contract and its output is externally
// observable, so do not swap in a min-flow matching.
//
// Amounts are emitted exactly as computed — display rounding is the
// caller's job.
func Calculate(trip domain.Trip, totalExpenses decimal.Decimal, memberContributions map[string]decimal.Decimal) []Settlement {
	if len(trip.Members) == 0 || totalExpenses.IsZero() {
		return []Settlement{}
	}

	perPersonShare := totalExpenses.Div(decimal.NewFromInt(int64(len(trip.Members))))

	// share struct keeps the member's position implicitly via slice order.
	type share struct {
		memberID string
		amount   decimal.Decimal
	}

	var debtors, creditors []share
	for _, m := range trip.Members {
		balance := memberContributions[m.ID].Sub(perPersonShare)
		switch {
		case balance.IsNegative():
			debtors = append(debtors, share{memberID: m.ID, amount: balance.Neg()})
		case balance.IsPositive():
			creditors = append(creditors, share{memberID: m.ID, amount: balance})
		}
	}

	settlements := []Settlement{}
	for _, d := range debtors {
		owed := d.amount
		for i := range creditors {
			if owed.IsZero() {
				break
			}
			if creditors[i].amount.IsZero() {
				continue
			}

			payment := decimal.Min(owed, creditors[i].amount)
			settlements = append(settlements, Settlement{
				From:   trip.MemberName(d.memberID),
				To:     trip.MemberName(creditors[i].memberID),
				Amount: payment,
			})

			owed = owed.Sub(payment)
			creditors[i].amount = creditors[i].amount.Sub(payment)
		}
	}

	return settlements
}
