package domain

import "github.com/shopspring/decimal"

// Summary holds the read-only rollups derived from a Trip snapshot:
// pot totals and per-member breakdowns. It is recomputed from scratch on
// every read — trips are personal-scale, so there is nothing to cache.
type Summary struct {
	// TotalContributions is the sum of all contribution amounts.
	TotalContributions decimal.Decimal
	// TotalExpenses is the sum of all expense amounts.
	TotalExpenses decimal.Decimal
	// Balance is TotalContributions minus TotalExpenses — what is left in
	// (or missing from) the shared pot.
	Balance decimal.Decimal
	// MemberContributions maps member ID to the sum of that member's
	// contributions. Members with no contributions have no entry.
	MemberContributions map[string]decimal.Decimal
	// MemberExpenses maps member ID to the sum of expenses that member paid.
	// Keys may reference removed members; callers must tolerate that.
	MemberExpenses map[string]decimal.Decimal
}

// Summarize computes the Summary for a Trip snapshot.
// Pure: it never modifies the trip and always returns the same result for
// the same snapshot.
func Summarize(t Trip) Summary {
	s := Summary{
		MemberContributions: make(map[string]decimal.Decimal, len(t.Members)),
		MemberExpenses:      make(map[string]decimal.Decimal, len(t.Members)),
	}
	for _, c := range t.Contributions {
		s.TotalContributions = s.TotalContributions.Add(c.Amount)
		s.MemberContributions[c.MemberID] = s.MemberContributions[c.MemberID].Add(c.Amount)
	}
	for _, e := range t.Expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
		s.MemberExpenses[e.PaidBy] = s.MemberExpenses[e.PaidBy].Add(e.Amount)
	}
	s.Balance = s.TotalContributions.Sub(s.TotalExpenses)
	return s
}
