package domain

import "github.com/shopspring/decimal"

// Contribution is money a member has paid into the shared pot.
// In steady state there is at most one Contribution per member: adding a
// second contribution for the same member merges by summation into the
// existing record (keeping its ID) instead of creating a duplicate.
// MemberID may dangle after that member is removed.
type Contribution struct {
	ID       string          `json:"id"`
	MemberID string          `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
}
