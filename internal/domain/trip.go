// Package domain contains the core data types for the TripMate application.
// The only dependency is shopspring/decimal for currency amounts; every other
// internal package (store, repo, service, handler) imports this one.
//
// The JSON tags on these types are the interchange format for export/import
// and for the persisted snapshot, so field names and enum tokens must stay
// stable.
package domain

// Member is a person on the trip.
// Members are never edited in place; they are added and removed whole.
// Names are compared case-insensitively for uniqueness on add.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Trip is the aggregate root: one journey with its members, packing list,
// expenses, and contributions. It is the sole unit of persistence and the
// sole input to the settlement engine.
//
// Child collections are keyed by ID (unique within their collection) but kept
// as insertion-ordered slices — order matters for display and for settlement
// tie-breaks, not for identity.
type Trip struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Members       []Member       `json:"members"`
	Luggage       []LuggageItem  `json:"luggage"`
	Expenses      []Expense      `json:"expenses"`
	Contributions []Contribution `json:"contributions"`
}

// MemberName resolves a member ID to its display name.
// Removed members may still be referenced by luggage, expenses, or
// contributions; those lookups resolve to "Unknown" rather than failing.
func (t Trip) MemberName(id string) string {
	for _, m := range t.Members {
		if m.ID == id {
			return m.Name
		}
	}
	return "Unknown"
}
