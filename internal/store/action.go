// Package store owns the current Trip snapshot and the closed set of
// mutations that can be applied to it.
//
// Mutations are expressed as a sealed tagged-variant Action type reduced by
// a pure function, so every state transition is covered by an exhaustive
// type switch and adding a new action kind is a compile-time-checked change.
package store

import (
	"github.com/shopspring/decimal"

	"github.com/pmorken/tripmate/internal/domain"
)

// Action is one mutation of the Trip state. The set of actions is closed:
// only types in this package implement it.
type Action interface {
	// isAction seals the interface.
	isAction()
}

// ReplaceState swaps in a whole new Trip verbatim. Used for import and for
// adopting an out-of-band update of the persisted snapshot.
type ReplaceState struct {
	Trip domain.Trip
}

// RenameTrip replaces the trip's display name.
type RenameTrip struct {
	Name string
}

// AddMember appends a member. If a member with the same name already exists
// (compared case-insensitively) the action is a no-op.
type AddMember struct {
	Member domain.Member
}

// RemoveMember removes the member with the given ID from the members
// sequence. Luggage, expenses, and contributions referencing the member are
// deliberately left untouched; dangling references are tolerated everywhere
// downstream.
type RemoveMember struct {
	MemberID string
}

// AddLuggage appends a packing-list item.
type AddLuggage struct {
	Item domain.LuggageItem
}

// UpdateLuggage replaces the item with a matching ID. No match, no change.
type UpdateLuggage struct {
	Item domain.LuggageItem
}

// RemoveLuggage removes the item with the given ID.
type RemoveLuggage struct {
	ItemID string
}

// AddExpense appends an expense.
type AddExpense struct {
	Expense domain.Expense
}

// UpdateExpense replaces the expense with a matching ID. No match, no change.
type UpdateExpense struct {
	Expense domain.Expense
}

// RemoveExpense removes the expense with the given ID.
type RemoveExpense struct {
	ExpenseID string
}

// AddContribution records money paid into the pot by a member. If the member
// already has a contribution record its amount is incremented in place
// (record and record ID reused); otherwise a new record is created with
// ContributionID.
//
// ContributionID is supplied by the caller rather than minted in the reducer
// so that reducing the same (state, action) pair always yields the same
// next state.
type AddContribution struct {
	ContributionID string
	MemberID       string
	Amount         decimal.Decimal
}

func (ReplaceState) isAction()    {}
func (RenameTrip) isAction()      {}
func (AddMember) isAction()       {}
func (RemoveMember) isAction()    {}
func (AddLuggage) isAction()      {}
func (UpdateLuggage) isAction()   {}
func (RemoveLuggage) isAction()   {}
func (AddExpense) isAction()      {}
func (UpdateExpense) isAction()   {}
func (RemoveExpense) isAction()   {}
func (AddContribution) isAction() {}
