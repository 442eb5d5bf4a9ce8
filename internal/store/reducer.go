package store

import (
	"slices"
	"strings"

	"github.com/pmorken/tripmate/internal/domain"
)

// Reduce applies one action to a Trip snapshot and returns the next snapshot.
//
// Reduce is pure and total: it never mutates its input (child slices are
// copied before any change), never fails, and a nil or unrecognized action
// returns the state unchanged. Validation does not happen here — callers
// dispatch only well-formed actions.
func Reduce(state domain.Trip, action Action) domain.Trip {
	switch a := action.(type) {
	case ReplaceState:
		return a.Trip

	case RenameTrip:
		state.Name = a.Name
		return state

	case AddMember:
		for _, m := range state.Members {
			if strings.EqualFold(m.Name, a.Member.Name) {
				return state
			}
		}
		state.Members = append(slices.Clone(state.Members), a.Member)
		return state

	case RemoveMember:
		state.Members = slices.DeleteFunc(slices.Clone(state.Members), func(m domain.Member) bool {
			return m.ID == a.MemberID
		})
		return state

	case AddLuggage:
		state.Luggage = append(slices.Clone(state.Luggage), a.Item)
		return state

	case UpdateLuggage:
		state.Luggage = replaceByID(state.Luggage, a.Item, func(it domain.LuggageItem) string { return it.ID })
		return state

	case RemoveLuggage:
		state.Luggage = slices.DeleteFunc(slices.Clone(state.Luggage), func(it domain.LuggageItem) bool {
			return it.ID == a.ItemID
		})
		return state

	case AddExpense:
		state.Expenses = append(slices.Clone(state.Expenses), a.Expense)
		return state

	case UpdateExpense:
		state.Expenses = replaceByID(state.Expenses, a.Expense, func(e domain.Expense) string { return e.ID })
		return state

	case RemoveExpense:
		state.Expenses = slices.DeleteFunc(slices.Clone(state.Expenses), func(e domain.Expense) bool {
			return e.ID == a.ExpenseID
		})
		return state

	case AddContribution:
		contributions := slices.Clone(state.Contributions)
		for i, c := range contributions {
			if c.MemberID == a.MemberID {
				// Merge by summation into the existing record; its ID stays.
				contributions[i].Amount = c.Amount.Add(a.Amount)
				state.Contributions = contributions
				return state
			}
		}
		state.Contributions = append(contributions, domain.Contribution{
			ID:       a.ContributionID,
			MemberID: a.MemberID,
			Amount:   a.Amount,
		})
		return state

	default:
		return state
	}
}

// replaceByID returns a copy of items with the element whose ID matches
// replacement swapped out. When no element matches, the original slice is
// returned untouched.
func replaceByID[T any](items []T, replacement T, id func(T) string) []T {
	target := id(replacement)
	for i := range items {
		if id(items[i]) == target {
			out := slices.Clone(items)
			out[i] = replacement
			return out
		}
	}
	return items
}
