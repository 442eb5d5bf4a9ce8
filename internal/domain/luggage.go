package domain

import "fmt"

// LuggageCategory classifies a packing-list item.
// The string values are persisted verbatim, so they must not change.
type LuggageCategory string

const (
	LuggageClothes    LuggageCategory = "Clothes"
	LuggageToiletries LuggageCategory = "Toiletries"
	LuggageDocuments  LuggageCategory = "Documents"
	LuggageGadgets    LuggageCategory = "Gadgets"
	LuggageMisc       LuggageCategory = "Misc"
)

// ParseLuggageCategory validates a raw token against the known categories.
// Returns ErrValidation for anything else, including the empty string.
func ParseLuggageCategory(s string) (LuggageCategory, error) {
	switch c := LuggageCategory(s); c {
	case LuggageClothes, LuggageToiletries, LuggageDocuments, LuggageGadgets, LuggageMisc:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown luggage category %q", ErrValidation, s)
}

// LuggageItem is a single entry on the packing checklist.
// AddedBy references a Member ID and may dangle after that member is removed.
type LuggageItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category LuggageCategory `json:"category"`
	Packed   bool            `json:"packed"`
	AddedBy  string          `json:"addedBy"`
}
