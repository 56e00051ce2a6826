package rules

import (
	"fmt"
	"strings"
)

// Category groups rules that are applied together
type Category int

const (
	CategoryHeaders Category = iota
	CategoryDates
	CategoryLocations
	CategoryContact
	CategorySpecialCases
	CategoryGeneral
)

// PipelineOrder is the fixed order in which categories are applied during
// normalization. Later categories assume the earlier ones have run.
var PipelineOrder = []Category{
	CategoryHeaders,
	CategoryDates,
	CategoryLocations,
	CategoryContact,
	CategorySpecialCases,
	CategoryGeneral,
}

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryHeaders:
		return "headers"
	case CategoryDates:
		return "dates"
	case CategoryLocations:
		return "locations"
	case CategoryContact:
		return "contact"
	case CategorySpecialCases:
		return "special_cases"
	case CategoryGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name to a Category
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range PipelineOrder {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown rule category %q", name)
}
