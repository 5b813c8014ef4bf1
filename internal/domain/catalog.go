package domain

import (
	"fmt"
	"strings"
)

// Category is a measurement domain; it decides which units are selectable.
type Category string

const (
	CategoryTemperature Category = "temperature"
	CategoryDistance    Category = "distance"
	CategoryWeight      Category = "weight"
)

// Label is the fixed display name shown in the category selector.
func (c Category) Label() string {
	switch c {
	case CategoryTemperature:
		return "Temperatura"
	case CategoryDistance:
		return "Distância"
	case CategoryWeight:
		return "Peso"
	default:
		return string(c)
	}
}

// UnitOption is one selectable unit within a category.
type UnitOption struct {
	Code  string
	Label string
}

// Display renders the option the way the selectors show it, e.g. "Celsius (c)".
func (u UnitOption) Display() string {
	return fmt.Sprintf("%s (%s)", u.Label, u.Code)
}

// categories keeps the catalog order; map iteration would not.
var categories = []Category{CategoryTemperature, CategoryDistance, CategoryWeight}

var unitCatalog = map[Category][]UnitOption{
	CategoryTemperature: {
		{Code: "c", Label: "Celsius"},
		{Code: "f", Label: "Fahrenheit"},
		{Code: "k", Label: "Kelvin"},
	},
	CategoryDistance: {
		{Code: "m", Label: "Metro"},
		{Code: "km", Label: "Quilômetro"},
		{Code: "mi", Label: "Milha"},
	},
	CategoryWeight: {
		{Code: "kg", Label: "Quilograma"},
		{Code: "lb", Label: "Libra"},
	},
}

// Categories returns every category in catalog order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Units returns a copy of the ordered unit options for a category.
// Unknown categories yield nil.
func Units(c Category) []UnitOption {
	opts, ok := unitCatalog[c]
	if !ok {
		return nil
	}
	out := make([]UnitOption, len(opts))
	copy(out, opts)
	return out
}

// ParseCategory accepts a category code in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := unitCatalog[c]; !ok {
		return "", fmt.Errorf("unknown category %q (expected temperature|distance|weight)", s)
	}
	return c, nil
}

// HasUnit reports whether code is a canonical unit of the category.
func HasUnit(c Category, code string) bool {
	for _, u := range unitCatalog[c] {
		if u.Code == code {
			return true
		}
	}
	return false
}
