package domain

import (
	"fmt"
	"strings"
)

var unitSynonyms = map[Category]map[string]string{
	CategoryTemperature: {
		"cel": "c", "celsius": "c", "°c": "c",
		"fah": "f", "fahrenheit": "f", "°f": "f",
		"kelvin": "k",
	},
	CategoryDistance: {
		"metro": "m", "metros": "m",
		"kilometro": "km", "quilometro": "km", "quilômetro": "km",
		"kilometros": "km", "quilometros": "km", "quilômetros": "km",
		"mile": "mi", "miles": "mi", "milha": "mi", "milhas": "mi",
	},
	CategoryWeight: {
		"kilogram": "kg", "kilograma": "kg", "quilograma": "kg", "quilo": "kg",
		"lbs": "lb", "pound": "lb", "pounds": "lb", "libra": "lb", "libras": "lb",
	},
}

// NormalizeUnit maps a unit code or a known synonym to its canonical code.
func NormalizeUnit(c Category, unit string) (string, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if HasUnit(c, u) {
		return u, nil
	}
	if code, ok := unitSynonyms[c][u]; ok {
		return code, nil
	}
	return "", &OpError{
		Op:   "domain.normalize_unit",
		Kind: KindInvalidUnit,
		Err:  fmt.Errorf("unit %q for %s: %w", unit, c, ErrInvalidUnit),
	}
}
