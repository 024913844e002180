package constants

import (
	"strings"
)

type Category string

const (
	TollsParking Category = "tolls/parking"
	Hotel        Category = "hotel"
	Transport    Category = "transport"
	Fuel         Category = "fuel"
	Meals        Category = "meals"
	Phone        Category = "phone"
	Supplies     Category = "supplies"
	Misc         Category = "misc"
)

var allCategories = []Category{
	TollsParking,
	Hotel,
	Transport,
	Fuel,
	Meals,
	Phone,
	Supplies,
	Misc,
}

func Categories() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a model-provided label onto the category enum.
// Unknown or empty labels fall back to Misc; the boolean reports an exact hit.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Misc, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"parking":    TollsParking,
		"toll":       TollsParking,
		"tolls":      TollsParking,
		"lodging":    Hotel,
		"taxi":       Transport,
		"train":      Transport,
		"uber":       Transport,
		"gas":        Fuel,
		"petrol":     Fuel,
		"restaurant": Meals,
		"food":       Meals,
		"mobile":     Phone,
		"cell phone": Phone,
		"stationery": Supplies,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Misc, false
}

// TransportMode is the transport sub-category carried inside transportDetails.
type TransportMode string

const (
	ModeTrain TransportMode = "train"
	ModeCar   TransportMode = "car"
	ModePlane TransportMode = "plane"
)

func TransportModes() []string {
	return []string{string(ModeTrain), string(ModeCar), string(ModePlane)}
}

// ValidTransportMode reports whether s is one of the allowed modes.
func ValidTransportMode(s string) bool {
	switch TransportMode(s) {
	case ModeTrain, ModeCar, ModePlane:
		return true
	}
	return false
}
