// Package translate maps applicant-supplied free text to the portal's
// controlled-vocabulary option labels.
//
// The portal can be switched to English, so translation is a fallback layer:
// callers first try the value as supplied and only translate when selection
// fails in the portal's display language.
package translate

import "strings"

// Category selects which lookup table a value is resolved against.
type Category string

const (
	CategoryCountry       Category = "country"
	CategoryPurpose       Category = "purpose"
	CategoryAirport       Category = "airport"
	CategoryTransportType Category = "transportType"
	CategoryAirline       Category = "airline"
)

// Translator performs lookups over immutable tables fixed at construction.
type Translator struct {
	tables map[Category]map[string]string
}

// NewTranslator builds a translator over the built-in tables.
func NewTranslator() *Translator {
	return &Translator{
		tables: map[Category]map[string]string{
			CategoryCountry:       countryTable,
			CategoryPurpose:       purposeTable,
			CategoryAirport:       airportTable,
			CategoryTransportType: transportTypeTable,
			CategoryAirline:       airlineTable,
		},
	}
}

// Translate resolves value against the category table. Lookup is best effort:
// an unmatched value comes back unchanged and downstream selection may still
// fail on it. Never returns an error.
func (t *Translator) Translate(value string, cat Category) string {
	key := strings.ToUpper(strings.TrimSpace(value))
	if key == "" {
		return value
	}

	table, ok := t.tables[cat]
	if !ok {
		return value
	}

	if hit, ok := table[key]; ok {
		return hit
	}

	// Travel purpose may arrive as a slash-concatenated compound option,
	// e.g. "BUSINESS/MEETING/INCENTIVE". Try each keyword in order.
	if cat == CategoryPurpose && strings.Contains(key, "/") {
		for _, part := range strings.Split(key, "/") {
			part = strings.TrimSpace(part)
			if hit, ok := table[part]; ok {
				return hit
			}
		}
	}

	return value
}

// AirlineName extracts the carrier name from a "CODE - NAME" flight label.
// Input without the separator comes back unchanged.
func AirlineName(value string) string {
	if _, name, found := strings.Cut(value, " - "); found {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(value)
}
