package catalog

import (
	"strings"
	"unicode"
)

// HourWindow is an inclusive opening window in whole hours.
// End may exceed 24 for places open past midnight.
type HourWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Hours returns the length of the window.
func (w HourWindow) Hours() int {
	return w.End - w.Start
}

// Contains reports whether the window covers the given hour.
func (w HourWindow) Contains(hour int) bool {
	return w.Start <= hour && hour <= w.End
}

// POI is a single point of interest. Entries are loaded once at package
// init and never mutated, so the catalog is safe to share between
// concurrent planning calls.
type POI struct {
	Name string     `json:"name"`
	Area string     `json:"area"`
	Tags []string   `json:"tags"`
	Open HourWindow `json:"open"`
	URL  string     `json:"url"`
}

// Normalize canonicalizes a user-supplied city name: punctuation is
// stripped (internal spaces and hyphens survive), whitespace trimmed,
// and the result title-cased. "tokyo.", "TOKYO" and "Tokyo" all map to
// "Tokyo"; "new york!" maps to "New York".
func Normalize(city string) string {
	if city == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range city {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return titleCase(strings.TrimSpace(b.String()))
}

// titleCase uppercases the first letter of every word and lowercases
// the rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Lookup returns the POIs for a city, or an empty slice when the city
// is not in the catalog. Matching is case and punctuation insensitive.
func Lookup(city string) []POI {
	normalized := Normalize(city)
	if normalized == "" {
		return nil
	}

	for _, entry := range destinations {
		if entry.City == normalized {
			return entry.POIs
		}
	}

	// Exact key match failed; compare normalized keys as well so
	// catalog entries with unusual casing still resolve.
	for _, entry := range destinations {
		if Normalize(entry.City) == normalized {
			return entry.POIs
		}
	}

	return nil
}

// IsSupported reports whether the catalog has POI data for the city.
func IsSupported(city string) bool {
	return len(Lookup(city)) > 0
}

// SupportedCities lists catalog cities in their declaration order.
func SupportedCities() []string {
	cities := make([]string, 0, len(destinations))
	for _, entry := range destinations {
		cities = append(cities, entry.City)
	}
	return cities
}
