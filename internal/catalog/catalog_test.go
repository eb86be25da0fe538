package catalog

import "testing"

func TestNormalizeHandlesCaseAndPunctuation(t *testing.T) {
	cases := map[string]string{
		"tokyo":      "Tokyo",
		"TOKYO":      "Tokyo",
		"Tokyo.":     "Tokyo",
		"  tokyo  ":  "Tokyo",
		"new york":   "New York",
		"new york!":  "New York",
		"NEW YORK":   "New York",
		"":           "",
		"singapore?": "Singapore",
	}

	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLookupMatchesInsensitively(t *testing.T) {
	for _, input := range []string{"Tokyo", "tokyo", "TOKYO", "tokyo."} {
		pois := Lookup(input)
		if len(pois) != 10 {
			t.Fatalf("Lookup(%q) returned %d POIs, want 10", input, len(pois))
		}
	}

	if pois := Lookup("new york"); len(pois) != 8 {
		t.Fatalf("Lookup(new york) returned %d POIs, want 8", len(pois))
	}
}

func TestLookupUnknownCityReturnsEmpty(t *testing.T) {
	if pois := Lookup("Atlantis"); len(pois) != 0 {
		t.Fatalf("Lookup(Atlantis) returned %d POIs, want 0", len(pois))
	}
	if pois := Lookup(""); len(pois) != 0 {
		t.Fatalf("Lookup(\"\") returned %d POIs, want 0", len(pois))
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("london") {
		t.Errorf("london should be supported")
	}
	if IsSupported("Atlantis") {
		t.Errorf("Atlantis should not be supported")
	}
	if IsSupported("") {
		t.Errorf("empty city should not be supported")
	}
}

func TestSupportedCitiesKeepsDeclarationOrder(t *testing.T) {
	want := []string{"Tokyo", "Barcelona", "Singapore", "Paris", "New York", "London"}
	got := SupportedCities()

	if len(got) != len(want) {
		t.Fatalf("expected %d cities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("city %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHourWindowContains(t *testing.T) {
	w := HourWindow{Start: 7, End: 14}
	if !w.Contains(7) || !w.Contains(9) || !w.Contains(14) {
		t.Errorf("window [7,14] should contain its bounds and interior")
	}
	if w.Contains(15) || w.Contains(6) {
		t.Errorf("window [7,14] should not contain 6 or 15")
	}

	// Past-midnight windows keep late slots available.
	late := HourWindow{Start: 6, End: 25}
	if !late.Contains(18) {
		t.Errorf("window [6,25] should contain 18")
	}
}
