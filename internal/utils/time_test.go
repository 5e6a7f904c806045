package utils

import "testing"

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-01-15 ")
	if err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	if FormatDate(d) != "2025-01-15" {
		t.Fatalf("round trip failed: %s", FormatDate(d))
	}

	if _, err := ParseDate("2024-13-40"); err == nil {
		t.Fatalf("impossible calendar date must not parse")
	}
	if _, err := ParseDate("15/01/2025"); err == nil {
		t.Fatalf("wrong layout must not parse")
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("08:30"); err != nil {
		t.Fatalf("expected valid clock, got %v", err)
	}
	if _, err := ParseClock("25:99"); err == nil {
		t.Fatalf("out-of-range clock must not parse")
	}
	if _, err := ParseClock(""); err == nil {
		t.Fatalf("empty clock must not parse")
	}
}
