package parser

import "testing"

func TestParsePercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"80.00%", 80, true},
		{" 12.5 % ", 12.5, true},
		{"45", 45, true},
		{"NaN%", 0, false},
		{"nan", 0, false},
		{"", 0, false},
		{"%", 0, false},
		{"abc%", 0, false},
		{"inf%", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePercent(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParsePercent(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseNumber_Grouped(t *testing.T) {
	t.Parallel()

	got, ok := ParseNumber("1,25,000.50")
	if !ok || got != 125000.5 {
		t.Fatalf("ParseNumber grouped: got (%v, %v)", got, ok)
	}
	if _, ok := ParseNumber("12abc"); ok {
		t.Fatalf("expected failure for 12abc")
	}
}

func TestIsPercentPlaceholder(t *testing.T) {
	t.Parallel()

	if !IsPercentPlaceholder("NaN%") {
		t.Fatalf("NaN%% should be a placeholder")
	}
	if IsPercentPlaceholder(" NaN%") || IsPercentPlaceholder("nan%") {
		t.Fatalf("placeholder match must be exact")
	}
}
