package util

import (
	"math"
	"strings"
	"testing"
)

func TestFormatCount(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0:        "0",
		10:       "10",
		1234:     "1,234",
		1234567:  "1,234,567",
		1234.99:  "1,234",
		-98765.4: "-98,765",
	}
	for in, want := range cases {
		if got := FormatCount(in); got != want {
			t.Fatalf("FormatCount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	if got := FormatCurrency(50000); got != "₹50,000" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCurrency(1234567.6); got != "₹1,234,568" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCurrency(0); got != "₹0" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatOutOfIntegerRange(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e19, math.MaxFloat64} {
		for _, got := range []string{FormatCurrency(v), FormatCount(v)} {
			if strings.Contains(got, "9,223,372") {
				t.Fatalf("value %v wrapped to int64 bounds: %q", v, got)
			}
		}
	}
	if got := FormatCurrency(math.Inf(1)); strings.HasPrefix(got, CurrencySymbol+"-") {
		t.Fatalf("positive overflow rendered negative: %q", got)
	}
	if got := FormatCount(1e19); !strings.HasPrefix(got, "10,000,000") {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	if got := FormatPercent(80); got != "80.00%" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPercent(33.3333); got != "33.33%" {
		t.Fatalf("got %q", got)
	}
}
