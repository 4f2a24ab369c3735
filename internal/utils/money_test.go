package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(1234.5); got != "1234.50" {
		t.Fatalf("got %q", got)
	}
	if got := FormatMoney(0); got != "0.00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatBaht(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 THB"},
		{999, "999 THB"},
		{1000, "1,000 THB"},
		{14600, "14,600 THB"},
		{1234567, "1,234,567 THB"},
		{1499.6, "1,500 THB"},
		{-2500, "-2,500 THB"},
	}
	for _, c := range cases {
		if got := FormatBaht(c.in); got != c.want {
			t.Errorf("FormatBaht(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("2024-02-20 - 2024-03-19"); got != "2024-02-20_-_2024-03-19" {
		t.Fatalf("got %q", got)
	}
	if got := SafeFilenamePart("  "); got != "unnamed" {
		t.Fatalf("got %q", got)
	}
	if got := SafeFilenamePart(`a/b\c:d"e'f`); got != "a-b-c-def" {
		t.Fatalf("got %q", got)
	}
}
