package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSafeParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid integer", "100", "100"},
		{"valid decimal", "3.14", "3.14"},
		{"zero", "0", "0"},
		{"negative", "-5.5", "-5.5"},
		{"empty string", "", "0"},
		{"invalid string", "abc", "0"},
		{"whitespace", "  ", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeParse(tt.input)
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("SafeParse(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name         string
		amount, rate string
		want         string
	}{
		{"simple", "100000", "0.2", "200"},
		{"fraction", "1000", "0.1", "1"},
		{"zero rate", "5000", "0", "0"},
		{"zero amount", "0", "0.4", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(SafeParse(tt.amount), SafeParse(tt.rate))
			if !got.Equal(SafeParse(tt.want)) {
				t.Errorf("Percent(%s, %s) = %s, want %s", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestRateOf(t *testing.T) {
	tests := []struct {
		name        string
		part, whole string
		want        string
	}{
		{"quarter", "25", "100", "25"},
		{"small", "10", "1000", "1"},
		{"zero whole", "10", "0", "0"},
		{"zero part", "0", "500", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RateOf(SafeParse(tt.part), SafeParse(tt.whole))
			if !got.Equal(SafeParse(tt.want)) {
				t.Errorf("RateOf(%s, %s) = %s, want %s", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	if got := NonNegative(decimal.NewFromInt(-5)); !got.IsZero() {
		t.Errorf("NonNegative(-5) = %s, want 0", got)
	}
	if got := NonNegative(decimal.NewFromInt(7)); !got.Equal(decimal.NewFromInt(7)) {
		t.Errorf("NonNegative(7) = %s, want 7", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "100"},
		{"11.4", "11.4"},
		{"2584.000", "2584"},
		{"0.0027", "0"},
		{"1111.1111", "1111.11"},
		{"-3.456", "-3.46"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatAmount(SafeParse(tt.input)); got != tt.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
