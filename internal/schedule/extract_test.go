package schedule

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestExtractRate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain percent", "0.4000%", "0.4"},
		{"space before sign", "0.25 %", "0.25"},
		{"trailing text", "0.2000% לרבעון", "0.2"},
		{"leading text", "שיעור 1.5%", "1.5"},
		{"first of two", "0.1% ועוד 0.3%", "0.1"},
		{"integer", "2%", "2"},
		{"no percent sign", "25.00 ₪", "0"},
		{"empty", "", "0"},
		{"no digits", "ללא עמלה", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractRate(tt.input); !got.Equal(dec(tt.want)) {
				t.Errorf("ExtractRate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shekel", "25.00 ₪", "25"},
		{"dollar", "23.50 $", "23.5"},
		{"shekel without space", "17.5₪", "17.5"},
		{"shekel preferred over dollar", "3 $ או 12 ₪", "12"},
		{"thousands separator shekel", "7,150.00 ₪", "150"},
		{"thousands separator dollar", "10,680.00 $", "680"},
		{"sign first is not matched", "₪ 25", "0"},
		{"percent only", "0.4%", "0"},
		{"empty", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCurrency(tt.input); !got.Equal(dec(tt.want)) {
				t.Errorf("ExtractCurrency(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTierRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin string
		wantMax string // empty means unbounded
	}{
		{"up to", "עד 25", "0", "25000"},
		{"between", "מעל 25 ועד 50", "25000", "50000"},
		{"between with separator", "מעל 700 ועד 1,000", "700000", "1000000"},
		{"above with separator", "מעל 1,000", "1000000", ""},
		{"extra whitespace", "  מעל  100   ועד 200 ", "100000", "200000"},
		{"fractional", "עד 2.5", "0", "2500"},
		{"unrecognized", "כל סכום", "0", ""},
		{"empty", "", "0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := ParseTierRange(tt.input)
			if !gotMin.Equal(dec(tt.wantMin)) {
				t.Errorf("min = %s, want %s", gotMin, tt.wantMin)
			}
			if tt.wantMax == "" {
				if gotMax != nil {
					t.Errorf("max = %s, want unbounded", gotMax)
				}
				return
			}
			if gotMax == nil {
				t.Fatalf("max is unbounded, want %s", tt.wantMax)
			}
			if !gotMax.Equal(dec(tt.wantMax)) {
				t.Errorf("max = %s, want %s", gotMax, tt.wantMax)
			}
		})
	}
}
