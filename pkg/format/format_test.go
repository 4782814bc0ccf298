package format

import "testing"

func ptr(v float64) *float64 { return &v }

func TestPrice(t *testing.T) {
	tests := []struct {
		amount *float64
		want   string
	}{
		{nil, "N/A"},
		{ptr(549), "₪549"},
		{ptr(5490), "₪5,490"},
		{ptr(1234567), "₪1,234,567"},
		{ptr(99.6), "₪100"},
	}

	for _, tt := range tests {
		if got := Price(tt.amount); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2024-01-04", "4 Jan 00:00"},
		{"2024-02-04T10:30:00", "4 Feb 10:30"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		if got := Date(tt.value); got != tt.want {
			t.Errorf("Date(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
