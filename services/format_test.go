package services

import "testing"

func TestFormatMoney_Values(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		input  float64
		expect string
	}{
		{"zero", "฿", 0, "฿0"},
		{"small integer", "฿", 5, "฿5"},
		{"with decimals", "฿", 42.5, "฿42.5"},
		{"rounds to cents", "฿", 1234.567, "฿1,234.57"},
		{"thousands", "฿", 3500, "฿3,500"},
		{"default total", "฿", 227299, "฿227,299"},
		{"millions", "฿", 1234567.89, "฿1,234,567.89"},
		{"negative", "฿", -500, "-฿500"},
		{"other symbol", "$", 1000, "$1,000"},
		{"no symbol", "", 271, "271"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(tt.symbol, tt.input)
			if got != tt.expect {
				t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.symbol, tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{271, "271"},
		{819, "819"},
		{0, "0"},
		{12.5, "12.5"},
		{10.256, "10.26"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			if got := formatNumber(tt.input); got != tt.expect {
				t.Errorf("formatNumber(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatWeight(t *testing.T) {
	if got := formatWeight(273); got != "273 kg" {
		t.Errorf("formatWeight(273) = %q", got)
	}
}
