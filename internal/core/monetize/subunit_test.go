package monetize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	usdContext = CurrencyContext{DecimalMark: '.', SubunitToUnit: 100, DecimalPlaces: 2}
	jpyContext = CurrencyContext{DecimalMark: '.', SubunitToUnit: 1, DecimalPlaces: 0}
)

func TestComputeSubunitsFixedPrecision(t *testing.T) {
	tests := []struct {
		name     string
		major    string
		minor    string
		exponent int
		negative bool
		cur      CurrencyContext
		expected string
	}{
		{"whole units only", "1234", "0", 0, false, usdContext, "123400"},
		{"exact decimal places", "1234", "56", 0, false, usdContext, "123456"},
		{"short minor padded", "12", "4", 0, false, usdContext, "1240"},
		{"long minor truncated", "1", "234", 0, false, usdContext, "123"},
		{"long minor rounded up", "1", "235", 0, false, usdContext, "124"},
		{"round digit looked at once only", "1", "2349", 0, false, usdContext, "123"},
		{"negative", "12", "34", 0, true, usdContext, "-1234"},
		{"zero decimal places", "1000", "0", 0, false, jpyContext, "1000"},
		{"zero decimal places rounds up", "1000", "5", 0, false, jpyContext, "1001"},
		{"million multiplier", "1", "5", 6, false, usdContext, "150000000"},
		{"thousand multiplier whole", "3", "0", 3, false, usdContext, "300000"},
		{"trillion multiplier stays exact", "999", "0", 12, false, usdContext, "99900000000000000"},
		{"empty major", "", "5", 0, false, usdContext, "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeSubunits(tt.major, tt.minor, tt.exponent, tt.negative, tt.cur, false)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestComputeSubunitsInfinitePrecision(t *testing.T) {
	tests := []struct {
		name     string
		major    string
		minor    string
		expected string
	}{
		{"fractional subunits survive", "1", "505", "150.5"},
		{"sub-cent fraction", "0", "0001", "0.01"},
		{"integral stays integral", "12", "34", "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeSubunits(tt.major, tt.minor, 0, false, usdContext, true)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}
