package monetize

import (
	"testing"

	"github.com/centsworth/monetize_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		negative bool
	}{
		{"plain digits", "1234", "1234", false},
		{"symbol and code stripped", "$1,234.56 USD", "1,234.56", false},
		{"leading minus", "-12", "12", true},
		{"trailing minus", "12-", "12", true},
		{"minus before symbol", "-£12", "12", true},
		{"lone trailing period stripped", "12.", "12", false},
		{"lone trailing comma stripped", "12,", "12", false},
		{"apostrophe separator kept", "1'234", "1'234", false},
		{"whitespace and words stripped", " 20 dollars ", "20", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, negative, err := cleanAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, num)
			assert.Equal(t, tt.negative, negative)
		})
	}
}

func TestCleanAmountRejectsInteriorHyphen(t *testing.T) {
	_, _, err := cleanAmount("12-34")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestSplitMajorMinor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		decimalMark rune
		major       string
		minor       string
	}{
		{"no separators", "1234", '.', "1234", "0"},
		{"thousands then decimal", "1,234.56", '.', "1234", "56"},
		{"swapped convention", "1.234,56", ',', "1234", "56"},
		{"two separators without fraction digits", "1,234.", '.', "1234", "0"},

		// Single separator matching the currency's decimal mark.
		{"own decimal mark", "12.34", '.', "12", "34"},
		{"own decimal mark comma", "12,34", ',', "12", "34"},

		// Single separator repeated: thousands grouping.
		{"repeated periods", "1.234.567", ',', "1234567", "0"},
		{"repeated commas", "6,000,000", '.', "6000000", "0"},

		// Single foreign separator, occurring once: grouping-width heuristic.
		{"non-3-digit group is fractional", "1,2345", '.', "1", "2345"},
		{"short fractional group", "12,3", '.', "12", "3"},
		{"wide major keeps decimal reading", "12345,678", '.', "12345", "678"},
		{"period literal stays decimal", "1.234", ',', "1", "234"},
		{"comma with 3-digit group is thousands", "1,234", '.', "1234", "0"},
		{"apostrophe with 3-digit group is thousands", "1'234", '.', "1234", "0"},
		{"leading separator", ",5", '.', "0", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, minor, err := splitMajorMinor(tt.input, tt.decimalMark)
			require.NoError(t, err)
			assert.Equal(t, tt.major, major)
			assert.Equal(t, tt.minor, minor)
		})
	}
}

func TestSplitMajorMinorTooManySeparators(t *testing.T) {
	_, _, err := splitMajorMinor("1.2,3'4", '.')
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
