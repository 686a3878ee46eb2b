package monetize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrencySymbol(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"dollar", "$1,234.56", "USD", true},
		{"euro", "€1.234,56", "EUR", true},
		{"pound", "£12", "GBP", true},
		{"pound lira sign", "₤12", "GBP", true},
		{"real wins over rand", "R$100", "BRL", true},
		{"bare R is rand", "R100", "ZAR", true},
		{"hong kong dollar wins over dollar", "HK$7", "HKD", true},
		{"taiwan dollar wins over dollar", "NT$7", "TWD", true},
		{"singapore dollar", "S$3", "SGD", true},
		{"leading minus before symbol", "-$5.00", "USD", true},
		{"leading plus before symbol", "+€5", "EUR", true},
		{"yen", "¥1000", "JPY", true},
		{"symbol not at start", "100$", "", false},
		{"no symbol", "1234", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ParseCurrencySymbol(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestParseCurrencyCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"trailing code", "100 EUR", "EUR", true},
		{"leading code", "USD 100", "USD", true},
		{"two letter run", "10 RM", "RM", true},
		{"single uppercase letter ignored", "1.5M", "", false},
		{"lowercase ignored", "100 usd", "", false},
		{"no code", "1,234.56", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ParseCurrencyCode(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

// A symbol that is a textual prefix of another must never absorb the longer
// symbol's matches, whatever order the table is declared in.
func TestSymbolPrefixPrecedence(t *testing.T) {
	for _, outer := range currencySymbols {
		for _, inner := range currencySymbols {
			if outer.Symbol == inner.Symbol {
				continue
			}
			if len(outer.Symbol) > len(inner.Symbol) && outer.Symbol[:len(inner.Symbol)] == inner.Symbol {
				code, ok := ParseCurrencySymbol(outer.Symbol + "100")
				assert.True(t, ok)
				assert.Equal(t, outer.Code, code, "symbol %q absorbed by prefix %q", outer.Symbol, inner.Symbol)
			}
		}
	}
}
