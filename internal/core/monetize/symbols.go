package monetize

import (
	"regexp"
	"sort"
	"strings"
)

// symbolMapping binds a literal currency symbol to its ISO 4217 code.
type symbolMapping struct {
	Symbol string
	Code   string
}

// currencySymbols is the reference symbol-to-code table. Order is preserved
// verbatim from the reference data; note that "R$" must win over bare "R",
// which the longest-symbol-first pattern below guarantees structurally.
var currencySymbols = []symbolMapping{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"₤", "GBP"},
	{"R$", "BRL"},
	{"R", "ZAR"},
	{"¥", "JPY"},
	{"C$", "CAD"},
	{"₼", "AZN"},
	{"元", "CNY"},
	{"Kč", "CZK"},
	{"Ft", "HUF"},
	{"₹", "INR"},
	{"₽", "RUB"},
	{"лв", "BGN"},
	{"₺", "TRY"},
	{"₴", "UAH"},
	{"Fr", "CHF"},
	{"zł", "PLN"},
	{"₸", "KZT"},
	{"₩", "KRW"},
	{"S$", "SGD"},
	{"HK$", "HKD"},
	{"NT$", "TWD"},
	{"₱", "PHP"},
	{"RM", "MYR"},
}

var (
	symbolPattern  = regexp.MustCompile(buildSymbolPattern())
	symbolToCode   = buildSymbolIndex()
	isoCodePattern = regexp.MustCompile(`[A-Z]{2,3}`)
)

// buildSymbolPattern assembles an anchored alternation over the symbol table,
// allowing an optional sign before the symbol. Alternatives are ordered by
// descending symbol length (stable within equal lengths) so that a symbol which
// is a prefix of another never absorbs the longer one's matches.
func buildSymbolPattern() string {
	ordered := make([]symbolMapping, len(currencySymbols))
	copy(ordered, currencySymbols)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Symbol) > len(ordered[j].Symbol)
	})

	quoted := make([]string, len(ordered))
	for i, m := range ordered {
		quoted[i] = regexp.QuoteMeta(m.Symbol)
	}
	return `^[+-]?(` + strings.Join(quoted, "|") + `)`
}

func buildSymbolIndex() map[string]string {
	index := make(map[string]string, len(currencySymbols))
	for _, m := range currencySymbols {
		index[m.Symbol] = m.Code
	}
	return index
}

// ParseCurrencySymbol reports the currency code of a known symbol at the start
// of input (after an optional +/- sign). It returns false if no symbol matches.
func ParseCurrencySymbol(input string) (string, bool) {
	match := symbolPattern.FindStringSubmatch(input)
	if match == nil {
		return "", false
	}
	code, ok := symbolToCode[match[1]]
	return code, ok
}

// ParseCurrencyCode scans input for the first run of 2-3 uppercase letters and
// returns it verbatim as a candidate ISO code. Whether the code denotes a real
// currency is the registry's concern, not ours.
func ParseCurrencyCode(input string) (string, bool) {
	code := isoCodePattern.FindString(input)
	return code, code != ""
}
