package monetize

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Registry is the parser's view of the currency registry. Lookup resolves a
// currency identifier to its formatting metadata; DefaultIdentifier is the
// fallback when the input carries neither a symbol nor a code and the caller
// supplied no default of its own.
type Registry interface {
	Lookup(ctx context.Context, identifier string) (CurrencyContext, error)
	DefaultIdentifier() string
}

// Options configures a single parse call. The zero value scans for an ISO code
// only, uses the registry default currency and rounds fractional subunits to
// the currency's decimal places.
type Options struct {
	// DefaultCurrency overrides the registry default when set.
	DefaultCurrency string
	// AssumeFromSymbol tries embedded currency symbols before falling back
	// to ISO-code scanning and then to the default currency.
	AssumeFromSymbol bool
	// InfinitePrecision keeps fractional subunit contributions exact instead
	// of rounding them to the currency's decimal places.
	InfinitePrecision bool
}

// Result is the outcome of a parse: a signed subunit count (integral unless
// infinite precision was requested) and the resolved currency identifier.
type Result struct {
	Subunits     decimal.Decimal
	CurrencyCode string
}

// Parser converts free-form monetary text into subunit counts. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	registry Registry
}

// NewParser returns a Parser backed by the given currency registry.
func NewParser(registry Registry) *Parser {
	return &Parser{registry: registry}
}

// Parse extracts an amount and a currency identity from input. It fails with
// apperrors.ErrInvalidAmount when the numeric body does not match the
// recognized grammar, and propagates registry errors for unknown currencies.
func (p *Parser) Parse(ctx context.Context, input string, opts Options) (Result, error) {
	input = strings.TrimSpace(input)

	code := p.resolveCurrency(input, opts)
	cur, err := p.registry.Lookup(ctx, code)
	if err != nil {
		return Result{}, fmt.Errorf("looking up currency %q: %w", code, err)
	}

	exponent := ExtractMultiplier(input)

	num, negative, err := cleanAmount(input)
	if err != nil {
		return Result{}, err
	}
	major, minor, err := splitMajorMinor(num, cur.DecimalMark)
	if err != nil {
		return Result{}, err
	}

	subunits := computeSubunits(major, minor, exponent, negative, cur, opts.InfinitePrecision)
	return Result{Subunits: subunits, CurrencyCode: code}, nil
}

// resolveCurrency picks the currency identifier for input: an embedded symbol
// (only when opts.AssumeFromSymbol is set), then an embedded 2-3 letter
// uppercase code, then the caller default, then the registry default.
func (p *Parser) resolveCurrency(input string, opts Options) string {
	if opts.AssumeFromSymbol {
		if code, ok := ParseCurrencySymbol(input); ok {
			return code
		}
	}
	if code, ok := ParseCurrencyCode(input); ok {
		return code
	}
	if opts.DefaultCurrency != "" {
		return opts.DefaultCurrency
	}
	return p.registry.DefaultIdentifier()
}
