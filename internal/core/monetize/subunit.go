package monetize

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyContext carries the formatting metadata the parser needs about a
// resolved currency. It is supplied by the currency registry and never
// modified here.
type CurrencyContext struct {
	DecimalMark   rune
	SubunitToUnit int64
	DecimalPlaces int
}

// computeSubunits combines the major/minor digit strings, the multiplier
// exponent and the currency metadata into a signed subunit count. All
// arithmetic is arbitrary precision; the result is integral unless
// infinitePrecision keeps an exact fractional remainder.
func computeSubunits(major, minor string, exponent int, negative bool, cur CurrencyContext, infinitePrecision bool) decimal.Decimal {
	subunits := digitsValue(major)
	subunits.Mul(subunits, big.NewInt(cur.SubunitToUnit))
	subunits.Mul(subunits, pow10(exponent))

	// The multiplier pulls the leading exponent digits of the fractional
	// part up into whole subunits. The shifted prefix is valued at 100
	// subunits per unit even when the currency's ratio differs; callers
	// depend on this historical behavior, so it is not generalized.
	minor += strings.Repeat("0", exponent)
	shifted := digitsValue(minor[:exponent])
	shifted.Mul(shifted, big.NewInt(100))
	subunits.Add(subunits, shifted)
	minor = minor[exponent:]

	total := decimal.NewFromBigInt(subunits, 0)

	if infinitePrecision {
		if minor != "" {
			frac := decimal.RequireFromString("0." + minor)
			total = total.Add(frac.Mul(decimal.NewFromInt(cur.SubunitToUnit)))
		}
	} else {
		switch places := cur.DecimalPlaces; {
		case len(minor) < places:
			minor += strings.Repeat("0", places-len(minor))
		case len(minor) > places:
			// Round half up on the first dropped digit only.
			roundUp := minor[places] >= '5'
			minor = minor[:places]
			if roundUp {
				total = total.Add(decimal.NewFromInt(1))
			}
		}
		total = total.Add(decimal.NewFromBigInt(digitsValue(minor), 0))
	}

	if negative {
		total = total.Neg()
	}
	return total
}

// digitsValue converts a string of decimal digits to a big integer; an empty
// string counts as zero.
func digitsValue(digits string) *big.Int {
	n := new(big.Int)
	if digits == "" {
		return n
	}
	n.SetString(digits, 10)
	return n
}

func pow10(exponent int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exponent)), nil)
}
