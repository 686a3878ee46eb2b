package dto

// ParseAmountRequest carries one amount to parse. Amount is usually a string
// ("$1,234.56", "1.5M", "R$ 1.234,56") but plain JSON numbers are accepted
// too; any other kind is rejected as unsupported.
type ParseAmountRequest struct {
	Amount any `json:"amount" binding:"required"`

	// Currency overrides the configured default currency when the text
	// itself carries no symbol or ISO code.
	Currency string `json:"currency" binding:"omitempty,uppercase,min=2,max=3"`

	// AssumeFromSymbol and InfinitePrecision override the configured
	// defaults for this request when set.
	AssumeFromSymbol  *bool `json:"assumeFromSymbol"`
	InfinitePrecision *bool `json:"infinitePrecision"`
}

// ParseAmountResponse is the parse outcome. Subunits is rendered as a decimal
// string because its magnitude is unbounded; it is integral unless infinite
// precision was requested.
type ParseAmountResponse struct {
	Subunits     string `json:"subunits"`
	CurrencyCode string `json:"currencyCode"`
}
