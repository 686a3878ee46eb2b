package models

// Currency represents a supported currency together with the formatting
// metadata the amount parser needs to interpret raw text.
type Currency struct {
	CurrencyCode       string `db:"currency_code" json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol             string `db:"symbol" json:"symbol"`              // e.g., "$"
	Name               string `db:"name" json:"name"`                  // e.g., "US Dollar"
	DecimalMark        string `db:"decimal_mark" json:"decimalMark"`   // "." or ","
	ThousandsSeparator string `db:"thousands_separator" json:"thousandsSeparator"`
	SubunitToUnit      int64  `db:"subunit_to_unit" json:"subunitToUnit"` // e.g., 100 cents per dollar
	DecimalPlaces      int    `db:"decimal_places" json:"decimalPlaces"`
	AuditFields
}
