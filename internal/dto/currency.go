package dto

import (
	"time"

	"github.com/centsworth/monetize_app/internal/models"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode       string `json:"currencyCode" binding:"required,uppercase,min=2,max=3"`
	Symbol             string `json:"symbol" binding:"required"`
	Name               string `json:"name" binding:"required"`
	DecimalMark        string `json:"decimalMark" binding:"required,len=1"`
	ThousandsSeparator string `json:"thousandsSeparator" binding:"required,len=1"`
	SubunitToUnit      int64  `json:"subunitToUnit" binding:"required,min=1"`
	DecimalPlaces      *int   `json:"decimalPlaces" binding:"required,min=0"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode       string    `json:"currencyCode"`
	Symbol             string    `json:"symbol"`
	Name               string    `json:"name"`
	DecimalMark        string    `json:"decimalMark"`
	ThousandsSeparator string    `json:"thousandsSeparator"`
	SubunitToUnit      int64     `json:"subunitToUnit"`
	DecimalPlaces      int       `json:"decimalPlaces"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy      string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a models.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *models.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:       curr.CurrencyCode,
		Symbol:             curr.Symbol,
		Name:               curr.Name,
		DecimalMark:        curr.DecimalMark,
		ThousandsSeparator: curr.ThousandsSeparator,
		SubunitToUnit:      curr.SubunitToUnit,
		DecimalPlaces:      curr.DecimalPlaces,
		CreatedAt:          curr.CreatedAt,
		CreatedBy:          curr.CreatedBy,
		LastUpdatedAt:      curr.LastUpdatedAt,
		LastUpdatedBy:      curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of models.Currency to response DTOs.
func ToListCurrencyResponse(currencies []models.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
