package ports

import (
	"context"

	"github.com/centsworth/monetize_app/internal/models"
)

// CurrencyRepository defines persistence operations for Currencies.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency models.Currency) error // Upsert, primarily for setup
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
}
