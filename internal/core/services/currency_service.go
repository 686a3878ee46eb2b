package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centsworth/monetize_app/internal/apperrors"
	"github.com/centsworth/monetize_app/internal/core/ports"
	"github.com/centsworth/monetize_app/internal/dto"
	"github.com/centsworth/monetize_app/internal/models"
)

type CurrencyService struct {
	BaseService
	currencyRepo ports.CurrencyRepository
}

func NewCurrencyService(currencyRepo ports.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*models.Currency, error) {
	// Shape validation (required, uppercase, lengths) is handled by DTO binding.
	if req.DecimalMark == req.ThousandsSeparator {
		return nil, fmt.Errorf("decimal mark and thousands separator must differ: %w", apperrors.ErrValidation)
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing currency: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("currency %s: %w", req.CurrencyCode, apperrors.ErrDuplicate)
	}

	now := time.Now()
	currency := models.Currency{
		CurrencyCode:       req.CurrencyCode,
		Symbol:             req.Symbol,
		Name:               req.Name,
		DecimalMark:        req.DecimalMark,
		ThousandsSeparator: req.ThousandsSeparator,
		SubunitToUnit:      req.SubunitToUnit,
		DecimalPlaces:      *req.DecimalPlaces,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to create currency", "currency_code", req.CurrencyCode)
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []models.Currency{}, nil
	}
	return currencies, nil
}
