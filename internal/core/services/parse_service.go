package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/centsworth/monetize_app/internal/apperrors"
	"github.com/centsworth/monetize_app/internal/core/monetize"
	portssvc "github.com/centsworth/monetize_app/internal/core/ports/services"
	"github.com/centsworth/monetize_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ParserDefaults are the configured process-wide defaults for parsing;
// individual requests may override each of them.
type ParserDefaults struct {
	DefaultCurrency   string
	AssumeFromSymbol  bool
	InfinitePrecision bool
}

// ParserService binds the pure parsing core to the currency registry.
type ParserService struct {
	BaseService
	currencySvc portssvc.CurrencyReaderSvc
	parser      *monetize.Parser
	defaults    ParserDefaults
}

func NewParserService(currencySvc portssvc.CurrencyReaderSvc, defaults ParserDefaults) *ParserService {
	s := &ParserService{
		currencySvc: currencySvc,
		defaults:    defaults,
	}
	s.parser = monetize.NewParser(&registryAdapter{
		currencySvc: currencySvc,
		fallback:    defaults.DefaultCurrency,
	})
	return s
}

// ParseAmount parses a string or numeric amount into a subunit count plus the
// resolved currency code.
func (s *ParserService) ParseAmount(ctx context.Context, req dto.ParseAmountRequest) (*dto.ParseAmountResponse, error) {
	opts := s.options(req)

	switch amount := req.Amount.(type) {
	case string:
		res, err := s.parser.Parse(ctx, amount, opts)
		if err != nil {
			return nil, err
		}
		return &dto.ParseAmountResponse{
			Subunits:     res.Subunits.String(),
			CurrencyCode: res.CurrencyCode,
		}, nil

	case float64:
		return s.parseNumeric(ctx, decimal.NewFromFloat(amount), opts)

	case json.Number:
		value, err := decimal.NewFromString(amount.String())
		if err != nil {
			return nil, fmt.Errorf("amount %q: %w", amount.String(), apperrors.ErrInvalidAmount)
		}
		return s.parseNumeric(ctx, value, opts)

	case int:
		return s.parseNumeric(ctx, decimal.NewFromInt(int64(amount)), opts)

	case int64:
		return s.parseNumeric(ctx, decimal.NewFromInt(amount), opts)

	default:
		return nil, fmt.Errorf("amount of type %T: %w", req.Amount, apperrors.ErrUnsupportedValueType)
	}
}

// parseNumeric converts a numeric amount, expressed in major units of the
// default (or requested) currency, into subunits.
func (s *ParserService) parseNumeric(ctx context.Context, value decimal.Decimal, opts monetize.Options) (*dto.ParseAmountResponse, error) {
	code := opts.DefaultCurrency
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("looking up currency %q: %w", code, err)
	}

	subunits := value.Mul(decimal.NewFromInt(currency.SubunitToUnit))
	if !opts.InfinitePrecision {
		subunits = subunits.Round(0)
	}

	return &dto.ParseAmountResponse{
		Subunits:     subunits.String(),
		CurrencyCode: code,
	}, nil
}

// options merges the configured defaults with the request's overrides.
func (s *ParserService) options(req dto.ParseAmountRequest) monetize.Options {
	opts := monetize.Options{
		DefaultCurrency:   s.defaults.DefaultCurrency,
		AssumeFromSymbol:  s.defaults.AssumeFromSymbol,
		InfinitePrecision: s.defaults.InfinitePrecision,
	}
	if req.Currency != "" {
		opts.DefaultCurrency = req.Currency
	}
	if req.AssumeFromSymbol != nil {
		opts.AssumeFromSymbol = *req.AssumeFromSymbol
	}
	if req.InfinitePrecision != nil {
		opts.InfinitePrecision = *req.InfinitePrecision
	}
	return opts
}

// registryAdapter exposes the currency service as the parser's registry.
type registryAdapter struct {
	currencySvc portssvc.CurrencyReaderSvc
	fallback    string
}

func (r *registryAdapter) Lookup(ctx context.Context, identifier string) (monetize.CurrencyContext, error) {
	currency, err := r.currencySvc.GetCurrencyByCode(ctx, identifier)
	if err != nil {
		return monetize.CurrencyContext{}, err
	}

	mark := '.'
	if runes := []rune(currency.DecimalMark); len(runes) > 0 {
		mark = runes[0]
	}

	return monetize.CurrencyContext{
		DecimalMark:   mark,
		SubunitToUnit: currency.SubunitToUnit,
		DecimalPlaces: currency.DecimalPlaces,
	}, nil
}

func (r *registryAdapter) DefaultIdentifier() string { return r.fallback }
