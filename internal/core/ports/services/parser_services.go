package services

import (
	"context"

	"github.com/centsworth/monetize_app/internal/dto"
)

// AmountParserSvc converts free-form monetary values into subunit counts.
type AmountParserSvc interface {
	// ParseAmount parses a string or numeric amount into an integer subunit
	// count plus the resolved currency code.
	ParseAmount(ctx context.Context, req dto.ParseAmountRequest) (*dto.ParseAmountResponse, error)
}
