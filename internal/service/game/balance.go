package game

import (
	"context"

	"dice_backend/internal/middleware"
	"dice_backend/internal/model"

	"github.com/shopspring/decimal"
)

func (s *serv) Balance(ctx context.Context) (decimal.Decimal, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, model.ErrUnauthorized
	}
	return s.ledgerRepo.Balance(ctx, userID)
}
