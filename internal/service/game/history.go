package game

import (
	"context"

	"dice_backend/internal/middleware"
	"dice_backend/internal/model"
)

func (s *serv) History(ctx context.Context, limit int) ([]model.Transaction, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	return s.ledgerRepo.History(ctx, userID, limit)
}
