package game

import (
	"context"
	"log"

	"dice_backend/internal/middleware"
	"dice_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Init - credits the starting balance once, on the first call for a player
func (s *serv) Init(ctx context.Context) (decimal.Decimal, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, model.ErrUnauthorized
	}

	var balance decimal.Decimal
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.ledgerRepo.LockPlayer(txCtx, userID); err != nil {
			return err
		}

		has, err := s.ledgerRepo.HasTransactions(txCtx, userID)
		if err != nil {
			return err
		}
		if !has {
			if err := s.ledgerRepo.Record(txCtx, userID, s.initialBalance, model.KindInit); err != nil {
				return err
			}
			log.Printf("player %d initialized with %s", userID, s.initialBalance)
		}

		balance, err = s.ledgerRepo.Balance(txCtx, userID)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
