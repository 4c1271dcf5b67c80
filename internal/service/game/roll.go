package game

import (
	"context"
	"fmt"
	"log"

	"dice_backend/internal/dice"
	"dice_backend/internal/middleware"
	"dice_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Roll - one paid round. The bet and any positive win are appended to the
// ledger in the same transaction, under the player lock.
func (s *serv) Roll(ctx context.Context, req model.RollRequest) (*model.RollResult, error) {
	if !req.Bet.IsPositive() {
		return nil, model.ErrBetNotPositive
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	bet := req.Bet.Round(2)
	if !bet.IsPositive() {
		return nil, model.ErrBetNotPositive
	}

	var res *model.RollResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.ledgerRepo.LockPlayer(txCtx, userID); err != nil {
			return err
		}

		balance, err := s.ledgerRepo.Balance(txCtx, userID)
		if err != nil {
			return err
		}
		if bet.GreaterThan(balance) {
			return model.ErrInsufficientFunds
		}

		if err := s.ledgerRepo.Record(txCtx, userID, bet.Neg(), model.KindBet); err != nil {
			return err
		}

		roll := s.throw()
		category, multiplier, err := dice.Evaluate(roll, s.odds)
		if err != nil {
			return fmt.Errorf("evaluate %v: %w", roll, err)
		}

		win := bet.Mul(decimal.NewFromFloat(multiplier)).Round(2)
		if win.IsPositive() {
			if err := s.ledgerRepo.Record(txCtx, userID, win, model.KindWin); err != nil {
				return err
			}
		}

		res = &model.RollResult{
			Dice:        roll,
			Combination: category.String(),
			Multiplier:  multiplier,
			Bet:         bet,
			WinAmount:   win,
			Balance:     balance.Sub(bet).Add(win),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.UpdateState(res.Bet.InexactFloat64(), res.WinAmount.InexactFloat64())
	if s.statsRepo.Check() {
		log.Printf("rtp alert raised after round of player %d", userID)
	}

	return res, nil
}
