package service

import (
	"context"

	"dice_backend/internal/model"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// GameService - player balance and dice rounds, the player comes from ctx
type GameService interface {
	Init(ctx context.Context) (decimal.Decimal, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	Roll(ctx context.Context, req model.RollRequest) (*model.RollResult, error)
	History(ctx context.Context, limit int) ([]model.Transaction, error)
	Odds() model.OddsInfo
	Stats() model.MonitorState
}

// RTPService - calibration runs
type RTPService interface {
	Simulate(ctx context.Context, req model.SimulationRequest) (*model.SimulationReport, error)
	Reports(ctx context.Context, limit int) ([]model.SimulationReport, error)
}
