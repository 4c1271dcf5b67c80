package repository

import (
	"context"
	"errors"

	"dice_backend/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNotFound - requested row does not exist
var ErrNotFound = errors.New("not found")

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// LedgerRepository - append-only balance ledger
type LedgerRepository interface {
	LockPlayer(ctx context.Context, userID int) error
	Record(ctx context.Context, userID int, value decimal.Decimal, kind model.TransactionKind) error
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
	HasTransactions(ctx context.Context, userID int) (bool, error)
	History(ctx context.Context, userID int, limit int) ([]model.Transaction, error)
}

// StatsRepository - live RTP monitor fed by settled rounds
type StatsRepository interface {
	UpdateState(bet, payout float64)
	Check() bool
	Snapshot() model.MonitorState
}

// ReportRepository - stored calibration reports
type ReportRepository interface {
	Save(ctx context.Context, report *model.SimulationReport) (id string, err error)
	Get(ctx context.Context, id string) (*model.SimulationReport, error)
	List(ctx context.Context, limit int) ([]model.SimulationReport, error)
}
