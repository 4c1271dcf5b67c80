package game

import (
	"sync"

	"dice_backend/internal/dice"
	"dice_backend/internal/model"
	"dice_backend/internal/repository"
	"dice_backend/internal/rtp"
	"dice_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Deps - everything a game service needs
type Deps struct {
	TxManager      trm.Manager
	LedgerRepo     repository.LedgerRepository
	StatsRepo      repository.StatsRepository
	Preset         string
	Odds           dice.OddsTable
	Band           rtp.Band
	InitialBalance decimal.Decimal
	Source         dice.Source
}

type serv struct {
	txManager      trm.Manager
	ledgerRepo     repository.LedgerRepository
	statsRepo      repository.StatsRepository
	preset         string
	odds           dice.OddsTable
	band           rtp.Band
	initialBalance decimal.Decimal

	srcMtx sync.Mutex
	src    dice.Source

	infoOnce sync.Once
	info     model.OddsInfo
}

// NewGameService - dice game over the ledger with a fixed deployed odds table
func NewGameService(deps Deps) service.GameService {
	src := deps.Source
	if src == nil {
		src = dice.NewCryptoSource()
	}
	return &serv{
		txManager:      deps.TxManager,
		ledgerRepo:     deps.LedgerRepo,
		statsRepo:      deps.StatsRepo,
		preset:         deps.Preset,
		odds:           deps.Odds,
		band:           deps.Band,
		initialBalance: deps.InitialBalance,
		src:            src,
	}
}

// throw - six dice, the source is shared between requests
func (s *serv) throw() []int {
	s.srcMtx.Lock()
	defer s.srcMtx.Unlock()
	return dice.Throw(s.src)
}
