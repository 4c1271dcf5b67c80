package game

import (
	"time"

	"github.com/shopspring/decimal"
)

type RollRequest struct {
	Bet decimal.Decimal `json:"bet"` // accepts 10, 10.5 or "10.50"
}

type RollResponse struct {
	Dice        []int   `json:"dice"`
	Combination string  `json:"combination"`
	Multiplier  float64 `json:"multiplier"`
	WinAmount   float64 `json:"win_amount"`
	Balance     float64 `json:"balance"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type TransactionResponse struct {
	ID        int64     `json:"id"`
	Value     float64   `json:"value"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type OddsResponse struct {
	Preset   string             `json:"preset"`
	Odds     map[string]float64 `json:"odds"`
	ExactRTP float64            `json:"exact_rtp"`
	Verdict  string             `json:"verdict"`
}

type AlertResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Side      string    `json:"side"`
	WindowRTP float64   `json:"window_rtp"`
	Profit    float64   `json:"profit"`
	Reason    string    `json:"reason"`
}

type StatsResponse struct {
	TotalRounds int64           `json:"total_rounds"`
	TotalBet    float64         `json:"total_bet"`
	TotalPayout float64         `json:"total_payout"`
	CurrentRTP  float64         `json:"current_rtp"`
	TargetRTP   float64         `json:"target_rtp"`
	WindowRTP   float64         `json:"window_rtp"`
	WindowSize  int             `json:"window_size"`
	WindowFill  int             `json:"window_fill"`
	AlertMode   bool            `json:"alert_mode"`
	AlertSide   string          `json:"alert_side,omitempty"`
	Alerts      []AlertResponse `json:"alerts"`
}
