package model

import "time"

// RTPState - running totals of settled rounds
type RTPState struct {
	TotalRounds int64   // settled rounds
	TotalBet    float64 // sum of bets
	TotalPayout float64 // sum of wins

	CurrentRTP float64 // TotalPayout/TotalBet*100
	TargetRTP  float64 // middle of the target band

	Alerts []AlertLog // raised alerts, oldest first

	AlertMode bool   // window RTP is outside the tolerated range
	AlertSide string // "high" or "low"

	Window     []RoundResult // ring buffer of the last rounds
	WindowNext int           // next slot to overwrite once full
	WindowBet  float64
	WindowPay  float64
	WindowRTP  float64
	WindowSize int
}

// AlertLog - one raised alert
type AlertLog struct {
	Timestamp time.Time
	Side      string
	Reason    string
	WindowRTP float64
	Profit    float64
}

// RoundResult - one round in the window
type RoundResult struct {
	Bet    float64
	Payout float64
}
