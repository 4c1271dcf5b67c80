package model

import "github.com/shopspring/decimal"

type RollRequest struct {
	Bet decimal.Decimal
}

type RollResult struct {
	Dice        []int
	Combination string
	Multiplier  float64
	Bet         decimal.Decimal
	WinAmount   decimal.Decimal
	Balance     decimal.Decimal
}

// OddsInfo - deployed odds table with its exact long-run return
type OddsInfo struct {
	Preset   string
	Odds     map[string]float64
	ExactRTP float64
	Verdict  string
}
