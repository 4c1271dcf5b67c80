package converter

import (
	dto "dice_backend/internal/api/dto/game"
	"dice_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToRollRequest(req dto.RollRequest) model.RollRequest {
	return model.RollRequest{
		Bet: req.Bet,
	}
}

func ToRollResponse(res model.RollResult) dto.RollResponse {
	return dto.RollResponse{
		Dice:        res.Dice,
		Combination: res.Combination,
		Multiplier:  res.Multiplier,
		WinAmount:   res.WinAmount.InexactFloat64(),
		Balance:     res.Balance.InexactFloat64(),
	}
}

func ToBalanceResponse(balance decimal.Decimal) dto.BalanceResponse {
	return dto.BalanceResponse{
		Balance: balance.InexactFloat64(),
	}
}

func ToHistoryResponse(rows []model.Transaction) dto.HistoryResponse {
	out := make([]dto.TransactionResponse, len(rows))
	for i, t := range rows {
		out[i] = dto.TransactionResponse{
			ID:        t.ID,
			Value:     t.Value.InexactFloat64(),
			Type:      string(t.Kind),
			CreatedAt: t.CreatedAt,
		}
	}
	return dto.HistoryResponse{Transactions: out}
}

func ToOddsResponse(info model.OddsInfo) dto.OddsResponse {
	return dto.OddsResponse{
		Preset:   info.Preset,
		Odds:     info.Odds,
		ExactRTP: info.ExactRTP,
		Verdict:  info.Verdict,
	}
}

func ToStatsResponse(s model.MonitorState) dto.StatsResponse {
	alerts := make([]dto.AlertResponse, len(s.Alerts))
	for i, a := range s.Alerts {
		alerts[i] = dto.AlertResponse{
			Timestamp: a.Timestamp,
			Side:      a.Side,
			WindowRTP: a.WindowRTP,
			Profit:    a.Profit,
			Reason:    a.Reason,
		}
	}
	return dto.StatsResponse{
		TotalRounds: s.TotalRounds,
		TotalBet:    s.TotalBet,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		TargetRTP:   s.TargetRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
		WindowFill:  s.WindowFill,
		AlertMode:   s.AlertMode,
		AlertSide:   s.AlertSide,
		Alerts:      alerts,
	}
}
