package stats_repo

import (
	"dice_backend/internal/model"
	repoModel "dice_backend/internal/repository/stats_repo/model"
	"log"
	"math"
	"sync"
	"time"
)

// maxAlerts - alert log is capped, oldest entries are dropped
const maxAlerts = 100

// StateRepo - in-memory live RTP monitor. It only observes, the deployed odds
// table is never changed from here.
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.RTPState

	period            int64
	criticalDeviation float64
	now               func() time.Time
}

// NewStatsRepository - monitor comparing the window RTP with target every
// period rounds
func NewStatsRepository(target float64, windowSize, period int, criticalDeviation float64) *StateRepo {
	if windowSize <= 0 {
		windowSize = 1
	}
	if period <= 0 {
		period = 1
	}
	return &StateRepo{
		state: repoModel.RTPState{
			TargetRTP:  target,
			Window:     make([]repoModel.RoundResult, 0, windowSize),
			WindowSize: windowSize,
			Alerts:     make([]repoModel.AlertLog, 0),
		},
		period:            int64(period),
		criticalDeviation: criticalDeviation,
		now:               time.Now,
	}
}

// UpdateState - adds a settled round
func (r *StateRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := &r.state
	s.TotalRounds++
	s.TotalBet += bet
	s.TotalPayout += payout
	if s.TotalBet > 0 {
		s.CurrentRTP = s.TotalPayout / s.TotalBet * 100
	}

	round := repoModel.RoundResult{Bet: bet, Payout: payout}
	if len(s.Window) < s.WindowSize {
		s.Window = append(s.Window, round)
	} else {
		old := s.Window[s.WindowNext]
		s.WindowBet -= old.Bet
		s.WindowPay -= old.Payout
		s.Window[s.WindowNext] = round
		s.WindowNext = (s.WindowNext + 1) % s.WindowSize
	}
	s.WindowBet += bet
	s.WindowPay += payout

	if s.WindowBet > 0 {
		s.WindowRTP = s.WindowPay / s.WindowBet * 100
	} else {
		s.WindowRTP = 0
	}
}

// Check - runs every period rounds once the window is full. Returns true when
// a new alert was raised.
func (r *StateRepo) Check() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := &r.state
	if s.TotalRounds == 0 || s.TotalRounds%r.period != 0 || len(s.Window) < s.WindowSize {
		return false
	}

	diff := s.WindowRTP - s.TargetRTP
	absDiff := math.Abs(diff)

	// leave alert mode once the window is back under half the critical deviation
	if s.AlertMode {
		if absDiff < r.criticalDeviation/2 {
			log.Printf("rtp monitor: window RTP back to %.2f%%, alert cleared", s.WindowRTP)
			s.AlertMode = false
			s.AlertSide = ""
		}
		return false
	}

	if absDiff <= r.criticalDeviation {
		return false
	}

	side := "low"
	if diff > 0 {
		side = "high"
	}
	s.AlertMode = true
	s.AlertSide = side

	alert := repoModel.AlertLog{
		Timestamp: r.now(),
		Side:      side,
		Reason:    "window RTP deviates from target",
		WindowRTP: s.WindowRTP,
		Profit:    s.TotalBet - s.TotalPayout,
	}
	s.Alerts = append(s.Alerts, alert)
	if len(s.Alerts) > maxAlerts {
		s.Alerts = s.Alerts[len(s.Alerts)-maxAlerts:]
	}

	log.Printf("rtp monitor: window RTP %.2f%% is %s, target %.2f%%, house profit %.2f",
		s.WindowRTP, side, s.TargetRTP, alert.Profit)

	return true
}

// Snapshot - copy of the current state
func (r *StateRepo) Snapshot() model.MonitorState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s := r.state
	alerts := make([]model.MonitorAlert, len(s.Alerts))
	for i, a := range s.Alerts {
		alerts[i] = model.MonitorAlert{
			Timestamp: a.Timestamp,
			Side:      a.Side,
			WindowRTP: a.WindowRTP,
			Profit:    a.Profit,
			Reason:    a.Reason,
		}
	}

	return model.MonitorState{
		TotalRounds: s.TotalRounds,
		TotalBet:    s.TotalBet,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		TargetRTP:   s.TargetRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
		WindowFill:  len(s.Window),
		AlertMode:   s.AlertMode,
		AlertSide:   s.AlertSide,
		Alerts:      alerts,
	}
}
