package stats_repo

import (
	"math"
	"sync"
	"testing"
)

func TestUpdateStateTotals(t *testing.T) {
	r := NewStatsRepository(95, 3, 1, 10)

	r.UpdateState(10, 0)
	r.UpdateState(10, 20)
	r.UpdateState(10, 8.2)
	r.UpdateState(10, 0)

	s := r.Snapshot()
	if s.TotalRounds != 4 {
		t.Errorf("TotalRounds = %d, want 4", s.TotalRounds)
	}
	if s.TotalBet != 40 || math.Abs(s.TotalPayout-28.2) > 1e-9 {
		t.Errorf("totals = %v / %v", s.TotalBet, s.TotalPayout)
	}
	if math.Abs(s.CurrentRTP-70.5) > 1e-9 {
		t.Errorf("CurrentRTP = %v, want 70.5", s.CurrentRTP)
	}
	// window holds the last three rounds: 20 + 8.2 + 0 over 30
	if s.WindowFill != 3 {
		t.Errorf("WindowFill = %d, want 3", s.WindowFill)
	}
	if math.Abs(s.WindowRTP-94) > 1e-9 {
		t.Errorf("WindowRTP = %v, want 94", s.WindowRTP)
	}
}

func TestCheckRaisesAndClearsAlert(t *testing.T) {
	r := NewStatsRepository(95, 4, 4, 10)

	// four losing rounds: window RTP 0, far below target
	for i := 0; i < 4; i++ {
		r.UpdateState(10, 0)
	}
	if !r.Check() {
		t.Fatal("expected alert on cold window")
	}
	s := r.Snapshot()
	if !s.AlertMode || s.AlertSide != "low" || len(s.Alerts) != 1 {
		t.Fatalf("state after alert = %+v", s)
	}

	// already in alert mode, no duplicate alert
	for i := 0; i < 4; i++ {
		r.UpdateState(10, 0)
	}
	if r.Check() {
		t.Error("duplicate alert raised")
	}

	// window back on target
	for i := 0; i < 4; i++ {
		r.UpdateState(10, 9.5)
	}
	r.Check()
	s = r.Snapshot()
	if s.AlertMode {
		t.Errorf("alert not cleared, window RTP %v", s.WindowRTP)
	}
}

func TestCheckWaitsForFullWindowAndPeriod(t *testing.T) {
	r := NewStatsRepository(95, 10, 5, 10)

	for i := 0; i < 5; i++ {
		r.UpdateState(10, 0)
	}
	if r.Check() {
		t.Error("alert raised before the window filled")
	}

	for i := 0; i < 6; i++ {
		r.UpdateState(10, 0)
	}
	// 11 rounds, not a multiple of the period
	if r.Check() {
		t.Error("alert raised off period")
	}
}

func TestHighSide(t *testing.T) {
	r := NewStatsRepository(95, 2, 2, 10)
	r.UpdateState(10, 200)
	r.UpdateState(10, 0)
	if !r.Check() {
		t.Fatal("expected alert on hot window")
	}
	if s := r.Snapshot(); s.AlertSide != "high" {
		t.Errorf("AlertSide = %q, want high", s.AlertSide)
	}
}

func TestConcurrentUpdates(t *testing.T) {
	r := NewStatsRepository(95, 50, 10, 10)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				r.UpdateState(1, 0.95)
				r.Check()
			}
		}()
	}
	wg.Wait()

	s := r.Snapshot()
	if s.TotalRounds != 8000 {
		t.Errorf("TotalRounds = %d, want 8000", s.TotalRounds)
	}
	if math.Abs(s.WindowRTP-95) > 1e-6 {
		t.Errorf("WindowRTP = %v, want 95", s.WindowRTP)
	}
}
