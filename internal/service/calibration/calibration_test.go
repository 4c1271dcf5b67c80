package calibration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dice_backend/internal/dice"
	"dice_backend/internal/model"
	"dice_backend/internal/rtp"

	"github.com/shopspring/decimal"
)

type gameCfg struct{}

func (gameCfg) InitialBalance() decimal.Decimal { return decimal.NewFromInt(100) }
func (gameCfg) ActivePreset() string { return "calibrated" }
func (gameCfg) ActiveOdds() dice.OddsTable { return dice.CalibratedOdds() }
func (gameCfg) PresetNames() []string { return []string{"calibrated", "original"} }
func (gameCfg) Preset(name string) (dice.OddsTable, bool) {
	switch name {
	case "calibrated":
		return dice.CalibratedOdds(), true
	case "original":
		return dice.OriginalOdds(), true
	}
	return dice.OddsTable{}, false
}

type rtpCfg struct{ max int64 }

func (rtpCfg) Band() rtp.Band { return rtp.DefaultBand() }
func (rtpCfg) DefaultTrials() int64 { return 20_000 }
func (c rtpCfg) MaxTrials() int64 { return c.max }
func (rtpCfg) Workers() int { return 2 }
func (rtpCfg) WindowSize() int { return 500 }
func (rtpCfg) CheckPeriod() int { return 25 }
func (rtpCfg) CriticalDeviation() float64 { return 10 }
func (rtpCfg) ReportDBPath() string { return "" }

type memReports struct {
	mu      sync.Mutex
	reports []model.SimulationReport
}

func (m *memReports) Save(_ context.Context, r *model.SimulationReport) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = "r" + string(rune('a'+len(m.reports)))
	m.reports = append(m.reports, *r)
	return r.ID, nil
}

func (m *memReports) Get(context.Context, string) (*model.SimulationReport, error) {
	return nil, errors.New("not used")
}

func (m *memReports) List(_ context.Context, limit int) ([]model.SimulationReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.SimulationReport
	for i := len(m.reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.reports[i])
	}
	return out, nil
}

func newServ(max int64) (*serv, *memReports) {
	repo := &memReports{}
	return NewCalibrationService(gameCfg{}, rtpCfg{max: max}, repo).(*serv), repo
}

func TestSimulatePreset(t *testing.T) {
	s, repo := newServ(1_000_000)
	seed := uint64(77)

	report, err := s.Simulate(context.Background(), model.SimulationRequest{
		Preset: "original",
		Trials: 50_000,
		Seed:   &seed,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Title != "original" || report.Trials != 50_000 || report.Stake != defaultStake {
		t.Errorf("report = %+v", report)
	}
	if report.RTP < 108 || report.RTP > 114 {
		t.Errorf("original RTP = %.3f, want about 111", report.RTP)
	}
	if report.Verdict != string(rtp.VerdictTooGenerous) {
		t.Errorf("Verdict = %q", report.Verdict)
	}
	if len(repo.reports) != 1 || report.ID == "" {
		t.Errorf("report not stored: %d, id %q", len(repo.reports), report.ID)
	}

	again, err := s.Simulate(context.Background(), model.SimulationRequest{
		Preset: "original",
		Trials: 50_000,
		Seed:   &seed,
	})
	if err != nil {
		t.Fatal(err)
	}
	if again.RTP != report.RTP {
		t.Errorf("seeded runs differ: %v vs %v", again.RTP, report.RTP)
	}
}

func TestSimulateDefaults(t *testing.T) {
	s, _ := newServ(1_000_000)
	report, err := s.Simulate(context.Background(), model.SimulationRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if report.Title != "calibrated" || report.Trials != 20_000 {
		t.Errorf("report = %+v", report)
	}
}

func TestSimulateCustomOdds(t *testing.T) {
	s, _ := newServ(1_000_000)
	report, err := s.Simulate(context.Background(), model.SimulationRequest{
		Odds:   map[string]float64{"Three Pairs": 0, "Yahtzee": 0, "4+2": 0, "Pair": 0},
		Trials: 1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Title != "custom" || report.RTP != 0 || report.Verdict != string(rtp.VerdictTooStrict) {
		t.Errorf("report = %+v", report)
	}

	_, err = s.Simulate(context.Background(), model.SimulationRequest{
		Odds:   map[string]float64{"Pair": 1},
		Trials: 1000,
	})
	if !errors.Is(err, dice.ErrInvalidOddsTable) {
		t.Errorf("error = %v, want ErrInvalidOddsTable", err)
	}
}

func TestSimulateRejects(t *testing.T) {
	s, repo := newServ(10_000)

	tests := []struct {
		name string
		req  model.SimulationRequest
		want error
	}{
		{"unknown preset", model.SimulationRequest{Preset: "turbo", Trials: 10}, model.ErrUnknownPreset},
		{"over limit", model.SimulationRequest{Trials: 10_001}, model.ErrTrialLimitExceeded},
		{"negative trials", model.SimulationRequest{Trials: -1}, rtp.ErrInvalidTrialCount},
		{"negative stake", model.SimulationRequest{Trials: 10, Stake: -1}, rtp.ErrInvalidStake},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Simulate(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if len(repo.reports) != 0 {
		t.Errorf("rejected runs stored %d reports", len(repo.reports))
	}
}

func TestSimulateCancelledStoresPartial(t *testing.T) {
	s, repo := newServ(1_000_000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := s.Simulate(ctx, model.SimulationRequest{Trials: 500_000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if report == nil || report.Complete {
		t.Fatalf("report = %+v, want incomplete report", report)
	}
	if len(repo.reports) != 1 {
		t.Errorf("partial report not stored")
	}
}

func TestReportsLimit(t *testing.T) {
	s, _ := newServ(1_000_000)
	for i := 0; i < 3; i++ {
		if _, err := s.Simulate(context.Background(), model.SimulationRequest{Trials: 100}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := s.Reports(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("Reports returned %d, want 2", len(list))
	}
	all, _ := s.Reports(context.Background(), 0)
	if len(all) != 3 {
		t.Errorf("default limit returned %d, want 3", len(all))
	}
}
