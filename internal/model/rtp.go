package model

import "time"

// SimulationRequest - calibration run asked for over the API
type SimulationRequest struct {
	Preset string
	Odds   map[string]float64 // overrides Preset when set
	Trials int64
	Stake  float64
	Seed   *uint64
}

// SimulationReport - stored result of a calibration run
type SimulationReport struct {
	ID            string
	Title         string
	Odds          map[string]float64
	Trials        int64
	Stake         float64
	TotalStaked   float64
	TotalReturned float64
	RTP           float64
	Verdict       string
	Hits          map[string]int64
	Seed          *uint64
	Complete      bool
	Elapsed       time.Duration
	CreatedAt     time.Time
}

// MonitorState - snapshot of the live RTP monitor
type MonitorState struct {
	TotalRounds int64
	TotalBet    float64
	TotalPayout float64
	CurrentRTP  float64
	TargetRTP   float64
	WindowRTP   float64
	WindowSize  int
	WindowFill  int
	AlertMode   bool
	AlertSide   string
	Alerts      []MonitorAlert
}

// MonitorAlert - window RTP left the tolerated range
type MonitorAlert struct {
	Timestamp time.Time
	Side      string
	WindowRTP float64
	Profit    float64
	Reason    string
}
