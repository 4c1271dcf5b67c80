package calibration

import "time"

type SimulateRequest struct {
	Preset string             `json:"preset,omitempty"`
	Odds   map[string]float64 `json:"odds,omitempty"` // wins over preset
	Trials int64              `json:"trials,omitempty"`
	Stake  float64            `json:"stake,omitempty"`
	Seed   *uint64            `json:"seed,omitempty"`
}

type ReportResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Odds          map[string]float64 `json:"odds"`
	Trials        int64              `json:"trials"`
	Stake         float64            `json:"stake"`
	TotalStaked   float64            `json:"total_staked"`
	TotalReturned float64            `json:"total_returned"`
	RTP           float64            `json:"rtp"`
	Verdict       string             `json:"verdict"`
	Hits          map[string]int64   `json:"hits"`
	Seed          *uint64            `json:"seed,omitempty"`
	Complete      bool               `json:"complete"`
	ElapsedMs     int64              `json:"elapsed_ms"`
	CreatedAt     time.Time          `json:"created_at"`
}

type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}
