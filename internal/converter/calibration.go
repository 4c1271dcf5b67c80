package converter

import (
	dto "dice_backend/internal/api/dto/calibration"
	"dice_backend/internal/dice"
	"dice_backend/internal/model"
	"dice_backend/internal/rtp"
)

func ToSimulationRequest(req dto.SimulateRequest) model.SimulationRequest {
	return model.SimulationRequest{
		Preset: req.Preset,
		Odds:   req.Odds,
		Trials: req.Trials,
		Stake:  req.Stake,
		Seed:   req.Seed,
	}
}

func ToReportResponse(r model.SimulationReport) dto.ReportResponse {
	return dto.ReportResponse{
		ID:            r.ID,
		Title:         r.Title,
		Odds:          r.Odds,
		Trials:        r.Trials,
		Stake:         r.Stake,
		TotalStaked:   r.TotalStaked,
		TotalReturned: r.TotalReturned,
		RTP:           r.RTP,
		Verdict:       r.Verdict,
		Hits:          r.Hits,
		Seed:          r.Seed,
		Complete:      r.Complete,
		ElapsedMs:     r.Elapsed.Milliseconds(),
		CreatedAt:     r.CreatedAt,
	}
}

func ToReportsResponse(reports []model.SimulationReport) dto.ReportsResponse {
	out := make([]dto.ReportResponse, len(reports))
	for i, r := range reports {
		out[i] = ToReportResponse(r)
	}
	return dto.ReportsResponse{Reports: out}
}

// ToSimulationReport - storable form of a simulation result
func ToSimulationReport(r rtp.Report, odds dice.OddsTable, seed *uint64) *model.SimulationReport {
	hits := make(map[string]int64, len(r.Hits))
	for c, n := range r.Hits {
		hits[c.String()] = n
	}
	return &model.SimulationReport{
		Title:         r.Title,
		Odds:          odds.Names(),
		Trials:        r.Trials,
		Stake:         r.Stake,
		TotalStaked:   r.TotalStaked,
		TotalReturned: r.TotalReturned,
		RTP:           r.RTP,
		Verdict:       string(r.Verdict),
		Hits:          hits,
		Seed:          seed,
		Complete:      r.Complete,
		Elapsed:       r.Elapsed,
	}
}
