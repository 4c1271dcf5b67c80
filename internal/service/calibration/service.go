package calibration

import (
	"dice_backend/internal/config"
	"dice_backend/internal/repository"
	"dice_backend/internal/service"
)

const (
	defaultStake       = 10
	defaultReportLimit = 20
	maxReportLimit     = 200
)

type serv struct {
	gameCfg    config.GameConfig
	rtpCfg     config.RTPConfig
	reportRepo repository.ReportRepository
}

// NewCalibrationService - runs simulations over configured or ad hoc odds
// tables and keeps their reports
func NewCalibrationService(
	gameCfg config.GameConfig,
	rtpCfg config.RTPConfig,
	reportRepo repository.ReportRepository,
) service.RTPService {
	return &serv{
		gameCfg:    gameCfg,
		rtpCfg:     rtpCfg,
		reportRepo: reportRepo,
	}
}
