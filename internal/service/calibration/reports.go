package calibration

import (
	"context"

	"dice_backend/internal/model"
)

func (s *serv) Reports(ctx context.Context, limit int) ([]model.SimulationReport, error) {
	switch {
	case limit <= 0:
		limit = defaultReportLimit
	case limit > maxReportLimit:
		limit = maxReportLimit
	}
	return s.reportRepo.List(ctx, limit)
}
