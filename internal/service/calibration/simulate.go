package calibration

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dice_backend/internal/converter"
	"dice_backend/internal/dice"
	"dice_backend/internal/model"
	"dice_backend/internal/rtp"
)

// Simulate - one calibration run. A cancelled run still stores and returns
// its partial report, marked incomplete.
func (s *serv) Simulate(ctx context.Context, req model.SimulationRequest) (*model.SimulationReport, error) {
	odds, title, err := s.resolveOdds(req)
	if err != nil {
		return nil, err
	}

	trials := req.Trials
	if trials == 0 {
		trials = s.rtpCfg.DefaultTrials()
	}
	if trials > s.rtpCfg.MaxTrials() {
		return nil, fmt.Errorf("%w: %d > %d", model.ErrTrialLimitExceeded, trials, s.rtpCfg.MaxTrials())
	}

	stake := req.Stake
	if stake == 0 {
		stake = defaultStake
	}

	opts := []rtp.Option{
		rtp.WithTitle(title),
		rtp.WithBand(s.rtpCfg.Band()),
		rtp.WithWorkers(s.rtpCfg.Workers()),
	}
	if req.Seed != nil {
		opts = append(opts, rtp.WithSeed(*req.Seed))
	}

	report, simErr := rtp.Simulate(ctx, trials, odds, stake, opts...)
	if simErr != nil && !isCancel(simErr) {
		return nil, simErr
	}

	out := converter.ToSimulationReport(report, odds, req.Seed)

	// storing must outlive a cancelled request
	saveCtx := context.WithoutCancel(ctx)
	if _, err := s.reportRepo.Save(saveCtx, out); err != nil {
		log.Println("save rtp report:", err)
	}

	log.Printf("rtp run %q: %d trials, RTP %.4f%%, %s, complete=%t",
		out.Title, out.Trials, out.RTP, out.Verdict, out.Complete)

	return out, simErr
}

func (s *serv) resolveOdds(req model.SimulationRequest) (dice.OddsTable, string, error) {
	if len(req.Odds) > 0 {
		odds, err := dice.NewOddsTableFromNames(req.Odds)
		if err != nil {
			return dice.OddsTable{}, "", err
		}
		return odds, "custom", nil
	}

	name := req.Preset
	if name == "" {
		name = s.gameCfg.ActivePreset()
	}
	odds, ok := s.gameCfg.Preset(name)
	if !ok {
		return dice.OddsTable{}, "", fmt.Errorf("%w: %q", model.ErrUnknownPreset, name)
	}
	return odds, name, nil
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
