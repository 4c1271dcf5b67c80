package game

import (
	"log"

	"dice_backend/internal/model"
	"dice_backend/internal/rtp"
)

// oddsInfo - deployed table with its exact long-run return
func (s *serv) oddsInfo() model.OddsInfo {
	info := model.OddsInfo{
		Preset: s.preset,
		Odds:   s.odds.Names(),
	}

	report, err := rtp.Exact(s.odds, 1, s.band)
	if err != nil {
		log.Println("exact rtp:", err)
		return info
	}
	info.ExactRTP = report.RTP
	info.Verdict = string(report.Verdict)

	return info
}

func (s *serv) Odds() model.OddsInfo {
	s.infoOnce.Do(func() {
		s.info = s.oddsInfo()
	})
	return s.info
}

func (s *serv) Stats() model.MonitorState {
	return s.statsRepo.Snapshot()
}
