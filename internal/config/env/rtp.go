package env

import (
	"dice_backend/internal/config"
	"dice_backend/internal/rtp"
	"errors"
	"fmt"
)

const (
	defaultTrials            = 1_000_000
	defaultMaxTrials         = 5_000_000
	defaultWindowSize        = 500
	defaultCheckPeriod       = 25
	defaultCriticalDeviation = 10.0
	defaultReportDB          = "rtp_reports.db"
)

type rtpConfig struct {
	band              rtp.Band
	defaultTrials     int64
	maxTrials         int64
	workers           int
	windowSize        int
	checkPeriod       int
	criticalDeviation float64
	reportDB          string
}

// NewRTPConfigFromYAML - rtp section of the yaml config
func NewRTPConfigFromYAML(path string) (config.RTPConfig, error) {
	fc, err := readFileConfig(path)
	if err != nil {
		return nil, err
	}
	return newRTPConfig(fc.RTP)
}

func newRTPConfig(s rtpSection) (*rtpConfig, error) {
	band := rtp.DefaultBand()
	if s.TargetLow != nil {
		band.Low = *s.TargetLow
	}
	if s.TargetHigh != nil {
		band.High = *s.TargetHigh
	}
	if s.TooStrictBelow != nil {
		band.TooStrictBelow = *s.TooStrictBelow
	}

	cfg := &rtpConfig{
		band:              band,
		defaultTrials:     orDefault(s.DefaultTrials, defaultTrials),
		maxTrials:         orDefault(s.MaxTrials, defaultMaxTrials),
		workers:           s.Workers,
		windowSize:        orDefault(s.WindowSize, defaultWindowSize),
		checkPeriod:       orDefault(s.CheckPeriod, defaultCheckPeriod),
		criticalDeviation: orDefault(s.CriticalDeviation, defaultCriticalDeviation),
		reportDB:          orDefault(s.ReportDB, defaultReportDB),
	}

	var errs []error
	if band.Low >= band.High {
		errs = append(errs, fmt.Errorf("rtp.target_low (%v) must be below rtp.target_high (%v)", band.Low, band.High))
	}
	if band.TooStrictBelow > band.Low {
		errs = append(errs, fmt.Errorf("rtp.too_strict_below (%v) must not exceed rtp.target_low (%v)", band.TooStrictBelow, band.Low))
	}
	if cfg.defaultTrials < 0 || cfg.maxTrials < 0 {
		errs = append(errs, errors.New("rtp trial counts must not be negative"))
	}
	if cfg.defaultTrials > cfg.maxTrials {
		errs = append(errs, fmt.Errorf("rtp.default_trials (%d) exceeds rtp.max_trials (%d)", cfg.defaultTrials, cfg.maxTrials))
	}
	if cfg.workers < 0 || cfg.windowSize < 0 || cfg.checkPeriod < 0 || cfg.criticalDeviation < 0 {
		errs = append(errs, errors.New("rtp workers, window and deviation settings must not be negative"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func (c *rtpConfig) Band() rtp.Band {
	return c.band
}

func (c *rtpConfig) DefaultTrials() int64 {
	return c.defaultTrials
}

func (c *rtpConfig) MaxTrials() int64 {
	return c.maxTrials
}

func (c *rtpConfig) Workers() int {
	return c.workers
}

func (c *rtpConfig) WindowSize() int {
	return c.windowSize
}

func (c *rtpConfig) CheckPeriod() int {
	return c.checkPeriod
}

func (c *rtpConfig) CriticalDeviation() float64 {
	return c.criticalDeviation
}

func (c *rtpConfig) ReportDBPath() string {
	return c.reportDB
}
