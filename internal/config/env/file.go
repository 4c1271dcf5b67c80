package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig - layout of config.yaml
type fileConfig struct {
	Game gameSection `yaml:"game"`
	RTP  rtpSection  `yaml:"rtp"`
}

type gameSection struct {
	InitialBalance *float64                      `yaml:"initial_balance"`
	ActivePreset   string                        `yaml:"active_preset"`
	Presets        map[string]map[string]float64 `yaml:"presets"`
}

type rtpSection struct {
	TargetLow         *float64 `yaml:"target_low"`
	TargetHigh        *float64 `yaml:"target_high"`
	TooStrictBelow    *float64 `yaml:"too_strict_below"`
	DefaultTrials     int64    `yaml:"default_trials"`
	MaxTrials         int64    `yaml:"max_trials"`
	Workers           int      `yaml:"workers"`
	WindowSize        int      `yaml:"window_size"`
	CheckPeriod       int      `yaml:"check_period"`
	CriticalDeviation float64  `yaml:"critical_deviation"`
	ReportDB          string   `yaml:"report_db"`
}

func readFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseFileConfig(data)
}

func parseFileConfig(data []byte) (*fileConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &fc, nil
}
