package config

import (
	"fmt"
	"time"

	"dice_backend/internal/dice"
	"dice_backend/internal/rtp"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Load - reads .env into the process environment
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// ParseEnv - fills target from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	SecureCookies() bool
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GameConfig - live game settings
type GameConfig interface {
	InitialBalance() decimal.Decimal
	ActivePreset() string
	ActiveOdds() dice.OddsTable
	Preset(name string) (dice.OddsTable, bool)
	PresetNames() []string
}

// RTPConfig - calibration and monitoring settings
type RTPConfig interface {
	Band() rtp.Band
	DefaultTrials() int64
	MaxTrials() int64
	Workers() int
	WindowSize() int
	CheckPeriod() int
	CriticalDeviation() float64
	ReportDBPath() string
}
