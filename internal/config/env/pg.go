package env

import (
	"dice_backend/internal/config"
	"errors"
)

type pgEnv struct {
	DSN string `env:"PG_DSN"`
}

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	var e pgEnv
	if err := config.ParseEnv(&e); err != nil {
		return nil, err
	}
	if len(e.DSN) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &pgConfig{
		dsn: e.DSN,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
