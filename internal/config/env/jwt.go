package env

import (
	"dice_backend/internal/config"
	"errors"
	"time"
)

type jwtEnv struct {
	AccessTokenSecretKey string        `env:"ACCESS_TOKEN"`
	AccessTokenDuration  time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"15m"`
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION" envDefault:"720h"`
}

type jwtConfig struct {
	refreshTokenDuration time.Duration
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	var e jwtEnv
	if err := config.ParseEnv(&e); err != nil {
		return nil, err
	}

	if len(e.AccessTokenSecretKey) == 0 {
		return nil, errors.New("access token secret key not found")
	}
	if e.AccessTokenDuration <= 0 {
		return nil, errors.New("access token duration must be positive")
	}
	if e.RefreshTokenDuration <= 0 {
		return nil, errors.New("refresh token duration must be positive")
	}

	return &jwtConfig{
		accessTokenSecretKey: e.AccessTokenSecretKey,
		refreshTokenDuration: e.RefreshTokenDuration,
		accessTokenDuration:  e.AccessTokenDuration,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
