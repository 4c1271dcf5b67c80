package model

import "errors"

var (
	ErrBetNotPositive     = errors.New("bet must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrUnknownPreset      = errors.New("unknown odds preset")
	ErrTrialLimitExceeded = errors.New("trial count exceeds the configured limit")
	ErrUnauthorized       = errors.New("user id not found in context")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)
