package rtp

import "errors"

var (
	// ErrInvalidTrialCount - trials must be positive
	ErrInvalidTrialCount = errors.New("invalid trial count")
	// ErrInvalidStake - stake must be a positive number
	ErrInvalidStake = errors.New("invalid stake")
)
