package dice

import "errors"

var (
	// ErrInvalidRoll - roll has the wrong size or a face outside [1,6]
	ErrInvalidRoll = errors.New("invalid roll")
	// ErrInvalidOddsTable - odds table misses a payable category or has a bad multiplier
	ErrInvalidOddsTable = errors.New("invalid odds table")
)
