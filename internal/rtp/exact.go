package rtp

import (
	"fmt"

	"dice_backend/internal/dice"
)

// Exact - report over every possible roll, each counted once. Its RTP is the
// value a simulation converges to.
func Exact(odds dice.OddsTable, stake float64, band Band) (Report, error) {
	if !odds.Valid() {
		return Report{}, fmt.Errorf("%w: table was not validated", dice.ErrInvalidOddsTable)
	}
	if !(stake > 0) {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidStake, stake)
	}

	hits := Distribution()
	r := newReport("exact", hits, odds, stake, band)
	r.Complete = true
	return r, nil
}

// Distribution - number of rolls out of 6^6 landing in each category
func Distribution() [dice.NumCategories]int64 {
	var hits [dice.NumCategories]int64
	roll := make([]int, dice.DiceCount)

	var walk func(i int)
	walk = func(i int) {
		if i == dice.DiceCount {
			c, _ := dice.Classify(roll)
			hits[c]++
			return
		}
		for f := 1; f <= dice.Faces; f++ {
			roll[i] = f
			walk(i + 1)
		}
	}
	walk(0)

	return hits
}
