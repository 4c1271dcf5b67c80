package dice

import (
	"fmt"
	"slices"
)

const (
	// DiceCount - dice in one roll
	DiceCount = 6
	// Faces - faces on one die
	Faces = 6
)

// rule - one step of the classification cascade
type rule struct {
	category Category
	match    func(shape []int) bool
}

// rules are checked in order, the first match wins. Reordering them changes
// the probability mass of each category and therefore the RTP.
var rules = []rule{
	{ThreePairs, func(shape []int) bool { return countOf(shape, 2) == 3 }},
	{Yahtzee, func(shape []int) bool { return slices.Contains(shape, 6) }},
	{FourPlusTwo, func(shape []int) bool { return slices.Contains(shape, 4) && slices.Contains(shape, 2) }},
	{Pair, func(shape []int) bool { return shape[0] >= 2 }},
}

// Shape - non-zero face counts of the roll, largest first
func Shape(roll []int) ([]int, error) {
	if len(roll) != DiceCount {
		return nil, fmt.Errorf("%w: got %d dice, want %d", ErrInvalidRoll, len(roll), DiceCount)
	}

	var hist [Faces + 1]int
	for i, v := range roll {
		if v < 1 || v > Faces {
			return nil, fmt.Errorf("%w: die %d has face %d", ErrInvalidRoll, i, v)
		}
		hist[v]++
	}

	shape := make([]int, 0, Faces)
	for _, n := range hist[1:] {
		if n > 0 {
			shape = append(shape, n)
		}
	}
	slices.SortFunc(shape, func(a, b int) int { return b - a })

	return shape, nil
}

// Classify - category of the roll, independent of any payouts
func Classify(roll []int) (Category, error) {
	shape, err := Shape(roll)
	if err != nil {
		return Other, err
	}
	return classifyShape(shape), nil
}

func classifyShape(shape []int) Category {
	for _, r := range rules {
		if r.match(shape) {
			return r.category
		}
	}
	return Other
}

// Evaluate - category of the roll and its multiplier under the odds table
func Evaluate(roll []int, odds OddsTable) (Category, float64, error) {
	c, err := Classify(roll)
	if err != nil {
		return Other, 0, err
	}
	return c, odds.Multiplier(c), nil
}

// Throw - six fresh dice from the source
func Throw(src Source) []int {
	roll := make([]int, DiceCount)
	for i := range roll {
		roll[i] = src.IntN(Faces) + 1
	}
	return roll
}

func countOf(shape []int, n int) int {
	c := 0
	for _, v := range shape {
		if v == n {
			c++
		}
	}
	return c
}
