package dice

import "fmt"

// Category - combination a roll is scored as
type Category int

const (
	Other Category = iota
	ThreePairs
	Yahtzee
	FourPlusTwo
	Pair
)

// NumCategories - size of the closed category set
const NumCategories = 5

// Payable - categories every odds table must price
var Payable = []Category{ThreePairs, Yahtzee, FourPlusTwo, Pair}

var categoryNames = [NumCategories]string{
	Other:       "Other",
	ThreePairs:  "Three Pairs",
	Yahtzee:     "Yahtzee",
	FourPlusTwo: "4+2",
	Pair:        "Pair",
}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Categories - every category in priority order, Other last
func Categories() []Category {
	return []Category{ThreePairs, Yahtzee, FourPlusTwo, Pair, Other}
}

// ParseCategory - category by display name
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return Other, fmt.Errorf("unknown category %q", name)
}
