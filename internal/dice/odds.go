package dice

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// OddsTable - multiplier per category. The zero value pays nothing and is not
// a valid table, build one with NewOddsTable.
type OddsTable struct {
	mult  [NumCategories]float64
	valid bool
}

// NewOddsTable - validated odds table. Every payable category must be present
// with a finite non-negative multiplier. Other always pays 0.
func NewOddsTable(m map[Category]float64) (OddsTable, error) {
	var errs []error
	var t OddsTable

	for _, c := range Payable {
		v, ok := m[c]
		if !ok {
			errs = append(errs, fmt.Errorf("missing multiplier for %q", c))
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, fmt.Errorf("multiplier for %q must be a non-negative number, got %v", c, v))
			continue
		}
		t.mult[c] = v
	}
	if v, ok := m[Other]; ok && v != 0 {
		errs = append(errs, fmt.Errorf("multiplier for %q must be 0, got %v", Other, v))
	}

	if len(errs) > 0 {
		return OddsTable{}, fmt.Errorf("%w: %w", ErrInvalidOddsTable, errors.Join(errs...))
	}

	t.valid = true
	return t, nil
}

// NewOddsTableFromNames - odds table keyed by display name, as found in config files
func NewOddsTableFromNames(m map[string]float64) (OddsTable, error) {
	byCat := make(map[Category]float64, len(m))
	var unknown []string
	for name, v := range m {
		c, err := ParseCategory(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		byCat[c] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return OddsTable{}, fmt.Errorf("%w: unknown categories %q", ErrInvalidOddsTable, unknown)
	}
	return NewOddsTable(byCat)
}

// CalibratedOdds - table tuned to land the long-run RTP inside 94-96%
func CalibratedOdds() OddsTable {
	return mustOdds(map[Category]float64{
		ThreePairs:  4.0,
		Yahtzee:     20.0,
		FourPlusTwo: 3.0,
		Pair:        0.82,
	})
}

// OriginalOdds - first table the game shipped with
func OriginalOdds() OddsTable {
	return mustOdds(map[Category]float64{
		ThreePairs:  4,
		Yahtzee:     3,
		FourPlusTwo: 2,
		Pair:        1,
	})
}

func mustOdds(m map[Category]float64) OddsTable {
	t, err := NewOddsTable(m)
	if err != nil {
		panic(err)
	}
	return t
}

// Multiplier - payout multiplier for the category, 0 for Other
func (t OddsTable) Multiplier(c Category) float64 {
	if c <= Other || int(c) >= NumCategories {
		return 0
	}
	return t.mult[c]
}

// Valid - whether the table was built through validation
func (t OddsTable) Valid() bool {
	return t.valid
}

// Names - multipliers keyed by display name
func (t OddsTable) Names() map[string]float64 {
	out := make(map[string]float64, len(Payable))
	for _, c := range Payable {
		out[c.String()] = t.mult[c]
	}
	return out
}
