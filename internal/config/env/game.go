package env

import (
	"dice_backend/internal/config"
	"dice_backend/internal/dice"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

const defaultInitialBalance = 100

type gameConfig struct {
	initialBalance decimal.Decimal
	activePreset   string
	presets        map[string]dice.OddsTable
}

// NewGameConfigFromYAML - game section of the yaml config. Every odds preset
// is validated here so a broken table never reaches a round.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	fc, err := readFileConfig(path)
	if err != nil {
		return nil, err
	}
	return newGameConfig(fc.Game)
}

func newGameConfig(s gameSection) (*gameConfig, error) {
	var errs []error

	balance := decimal.NewFromInt(defaultInitialBalance)
	if s.InitialBalance != nil {
		balance = decimal.NewFromFloat(*s.InitialBalance)
		if !balance.IsPositive() {
			errs = append(errs, fmt.Errorf("game.initial_balance must be positive, got %s", balance))
		}
	}

	presets := make(map[string]dice.OddsTable, len(s.Presets))
	for name, table := range s.Presets {
		odds, err := dice.NewOddsTableFromNames(table)
		if err != nil {
			errs = append(errs, fmt.Errorf("game.presets.%s: %w", name, err))
			continue
		}
		presets[name] = odds
	}
	if len(s.Presets) == 0 {
		presets["calibrated"] = dice.CalibratedOdds()
		presets["original"] = dice.OriginalOdds()
	}

	active := s.ActivePreset
	if active == "" {
		active = "calibrated"
	}
	if _, ok := presets[active]; !ok && len(errs) == 0 {
		errs = append(errs, fmt.Errorf("game.active_preset %q is not defined", active))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &gameConfig{
		initialBalance: balance,
		activePreset:   active,
		presets:        presets,
	}, nil
}

func (c *gameConfig) InitialBalance() decimal.Decimal {
	return c.initialBalance
}

func (c *gameConfig) ActivePreset() string {
	return c.activePreset
}

func (c *gameConfig) ActiveOdds() dice.OddsTable {
	return c.presets[c.activePreset]
}

func (c *gameConfig) Preset(name string) (dice.OddsTable, bool) {
	odds, ok := c.presets[name]
	return odds, ok
}

func (c *gameConfig) PresetNames() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
