package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dice_backend/internal/config/env"
	"dice_backend/internal/repository/report_repo"
)

const testConfig = `
game:
  initial_balance: 100
  active_preset: calibrated
  presets:
    calibrated:
      "Three Pairs": 4
      "Yahtzee": 20
      "4+2": 3
      "Pair": 0.82
rtp:
  default_trials: 2000
  max_trials: 10000
  report_db: {{db}}
`

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "reports.db")
	path := filepath.Join(dir, "config.yaml")
	content := []byte(strings.ReplaceAll(testConfig, "{{db}}", db))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	return path, db
}

func TestRunSavesReports(t *testing.T) {
	path, db := writeConfig(t)

	err := run(context.Background(), flags{config: path, stake: 1, seed: 7, workers: 2, exact: true, save: true})
	if err != nil {
		t.Fatal(err)
	}

	repo, err := report_repo.NewReportRepository(db)
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	reports, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("stored %d reports, want 1", len(reports))
	}
	if reports[0].Title != "calibrated" || reports[0].Trials != 2000 || !reports[0].Complete {
		t.Errorf("report = %+v", reports[0])
	}
}

func TestSelectPresets(t *testing.T) {
	path, _ := writeConfig(t)
	cfg, err := env.NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := selectPresets(cfg, "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
	names, err := selectPresets(cfg, "calibrated")
	if err != nil || len(names) != 1 {
		t.Errorf("names = %v, err = %v", names, err)
	}
}
