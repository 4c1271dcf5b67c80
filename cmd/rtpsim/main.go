package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dice_backend/internal/config"
	"dice_backend/internal/config/env"
	"dice_backend/internal/converter"
	"dice_backend/internal/dice"
	"dice_backend/internal/repository/report_repo"
	"dice_backend/internal/rtp"
)

type flags struct {
	config  string
	preset  string
	trials  int64
	stake   float64
	seed    uint64
	workers int
	exact   bool
	save    bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "config.yaml", "path to the yaml config")
	flag.StringVar(&f.preset, "preset", "", "run only this odds preset (default: all)")
	flag.Int64Var(&f.trials, "trials", 0, "rounds per preset (default: rtp.default_trials)")
	flag.Float64Var(&f.stake, "stake", 10, "stake per round")
	flag.Uint64Var(&f.seed, "seed", 0, "seed for a reproducible run (0: random)")
	flag.IntVar(&f.workers, "workers", 0, "parallel shards (default: rtp.workers or GOMAXPROCS)")
	flag.BoolVar(&f.exact, "exact", false, "also print the enumerated RTP")
	flag.BoolVar(&f.save, "save", false, "store reports in the sqlite report database")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, f); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, f flags) error {
	gameCfg, err := env.NewGameConfigFromYAML(f.config)
	if err != nil {
		return err
	}
	rtpCfg, err := env.NewRTPConfigFromYAML(f.config)
	if err != nil {
		return err
	}

	presets, err := selectPresets(gameCfg, f.preset)
	if err != nil {
		return err
	}

	trials := f.trials
	if trials == 0 {
		trials = rtpCfg.DefaultTrials()
	}
	workers := f.workers
	if workers == 0 {
		workers = rtpCfg.Workers()
	}

	var repo *report_repo.Repo
	if f.save {
		repo, err = report_repo.NewReportRepository(rtpCfg.ReportDBPath())
		if err != nil {
			return err
		}
		defer repo.Close()
	}

	band := rtpCfg.Band()
	fmt.Printf("Target RTP band: %.2f%% - %.2f%%\n\n", band.Low, band.High)

	for _, name := range presets {
		odds, _ := gameCfg.Preset(name)

		opts := []rtp.Option{
			rtp.WithTitle(name),
			rtp.WithBand(band),
			rtp.WithWorkers(workers),
		}
		var seed *uint64
		if f.seed != 0 {
			opts = append(opts, rtp.WithSeed(f.seed))
			seed = &f.seed
		}

		report, simErr := rtp.Simulate(ctx, trials, odds, f.stake, opts...)
		if simErr != nil && !errors.Is(simErr, context.Canceled) {
			return fmt.Errorf("simulate %s: %w", name, simErr)
		}
		report.Fprint(os.Stdout)

		if f.exact {
			exact, err := rtp.Exact(odds, f.stake, band)
			if err != nil {
				return err
			}
			fmt.Printf("Exact RTP:      %.4f%% (%s)\n", exact.RTP, exact.Verdict)
		}
		fmt.Println()

		if repo != nil {
			id, err := repo.Save(context.WithoutCancel(ctx), converter.ToSimulationReport(report, odds, seed))
			if err != nil {
				return fmt.Errorf("save %s: %w", name, err)
			}
			log.Printf("saved report %s", id)
		}

		if simErr != nil {
			return simErr
		}
	}
	return nil
}

func selectPresets(cfg config.GameConfig, only string) ([]string, error) {
	if only == "" {
		return cfg.PresetNames(), nil
	}
	if _, ok := cfg.Preset(only); !ok {
		return nil, fmt.Errorf("unknown preset %q, have %v", only, cfg.PresetNames())
	}
	return []string{only}, nil
}
