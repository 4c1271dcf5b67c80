package rtp

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"dice_backend/internal/dice"

	"golang.org/x/sync/errgroup"
)

// checkEvery - trials between cancellation checks, a power of two
const checkEvery = 1 << 12

type options struct {
	title   string
	seed    uint64
	seeded  bool
	workers int
	band    Band
}

// Option - simulation setting
type Option func(*options)

// WithTitle - report title
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSeed - reproducible run. Shard i draws from stream i of the seed, so the
// same seed and worker count always give the same report.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers - number of shards, defaults to GOMAXPROCS
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithBand - acceptance thresholds used for the verdict
func WithBand(b Band) Option {
	return func(o *options) { o.band = b }
}

// Simulate - plays trials independent rounds at a fixed stake and reports the
// realized return. On cancellation the partial aggregate is returned with
// Complete set to false together with the context error.
func Simulate(ctx context.Context, trials int64, odds dice.OddsTable, stake float64, opts ...Option) (Report, error) {
	o := options{
		title:   "simulation",
		workers: runtime.GOMAXPROCS(0),
		band:    DefaultBand(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if trials <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidTrialCount, trials)
	}
	if !(stake > 0) {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidStake, stake)
	}
	if !odds.Valid() {
		return Report{}, fmt.Errorf("%w: table was not validated", dice.ErrInvalidOddsTable)
	}

	workers := int64(o.workers)
	if workers > trials {
		workers = trials
	}

	start := time.Now()
	shards := make([][dice.NumCategories]int64, workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := int64(0); i < workers; i++ {
		n := trials / workers
		if i < trials%workers {
			n++
		}

		var src dice.Source
		if o.seeded {
			src = dice.NewSeededSource(o.seed, uint64(i))
		} else {
			src = dice.NewFastSource()
		}

		hits := &shards[i]
		g.Go(func() error {
			return runShard(gctx, n, src, hits)
		})
	}
	err := g.Wait()

	var total [dice.NumCategories]int64
	for _, s := range shards {
		for c, n := range s {
			total[c] += n
		}
	}

	r := newReport(o.title, total, odds, stake, o.band)
	r.Elapsed = time.Since(start)
	r.Complete = err == nil && r.Trials == trials

	return r, err
}

func runShard(ctx context.Context, n int64, src dice.Source, hits *[dice.NumCategories]int64) error {
	roll := make([]int, dice.DiceCount)
	for i := int64(0); i < n; i++ {
		if i&(checkEvery-1) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		for j := range roll {
			roll[j] = src.IntN(dice.Faces) + 1
		}
		c, err := dice.Classify(roll)
		if err != nil {
			return err
		}
		hits[c]++
	}
	return nil
}
