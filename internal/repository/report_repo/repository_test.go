package report_repo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"dice_backend/internal/model"
	"dice_backend/internal/repository"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	r, err := NewReportRepository(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSaveAndGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed := uint64(1<<63 + 5)
	in := &model.SimulationReport{
		Title:         "calibrated",
		Odds:          map[string]float64{"Three Pairs": 4, "Yahtzee": 20, "4+2": 3, "Pair": 0.82},
		Trials:        1000,
		Stake:         10,
		TotalStaked:   10000,
		TotalReturned: 9535,
		RTP:           95.35,
		Verdict:       "within target band",
		Hits:          map[string]int64{"Pair": 936, "Other": 16, "Three Pairs": 39, "4+2": 9, "Yahtzee": 0},
		Seed:          &seed,
		Complete:      true,
		Elapsed:       1500 * time.Millisecond,
	}

	id, err := r.Save(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" || in.ID != id {
		t.Fatalf("Save returned id %q, report id %q", id, in.ID)
	}

	got, err := r.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != in.Title || got.Trials != in.Trials || got.RTP != in.RTP || got.Verdict != in.Verdict {
		t.Errorf("Get = %+v", got)
	}
	if got.Odds["Pair"] != 0.82 || got.Hits["Three Pairs"] != 39 {
		t.Errorf("maps not restored: %v %v", got.Odds, got.Hits)
	}
	if got.Seed == nil || *got.Seed != seed {
		t.Errorf("Seed = %v, want %d", got.Seed, seed)
	}
	if !got.Complete || got.Elapsed != 1500*time.Millisecond {
		t.Errorf("Complete/Elapsed = %v/%v", got.Complete, got.Elapsed)
	}
}

func TestGetMissing(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.Get(context.Background(), "nope")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Minute)
		r.now = func() time.Time { return at }
		if _, err := r.Save(ctx, &model.SimulationReport{Title: title, Odds: map[string]float64{}, Hits: map[string]int64{}}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := r.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d reports, want 2", len(list))
	}
	if list[0].Title != "third" || list[1].Title != "second" {
		t.Errorf("order = %q, %q", list[0].Title, list[1].Title)
	}
	if list[0].Seed != nil {
		t.Errorf("Seed = %v, want nil", *list[0].Seed)
	}
}
