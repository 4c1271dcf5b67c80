package rtp

import (
	"fmt"
	"io"
	"time"

	"dice_backend/internal/dice"
)

// Report - aggregate of one calibration run
type Report struct {
	Title         string
	Trials        int64
	Stake         float64
	TotalStaked   float64
	TotalReturned float64
	RTP           float64 // percent
	Verdict       Verdict
	Hits          map[dice.Category]int64
	Complete      bool
	Elapsed       time.Duration
}

// newReport - report from per-category hit counts. Totals are computed from
// the counts so the result does not depend on how trials were sharded.
func newReport(title string, hits [dice.NumCategories]int64, odds dice.OddsTable, stake float64, band Band) Report {
	r := Report{
		Title: title,
		Stake: stake,
		Hits:  make(map[dice.Category]int64, len(hits)),
	}

	var returned float64
	for i, n := range hits {
		c := dice.Category(i)
		r.Trials += n
		r.Hits[c] = n
		returned += float64(n) * odds.Multiplier(c)
	}

	r.TotalStaked = stake * float64(r.Trials)
	r.TotalReturned = stake * returned
	if r.TotalStaked > 0 {
		r.RTP = r.TotalReturned / r.TotalStaked * 100
	}
	r.Verdict = band.Judge(r.RTP)

	return r
}

// Fprint - human readable report
func (r Report) Fprint(w io.Writer) {
	fmt.Fprintf(w, "--- %s ---\n", r.Title)
	fmt.Fprintf(w, "Trials:         %d\n", r.Trials)
	fmt.Fprintf(w, "Total staked:   %.2f\n", r.TotalStaked)
	fmt.Fprintf(w, "Total returned: %.2f\n", r.TotalReturned)
	fmt.Fprintf(w, "RTP:            %.4f%%\n", r.RTP)
	for _, c := range dice.Categories() {
		n := r.Hits[c]
		share := 0.0
		if r.Trials > 0 {
			share = float64(n) / float64(r.Trials) * 100
		}
		fmt.Fprintf(w, "  %-12s %10d  %7.3f%%\n", c, n, share)
	}
	if !r.Complete {
		fmt.Fprintln(w, "Result:         incomplete run, not meaningful")
		return
	}
	fmt.Fprintf(w, "Result:         %s\n", r.Verdict)
}
