package rtp

// Verdict - calibration decision for a measured RTP
type Verdict string

const (
	VerdictWithinBand  Verdict = "within target band"
	VerdictTooStrict   Verdict = "odds table too strict, recalibrate"
	VerdictTooGenerous Verdict = "odds table too generous, recalibrate"
	VerdictBelowBand   Verdict = "below target band"
)

// Band - acceptance thresholds in percent
type Band struct {
	Low            float64 // exclusive lower bound of the target band
	High           float64 // exclusive upper bound of the target band
	TooStrictBelow float64 // anything under this is far too tight
}

// DefaultBand - 94-96% target, under 50% is too strict
func DefaultBand() Band {
	return Band{Low: 94, High: 96, TooStrictBelow: 50}
}

// Judge - verdict for rtp given in percent
func (b Band) Judge(rtp float64) Verdict {
	switch {
	case rtp > b.Low && rtp < b.High:
		return VerdictWithinBand
	case rtp < b.TooStrictBelow:
		return VerdictTooStrict
	case rtp >= b.High:
		return VerdictTooGenerous
	default:
		return VerdictBelowBand
	}
}

// Target - middle of the band
func (b Band) Target() float64 {
	return (b.Low + b.High) / 2
}
