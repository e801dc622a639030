package response

import (
	"math"

	"github.com/cwbudde/algo-smooth/internal/core"
)

// Analysis holds closed-form properties of a retention value at a frame rate.
type Analysis struct {
	Retention float64
	FrameRate float64
	// PercentPerFrame is the fraction of the gap closed in one frame.
	PercentPerFrame float64
	// TimeConstant is the time in seconds to close 1-1/e of the gap.
	TimeConstant float64
	// HalfLife is the time in seconds to close half of the gap.
	HalfLife float64
	// Settle1 and Settle01 are the times in seconds until 1% and 0.1% of
	// the gap remain.
	Settle1  float64
	Settle01 float64
	// SettleFrames is Settle1 rounded up to whole frames.
	SettleFrames int
	// CutoffHz is the -3 dB frequency of the per-frame filter, capped at
	// Nyquist.
	CutoffHz float64
}

// Analyze computes the properties of retention at the configured frame rate.
// Retention 0 reports zero times (instant snap), retention 1 reports
// infinite times (frozen).
func Analyze(retention float64, opts ...Option) (Analysis, error) {
	if err := validateRetention(retention); err != nil {
		return Analysis{}, err
	}
	cfg := core.ApplyFrameOptions(opts...)

	a := math.Pow(retention, cfg.Delta())
	settle1 := secondsToRemain(retention, 0.01)

	res := Analysis{
		Retention:       retention,
		FrameRate:       cfg.FrameRate,
		PercentPerFrame: 1 - a,
		TimeConstant:    secondsToRemain(retention, 1/math.E),
		HalfLife:        secondsToRemain(retention, 0.5),
		Settle1:         settle1,
		Settle01:        secondsToRemain(retention, 0.001),
		CutoffHz:        cutoff(a, cfg.FrameRate),
	}

	switch {
	case math.IsInf(settle1, 1):
		res.SettleFrames = math.MaxInt
	case settle1 == 0:
		res.SettleFrames = 1
	default:
		// Guard against 0.9999999 frames being rounded up to 2.
		res.SettleFrames = int(math.Ceil(settle1*cfg.FrameRate - 1e-9))
	}

	return res, nil
}

// RetentionForHalfLife returns the retention whose half-life is seconds.
func RetentionForHalfLife(seconds float64) float64 {
	return RetentionForSettle(seconds, 0.5)
}

// RetentionForSettle returns the retention that leaves remaining of the
// gap after seconds. Non-positive seconds yield 0 (snap).
func RetentionForSettle(seconds, remaining float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return core.Clamp(math.Pow(remaining, 1/seconds), 0, 1)
}

// secondsToRemain solves retention^t = remaining for t.
func secondsToRemain(retention, remaining float64) float64 {
	switch retention {
	case 0:
		return 0
	case 1:
		return math.Inf(1)
	}
	return math.Log(remaining) / math.Log(retention)
}

// cutoff returns the -3 dB frequency of y[n] = a*y[n-1] + (1-a)*x[n].
//
//	|H(w)|^2 = (1-a)^2 / (1 - 2a*cos(w) + a^2)
func cutoff(a, fps float64) float64 {
	nyquist := fps / 2
	if a <= 0 {
		return nyquist
	}
	if a >= 1 {
		return 0
	}
	p := 1 - a
	cosW := (1 + a*a - 2*p*p) / (2 * a)
	if cosW <= -1 {
		return nyquist
	}
	return math.Acos(core.Clamp(cosW, -1, 1)) * fps / (2 * math.Pi)
}
