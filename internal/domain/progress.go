package domain

import "time"

const (
	// DefaultReportEvery is the trial cadence at which progress is sampled.
	DefaultReportEvery = 512
	// DefaultReportInterval is the minimum time between two progress reports.
	DefaultReportInterval = time.Second
)

// progressSampler decides when a progress report is due. It is owned by a
// single search run.
type progressSampler struct {
	every    uint64
	interval time.Duration
	now      func() time.Time
	start    time.Time
	last     time.Time
}

func newProgressSampler(every uint64, interval time.Duration, now func() time.Time) *progressSampler {
	if every == 0 {
		every = 1
	}

	start := now()

	return &progressSampler{
		every:    every,
		interval: interval,
		now:      now,
		start:    start,
		last:     start,
	}
}

// sampled reports whether done falls on the sampling cadence.
func (p *progressSampler) sampled(done uint64) bool {
	return done%p.every == 0
}

// due reports whether enough time has passed since the last report and, if
// so, marks a report as made.
func (p *progressSampler) due() bool {
	t := p.now()
	if t.Sub(p.last) < p.interval {
		return false
	}

	p.last = t

	return true
}

func (p *progressSampler) elapsed() time.Duration {
	return p.now().Sub(p.start)
}
