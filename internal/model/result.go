package model

import "time"

// Decoded is the outcome of validating one buffer.
type Decoded struct {
	Valid   bool
	Payload []byte
	Name    string
}

// Success records one combination whose container validated.
type Success struct {
	Index         uint64       `yaml:"index"` // 1-based, in order of discovery
	Trial         uint64       `yaml:"trial"`
	State         State        `yaml:"state,flow"`
	Assignments   []Assignment `yaml:"assignments"`
	Name          string       `yaml:"name"`
	ContainerPath Path         `yaml:"container_path,omitempty"`
	PayloadPath   Path         `yaml:"payload_path,omitempty"`
}

// Artifacts lists the files written for a success.
type Artifacts struct {
	Container Path
	Payload   Path
}

// Progress is a sampled snapshot of search progress.
type Progress struct {
	Done    uint64
	Total   uint64
	Elapsed time.Duration
}

// Rate returns trials per second. Elapsed below one second counts as one
// second so the first samples do not report absurd rates.
func (p Progress) Rate() float64 {
	seconds := p.Elapsed.Seconds()
	if seconds < 1 {
		seconds = 1
	}

	return float64(p.Done) / seconds
}

// ETA estimates the remaining time at the current rate.
func (p Progress) ETA() time.Duration {
	rate := p.Rate()
	if rate <= 0 || p.Done >= p.Total {
		return 0
	}

	return time.Duration(float64(p.Total-p.Done) / rate * float64(time.Second))
}

// Percent returns the truncated completion percentage.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 100
	}

	return int(float64(p.Done) / float64(p.Total) * 100)
}

// RunSummary describes a finished or interrupted search.
type RunSummary struct {
	Hqx         Path          `yaml:"hqx"`
	Config      Path          `yaml:"config"`
	Sites       int           `yaml:"sites"`
	Total       uint64        `yaml:"total"`
	Done        uint64        `yaml:"done"`
	Successes   uint64        `yaml:"successes"`
	Elapsed     time.Duration `yaml:"elapsed"`
	Interrupted bool          `yaml:"interrupted"`
	Records     []Success     `yaml:"records"`
}

// SiteEstimate is one row of the pre-run estimation.
type SiteEstimate struct {
	Site    Site
	Offset  int
	Current byte
}

// Estimation summarises the search space before running it.
type Estimation struct {
	Rows  []SiteEstimate
	Total uint64
}
