package domain

import (
	"bytes"
	"log/slog"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// Mutator owns the search buffer and writes states into it in place.
type Mutator struct {
	buf       []byte
	sites     m.Sites
	offsets   []int
	alphabets [][]byte
}

// NewMutator copies original into a private buffer and resolves every
// site's write offset once.
func NewMutator(original []byte, sites m.Sites) (*Mutator, error) {
	offsets, err := ResolveSiteOffsets(original, sites)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]int, len(offsets))
	for i, offset := range offsets {
		if prev, ok := seen[offset]; ok {
			slog.Warn("Sites share a buffer offset; the later site wins",
				"offset", offset, "site", sites[prev].String(), "other", sites[i].String())
		}

		seen[offset] = i
	}

	alphabets := make([][]byte, len(sites))
	for i, site := range sites {
		alphabets[i] = site.Alphabet
	}

	return &Mutator{
		buf:       bytes.Clone(original),
		sites:     sites,
		offsets:   offsets,
		alphabets: alphabets,
	}, nil
}

// Apply writes the characters selected by state at every site, in site
// order, and returns the buffer. The returned slice is only valid until the
// next Apply.
func (mu *Mutator) Apply(state m.State) []byte {
	for i, offset := range mu.offsets {
		mu.buf[offset] = mu.alphabets[i][state[i]]
	}

	return mu.buf
}

// Snapshot copies the current buffer contents.
func (mu *Mutator) Snapshot() []byte {
	return bytes.Clone(mu.buf)
}

// Clone returns a Mutator with its own copy of the buffer, for use by
// another goroutine.
func (mu *Mutator) Clone() *Mutator {
	return &Mutator{
		buf:       bytes.Clone(mu.buf),
		sites:     mu.sites,
		offsets:   mu.offsets,
		alphabets: mu.alphabets,
	}
}

// Sizes returns the alphabet size of every site.
func (mu *Mutator) Sizes() []int {
	return mu.sites.Sizes()
}

// Offset returns the resolved write offset of site i.
func (mu *Mutator) Offset(i int) int {
	return mu.offsets[i]
}

// Assignments describes the character state places at each site.
func (mu *Mutator) Assignments(state m.State) []m.Assignment {
	out := make([]m.Assignment, len(mu.sites))
	for i, site := range mu.sites {
		out[i] = m.Assignment{
			Line:   site.Line,
			Column: site.Column,
			Char:   string(mu.alphabets[i][state[i]]),
		}
	}

	return out
}
