package domain

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"slices"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// Enumerator walks the Cartesian product of per-site alphabet indexes in
// odometer order: the last site changes fastest.
type Enumerator struct {
	sizes []int
}

// NewEnumerator builds an enumerator over the given alphabet sizes.
func NewEnumerator(sizes []int) (*Enumerator, error) {
	for i, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: site %d has alphabet size %d", ErrInvalidSite, i+1, size)
		}
	}

	return &Enumerator{sizes: slices.Clone(sizes)}, nil
}

// Total returns the number of states, the product of all sizes. It fails
// with ErrSearchSpaceOverflow instead of wrapping.
func (e *Enumerator) Total() (uint64, error) {
	total := uint64(1)

	for i, size := range e.sizes {
		hi, lo := bits.Mul64(total, uint64(size))
		if hi != 0 {
			return 0, fmt.Errorf("%w: product exceeds %d at site %d", ErrSearchSpaceOverflow, uint64(math.MaxUint64), i+1)
		}

		total = lo
	}

	return total, nil
}

// StateAt writes the state with the given trial index into dst.
func (e *Enumerator) StateAt(index uint64, dst m.State) {
	for i := len(e.sizes) - 1; i >= 0; i-- {
		size := uint64(e.sizes[i])
		dst[i] = int(index % size)
		index /= size
	}
}

// All yields every (trial index, state) pair. The state slice is reused
// between iterations; Clone it to keep it. With no sites the sequence is a
// single empty state.
func (e *Enumerator) All() iter.Seq2[uint64, m.State] {
	return func(yield func(uint64, m.State) bool) {
		state := make(m.State, len(e.sizes))

		for index := uint64(0); ; index++ {
			if !yield(index, state) {
				return
			}

			if !e.advance(state) {
				return
			}
		}
	}
}

// Range yields the states with trial indexes in [start, end), in the same
// order as All.
func (e *Enumerator) Range(start, end uint64) iter.Seq2[uint64, m.State] {
	return func(yield func(uint64, m.State) bool) {
		if start >= end {
			return
		}

		state := make(m.State, len(e.sizes))
		e.StateAt(start, state)

		for index := start; ; {
			if !yield(index, state) {
				return
			}

			index++
			if index >= end || !e.advance(state) {
				return
			}
		}
	}
}

// advance increments state like an odometer and reports false once it has
// wrapped past the last combination.
func (e *Enumerator) advance(state m.State) bool {
	for i := len(state) - 1; i >= 0; i-- {
		state[i]++
		if state[i] < e.sizes[i] {
			return true
		}

		state[i] = 0
	}

	return false
}

// shardRange splits [0, total) into shards contiguous chunks and returns
// the bounds of chunk index. Earlier chunks absorb the remainder.
func shardRange(total uint64, shards, index int) (uint64, uint64) {
	n := uint64(shards)
	i := uint64(index)
	base, rem := total/n, total%n

	start := i*base + min(i, rem)
	end := start + base

	if i < rem {
		end++
	}

	return start, end
}
