package domain

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

func collect(t *testing.T, seq func(func(uint64, m.State) bool)) ([]uint64, []m.State) {
	t.Helper()

	var (
		indexes []uint64
		states  []m.State
	)

	for index, state := range seq {
		indexes = append(indexes, index)
		states = append(states, state.Clone())
	}

	return indexes, states
}

func TestEnumerator_All(t *testing.T) {
	enum, err := NewEnumerator([]int{2, 3, 4})
	require.NoError(t, err)

	total, err := enum.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(24), total)

	indexes, states := collect(t, enum.All())
	require.Len(t, states, 24)

	seen := make(map[string]bool)
	for i, state := range states {
		assert.Equal(t, uint64(i), indexes[i])

		key := fmt.Sprint(state)
		assert.False(t, seen[key], "state %v visited twice", state)
		seen[key] = true
	}

	assert.Equal(t, m.State{0, 0, 0}, states[0])
	assert.Equal(t, m.State{0, 0, 1}, states[1])
	assert.Equal(t, m.State{0, 1, 0}, states[4])
	assert.Equal(t, m.State{1, 0, 0}, states[12])
	assert.Equal(t, m.State{1, 2, 3}, states[23])
}

func TestEnumerator_NoSites(t *testing.T) {
	enum, err := NewEnumerator(nil)
	require.NoError(t, err)

	total, err := enum.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)

	_, states := collect(t, enum.All())
	require.Len(t, states, 1)
	assert.Empty(t, states[0])
}

func TestEnumerator_SizeOne(t *testing.T) {
	enum, err := NewEnumerator([]int{1, 1, 1})
	require.NoError(t, err)

	total, err := enum.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)

	_, states := collect(t, enum.All())
	assert.Equal(t, []m.State{{0, 0, 0}}, states)
}

func TestEnumerator_RejectsEmptyAlphabet(t *testing.T) {
	_, err := NewEnumerator([]int{3, 0})
	require.ErrorIs(t, err, ErrInvalidSite)
}

func TestEnumerator_TotalOverflow(t *testing.T) {
	sizes := slices.Repeat([]int{256}, 9)

	enum, err := NewEnumerator(sizes)
	require.NoError(t, err)

	_, err = enum.Total()
	require.ErrorIs(t, err, ErrSearchSpaceOverflow)

	enum, err = NewEnumerator(slices.Repeat([]int{256}, 7))
	require.NoError(t, err)

	total, err := enum.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<56, total)
}

func TestEnumerator_StateAt(t *testing.T) {
	enum, err := NewEnumerator([]int{3, 2, 5})
	require.NoError(t, err)

	state := make(m.State, 3)
	for index, want := range enum.All() {
		enum.StateAt(index, state)
		assert.Equal(t, want, state, "index %d", index)
	}
}

func TestEnumerator_Range(t *testing.T) {
	enum, err := NewEnumerator([]int{3, 4})
	require.NoError(t, err)

	allIndexes, allStates := collect(t, enum.All())

	indexes, states := collect(t, enum.Range(5, 9))
	assert.Equal(t, allIndexes[5:9], indexes)
	assert.Equal(t, allStates[5:9], states)

	_, states = collect(t, enum.Range(11, 12))
	assert.Equal(t, allStates[11:], states)

	_, states = collect(t, enum.Range(4, 4))
	assert.Empty(t, states)
}

func TestShardRange(t *testing.T) {
	tests := []struct {
		total  uint64
		shards int
	}{
		{total: 12, shards: 3},
		{total: 10, shards: 3},
		{total: 7, shards: 7},
		{total: 1, shards: 1},
		{total: 1000, shards: 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.shards), func(t *testing.T) {
			var next uint64

			for i := range tt.shards {
				start, end := shardRange(tt.total, tt.shards, i)
				assert.Equal(t, next, start, "chunk %d", i)
				assert.LessOrEqual(t, start, end)

				size := end - start
				assert.True(t, size == tt.total/uint64(tt.shards) || size == tt.total/uint64(tt.shards)+1)

				next = end
			}

			assert.Equal(t, tt.total, next)
		})
	}
}
