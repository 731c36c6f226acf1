package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

func TestMutator_Apply(t *testing.T) {
	original := []byte("abc\ndef\nghi\n")
	sites := m.Sites{
		{Line: 1, Column: 0, Alphabet: []byte("XYZ")},
		{Line: 3, Column: 2, Alphabet: []byte("12")},
	}

	mu, err := NewMutator(original, sites)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2}, mu.Sizes())
	assert.Equal(t, 0, mu.Offset(0))
	assert.Equal(t, 9, mu.Offset(1))

	assert.Equal(t, "Ybc\ndef\ng2i\n", string(mu.Apply(m.State{1, 1})))
	assert.Equal(t, "Zbc\ndef\ng1i\n", string(mu.Apply(m.State{2, 0})))

	// The original is never written.
	assert.Equal(t, "abc\ndef\nghi\n", string(original))
}

func TestMutator_ApplyIsIdempotent(t *testing.T) {
	mu, err := NewMutator([]byte("0123\n4567\n"), m.Sites{
		{Line: 1, Column: 1, Alphabet: []byte("ab")},
		{Line: 2, Column: 3, Alphabet: []byte("cd")},
	})
	require.NoError(t, err)

	first := string(mu.Apply(m.State{1, 0}))
	_ = mu.Apply(m.State{0, 1})
	second := string(mu.Apply(m.State{1, 0}))
	third := string(mu.Apply(m.State{1, 0}))

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestMutator_SnapshotAndClone(t *testing.T) {
	mu, err := NewMutator([]byte("xx"), m.Sites{{Line: 1, Column: 0, Alphabet: []byte("ab")}})
	require.NoError(t, err)

	mu.Apply(m.State{0})
	snapshot := mu.Snapshot()
	clone := mu.Clone()

	mu.Apply(m.State{1})

	assert.Equal(t, "ax", string(snapshot))
	assert.Equal(t, "ax", string(clone.Snapshot()))

	clone.Apply(m.State{1})
	assert.Equal(t, "bx", string(clone.Snapshot()))
	assert.Equal(t, "bx", string(mu.Snapshot()))
}

func TestMutator_SharedOffsetLaterSiteWins(t *testing.T) {
	mu, err := NewMutator([]byte("abc\ndef\n"), m.Sites{
		{Line: 1, Column: 3, Alphabet: []byte("1")},
		{Line: 2, Column: 0, Alphabet: []byte("2")},
	})
	require.NoError(t, err)

	assert.Equal(t, mu.Offset(0), mu.Offset(1))
	assert.Equal(t, "abc2def\n", string(mu.Apply(m.State{0, 0})))
}

func TestMutator_Assignments(t *testing.T) {
	mu, err := NewMutator([]byte("abc\ndef\n"), m.Sites{
		{Line: 1, Column: 1, Alphabet: []byte("pq")},
		{Line: 2, Column: 2, Alphabet: []byte("rs")},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Assignment{
		{Line: 1, Column: 1, Char: "q"},
		{Line: 2, Column: 2, Char: "r"},
	}, mu.Assignments(m.State{1, 0}))
}

func TestMutator_MalformedBuffer(t *testing.T) {
	_, err := NewMutator([]byte("one\ntwo\n"), m.Sites{{Line: 50, Column: 0, Alphabet: []byte("a")}})
	require.ErrorIs(t, err, ErrMalformedBuffer)
}
