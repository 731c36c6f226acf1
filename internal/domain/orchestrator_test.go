package domain_test

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "hqxbrute.dev/pkg/hqxbrute/internal/adapter/mocks"
	controllermocks "hqxbrute.dev/pkg/hqxbrute/internal/controller/mocks"
	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// threeLines resolves site 2:0 to offset 8 (the first newline) and site 3:1
// to offset 12.
const threeLines = "line one\nab\nxy\n"

func threeLineSites() m.Sites {
	return m.Sites{
		{Line: 2, Column: 0, Alphabet: []byte("ab")},
		{Line: 3, Column: 1, Alphabet: []byte("xy")},
	}
}

// oracle accepts a buffer when every listed offset holds the wanted byte.
func oracle(want map[int]byte, trials *atomic.Int64) func([]byte) m.Decoded {
	return func(buf []byte) m.Decoded {
		if trials != nil {
			trials.Add(1)
		}

		for offset, b := range want {
			if buf[offset] != b {
				return m.Decoded{}
			}
		}

		return m.Decoded{Valid: true, Name: "demo", Payload: []byte("payload")}
	}
}

func quietUI(t *testing.T) *controllermocks.MockUI {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplaySearchInfo(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().DisplaySuccess(mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().DisplayArtifacts(mock.Anything, mock.Anything, mock.Anything).Maybe()

	return ui
}

func TestOrchestrator_Search_EndToEnd(t *testing.T) {
	var trials atomic.Int64

	codec := adaptermocks.NewMockCodec(t)
	codec.EXPECT().Validate(mock.Anything).RunAndReturn(oracle(map[int]byte{8: 'b', 12: 'y'}, &trials))

	dir := m.Path(t.TempDir())

	var container []byte

	store := adaptermocks.NewMockResultStore(t)
	store.EXPECT().
		SaveSuccess(mock.Anything, dir, uint64(1), "demo", mock.Anything, []byte("payload")).
		Run(func(_ context.Context, _ m.Path, _ uint64, _ string, c, _ []byte) { container = c }).
		Return(m.Artifacts{Container: "c.hqx", Payload: "c"}, nil).
		Once()

	var announced m.Success

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplaySearchInfo(mock.Anything, 2, uint64(4), 1).Once()
	ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().DisplaySuccess(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s m.Success) { announced = s }).
		Once()
	ui.EXPECT().DisplayArtifacts(mock.Anything, mock.Anything, nil).Once()

	orch := domain.NewOrchestrator(codec, store, ui, domain.WithSpillDir(t.TempDir()))

	summary, err := orch.Search(context.Background(), domain.SearchArgs{
		Buffer:  []byte(threeLines),
		Sites:   threeLineSites(),
		Output:  dir,
		Threads: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), trials.Load())
	assert.Equal(t, uint64(4), summary.Total)
	assert.Equal(t, uint64(4), summary.Done)
	assert.Equal(t, uint64(1), summary.Successes)
	assert.False(t, summary.Interrupted)

	assert.Equal(t, uint64(1), announced.Index)
	assert.Equal(t, uint64(4), announced.Trial)
	assert.Equal(t, m.State{1, 1}, announced.State)
	assert.Equal(t, []m.Assignment{
		{Line: 2, Column: 0, Char: "b"},
		{Line: 3, Column: 1, Char: "y"},
	}, announced.Assignments)

	assert.Equal(t, "line onebab\nyy\n", string(container))

	require.Len(t, summary.Records, 1)
	assert.Equal(t, m.Path("c.hqx"), summary.Records[0].ContainerPath)
	assert.Equal(t, m.Path("c"), summary.Records[0].PayloadPath)
	assert.Equal(t, m.State{1, 1}, summary.Records[0].State)
}

func TestOrchestrator_Search_NoSites(t *testing.T) {
	original := []byte("untouched\n")

	codec := adaptermocks.NewMockCodec(t)
	codec.EXPECT().Validate(original).Return(m.Decoded{}).Once()

	store := adaptermocks.NewMockResultStore(t)
	orch := domain.NewOrchestrator(codec, store, quietUI(t), domain.WithSpillDir(t.TempDir()))

	summary, err := orch.Search(context.Background(), domain.SearchArgs{Buffer: original, Threads: 4})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), summary.Total)
	assert.Equal(t, uint64(1), summary.Done)
	assert.Zero(t, summary.Successes)
	assert.Empty(t, summary.Records)
}

func TestOrchestrator_Search_SizeOneSites(t *testing.T) {
	codec := adaptermocks.NewMockCodec(t)
	codec.EXPECT().Validate([]byte("QR\n")).Return(m.Decoded{Valid: true, Name: "one"}).Once()

	store := adaptermocks.NewMockResultStore(t)
	store.EXPECT().SaveSuccess(mock.Anything, m.Path("out"), uint64(1), "one", []byte("QR\n"), []byte(nil)).
		Return(m.Artifacts{}, nil).
		Once()

	orch := domain.NewOrchestrator(codec, store, quietUI(t), domain.WithSpillDir(t.TempDir()))

	summary, err := orch.Search(context.Background(), domain.SearchArgs{
		Buffer: []byte("ab\n"),
		Sites: m.Sites{
			{Line: 1, Column: 0, Alphabet: []byte("Q")},
			{Line: 1, Column: 1, Alphabet: []byte("R")},
		},
		Output: "out",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), summary.Total)
	assert.Equal(t, uint64(1), summary.Successes)
}

func TestOrchestrator_Search_SetupErrors(t *testing.T) {
	tenLines := []byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")

	tests := []struct {
		name    string
		buffer  []byte
		sites   m.Sites
		wantErr error
	}{
		{
			name:    "line beyond the buffer",
			buffer:  tenLines,
			sites:   m.Sites{{Line: 50, Column: 0, Alphabet: []byte("ab")}},
			wantErr: domain.ErrMalformedBuffer,
		},
		{
			name:   "search space overflow",
			buffer: tenLines,
			sites: func() m.Sites {
				alphabet := make([]byte, 256)
				for i := range alphabet {
					alphabet[i] = byte(i)
				}

				var sites m.Sites
				for col := range 9 {
					sites = append(sites, m.Site{Line: 1, Column: col % 2, Alphabet: alphabet})
				}

				return sites
			}(),
			wantErr: domain.ErrSearchSpaceOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any trial or UI call fails the test.
			codec := adaptermocks.NewMockCodec(t)
			store := adaptermocks.NewMockResultStore(t)
			ui := controllermocks.NewMockUI(t)

			orch := domain.NewOrchestrator(codec, store, ui, domain.WithSpillDir(t.TempDir()))

			_, err := orch.Search(context.Background(), domain.SearchArgs{Buffer: tt.buffer, Sites: tt.sites})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrchestrator_Search_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var trials atomic.Int64

	codec := adaptermocks.NewMockCodec(t)
	codec.EXPECT().Validate(mock.Anything).RunAndReturn(func(buf []byte) m.Decoded {
		if trials.Add(1) == 2 {
			cancel()
			// The in-flight trial still completes and persists.
			return m.Decoded{Valid: true, Name: "late"}
		}

		return m.Decoded{}
	})

	store := adaptermocks.NewMockResultStore(t)
	store.EXPECT().SaveSuccess(mock.Anything, mock.Anything, uint64(1), "late", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.Path, _ uint64, _ string, _, _ []byte) (m.Artifacts, error) {
			// Result writes are detached from the cancelled context.
			return m.Artifacts{}, ctx.Err()
		}).
		Once()

	orch := domain.NewOrchestrator(codec, store, quietUI(t), domain.WithSpillDir(t.TempDir()))

	summary, err := orch.Search(ctx, domain.SearchArgs{Buffer: []byte(threeLines), Sites: threeLineSites()})
	require.ErrorIs(t, err, domain.ErrInterrupted)

	assert.True(t, summary.Interrupted)
	assert.Equal(t, uint64(2), summary.Done)
	assert.Equal(t, uint64(4), summary.Total)
	assert.Equal(t, uint64(1), summary.Successes)
	assert.Equal(t, int64(2), trials.Load())
}

func TestOrchestrator_Search_PersistenceErrorContinues(t *testing.T) {
	codec := adaptermocks.NewMockCodec(t)
	codec.EXPECT().Validate(mock.Anything).RunAndReturn(oracle(map[int]byte{12: 'y'}, nil))

	store := adaptermocks.NewMockResultStore(t)
	store.EXPECT().SaveSuccess(mock.Anything, mock.Anything, uint64(1), mock.Anything, mock.Anything, mock.Anything).
		Return(m.Artifacts{Payload: "p1"}, errors.New("disk full")).
		Once()
	store.EXPECT().SaveSuccess(mock.Anything, mock.Anything, uint64(2), mock.Anything, mock.Anything, mock.Anything).
		Return(m.Artifacts{Container: "c2", Payload: "p2"}, nil).
		Once()

	var artifactErrs []error

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplaySearchInfo(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()
	ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().DisplaySuccess(mock.Anything, mock.Anything).Times(2)
	ui.EXPECT().DisplayArtifacts(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ m.Success, err error) { artifactErrs = append(artifactErrs, err) }).
		Times(2)

	orch := domain.NewOrchestrator(codec, store, ui, domain.WithSpillDir(t.TempDir()))

	summary, err := orch.Search(context.Background(), domain.SearchArgs{Buffer: []byte(threeLines), Sites: threeLineSites()})
	require.NoError(t, err)

	assert.Equal(t, uint64(4), summary.Done)
	assert.Equal(t, uint64(2), summary.Successes)

	require.Len(t, artifactErrs, 2)
	require.Error(t, artifactErrs[0])
	assert.NoError(t, artifactErrs[1])

	require.Len(t, summary.Records, 2)
	assert.Equal(t, m.Path("p1"), summary.Records[0].PayloadPath)
	assert.Equal(t, m.Path("c2"), summary.Records[1].ContainerPath)
}

func TestOrchestrator_Search_ProgressCadence(t *testing.T) {
	codec := adaptermocks.NewMockCodec(t)
	codec.EXPECT().Validate(mock.Anything).Return(m.Decoded{})

	var (
		mu       sync.Mutex
		progress []m.Progress
	)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplaySearchInfo(mock.Anything, 2, uint64(4), 1).Once()
	ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p m.Progress) {
			mu.Lock()
			defer mu.Unlock()

			progress = append(progress, p)
		})

	orch := domain.NewOrchestrator(codec, adaptermocks.NewMockResultStore(t), ui, domain.WithSpillDir(t.TempDir()))

	_, err := orch.Search(context.Background(), domain.SearchArgs{
		Buffer:      []byte(threeLines),
		Sites:       threeLineSites(),
		ReportEvery: 2,
	})
	require.NoError(t, err)

	done := make([]uint64, len(progress))
	for i, p := range progress {
		done[i] = p.Done
		assert.Equal(t, uint64(4), p.Total)
	}

	// Initial report, every second trial, then the final report.
	assert.Equal(t, []uint64{0, 2, 4, 4}, done)
}

func TestOrchestrator_Search_ParallelFindsSameSuccesses(t *testing.T) {
	buffer := []byte("abcdef\n")
	sites := m.Sites{
		{Line: 1, Column: 0, Alphabet: []byte("0123")},
		{Line: 1, Column: 1, Alphabet: []byte("012")},
		{Line: 1, Column: 2, Alphabet: []byte("01234")},
	}

	// Accept every buffer whose third character is odd.
	accept := func(buf []byte) m.Decoded {
		return m.Decoded{Valid: (buf[2]-'0')%2 == 1, Name: "p"}
	}

	run := func(threads int) m.RunSummary {
		codec := adaptermocks.NewMockCodec(t)
		codec.EXPECT().Validate(mock.Anything).RunAndReturn(accept)

		store := adaptermocks.NewMockResultStore(t)
		store.EXPECT().SaveSuccess(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(m.Artifacts{}, nil)

		orch := domain.NewOrchestrator(codec, store, quietUI(t), domain.WithSpillDir(t.TempDir()))

		summary, err := orch.Search(context.Background(), domain.SearchArgs{Buffer: buffer, Sites: sites, Threads: threads})
		require.NoError(t, err)

		return summary
	}

	states := func(summary m.RunSummary) ([]string, []uint64) {
		var (
			found   []string
			indexes []uint64
		)

		for _, record := range summary.Records {
			found = append(found, fmt.Sprint(record.State))
			indexes = append(indexes, record.Index)
		}

		slices.Sort(found)
		slices.Sort(indexes)

		return found, indexes
	}

	sequential := run(1)
	parallel := run(4)

	assert.Equal(t, uint64(60), parallel.Total)
	assert.Equal(t, uint64(60), parallel.Done)
	assert.Equal(t, uint64(24), sequential.Successes)
	assert.Equal(t, sequential.Successes, parallel.Successes)

	seqStates, seqIndexes := states(sequential)
	parStates, parIndexes := states(parallel)

	assert.Equal(t, seqStates, parStates)
	// Successes are numbered 1..n without gaps in both modes.
	assert.Equal(t, seqIndexes, parIndexes)
	assert.Equal(t, uint64(1), parIndexes[0])

	// Records come back ordered by success number in both modes.
	for _, summary := range []m.RunSummary{sequential, parallel} {
		assert.True(t, slices.IsSortedFunc(summary.Records, func(a, b m.Success) int {
			return cmp.Compare(a.Index, b.Index)
		}))
	}

	assert.Equal(t, uint64(24), parIndexes[len(parIndexes)-1])
}
