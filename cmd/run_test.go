package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

func TestRunCmd_Bruteforce(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newRunCmd())

	mockWorkflow.EXPECT().Bruteforce(mock.Anything, mock.MatchedBy(func(args domain.BruteforceArgs) bool {
		return args.Hqx == m.Path("broken.hqx") &&
			args.Config == m.Path("sites.conf") &&
			args.Output == m.Path(".") &&
			args.Threads == 2 &&
			args.ReportEvery == domain.DefaultReportEvery &&
			args.ReportInterval == time.Second &&
			args.Interrupt != nil
	})).Return(nil).Once()

	cmd.SetArgs(testArgs(t, "run", "--parallel", "2", "broken.hqx", "sites.conf"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_ReportFlags(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newRunCmd())

	mockWorkflow.EXPECT().Bruteforce(mock.Anything, mock.MatchedBy(func(args domain.BruteforceArgs) bool {
		return args.ReportEvery == 64 &&
			args.ReportInterval == 250*time.Millisecond &&
			args.Output == m.Path("results")
	})).Return(nil).Once()

	cmd.SetArgs(testArgs(t, "run", "-o", "results", "--report-every", "64", "--report-interval", "250ms", "a.hqx", "a.conf"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_InterruptCancelsContext(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newRunCmd())

	mockWorkflow.EXPECT().Bruteforce(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, args domain.BruteforceArgs) error {
			args.Interrupt()
			<-ctx.Done()

			return domain.ErrInterrupted
		}).
		Once()

	cmd.SetArgs(testArgs(t, "run", "a.hqx", "a.conf"))
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrInterrupted)
}

func TestRunCmd_RequiresTwoArgs(t *testing.T) {
	cmd, _ := newTestRoot(t, newRunCmd())

	cmd.SetArgs(testArgs(t, "run", "only.hqx"))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
