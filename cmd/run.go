package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

var runParallelFlag int
var runReportEveryFlag uint64
var runReportIntervalFlag time.Duration

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <hqx_file> <conf_file>",
		Short: "Search every combination of the configured sites",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			return workflow.Bruteforce(ctx, domain.BruteforceArgs{
				EstimateArgs: domain.EstimateArgs{
					Hqx:    m.Path(args[0]),
					Config: m.Path(args[1]),
				},
				Output:         outputDir(),
				Threads:        viper.GetInt(runParallelConfigKey),
				ReportEvery:    viper.GetUint64(reportEveryConfigKey),
				ReportInterval: reportInterval(),
				Interrupt:      cancel,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel search workers")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().Uint64Var(&runReportEveryFlag, reportEveryFlagName, viper.GetUint64(reportEveryConfigKey), "sample progress every N combinations")
	bindFlagToConfig(cmd.Flags().Lookup(reportEveryFlagName), reportEveryConfigKey)

	cmd.Flags().DurationVar(&runReportIntervalFlag, reportIntervalFlagName, viper.GetDuration(reportIntervalConfigKey), "minimum time between progress reports")
	bindFlagToConfig(cmd.Flags().Lookup(reportIntervalFlagName), reportIntervalConfigKey)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}

	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
