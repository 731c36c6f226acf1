package cmd

import (
	"github.com/spf13/cobra"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <in_file> <out_file>",
		Short: "Decode a BinHex 4.0 file every time it changes",
		Long: `Decode in_file to out_file now and again after every change, until
interrupted. Useful while correcting a container by hand.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				In:  m.Path(args[0]),
				Out: m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
