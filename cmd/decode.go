package cmd

import (
	"github.com/spf13/cobra"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// decodeCmd represents the decode command.
var decodeCmd = newDecodeCmd()

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <in_file> <out_file>",
		Short: "Decode a BinHex 4.0 file",
		Long: `Decode a BinHex 4.0 container, verifying every checksum, and write its data
fork to out_file. A non-empty resource fork is written to out_file.rsrc.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Decode(cmd.Context(), domain.DecodeArgs{
				In:  m.Path(args[0]),
				Out: m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
