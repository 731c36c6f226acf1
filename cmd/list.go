package cmd

import (
	"github.com/spf13/cobra"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <hqx_file> <conf_file>",
		Short: "List the configured sites and the size of the search",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				Hqx:    m.Path(args[0]),
				Config: m.Path(args[1]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
