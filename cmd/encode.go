package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

var lineEndingFlag string

var lineEndings = map[string]string{
	"lf":   "\n",
	"cr":   "\r",
	"crlf": "\r\n",
}

const encodeLongDescription = `Encode in_file as a BinHex 4.0 container named after the input file and
write it to out_file.

Lines end with LF by default. Classic Macintosh BinHex encoders end lines
with CR; use --line-ending cr to match their output.`

// encodeCmd represents the encode command.
var encodeCmd = newEncodeCmd()

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <in_file> <out_file>",
		Short: "Encode a file as BinHex 4.0",
		Long: encodeLongDescription,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eol, err := parseLineEnding(viper.GetString(lineEndingConfigKey))
			if err != nil {
				return err
			}

			return workflow.Encode(cmd.Context(), domain.EncodeArgs{
				In:         m.Path(args[0]),
				Out:        m.Path(args[1]),
				LineEnding: eol,
			})
		},
	}

	cmd.Flags().StringVar(&lineEndingFlag, lineEndingFlagName, viper.GetString(lineEndingConfigKey), "line ending of the armored text: lf, cr or crlf")
	bindFlagToConfig(cmd.Flags().Lookup(lineEndingFlagName), lineEndingConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func parseLineEnding(name string) (string, error) {
	eol, ok := lineEndings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown line ending %q (want lf, cr or crlf)", name)
	}

	return eol, nil
}
