// Package cmd provides the root command and CLI setup for hqxbrute.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hqxbrute.dev/pkg/hqxbrute/internal/adapter"
	"hqxbrute.dev/pkg/hqxbrute/internal/controller"
	"hqxbrute.dev/pkg/hqxbrute/internal/domain"
	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

var fileAdapter adapter.FileAdapter
var siteLoader adapter.SiteConfigLoader
var codec adapter.Codec
var resultStore adapter.ResultStore
var watcher adapter.Watcher
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that write results.
var outputDirFlag string

// plainFlag forces line-oriented output even on a terminal.
var plainFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	wireDependencies(rootCmd, controller.IsTTY(os.Stdout) && !viper.GetBool(uiPlainKey))
}

// wireDependencies builds the shared adapters and the workflow. The UI
// prints through root; interactive selects the bubbletea UI over plain
// output.
func wireDependencies(root *cobra.Command, interactive bool) {
	ui = controller.NewUI(root, interactive)
	fileAdapter = adapter.NewLocalFileAdapter()
	siteLoader = adapter.NewLocalSiteConfigLoader()
	codec = adapter.NewBinHexCodec()
	resultStore = adapter.NewResultStore(fileAdapter)
	watcher = adapter.NewFSNotifyWatcher()
	orchestrator = domain.NewOrchestrator(codec, resultStore, ui)
	workflow = domain.NewWorkflow(
		fileAdapter,
		siteLoader,
		codec,
		resultStore,
		watcher,
		ui,
		orchestrator,
	)
}

const siteFormatHelp = `Site configuration format, one site per line:
  <line>:<column> - <charset>     e.g. "12:40 - AaBb"
  <line>:<column> - ?             every BinHex 4.0 character
Blank lines and lines starting with # are ignored.`

const rootLongDescription = `hqxbrute repairs damaged BinHex 4.0 (.hqx) files by trying every
combination of candidate characters at the suspect positions you list and
keeping each combination whose checksums validate.

` + siteFormatHelp

const runLongDescription = `Try every combination of the configured sites against the container and
write each one that validates to the output directory as
bruteforce_<n>_<name>.hqx together with its decoded data fork.

` + siteFormatHelp

const listLongDescription = `List the configured sites, the byte each one currently addresses and the
number of combinations a run would try.

` + siteFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "hqxbrute",
		Short:        "Brute-force repair of damaged BinHex 4.0 files",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configReadErr != nil {
				slog.Error("Failed to read config file", "error", configReadErr)
				return configReadErr
			}

			if flag := cmd.Flags().Lookup(plainFlagName); flag != nil && flag.Changed && viper.GetBool(uiPlainKey) {
				wireDependencies(cmd.Root(), false)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory receiving result files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(uiPlainKey), "plain line-oriented output, no interactive UI")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), uiPlainKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func outputDir() m.Path {
	return m.Path(viper.GetString(outputFlagName))
}
