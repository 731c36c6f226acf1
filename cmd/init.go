package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const sitesFlagName = "sites"

// initSitesFlag names an optional site configuration template to create.
var initSitesFlag string

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default hqxbrute.yaml configuration file",
		Long: `Create a hqxbrute.yaml in the current working directory holding the run,
ui and log defaults so it can be edited manually. With --sites, also create
a commented site configuration template for "hqxbrute run".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("Configuration written to", targetPath)

			if initSitesFlag == "" {
				return nil
			}

			if err := writeSitesTemplate(initSitesFlag); err != nil {
				return err
			}

			cmd.Println("Site template written to", initSitesFlag)

			return nil
		},
	}

	cmd.Flags().StringVar(&initSitesFlag, sitesFlagName, "", "also write a site configuration template to this file")

	return cmd
}

// sitesTemplate renders a site configuration that holds only comments.
func sitesTemplate() string {
	var b strings.Builder

	b.WriteString("# hqxbrute site configuration\n#\n")

	for _, line := range strings.Split(siteFormatHelp, "\n") {
		b.WriteString("# " + line + "\n")
	}

	b.WriteString("#\n# Lines count from 1. Column 0 of a later line is the newline ending the\n")
	b.WriteString("# line before it, so its first character is column 1.\n#\n")
	b.WriteString("# 3:10 - ?\n# 7:1 - AaEe\n")

	return b.String()
}

func writeSitesTemplate(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("site template %s already exists", path)
		}

		return fmt.Errorf("failed to create site template: %w", err)
	}

	_, err = f.WriteString(sitesTemplate())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("failed to write site template: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
