package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kdarade/portfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize portfolio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks where contact messages should go and writes a .portfolio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
