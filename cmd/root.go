package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kdarade/portfolio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with a relayed contact form",
	Long: `Portfolio serves a single-page personal portfolio: hero, about, skills,
projects and a contact form whose messages are forwarded as JSON to an
email relay. It can also export the page as static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
