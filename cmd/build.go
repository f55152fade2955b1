package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kdarade/portfolio/internal/progress"
	"github.com/kdarade/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long:  `Writes index.html and its assets to site.output_dir. The exported contact form posts directly to the configured relay.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	prof, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	generator := site.NewGenerator(prof, outputDir, cfg.Relay.Endpoint)
	generator.Logger = logger.With(zap.String("output", outputDir))
	generator.Progress = progress.NewReporter()
	n, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d files)\n", outputDir, n)
	return nil
}
