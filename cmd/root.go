package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vedux98/UX-Audit/internal/output"
	"github.com/vedux98/UX-Audit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uxaudit",
	Short: "Score design files and live pages for accessibility and usability",
	Long: `A design-review scoring engine: audits a design document tree (or a live
URL via a remote lighthouse-style service) and produces 0-100 scores per
category plus a list of issues with remediation advice.`,
}

// log is the shared logger; subcommands pass it into library constructors.
// It writes to stderr so structured stdout output stays clean.
var log = logrus.New()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Structured output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Optional .env for UXAUDIT_API_KEY and friends; missing file is fine.
		_ = godotenv.Load()

		log.SetOutput(os.Stderr)
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
