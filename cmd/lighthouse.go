package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vedux98/UX-Audit/internal/lighthouse"
	"github.com/vedux98/UX-Audit/internal/output"
)

var lighthouseCmd = &cobra.Command{
	Use:   "lighthouse <url>",
	Short: "Audit a live URL through the remote scoring service",
	Long: `Request a lighthouse-style audit of a live URL from the remote scoring
service and map it into the internal score/issue model. Without an API key
(settings or UXAUDIT_API_KEY) a static baseline result is returned instead.

Examples:
  uxaudit lighthouse https://example.com
  uxaudit lighthouse https://example.com --format json --out report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runLighthouse,
}

func init() {
	rootCmd.AddCommand(lighthouseCmd)
	lighthouseCmd.Flags().String("out", "", "Write a report artifact to this file")
	lighthouseCmd.Flags().String("endpoint", "", "Override the scoring service endpoint")
	lighthouseCmd.Flags().String("settings-file", "", "Settings file to use instead of the default")
}

func runLighthouse(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var opts []lighthouse.Option
	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		opts = append(opts, lighthouse.WithEndpoint(endpoint))
	}
	client := lighthouse.NewClient(log, opts...)

	result, err := client.Audit(cmd.Context(), args[0], settings)
	if err != nil {
		// Transport failures degrade to the baseline; anything else is
		// a real error.
		if !lighthouse.IsTransport(err) {
			return err
		}
		log.WithError(err).Warn("remote audit failed, using baseline result")
		result = lighthouse.Fallback(settings)
	}

	printSummary(result, args[0])
	if err := output.Print(result); err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return writeArtifact(result, args[0], settings, out)
	}
	return nil
}
