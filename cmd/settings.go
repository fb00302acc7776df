package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vedux98/UX-Audit/internal/audit"
	"github.com/vedux98/UX-Audit/internal/output"
	"github.com/vedux98/UX-Audit/internal/store"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change persisted audit settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return output.Print(settings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Change one settings field and persist the snapshot",
	Long: `Fields: accessibility, heuristics, seo, performance, includeScreenshots,
includeRemediation, useAI (booleans); exportFormat (markdown|html|pdf);
apiKey (string, empty to clear).`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		fmt.Println(st.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsPathCmd)
	settingsCmd.PersistentFlags().String("settings-file", "", "Settings file to use instead of the default")
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	settings, err := store.LoadSettings(st)
	if err != nil {
		return err
	}
	if err := applySetting(&settings, args[0], args[1]); err != nil {
		return err
	}
	return store.SaveSettings(st, settings)
}

func applySetting(s *audit.Settings, field, value string) error {
	boolFields := map[string]*bool{
		"accessibility":      &s.Accessibility,
		"heuristics":         &s.Heuristics,
		"seo":                &s.SEO,
		"performance":        &s.Performance,
		"includeScreenshots": &s.IncludeScreenshots,
		"includeRemediation": &s.IncludeRemediation,
		"useAI":              &s.UseAI,
	}
	if target, ok := boolFields[field]; ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("field %s expects true or false, got %q", field, value)
		}
		*target = parsed
		return nil
	}
	switch field {
	case "exportFormat":
		format := audit.ExportFormat(value)
		if !format.Valid() {
			return fmt.Errorf("unsupported export format: %s (use markdown, html, or pdf)", value)
		}
		s.ExportFormat = format
	case "apiKey":
		s.APIKey = value
	default:
		return fmt.Errorf("unknown settings field: %s", field)
	}
	return nil
}
