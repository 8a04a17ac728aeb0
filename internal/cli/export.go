// ABOUTME: Export command writing entries to per-day files
// ABOUTME: Produces markdown or JSON files named by date
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/diary/internal/export"
)

var (
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to per-day markdown or JSON files",
	Long: `Export every entry into one file per date inside --out.

Existing files are appended to, so running export twice duplicates entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		store, err := env.openStore()
		if err != nil {
			return err
		}

		files, err := export.WriteAll(exportDir, exportFormat, store.Entries())
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, f := range files {
			fmt.Fprintln(out, f)
		}
		color.New(color.FgGreen).Fprintf(out, "Exported %d entries to %d files\n", store.Len(), len(files))

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatMarkdown, "Output format (markdown or json)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "diary-export", "Output directory")
	rootCmd.AddCommand(exportCmd)
}
