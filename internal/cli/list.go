// ABOUTME: List command for displaying all entries
// ABOUTME: Supports table and JSON output formats
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var (
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List entries in diary order",
	Args:    cobra.NoArgs,
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

		out := cmd.OutOrStdout()
		entries := store.Summaries()

		if listJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries.")
			return nil
		}

		table := uitable.New()
		table.MaxColWidth = 72
		table.Wrap = true
		table.AddRow("#", "DATE", "TEXT")
		for _, e := range entries {
			table.AddRow(e.Index, e.Date, strings.TrimRight(e.Text, "\n"))
		}
		fmt.Fprintln(out, table)

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
