// ABOUTME: Add command for appending entries without the prompt
// ABOUTME: Takes text from the argument or stdin and a flexible --date
package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/diary/internal/journal"
)

var (
	addDate string
)

var addCmd = &cobra.Command{
	Use:     "add [text]",
	Aliases: []string{"a"},
	Short:   "Append an entry",
	Long: `Append an entry to the end of the diary.

The text comes from the argument, or from a single line on stdin when no
argument is given. Entries are stored one per line, so the text cannot
contain commas or line breaks. --date accepts DD.MM.YYYY, "today", "yesterday"
or most common date formats; it defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := journal.ParseWhen(addDate, time.Now())
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}

		var text string
		if len(args) > 0 {
			text = args[0]
		} else {
			text, err = readText(cmd)
			if err != nil {
				return err
			}
		}
		text, err = journal.ValidText(text)
		if err != nil {
			return err
		}

		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		store, err := env.openStore()
		if err != nil {
			return err
		}

		if err := store.Append(date, text); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Entry added for %s (%d entries)\n", date.Format(journal.DateLayout), store.Len())
		return nil
	},
}

// readText collects stdin lines, each followed by a line break. ValidText
// rejects anything past the first line.
func readText(cmd *cobra.Command) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read entry text: %w", err)
	}
	return sb.String(), nil
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Entry date (default: today)")
	rootCmd.AddCommand(addCmd)
}
