// ABOUTME: Root command definition and CLI setup
// ABOUTME: Runs the interactive diary when no subcommand is given
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harper/diary/internal/journal"
	"github.com/harper/diary/internal/repl"
)

var (
	configPath string
	dataFile   string
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "Personal journaling tool",
	Long: `Diary keeps dated entries in a plain text file.

Run it without arguments to page through entries, write new ones and delete
old ones from an interactive prompt.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		locale, err := repl.LookupLocale(env.cfg.Locale)
		if err != nil {
			return err
		}

		tty := isTerminal(os.Stdout) && cmd.OutOrStdout() == os.Stdout
		if !env.cfg.Color || !tty {
			color.NoColor = true
		}

		var in repl.LineReader
		if tty && isTerminal(os.Stdin) && cmd.InOrStdin() == os.Stdin {
			historyPath, err := env.cfg.HistoryPath()
			if err != nil {
				return err
			}
			tr, err := repl.NewTerminalReader(historyPath)
			if err != nil {
				return err
			}
			defer tr.Close()
			in = tr
		} else {
			in = repl.NewScannerReader(cmd.InOrStdin())
		}

		store := journal.NewStore(env.dataPath, journal.WithLogger(env.log))
		session := repl.NewSession(store, in, cmd.OutOrStdout(),
			repl.WithLocale(locale),
			repl.WithClearScreen(env.cfg.ClearScreen && tty),
			repl.WithLogger(env.log),
		)

		if err := store.Load(); err != nil {
			env.log.Error().Err(err).Str("path", env.dataPath).Msg("load failed")
			session.ReportLoadError(err)
		}

		return session.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest .diary.toml, then ~/.config/diary/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Diary file (default: diary.txt next to the executable)")
}
