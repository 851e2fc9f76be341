package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/chrono/journal"
)

var journalDBPath string

var CMDJournal = &cobra.Command{
	Use:   "journal",
	Short: "Inspect a SQLite backtest journal",
}

var CMDJournalList = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.NewSQLite(journalDBPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer j.Close()

		runs, err := j.ListRuns()
		if err != nil {
			return err
		}
		fmt.Print(journal.FormatRunList(runs))
		return nil
	},
}

var CMDJournalShow = &cobra.Command{
	Use:   "show <run_id>",
	Short: "Show one run's summary and fills",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.NewSQLite(journalDBPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer j.Close()

		run, err := j.GetRun(args[0])
		if err != nil {
			return err
		}
		fills, err := j.ListFillsByRun(args[0])
		if err != nil {
			return err
		}
		fmt.Print(journal.FormatRunReport(run, fills))
		return nil
	},
}

func init() {
	CMDJournal.PersistentFlags().StringVar(&journalDBPath, "db", "./chrono.sqlite", "path to SQLite journal DB")
	CMDJournal.AddCommand(CMDJournalList)
	CMDJournal.AddCommand(CMDJournalShow)
}
