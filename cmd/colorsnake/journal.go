package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorsnake/internal/platform/tui"
	"github.com/vovakirdan/colorsnake/internal/storage"
)

var (
	flagJournalLimit int
	flagGeneration   string
	flagInteractive  bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show journaled game events",
	Long: `Display narration events recorded while playing.

Without --generation the most recent events are listed, newest first.
With --generation the full history of one generation is listed in order.

Examples:
  colorsnake journal
  colorsnake journal --limit 100
  colorsnake journal --generation 6f1c2b9e-...
  colorsnake journal -i`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 20, "Number of recent events to show")
	journalCmd.Flags().StringVar(&flagGeneration, "generation", "", "Show every event of one generation")
	journalCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the journal in a table")
}

func runJournal(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("journal is disabled (--db is empty)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening event journal: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunJournal(store, flagJournalLimit, flagGeneration, width, height)
	}

	var records []storage.EventRecord
	if flagGeneration != "" {
		records, err = store.GenerationEvents(flagGeneration)
	} else {
		records, err = store.RecentEvents(flagJournalLimit)
	}
	if err != nil {
		return fmt.Errorf("error reading events: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No events recorded yet.")
		fmt.Println()
		fmt.Println("Play 'colorsnake play' to fill the journal!")
		return nil
	}

	fmt.Printf("  %-19s  %-36s  %6s  %-9s  %5s  %s\n", "Date", "Generation", "Tick", "Event", "Score", "Message")
	fmt.Printf("  %-19s  %-36s  %6s  %-9s  %5s  %s\n", "----", "----------", "----", "-----", "-----", "-------")
	for _, r := range records {
		fmt.Printf("  %-19s  %-36s  %6d  %-9s  %5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.GenerationID, r.Tick, r.Kind, r.Score, r.Message)
	}

	counts, err := store.OutcomeCounts()
	if err != nil {
		return fmt.Errorf("error counting outcomes: %w", err)
	}
	fmt.Println()
	fmt.Printf("Games won: %d  lost: %d\n", counts["won"], counts["lost"])
	return nil
}
