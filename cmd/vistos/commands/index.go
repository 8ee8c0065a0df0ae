package commands

import (
	"log"
	"log/slog"
	"os"
	"time"

	"vistos-backend/lib/bgmap"
	"vistos-backend/lib/congress"

	"github.com/spf13/cobra"
)

var (
	indexOut   *string
	indexSince *int
)

func init() {
	indexOut = indexCmd.Flags().String("out", "all.congress.bgmap", "The file to write the roster index to.")
	indexSince = indexCmd.Flags().Int("since", 0, "The earliest congress to include.")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [--out <path>] [--since <congress>]",
	Short: "Crawls every congress roster and writes the line-oriented index file.",
	Run: func(cmd *cobra.Command, args []string) {
		service, cleanup, err := createService(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()

		current := congress.CurrentNumber(time.Now())
		if *indexSince < 0 || *indexSince > current {
			log.Fatalf("--since must be between 0 and %d", current)
		}

		// line offset counts backwards from the current congress
		var rosters [][]string
		for number := current; number >= *indexSince; number-- {
			ids, err := service.RosterIDs(cmd.Context(), number)
			if err != nil {
				log.Fatal(err)
			}
			slog.Info("crawled roster", "congress", number, "members", len(ids))
			rosters = append(rosters, ids)
		}

		data, err := bgmap.Encode(rosters)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*indexOut, data, 0o644); err != nil {
			log.Fatal(err)
		}
		slog.Info("wrote roster index", "path", *indexOut, "congresses", len(rosters))
	},
}
