package commands

import (
	"fmt"
	"log"
	"os"

	"vistos-backend/lib/scrapers/bioguide"
	"vistos-backend/services/vistos"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func renderCrossref(cmd *cobra.Command, service vistos.Service, record bioguide.CongressRecord) {
	result, err := service.CrossReferenceCongress(cmd.Context(), record)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Directory entry", "Class"})
	for _, member := range record.Members {
		summary, ok := result.Matched[member.BioguideID]
		if !ok {
			t.AppendRow(table.Row{member.BioguideID, "no", ""})
			continue
		}
		t.AppendRow(table.Row{member.BioguideID, "yes", summary.SubGranuleClass})
	}
	for _, placeholder := range result.Placeholders {
		id := placeholder.BioguideID
		if id == "" {
			id = "(unknown)"
		}
		t.AppendRow(table.Row{id, "directory only", placeholder.Directory.SubGranuleClass})
	}
	t.Render()

	fmt.Printf("%d matched, %d directory-only entries\n", len(result.Matched), len(result.Placeholders))
}
