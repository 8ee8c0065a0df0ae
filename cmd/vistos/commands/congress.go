package commands

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"vistos-backend/lib/scrapers/bioguide"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var crossref *bool

func init() {
	crossref = congressCmd.Flags().Bool("crossref", false, "Cross-reference the roster against the GovInfo directory.")
	rootCmd.AddCommand(congressCmd)
}

var congressCmd = &cobra.Command{
	Use:   "congress [number-or-year]",
	Short: "Prints the roster of a congress, by number or by year. Defaults to the current congress.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var numberOrYear *int
		if len(args) == 1 {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				log.Fatalf("%q is not a congress number or year", args[0])
			}
			numberOrYear = &value
		}

		service, cleanup, err := createService(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()

		record, err := service.Congress(cmd.Context(), numberOrYear)
		if err != nil {
			if len(record.Members) == 0 {
				log.Fatal(err)
			}
			fmt.Fprintf(os.Stderr, "warning: partial roster: %v\n", err)
		}

		fmt.Printf("Congress %d (%d-%d)\n", record.Number, record.StartYear, record.EndYear)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Position", "State", "Party"})
		for _, member := range record.Members {
			term, ok := termFor(member, record.Number)
			if !ok {
				continue
			}
			position := term.Position
			if term.SpeakerOfTheHouse {
				position += " (speaker)"
			}
			t.AppendRow(table.Row{
				member.BioguideID,
				memberName(member),
				position,
				term.State,
				term.Party,
			})
		}
		t.Render()

		if *crossref {
			renderCrossref(cmd, service, record)
		}
	},
}

func termFor(member bioguide.MemberRecord, congressNumber int) (bioguide.TermRecord, bool) {
	for _, term := range member.Terms {
		if term.CongressNumber == congressNumber {
			return term, true
		}
	}
	return bioguide.TermRecord{}, false
}

func memberName(member bioguide.MemberRecord) string {
	name := member.LastName + ", " + member.FirstName
	if member.Nickname != "" {
		name += fmt.Sprintf(" (%s)", member.Nickname)
	}
	if member.Suffix != "" {
		name += ", " + member.Suffix
	}
	return strings.TrimSpace(name)
}
