package commands

import (
	"fmt"
	"log"
	"os"
	"strings"

	"vistos-backend/lib/scrapers/bioguide"
	"vistos-backend/services/vistos"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	searchFirstName *string
	searchLastName  *string
)

func init() {
	searchFirstName = memberCmd.Flags().String("first", "", "Search by first name instead of id.")
	searchLastName = memberCmd.Flags().String("last", "", "Search by last name instead of id.")
	rootCmd.AddCommand(memberCmd)
}

var memberCmd = &cobra.Command{
	Use:   "member [bioguide-id...]",
	Short: "Prints the service history of members, looked up by bioguide id or by name.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && *searchFirstName == "" && *searchLastName == "" {
			log.Fatal("provide bioguide ids or --first/--last")
		}

		service, cleanup, err := createService(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()

		var members []bioguide.MemberRecord
		if len(args) > 0 {
			for _, id := range args {
				member, err := service.Member(cmd.Context(), id)
				if err != nil {
					log.Fatal(err)
				}
				members = append(members, member)
			}
		} else {
			members, err = service.MembersByName(cmd.Context(), *searchFirstName, *searchLastName)
			if err != nil {
				log.Fatal(err)
			}
			if len(members) == 0 {
				fmt.Println("no members found")
				return
			}
			if len(members) > 1 {
				// several people share this name; rank by closeness
				query := strings.TrimSpace(*searchFirstName + " " + *searchLastName)
				printSuggestions(vistos.SuggestMembers(members, query, 10))
			}
		}

		for _, member := range members {
			printMember(member)
		}
	},
}

func printSuggestions(suggestions []vistos.NameSuggestion) {
	fmt.Printf("%d members match, closest first:\n", len(suggestions))
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Correlation"})
	for _, suggestion := range suggestions {
		t.AppendRow(table.Row{
			suggestion.BioguideID,
			suggestion.Name,
			fmt.Sprintf("%.2f", suggestion.Correlation),
		})
	}
	t.Render()
	fmt.Println()
}

func printMember(member bioguide.MemberRecord) {
	born := member.BirthYear
	if born == "" {
		born = "?"
	}
	died := member.DeathYear
	if died == "" {
		died = "?"
	}
	fmt.Printf("%s  %s (%s-%s)\n", member.BioguideID, memberName(member), born, died)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Congress", "Years", "Position", "State", "Party"})
	for _, term := range member.Terms {
		position := term.Position
		if term.SpeakerOfTheHouse {
			position += " (speaker)"
		}
		t.AppendRow(table.Row{
			term.CongressNumber,
			fmt.Sprintf("%d-%d", term.StartYear, term.EndYear),
			position,
			term.State,
			term.Party,
		})
	}
	t.Render()

	if member.Biography != "" {
		fmt.Println(member.Biography)
	}
	fmt.Println()
}
