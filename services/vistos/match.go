package vistos

import (
	"slices"
	"strings"

	"vistos-backend/lib/scrapers/bioguide"

	"github.com/antzucaro/matchr"
)

type NameSuggestion struct {
	BioguideID  string
	Name        string
	Correlation float64
}

func displayName(member bioguide.MemberRecord) string {
	return strings.TrimSpace(member.FirstName + " " + member.LastName)
}

// SuggestMembers ranks members by name similarity to a query. Useful
// when a caller's spelling doesn't survive two centuries of transcribed
// records.
func SuggestMembers(members []bioguide.MemberRecord, query string, limit int) []NameSuggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	suggestions := make([]NameSuggestion, 0, len(members))
	for _, member := range members {
		name := displayName(member)
		correlation := matchr.JaroWinkler(query, strings.ToLower(name), false)
		if correlation <= 0 {
			continue
		}
		suggestions = append(suggestions, NameSuggestion{
			BioguideID:  member.BioguideID,
			Name:        name,
			Correlation: correlation,
		})
	}

	slices.SortFunc(suggestions, func(a, b NameSuggestion) int {
		if a.Correlation > b.Correlation {
			return -1
		}
		if a.Correlation < b.Correlation {
			return 1
		}
		return strings.Compare(a.BioguideID, b.BioguideID)
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
