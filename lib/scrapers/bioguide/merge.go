package bioguide

// MergeTerms collapses the raw term list of a member document into at
// most one term per congress, preserving the order congresses were
// first seen.
//
// Executive stints (president, vice president) are congressional
// records only incidentally and are discarded. When two entries share a
// congress number:
//
//   - differing parties mean the registry corrected the affiliation, so
//     the later entry replaces the earlier one wholesale;
//   - a stored presiding-officer entry keeps its flag but takes the
//     later entry's substantive position, since "speaker of the house"
//     is not a chamber seat;
//   - a later presiding-officer entry only flags the stored term.
func MergeTerms(raw []TermRecord) []TermRecord {
	byCongress := map[int]TermRecord{}
	var order []int

	for _, term := range raw {
		if term.Position == "president" || term.Position == "vice president" {
			continue
		}

		match, seen := byCongress[term.CongressNumber]
		if !seen {
			byCongress[term.CongressNumber] = term
			order = append(order, term.CongressNumber)
			continue
		}

		if match.Party != term.Party {
			match = term
		}
		if match.SpeakerOfTheHouse {
			match.Position = term.Position
		} else if term.SpeakerOfTheHouse {
			match.SpeakerOfTheHouse = true
		}
		byCongress[term.CongressNumber] = match
	}

	merged := make([]TermRecord, 0, len(order))
	for _, number := range order {
		merged = append(merged, byCongress[number])
	}
	return merged
}
