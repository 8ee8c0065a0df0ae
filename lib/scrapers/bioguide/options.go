package bioguide

import "fmt"

// Position values accepted by the registry search form. ContCong is the
// Continental Congress, which the registry files under congress zero.
const (
	PositionRepresentative       = "Representative"
	PositionSenator              = "Senator"
	PositionDelegate             = "Delegate"
	PositionVicePresident        = "Vice President"
	PositionPresident            = "President"
	PositionContinentalCongress  = "ContCong"
	PositionSpeakerOfTheHouse    = "Speaker of the House"
	PositionResidentCommissioner = "Resident Commissioner"
)

var validPositions = map[string]bool{
	PositionRepresentative:       true,
	PositionSenator:              true,
	PositionDelegate:             true,
	PositionVicePresident:        true,
	PositionPresident:            true,
	PositionContinentalCongress:  true,
	PositionSpeakerOfTheHouse:    true,
	PositionResidentCommissioner: true,
}

// validParties holds every affiliation label the registry has ever used,
// including a handful of known data-entry mistakes that still appear on
// real records (for example "Anti-administration" and
// "Democrat;Republican").
var validParties = newStringSet(
	"Democrat",
	"Independent",
	"Republican",

	"Adams",
	"Adams Republican",
	"Adams-Clay Federalist",
	"Adams-Clay Republican",
	"Alliance",
	"American",
	"American (Know-Nothing)",
	"American Laborite",
	"American Party",
	"Anti-Administration",
	"Anti-Democrat",
	"Anti-Jacksonian",
	"Anti-Lecompton Democrat",
	"Anti-Masonic",
	"Anti-Monopolist",
	"Coalitionist",
	"Conservative",
	"Conservative Republican",
	"Constitutional Unionist",
	"Crawford Federalist",
	"Crawford Republican",
	"Democrat Farmer Labor",
	"Democrat-Liberal",
	"Democrat/Independent",
	"Democrat/Republican",
	"Democratic Republican",
	"Democratic and Union Labor",
	"Farmer Laborite",
	"Federalist",
	"Free Silver",
	"Free Soil",
	"Free Soiler",
	"Greenbacker",
	"Home Rule",
	"Independence Party (Minnesota)",
	"Independent Democrat",
	"Independent Republican",
	"Independent Whig",
	"Jackson",
	"Jackson Democrat",
	"Jackson Federalist",
	"Jackson Republican",
	"Jacksonian",
	"Jacksonian Republican",
	"Labor",
	"Law and Order",
	"Liberal",
	"Liberal Republican",
	"Liberty",
	"NA",
	"Nacionalista",
	"National",
	"National Republican",
	"New Progressive",
	"Nonpartisan",
	"Nullifier",
	"Opposition",
	"Opposition Party",
	"Populist",
	"Pro-Administration",
	"Progresista",
	"Progressive",
	"Progressive Republican",
	"Prohibitionist",
	"Readjuster",
	"Silver Republican",
	"Socialist",
	"State Rights Democrat",
	"States Rights",
	"States Rights Democrat",
	"States-Rights Whig",
	"Unconditional Unionist",
	"Union",
	"Union Labor",
	"Union Republican",
	"Unionist",
	"Unknown",
	"Van Buren Democrat",
	"Whig",

	"Anti Jacksonian",
	"Anti-administration",
	"Crawford Republicans",
	"Democrat-Farm Labor",
	"Democrat;Republican",
	"Pro-administration",
)

// validStates covers the registry's state and territory codes. The set
// is taken from the form itself and keeps its quirks, such as "OL" for
// the Orleans territory and "US" for at-large national records.
var validStates = newStringSet(
	"AK", "AL", "AS", "AZ", "CA", "CO", "CT", "DC", "DE", "DK",
	"FL", "GA", "GU", "HI", "IA", "IN", "KS", "KY", "LA", "MA",
	"MD", "ME", "MI", "MN", "MO", "MP", "MS", "NC", "ND", "NE",
	"NH", "NJ", "NM", "NV", "NY", "OH", "OK", "OL", "OR", "PA",
	"PI", "PR", "RI", "SC", "SD", "TN", "TX", "UT", "VA", "VI",
	"VT", "WA", "WI", "WV", "WY", "US",
)

func newStringSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// ValidatePosition reports whether p is a label the search form accepts.
// The empty string means "no filter" and is always valid.
func ValidatePosition(p string) error {
	if p != "" && !validPositions[p] {
		return fmt.Errorf("%w: position %q", ErrInvalidOption, p)
	}
	return nil
}

func ValidateParty(p string) error {
	if p != "" && !validParties[p] {
		return fmt.Errorf("%w: party %q", ErrInvalidOption, p)
	}
	return nil
}

func ValidateState(s string) error {
	if s != "" && !validStates[s] {
		return fmt.Errorf("%w: state %q", ErrInvalidOption, s)
	}
	return nil
}
