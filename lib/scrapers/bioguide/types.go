// Package bioguide scrapes the retro Bioguide registry: a search form
// protected by a rotating anti-forgery token, paginated HTML result
// pages, and one static XML document per member of Congress.
package bioguide

import (
	"errors"
	"fmt"
)

var (
	// the search root did not contain the hidden token input
	ErrNoVerificationToken = errors.New("verification token input not found")
	// a constructed record failed its structural invariant
	ErrInvalidRecord = errors.New("invalid bioguide record")
	// a caller-supplied search filter is not a known enumerated value
	ErrInvalidOption = errors.New("invalid search option")
	// the request ceiling was exhausted without a successful response
	ErrConnection = errors.New("connection failed")
)

// SpeakerOfTheHouse is the overloaded position label the registry uses
// for presiding officers. It is layered on top of, not instead of, a
// member's substantive chamber position; see MergeTerms.
const SpeakerOfTheHouse = "speaker of the house"

// TermRecord is one stint served by one person in one congress. Years
// always come from the congress calendar, never from the document.
// Position is lower-cased, State upper-cased, Party lower-cased with ""
// meaning the registry reported no affiliation.
type TermRecord struct {
	CongressNumber    int
	StartYear         int
	EndYear           int
	Position          string
	State             string
	Party             string
	SpeakerOfTheHouse bool
}

// Equal compares everything except the presiding-officer flag, which is
// presentation metadata rather than identity.
func (t TermRecord) Equal(o TermRecord) bool {
	return t.CongressNumber == o.CongressNumber &&
		t.StartYear == o.StartYear &&
		t.EndYear == o.EndYear &&
		t.Position == o.Position &&
		t.State == o.State &&
		t.Party == o.Party
}

// MemberRecord is one person's biographical record. Nickname, Suffix,
// BirthYear, DeathYear, and Biography may be empty; birth and death
// years are verbatim strings because historical data contains values
// like "unknown" or "1885c".
type MemberRecord struct {
	BioguideID string
	FirstName  string
	LastName   string
	Nickname   string
	Suffix     string
	BirthYear  string
	DeathYear  string
	Biography  string
	Terms      []TermRecord
}

// Validate rejects records missing an identifier, a name, or any term
// of service. Invalid records are never patched with defaults.
func (m MemberRecord) Validate() error {
	switch {
	case m.BioguideID == "":
		return fmt.Errorf("%w: missing bioguide id", ErrInvalidRecord)
	case m.FirstName == "":
		return fmt.Errorf("%w: member %s has no first name", ErrInvalidRecord, m.BioguideID)
	case m.LastName == "":
		return fmt.Errorf("%w: member %s has no last name", ErrInvalidRecord, m.BioguideID)
	case len(m.Terms) == 0:
		return fmt.Errorf("%w: member %s has no terms", ErrInvalidRecord, m.BioguideID)
	}
	return nil
}

// CongressRecord groups the members that served during one congress.
type CongressRecord struct {
	Number    int
	StartYear int
	EndYear   int
	Members   []MemberRecord
}

func (c CongressRecord) Validate() error {
	switch {
	case c.Number < 0:
		return fmt.Errorf("%w: negative congress number", ErrInvalidRecord)
	case c.StartYear == 0 || c.EndYear == 0:
		return fmt.Errorf("%w: congress %d has no year range", ErrInvalidRecord, c.Number)
	case c.Members == nil:
		return fmt.Errorf("%w: congress %d has no member list", ErrInvalidRecord, c.Number)
	}
	return nil
}
