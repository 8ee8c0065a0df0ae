package bioguide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const lafolletteXML = `<?xml version="1.0" encoding="utf-8"?>
<member-bio id="L000003">
  <personal-info>
    <name>
      <firstnames>Robert Marion (Bob), Jr.</firstnames>
      <lastname>LaFOLLETTE</lastname>
    </name>
    <birth-year>1895</birth-year>
    <death-year>1953</death-year>
    <term>
      <congress-number>69</congress-number>
      <term-position>Senator</term-position>
      <term-state>WI</term-state>
      <term-party>Republican</term-party>
    </term>
    <term>
      <congress-number>70</congress-number>
      <term-position>Senator</term-position>
      <term-state>WI</term-state>
      <term-party>Republican</term-party>
    </term>
  </personal-info>
  <biography>LA FOLLETTE, Robert Marion, Jr., a Senator from Wisconsin.</biography>
</member-bio>`

func TestParseMemberDocument(t *testing.T) {
	record, err := parseMemberDocument("L000003", []byte(lafolletteXML))
	require.NoError(t, err)

	require.Equal(t, "L000003", record.BioguideID)
	require.Equal(t, "Robert Marion", record.FirstName)
	require.Equal(t, "Bob", record.Nickname)
	require.Equal(t, "Jr.", record.Suffix)
	require.Equal(t, "LaFollette", record.LastName)
	require.Equal(t, "1895", record.BirthYear)
	require.Equal(t, "1953", record.DeathYear)

	require.Len(t, record.Terms, 2)
	require.Equal(t, TermRecord{
		CongressNumber: 69,
		StartYear:      1925,
		EndYear:        1927,
		Position:       "senator",
		State:          "WI",
		Party:          "republican",
	}, record.Terms[0])
}

func TestParseMemberDocumentSanitizeRetry(t *testing.T) {
	dirty := "<member-bio id=\"B000226\"><personal-info>" +
		"<name><firstnames>Richard</firstnames><lastname>BASSETT</lastname></name>" +
		"<birth-year>1745</birth-year><death-year>1815</death-year>" +
		"<term><congress-number>1</congress-number>" +
		"<term-position>Senator</term-position>" +
		"<term-state>DE</term-state>" +
		"<term-party>NA</term-party></term>" +
		"</personal-info><biography>a Senator \x07from Delaware.\n</biography></member-bio>"

	record, err := parseMemberDocument("B000226", []byte(dirty))
	require.NoError(t, err)

	require.Equal(t, "a Senator from Delaware.", record.Biography)
	require.Len(t, record.Terms, 1)
	// the registry writes NA for unknown affiliations
	require.Equal(t, "", record.Terms[0].Party)
	require.Equal(t, 1789, record.Terms[0].StartYear)
	require.Equal(t, 1791, record.Terms[0].EndYear)
}

func TestParseMemberDocumentSanitizeRetrySpeakerTerm(t *testing.T) {
	// the dirty byte sits after the terms, so the strict parse has
	// already decoded all of them by the time it fails
	dirty := "<member-bio id=\"R000002\"><personal-info>" +
		"<name><firstnames>Samuel</firstnames><lastname>RAYBURN</lastname></name>" +
		"<birth-year>1882</birth-year><death-year>1961</death-year>" +
		"<term><congress-number>76</congress-number>" +
		"<term-position>Representative</term-position>" +
		"<term-state>TX</term-state>" +
		"<term-party>Democrat</term-party></term>" +
		"<term><congress-number>76</congress-number>" +
		"<term-position>Speaker of the House</term-position>" +
		"<term-state>TX</term-state>" +
		"<term-party>Democrat</term-party></term>" +
		"</personal-info><biography>a Representative \x07from Texas.</biography></member-bio>"

	record, err := parseMemberDocument("R000002", []byte(dirty))
	require.NoError(t, err)

	require.Len(t, record.Terms, 1)
	require.Equal(t, "representative", record.Terms[0].Position)
	require.True(t, record.Terms[0].SpeakerOfTheHouse)
}

func TestParseMemberDocumentRejectsTermlessRecord(t *testing.T) {
	presidentOnly := `<member-bio id="W000001"><personal-info>
		<name><firstnames>George</firstnames><lastname>WASHINGTON</lastname></name>
		<birth-year>1732</birth-year><death-year>1799</death-year>
		<term>
			<congress-number>1</congress-number>
			<term-position>President</term-position>
			<term-state>VA</term-state>
			<term-party>NA</term-party>
		</term>
	</personal-info><biography>first President of the United States.</biography></member-bio>`

	_, err := parseMemberDocument("W000001", []byte(presidentOnly))
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParseMemberDocumentSkipsUnparsableTerms(t *testing.T) {
	doc := `<member-bio id="X000001"><personal-info>
		<name><firstnames>Test</firstnames><lastname>MEMBER</lastname></name>
		<birth-year/><death-year/>
		<term>
			<congress-number>unknown</congress-number>
			<term-position>Delegate</term-position>
			<term-state>DK</term-state>
			<term-party>NA</term-party>
		</term>
		<term>
			<congress-number>46</congress-number>
			<term-position>Delegate</term-position>
			<term-state>DK</term-state>
			<term-party>NA</term-party>
		</term>
	</personal-info><biography/></member-bio>`

	record, err := parseMemberDocument("X000001", []byte(doc))
	require.NoError(t, err)
	require.Len(t, record.Terms, 1)
	require.Equal(t, 46, record.Terms[0].CongressNumber)
}

func TestParseMemberDocumentFallsBackToRequestedID(t *testing.T) {
	doc := `<member-bio><personal-info>
		<name><firstnames>Test</firstnames><lastname>MEMBER</lastname></name>
		<birth-year/><death-year/>
		<term>
			<congress-number>10</congress-number>
			<term-position>Representative</term-position>
			<term-state>PA</term-state>
			<term-party>Federalist</term-party>
		</term>
	</personal-info><biography/></member-bio>`

	record, err := parseMemberDocument("Y000001", []byte(doc))
	require.NoError(t, err)
	require.Equal(t, "Y000001", record.BioguideID)
}
