package bioguide

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"vistos-backend/lib/congress"
	"vistos-backend/lib/textutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// memberXML matches the static per-member document layout.
type memberXML struct {
	ID           string `xml:"id,attr"`
	PersonalInfo struct {
		Name struct {
			Firstnames string `xml:"firstnames"`
			Lastname   string `xml:"lastname"`
		} `xml:"name"`
		BirthYear string    `xml:"birth-year"`
		DeathYear string    `xml:"death-year"`
		Terms     []termXML `xml:"term"`
	} `xml:"personal-info"`
	Biography string `xml:"biography"`
}

type termXML struct {
	CongressNumber string `xml:"congress-number"`
	Position       string `xml:"term-position"`
	State          string `xml:"term-state"`
	Party          string `xml:"term-party"`
}

// FetchMember retrieves and parses one member's biographical document.
// Documents are partitioned by the first character of the id, so
// "P000587" lives at <base>/P/P000587.xml.
func (c *Client) FetchMember(ctx context.Context, bioguideID string) (MemberRecord, error) {
	ctx, span := tracer.Start(ctx, "client:FetchMember")
	defer span.End()
	span.SetAttributes(attribute.String("bioguide_id", bioguideID))

	if bioguideID == "" {
		err := fmt.Errorf("%w: missing bioguide id", ErrInvalidRecord)
		span.SetStatus(codes.Error, err.Error())
		return MemberRecord{}, err
	}

	body, err := c.fetchMemberDocument(ctx, bioguideID)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch member document")
		return MemberRecord{}, err
	}

	record, err := parseMemberDocument(bioguideID, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return MemberRecord{}, err
	}
	return record, nil
}

func (c *Client) fetchMemberDocument(ctx context.Context, bioguideID string) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s.xml", memberDataPath, bioguideID[:1], bioguideID)

	var lastErr error
	for attempt := 0; attempt <= maxRequestAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * 2 * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		res, err := c.Http.R().SetContext(ctx).Get(path)
		if err != nil {
			lastErr = err
			continue
		}
		return res.Body(), nil
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrConnection, maxRequestAttempts, lastErr)
}

// parseMemberDocument decodes the document, sanitizing and retrying
// exactly once when the registry serves malformed XML. Historical
// documents occasionally contain stray control bytes.
func parseMemberDocument(bioguideID string, body []byte) (MemberRecord, error) {
	var doc memberXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		cleaned := []byte(textutil.CleanXML(string(body)))
		// decoding appends to slice fields, so the retry needs a fresh
		// value or every term decoded before the failure is replayed
		doc = memberXML{}
		if err := xml.Unmarshal(cleaned, &doc); err != nil {
			return MemberRecord{}, fmt.Errorf("parse member document %s: %w", bioguideID, err)
		}
	}

	name := textutil.ParseFirstName(strings.TrimSpace(doc.PersonalInfo.Name.Firstnames))

	record := MemberRecord{
		BioguideID: doc.ID,
		FirstName:  name.First,
		Nickname:   name.Nickname,
		Suffix:     name.Suffix,
		LastName:   textutil.FixLastNameCasing(strings.TrimSpace(doc.PersonalInfo.Name.Lastname)),
		BirthYear:  strings.TrimSpace(doc.PersonalInfo.BirthYear),
		DeathYear:  strings.TrimSpace(doc.PersonalInfo.DeathYear),
		Biography:  strings.ReplaceAll(strings.TrimSpace(doc.Biography), "\n", ""),
	}
	if record.BioguideID == "" {
		record.BioguideID = bioguideID
	}

	var raw []TermRecord
	for _, term := range doc.PersonalInfo.Terms {
		number, err := strconv.Atoi(strings.TrimSpace(term.CongressNumber))
		if err != nil {
			slog.Warn(
				"skipping term with unparsable congress number",
				"bioguide_id", record.BioguideID,
				"congress_number", term.CongressNumber,
			)
			continue
		}
		startYear, err := congress.StartYear(number)
		if err != nil {
			slog.Warn(
				"skipping term with unknown congress number",
				"bioguide_id", record.BioguideID,
				"congress_number", number,
			)
			continue
		}
		endYear, _ := congress.EndYear(number)

		position := strings.ToLower(strings.TrimSpace(term.Position))
		party := strings.ToLower(strings.TrimSpace(term.Party))
		if party == "na" {
			party = ""
		}

		raw = append(raw, TermRecord{
			CongressNumber:    number,
			StartYear:         startYear,
			EndYear:           endYear,
			Position:          position,
			State:             strings.ToUpper(strings.TrimSpace(term.State)),
			Party:             party,
			SpeakerOfTheHouse: position == SpeakerOfTheHouse,
		})
	}
	record.Terms = MergeTerms(raw)

	if err := record.Validate(); err != nil {
		return MemberRecord{}, err
	}
	return record, nil
}
