package govinfo

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"vistos-backend/lib/congress"
	"vistos-backend/lib/scrapers/bioguide"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// relevantTerms drops terms a member could not appear in a directory
// for. A member who dies in office is missing from the snapshot issued
// for that final term.
func relevantTerms(member bioguide.MemberRecord) []bioguide.TermRecord {
	if member.DeathYear == "" {
		return member.Terms
	}
	deathYear, err := strconv.Atoi(member.DeathYear)
	if err != nil {
		// death years like "1885c" or "unknown" date back far enough
		// that no directory data exists either way
		return member.Terms
	}

	var terms []bioguide.TermRecord
	for _, term := range member.Terms {
		if term.EndYear < deathYear {
			terms = append(terms, term)
		}
	}
	return terms
}

// lastDirectoryTerm picks the member's most recent term that can have a
// published directory. The current congress is ranked last because its
// directory does not exist yet.
func lastDirectoryTerm(terms []bioguide.TermRecord, now time.Time) bioguide.TermRecord {
	current := congress.CurrentNumber(now)

	rank := func(t bioguide.TermRecord) int {
		if t.CongressNumber == current {
			return -1
		}
		return t.CongressNumber
	}

	last := terms[0]
	for _, term := range terms[1:] {
		if rank(term) > rank(last) {
			last = term
		}
	}
	return last
}

// DirectoryForMember finds one member's entry in the directory of their
// last completed term. The boolean is false when no entry exists, which
// is common for historical members and members who died in office.
func (c *Client) DirectoryForMember(ctx context.Context, member bioguide.MemberRecord) (GranuleSummary, bool, error) {
	ctx, span := tracer.Start(ctx, "client:DirectoryForMember")
	defer span.End()
	span.SetAttributes(attribute.String("bioguide_id", member.BioguideID))

	terms := relevantTerms(member)
	if len(terms) == 0 {
		return GranuleSummary{}, false, nil
	}

	lastTerm := lastDirectoryTerm(terms, time.Now())

	packages, err := c.listPackages(ctx, lastTerm.CongressNumber)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return GranuleSummary{}, false, err
	}
	if len(packages) == 0 {
		// no directory for the last term means no earlier term will
		// have one either
		return GranuleSummary{}, false, nil
	}

	packageId := latestPackage(packages).PackageId

	chamber := "H"
	if lastTerm.Position == "senator" {
		chamber = "S"
	}
	granulePattern, err := regexp.Compile(fmt.Sprintf(
		`^%s-%s-%s(-\d+)?$`,
		regexp.QuoteMeta(packageId), lastTerm.State, chamber,
	))
	if err != nil {
		return GranuleSummary{}, false, err
	}

	granules, err := c.listGranules(ctx, packageId)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return GranuleSummary{}, false, err
	}

	for _, granule := range granules {
		if granule.GranuleClass != memberGranuleClass {
			continue
		}
		if !granulePattern.MatchString(granule.GranuleId) {
			continue
		}
		summary, err := c.getGranuleSummary(ctx, packageId, granule.GranuleId)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return GranuleSummary{}, false, err
		}
		if summary.BioguideID() != member.BioguideID {
			continue
		}
		return summary, true, nil
	}
	return GranuleSummary{}, false, nil
}
