package vistos

import (
	"context"
	"fmt"

	"vistos-backend/lib/scrapers/bioguide"
	"vistos-backend/lib/scrapers/govinfo"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Placeholder is a directory entry that matched no registry member.
// BioguideID is empty when the payload itself lacks the key; that is
// the only place an empty id is allowed to appear.
type Placeholder struct {
	BioguideID string
	Directory  govinfo.GranuleSummary
}

// CrossReference pairs a congress roster with its GovInfo directory.
// Neither input collection is modified; the result only points into
// them.
type CrossReference struct {
	Congress bioguide.CongressRecord
	// Matched holds directory entries keyed by bioguide id, for members
	// present in both sources.
	Matched map[string]govinfo.GranuleSummary
	// Placeholders holds directory entries with no roster counterpart,
	// such as delegates listed under a directory-only classification.
	Placeholders []Placeholder
}

// CrossReferenceCongress annotates a congress record with directory
// data. A congress without a published directory yields an empty match
// set, not an error.
func (s Service) CrossReferenceCongress(ctx context.Context, record bioguide.CongressRecord) (CrossReference, error) {
	ctx, span := tracer.Start(ctx, "service:CrossReferenceCongress")
	defer span.End()
	span.SetAttributes(attribute.Int("congress", record.Number))

	result := CrossReference{
		Congress: record,
		Matched:  map[string]govinfo.GranuleSummary{},
	}
	if s.govinfo == nil {
		return result, fmt.Errorf("no govinfo client configured")
	}

	// a partial directory still comes back with ok set, so its matches
	// are kept and the joined error passed along
	directory, ok, err := s.govinfo.GetDirectory(ctx, record.Number)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if !ok {
			return CrossReference{}, err
		}
	}
	if !ok {
		return result, nil
	}

	rosterIDs := make(map[string]bool, len(record.Members))
	for _, member := range record.Members {
		rosterIDs[member.BioguideID] = true
	}

	for _, summary := range directory.Members {
		id := summary.BioguideID()
		if id != "" && rosterIDs[id] {
			result.Matched[id] = summary
			continue
		}
		result.Placeholders = append(result.Placeholders, Placeholder{
			BioguideID: id,
			Directory:  summary,
		})
	}
	return result, err
}

// MemberDirectory looks up one member's directory entry. The boolean is
// false when the member has none, which is the common case for
// historical members.
func (s Service) MemberDirectory(ctx context.Context, member bioguide.MemberRecord) (govinfo.GranuleSummary, bool, error) {
	if s.govinfo == nil {
		return govinfo.GranuleSummary{}, false, fmt.Errorf("no govinfo client configured")
	}
	return s.govinfo.DirectoryForMember(ctx, member)
}
