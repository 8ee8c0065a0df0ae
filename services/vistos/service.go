// Package vistos aggregates the bioguide registry, the GovInfo
// directory, the roster index, and the member cache into congress-level
// lookups.
package vistos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"vistos-backend/lib/bgmap"
	"vistos-backend/lib/congress"
	"vistos-backend/lib/memberstore"
	"vistos-backend/lib/scrapers/bioguide"
	"vistos-backend/lib/scrapers/govinfo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("services/vistos")

type Options struct {
	Bioguide *bioguide.Client
	// GovInfo enables directory cross-referencing when set.
	GovInfo *govinfo.Client
	// Store caches member records between lookups when set.
	Store *memberstore.Store
	// Index serves rosters without crawling when set.
	Index *bgmap.Index
	// Now defaults to time.Now and exists so tests can pin the current
	// congress.
	Now func() time.Time
}

type Service struct {
	bioguide *bioguide.Client
	govinfo  *govinfo.Client
	store    *memberstore.Store
	index    *bgmap.Index
	now      func() time.Time
}

func NewService(opts Options) Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return Service{
		bioguide: opts.Bioguide,
		govinfo:  opts.GovInfo,
		store:    opts.Store,
		index:    opts.Index,
		now:      now,
	}
}

// Congress resolves one congress by number or year. A nil input means
// the current congress. The input is normalized, so Congress(116),
// Congress(2019) and Congress(2020) all produce the same record.
func (s Service) Congress(ctx context.Context, numberOrYear *int) (bioguide.CongressRecord, error) {
	ctx, span := tracer.Start(ctx, "service:Congress")
	defer span.End()

	number := congress.ConvertToNumber(numberOrYear, s.now())
	span.SetAttributes(attribute.Int("congress", number))

	startYear, err := congress.StartYear(number)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return bioguide.CongressRecord{}, err
	}
	endYear, _ := congress.EndYear(number)

	ids, err := s.RosterIDs(ctx, number)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return bioguide.CongressRecord{}, err
	}

	// fetchErr aggregates per-member failures; the partial roster is
	// still returned so the caller can decide whether it is acceptable
	members, fetchErr := s.fetchMembers(ctx, ids)
	if fetchErr != nil {
		span.SetStatus(codes.Error, fetchErr.Error())
		if len(members) == 0 {
			return bioguide.CongressRecord{}, fetchErr
		}
	}

	record := bioguide.CongressRecord{
		Number:    number,
		StartYear: startYear,
		EndYear:   endYear,
		Members:   members,
	}
	if err := record.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return bioguide.CongressRecord{}, errors.Join(err, fetchErr)
	}
	return record, fetchErr
}

// RosterIDs resolves the bioguide ids of one congress, consulting the
// pregenerated index before falling back to a full crawl of the search
// registry.
func (s Service) RosterIDs(ctx context.Context, number int) ([]string, error) {
	if s.index != nil {
		current := congress.CurrentNumber(s.now())
		if ids, ok := s.index.BioguideIDs(current, number); ok {
			slog.DebugContext(ctx, "roster index hit", "congress", number, "ids", len(ids))
			return ids, nil
		}
	}
	return s.bioguide.ScrapeCongressMemberIDs(ctx, number)
}

// fetchMembers resolves ids into member records with a bounded worker
// pool. A failed member is skipped and reported rather than aborting
// the other workers; cancellation aborts the whole fetch. Results are
// sorted by id since worker completion order is not deterministic.
func (s Service) fetchMembers(ctx context.Context, ids []string) ([]bioguide.MemberRecord, error) {
	members := []bioguide.MemberRecord{}
	var errList []error
	var mu sync.Mutex

	group := &errgroup.Group{}
	group.SetLimit(runtime.GOMAXPROCS(0))

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		id := id
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			record, err := s.Member(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.WarnContext(ctx, "failed to fetch member", "bioguide_id", id, "err", err)
				errList = append(errList, fmt.Errorf("member %s: %w", id, err))
				return nil
			}
			members = append(members, record)
			return nil
		})
	}
	group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(members, func(a, b bioguide.MemberRecord) int {
		return strings.Compare(a.BioguideID, b.BioguideID)
	})
	return members, errors.Join(errList...)
}

// Member fetches one member record, going through the cache when one is
// configured.
func (s Service) Member(ctx context.Context, bioguideID string) (bioguide.MemberRecord, error) {
	if s.store != nil {
		record, ok, err := s.store.Get(ctx, bioguideID)
		if err != nil {
			return bioguide.MemberRecord{}, err
		}
		if ok {
			return record, nil
		}
	}

	record, err := s.bioguide.FetchMember(ctx, bioguideID)
	if err != nil {
		return bioguide.MemberRecord{}, err
	}

	if s.store != nil {
		if err := s.store.Put(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to cache member record", "bioguide_id", bioguideID, "err", err)
		}
	}
	return record, nil
}

// MembersByName resolves every member matching a first and last name.
// Multiple people can share a name across two centuries of records.
func (s Service) MembersByName(ctx context.Context, firstName, lastName string) ([]bioguide.MemberRecord, error) {
	ctx, span := tracer.Start(ctx, "service:MembersByName")
	defer span.End()

	ids, err := s.bioguide.ScrapeMemberIDs(ctx, bioguide.SearchQuery{
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return s.fetchMembers(ctx, ids)
}
