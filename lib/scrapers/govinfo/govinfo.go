// Package govinfo talks to the GovInfo API, which snapshots each
// congress's directory as a package of granules. Reaching member data
// means walking packages, then granules, then granule summaries.
package govinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"runtime"
	"strconv"
	"sync"
	"time"

	"vistos-backend/lib/congress"
	"vistos-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("scrapers/govinfo")

const (
	DefaultBaseUrl = "https://api.govinfo.gov"

	directoryCollection = "CDIR"
	memberGranuleClass  = "CONGRESSMEMBERSTATE"

	pageSize = 100
	// the API rejects offsets past 10000, so pagination stops there
	offsetCap = 10000

	maxRequestAttempts = 3
)

var memberSubGranuleClasses = map[string]bool{
	"SENATOR":              true,
	"REPRESENTATIVE":       true,
	"DELEGATE":             true,
	"RESIDENTCOMMISSIONER": true,
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	apiKey  string
}

type ClientOptions struct {
	// BaseUrl defaults to the public API when empty.
	BaseUrl string
	ApiKey  string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetQueryParam("api_key", opts.ApiKey)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/govinfo/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
		apiKey:  opts.ApiKey,
	}, nil
}

type Package struct {
	PackageId  string `json:"packageId"`
	DateIssued string `json:"dateIssued"`
}

type collectionPage struct {
	Count    int       `json:"count"`
	Packages []Package `json:"packages"`
}

type Granule struct {
	GranuleId    string `json:"granuleId"`
	GranuleClass string `json:"granuleClass"`
}

type granulesPage struct {
	Count    int       `json:"count"`
	Granules []Granule `json:"granules"`
}

// GranuleMember is the nested cross-reference key of a summary.
type GranuleMember struct {
	BioGuideId string `json:"bioGuideId"`
}

// GranuleSummary is one member's directory entry. The payload shape
// varies between directory editions, so everything beyond the filter
// and cross-reference keys is carried opaquely in Raw.
type GranuleSummary struct {
	SubGranuleClass string
	Members         []GranuleMember
	Raw             json.RawMessage
}

func (s *GranuleSummary) UnmarshalJSON(data []byte) error {
	var head struct {
		SubGranuleClass string          `json:"subGranuleClass"`
		Members         []GranuleMember `json:"members"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	s.SubGranuleClass = head.SubGranuleClass
	s.Members = head.Members
	s.Raw = append([]byte(nil), data...)
	return nil
}

func (s GranuleSummary) MarshalJSON() ([]byte, error) {
	if len(s.Raw) == 0 {
		return []byte("null"), nil
	}
	return s.Raw, nil
}

// BioguideID returns the summary's cross-reference key, or "" when the
// payload carries no member entry.
func (s GranuleSummary) BioguideID() string {
	if len(s.Members) == 0 {
		return ""
	}
	return s.Members[0].BioGuideId
}

// CongressDirectory is the directory snapshot of one congress.
type CongressDirectory struct {
	Congress  int
	StartYear int
	EndYear   int
	Members   []GranuleSummary
}

func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= maxRequestAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * 2 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		res, err := c.Http.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(path)
		if err != nil {
			lastErr = err
			continue
		}
		if res.IsError() {
			return fmt.Errorf("govinfo %s: status %d", path, res.StatusCode())
		}
		return json.Unmarshal(res.Body(), out)
	}
	return fmt.Errorf("govinfo %s failed after %d attempts: %w", path, maxRequestAttempts, lastErr)
}

// listPackages pages through every directory package published for one
// congress.
func (c *Client) listPackages(ctx context.Context, congressNumber int) ([]Package, error) {
	path := fmt.Sprintf(
		"/collections/%s/%s/%s",
		directoryCollection,
		"1970-01-01T00:00:00Z",
		time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	)

	var packages []Package
	for offset := 0; offset < offsetCap; offset += pageSize {
		var page collectionPage
		err := c.getJSON(ctx, path, map[string]string{
			"offset":   strconv.Itoa(offset),
			"pageSize": strconv.Itoa(pageSize),
			"congress": strconv.Itoa(congressNumber),
		}, &page)
		if err != nil {
			return nil, err
		}
		packages = append(packages, page.Packages...)
		if offset+pageSize >= page.Count {
			break
		}
	}
	return packages, nil
}

func (c *Client) listGranules(ctx context.Context, packageId string) ([]Granule, error) {
	path := fmt.Sprintf("/packages/%s/granules", packageId)

	var granules []Granule
	for offset := 0; offset < offsetCap; offset += pageSize {
		var page granulesPage
		err := c.getJSON(ctx, path, map[string]string{
			"offset":   strconv.Itoa(offset),
			"pageSize": strconv.Itoa(pageSize),
		}, &page)
		if err != nil {
			return nil, err
		}
		granules = append(granules, page.Granules...)
		if offset+pageSize >= page.Count {
			break
		}
	}
	return granules, nil
}

func (c *Client) getGranuleSummary(ctx context.Context, packageId, granuleId string) (GranuleSummary, error) {
	var summary GranuleSummary
	path := fmt.Sprintf("/packages/%s/granules/%s/summary", packageId, granuleId)
	err := c.getJSON(ctx, path, nil, &summary)
	return summary, err
}

// DirectoryExists reports whether any directory package has been
// published for the given congress. The current congress typically has
// none until well into its first session.
func (c *Client) DirectoryExists(ctx context.Context, congressNumber int) (bool, error) {
	packages, err := c.listPackages(ctx, congressNumber)
	if err != nil {
		return false, err
	}
	return len(packages) > 0, nil
}

// latestPackage picks the most recently issued directory snapshot.
// DateIssued is ISO formatted so a string comparison orders correctly.
func latestPackage(packages []Package) Package {
	latest := packages[0]
	for _, pkg := range packages[1:] {
		if pkg.DateIssued > latest.DateIssued {
			latest = pkg
		}
	}
	return latest
}

// GetDirectory fetches the full member directory of one congress. The
// boolean is false when GovInfo has no directory for that congress,
// which is not an error. A failed granule summary is skipped and
// reported rather than aborting its siblings, so the directory comes
// back alongside a joined error and the caller decides whether a
// partial directory is acceptable.
func (c *Client) GetDirectory(ctx context.Context, congressNumber int) (CongressDirectory, bool, error) {
	ctx, span := tracer.Start(ctx, "client:GetDirectory")
	defer span.End()
	span.SetAttributes(attribute.Int("congress", congressNumber))

	startYear, err := congress.StartYear(congressNumber)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return CongressDirectory{}, false, err
	}
	endYear, _ := congress.EndYear(congressNumber)

	packages, err := c.listPackages(ctx, congressNumber)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return CongressDirectory{}, false, err
	}
	if len(packages) == 0 {
		return CongressDirectory{}, false, nil
	}

	packageId := latestPackage(packages).PackageId
	granules, err := c.listGranules(ctx, packageId)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return CongressDirectory{}, false, err
	}

	var mu sync.Mutex
	var members []GranuleSummary
	var errList []error

	group := &errgroup.Group{}
	group.SetLimit(runtime.GOMAXPROCS(0))

	for _, granule := range granules {
		if granule.GranuleClass != memberGranuleClass {
			continue
		}
		granule := granule
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			summary, err := c.getGranuleSummary(ctx, packageId, granule.GranuleId)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.WarnContext(ctx, "failed to fetch granule summary", "granule_id", granule.GranuleId, "err", err)
				errList = append(errList, fmt.Errorf("granule %s: %w", granule.GranuleId, err))
				return nil
			}
			if !memberSubGranuleClasses[summary.SubGranuleClass] {
				return nil
			}
			members = append(members, summary)
			return nil
		})
	}
	group.Wait()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return CongressDirectory{}, false, err
	}

	fetchErr := errors.Join(errList...)
	if fetchErr != nil {
		span.SetStatus(codes.Error, fetchErr.Error())
	}

	return CongressDirectory{
		Congress:  congressNumber,
		StartYear: startYear,
		EndYear:   endYear,
		Members:   members,
	}, true, fetchErr
}
