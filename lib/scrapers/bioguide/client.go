package bioguide

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"vistos-backend/lib/congress"
	"vistos-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/bioguide")

const (
	DefaultBaseUrl = "https://bioguideretro.congress.gov"

	searchPath     = "/Home/SearchResults"
	memberDataPath = "/Static_Files/data"

	maxRequestAttempts = 3
)

type Client struct {
	BaseUrl *url.URL
	// Http serves the static member documents. Search traffic goes
	// through per-fetch sessions instead, see newSearchSession.
	Http *resty.Client
}

type ClientOptions struct {
	// BaseUrl defaults to the public registry when empty.
	BaseUrl string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseUrl: baseUrl,
		Http:    newHttpClient(baseUrl),
	}, nil
}

func newHttpClient(baseUrl *url.URL) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseUrl.String())
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/bioguide/http")

	return client
}

// SearchQuery mirrors the registry search form. Every field is optional;
// empty fields are omitted from the submitted form entirely.
type SearchQuery struct {
	LastName       string
	FirstName      string
	Position       string
	State          string
	Party          string
	YearOrCongress string
}

// Validate fails fast on unknown filter values so that typos surface
// before any network traffic happens.
func (q SearchQuery) Validate() error {
	if err := ValidatePosition(q.Position); err != nil {
		return err
	}
	if err := ValidateParty(q.Party); err != nil {
		return err
	}
	return ValidateState(q.State)
}

func (q SearchQuery) formValues(token string) map[string]string {
	values := map[string]string{
		"submitButton":               "submit",
		"__RequestVerificationToken": token,
	}
	optional := map[string]string{
		"LastName":       q.LastName,
		"FirstName":      q.FirstName,
		"Position":       q.Position,
		"State":          q.State,
		"Party":          q.Party,
		"YearOrCongress": q.YearOrCongress,
	}
	for key, value := range optional {
		if value != "" {
			values[key] = value
		}
	}
	return values
}

// searchSession owns one verification token and one cookie jar. The
// registry invalidates results when the token and cookies drift apart,
// so a session is used by exactly one roster fetch and never shared.
type searchSession struct {
	http  *resty.Client
	query SearchQuery
	token string
}

func (c *Client) newSearchSession(query SearchQuery) (*searchSession, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	http := newHttpClient(c.BaseUrl)
	http.SetCookieJar(jar)
	return &searchSession{http: http, query: query}, nil
}

// refreshToken fetches the search root and pulls the anti-forgery token
// out of its hidden form input.
func (s *searchSession) refreshToken(ctx context.Context) error {
	var lastErr error
	for attempt := 0; attempt <= maxRequestAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := s.http.R().SetContext(ctx).Get("/")
		if err != nil {
			lastErr = err
			continue
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
		if err != nil {
			return err
		}
		token, ok := doc.Find(`input[name="__RequestVerificationToken"]`).Attr("value")
		if !ok || token == "" {
			return ErrNoVerificationToken
		}
		s.token = token
		return nil
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrConnection, maxRequestAttempts, lastErr)
}

// submit posts the search form. Retries refresh the token first since a
// failed request may have left the session in a stale state.
func (s *searchSession) submit(ctx context.Context) (*goquery.Document, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRequestAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			if err := s.refreshToken(ctx); err != nil {
				return nil, err
			}
		}
		res, err := s.http.R().
			SetContext(ctx).
			SetFormData(s.query.formValues(s.token)).
			Post(searchPath)
		if err != nil {
			lastErr = err
			continue
		}
		return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrConnection, maxRequestAttempts, lastErr)
}

// fetchPage requests one page of an already submitted search. A failed
// page fetch re-enters the whole session (token plus resubmission)
// because the result set is pinned to the cookie.
func (s *searchSession) fetchPage(ctx context.Context, page int) (*goquery.Document, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRequestAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			if err := s.refreshToken(ctx); err != nil {
				return nil, err
			}
			if _, err := s.submit(ctx); err != nil {
				return nil, err
			}
		}
		res, err := s.http.R().
			SetContext(ctx).
			SetQueryParam("page", strconv.Itoa(page)).
			Get(searchPath)
		if err != nil {
			lastErr = err
			continue
		}
		return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrConnection, maxRequestAttempts, lastErr)
}

// ScrapeMemberIDs runs one search and walks every result page, returning
// the bioguide ids of all matching members in first-seen order.
func (c *Client) ScrapeMemberIDs(ctx context.Context, query SearchQuery) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:ScrapeMemberIDs")
	defer span.End()

	if err := query.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	session, err := c.newSearchSession(query)
	if err != nil {
		return nil, err
	}
	if err := session.refreshToken(ctx); err != nil {
		span.SetStatus(codes.Error, "failed to fetch verification token")
		return nil, err
	}
	doc, err := session.submit(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to submit search")
		return nil, err
	}

	finalPage := finalPageNumber(doc)

	var ids []string
	seen := map[string]bool{}
	for page := 1; ; page++ {
		for _, id := range extractMemberIDs(doc) {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		if page >= finalPage {
			break
		}
		doc, err = session.fetchPage(ctx, page+1)
		if err != nil {
			span.SetStatus(codes.Error, fmt.Sprintf("failed to fetch page %d", page+1))
			return nil, err
		}
	}
	return ids, nil
}

// ScrapeCongressMemberIDs resolves the full roster of one congress.
// Congress zero would also match members who later became president, so
// it is crawled as two position-filtered searches instead of one open
// query.
func (c *Client) ScrapeCongressMemberIDs(ctx context.Context, number int) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:ScrapeCongressMemberIDs")
	defer span.End()

	if !congress.IsValidNumber(number) {
		err := fmt.Errorf("congress %d: %w", number, congress.ErrOutOfRange)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	queries := []SearchQuery{{YearOrCongress: strconv.Itoa(number)}}
	if number == 0 {
		queries = []SearchQuery{
			{YearOrCongress: "0", Position: PositionContinentalCongress},
			{YearOrCongress: "0", Position: PositionDelegate},
		}
	}

	var ids []string
	seen := map[string]bool{}
	for _, query := range queries {
		queryIDs, err := c.ScrapeMemberIDs(ctx, query)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		for _, id := range queryIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}
