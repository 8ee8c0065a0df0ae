package bioguide

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vistos-backend/lib/congress"
	"vistos-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const verificationToken = "CfDJ8-test-token"

func newRegistryServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/Home/SearchResults", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseForm())
			require.Equal(t, verificationToken, r.FormValue("__RequestVerificationToken"))
			require.Equal(t, "116", r.FormValue("YearOrCongress"))

			fmt.Fprint(w, `<html><body>
				<div class="row"><div><a class="red" href="?memIndex=A000001">A</a></div></div>
				<div class="row"><div><a class="red" href="?memIndex=B000002">B</a></div></div>
				<ul class="pagination">
					<li class="page-item"><a class="page-link" href="?page=1">1</a></li>
					<li class="page-item PagedList-skipToLast"><a class="page-link" href="?page=2">&gt;&gt;</a></li>
				</ul>
			</body></html>`)
			return
		}

		// page fetches must carry the session cookie from the root page
		_, err := r.Cookie("session")
		require.NoError(t, err)
		require.Equal(t, "2", r.URL.Query().Get("page"))

		fmt.Fprint(w, `<html><body>
			<div class="row"><div><a class="red" href="?memIndex=B000002">B</a></div></div>
			<div class="row"><div><a class="red" href="?memIndex=C000003">C</a></div></div>
		</body></html>`)
	})

	mux.HandleFunc("/Static_Files/data/L/L000003.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, lafolletteXML)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		fmt.Fprintf(
			w,
			`<html><body><form><input name="__RequestVerificationToken" type="hidden" value="%s"/></form></body></html>`,
			verificationToken,
		)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestScrapeCongressMemberIDs(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:bioguide")()

	server := newRegistryServer(t)
	client, err := NewClient(context.Background(), ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	ids, err := client.ScrapeCongressMemberIDs(context.Background(), 116)
	require.NoError(t, err)
	require.Equal(t, []string{"A000001", "B000002", "C000003"}, ids)
}

func TestScrapeCongressMemberIDsOutOfRange(t *testing.T) {
	client, err := NewClient(context.Background(), ClientOptions{BaseUrl: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = client.ScrapeCongressMemberIDs(context.Background(), -1)
	require.ErrorIs(t, err, congress.ErrOutOfRange)

	_, err = client.ScrapeCongressMemberIDs(context.Background(), congress.MaxNumber+1)
	require.ErrorIs(t, err, congress.ErrOutOfRange)
}

func TestScrapeMemberIDsMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>no form here</body></html>`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.ScrapeMemberIDs(context.Background(), SearchQuery{LastName: "Adams"})
	require.ErrorIs(t, err, ErrNoVerificationToken)
}

func TestFetchMember(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:bioguide")()

	server := newRegistryServer(t)
	client, err := NewClient(context.Background(), ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	record, err := client.FetchMember(context.Background(), "L000003")
	require.NoError(t, err)
	require.Equal(t, "LaFollette", record.LastName)
	require.Len(t, record.Terms, 2)
}
