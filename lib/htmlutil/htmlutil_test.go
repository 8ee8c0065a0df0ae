package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div class="row">
			<div><a class="red" href="/Home/MemberDetails?memIndex=P000587">PENCE, Greg</a></div>
			<div><a class="red">no href</a></div>
		</div>`))
	require.NoError(t, err)

	anchors := Anchors(doc.Find("div.row > div > a.red"))
	require.Len(t, anchors, 1)
	require.Equal(t, "PENCE, Greg", anchors[0].Text)
	require.Equal(t, "/Home/MemberDetails?memIndex=P000587", anchors[0].Href)
}

func TestFirstQueryValue(t *testing.T) {
	cases := []struct {
		href   string
		expect string
	}{
		{"/Home/MemberDetails?memIndex=P000587", "P000587"},
		{"/Home/SearchResults?page=12", "12"},
		{"/Home/SearchResults?page=12&foo=bar", "12"},
		{"/Home/SearchResults", ""},
		{"/Home/SearchResults?page", ""},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, FirstQueryValue(test.href), "href=%q", test.href)
	}
}
