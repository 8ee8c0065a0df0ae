package bioguide

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const resultsPageHTML = `<html><body>
<div class="row">
	<div><a class="red" href="/Home/MemberDetails?memIndex=P000587">PENCE, Mike</a></div>
</div>
<div class="row">
	<div><a class="red" href="/Home/MemberDetails?memIndex=C001120">CLOUD, Michael</a></div>
	<div><a class="red" href="/Home/MemberDetails?memIndex=P000587">PENCE, Mike</a></div>
</div>
<div class="row">
	<div><a href="/Home/About">not a result row</a></div>
</div>
</body></html>`

func TestExtractMemberIDs(t *testing.T) {
	doc := parseFixture(t, resultsPageHTML)
	require.Equal(t, []string{"P000587", "C001120"}, extractMemberIDs(doc))
}

func TestFinalPageNumber(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected int
	}{
		{
			name: "skip to last link",
			html: `<ul class="pagination">
				<li class="page-item"><a class="page-link" href="?page=1">1</a></li>
				<li class="page-item"><a class="page-link" href="?page=2">2</a></li>
				<li class="page-item PagedList-skipToLast"><a class="page-link" href="?page=12">&gt;&gt;</a></li>
			</ul>`,
			expected: 12,
		},
		{
			name: "numbered links only",
			html: `<ul class="pagination">
				<li class="page-item"><a class="page-link" href="?page=1">1</a></li>
				<li class="page-item"><a class="page-link" href="?page=2">2</a></li>
				<li class="page-item"><a class="page-link" href="?page=3">3</a></li>
			</ul>`,
			expected: 3,
		},
		{
			name: "trailing forward arrow",
			html: `<ul class="pagination">
				<li class="page-item"><a class="page-link" href="?page=1">1</a></li>
				<li class="page-item"><a class="page-link" href="?page=2">2</a></li>
				<li class="page-item"><a class="page-link" href="?page=2">&gt;</a></li>
			</ul>`,
			expected: 2,
		},
		{
			name:     "no pagination control",
			html:     `<div class="row"><div><a class="red" href="?memIndex=A000001">x</a></div></div>`,
			expected: 1,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := parseFixture(t, "<html><body>"+test.html+"</body></html>")
			require.Equal(t, test.expected, finalPageNumber(doc))
		})
	}
}
