package bioguide

import (
	"strconv"
	"strings"

	"vistos-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// extractMemberIDs pulls bioguide ids out of one search result page.
// Each result row links to the member detail view with the id as the
// first query parameter of the href. Ids are deduplicated within the
// page; the same member can still show up again on a later page under a
// different role listing, which the crawl loop handles.
func extractMemberIDs(doc *goquery.Document) []string {
	var ids []string
	seen := map[string]bool{}
	for _, anchor := range htmlutil.Anchors(doc.Find("div.row > div > a.red")) {
		id := htmlutil.FirstQueryValue(anchor.Href)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// finalPageNumber reads the total page count out of the pagination
// control. Large result sets render a skip-to-last link; smaller ones
// only render numbered links, where the last one may be a ">" forward
// arrow rather than a page. No control at all means a single page.
func finalPageNumber(doc *goquery.Document) int {
	link := doc.Find("ul.pagination > li.page-item.PagedList-skipToLast > a.page-link").First()

	if link.Length() == 0 {
		links := doc.Find("ul.pagination > li.page-item > a.page-link")
		if links.Length() == 0 {
			return 1
		}
		link = links.Last()
		text := strings.TrimSpace(link.Text())
		if text == ">" || text == "&gt;" {
			link = links.Eq(links.Length() - 2)
		}
	}

	page, err := strconv.Atoi(htmlutil.FirstQueryValue(link.AttrOr("href", "")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
