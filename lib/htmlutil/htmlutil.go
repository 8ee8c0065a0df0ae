package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under the given node.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Text string
	Href string
}

// Anchors collects the href and trimmed text of every anchor in the
// selection. Anchors without an href attribute are skipped.
func Anchors(sel *goquery.Selection) []Anchor {
	var anchors []Anchor
	sel.Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		anchors = append(anchors, Anchor{
			Text: strings.TrimSpace(s.Text()),
			Href: href,
		})
	})
	return anchors
}

// FirstQueryValue returns the value of the first key=value pair in the
// query string of a link, e.g. "SearchResults?page=3" yields "3".
// The retro bioguide markup carries its payload (page numbers, member
// identifiers) as the first query parameter of relative hrefs, some of
// which are not strictly URL-encoded, so this parses by position rather
// than by key.
func FirstQueryValue(href string) string {
	_, query, ok := strings.Cut(href, "?")
	if !ok {
		return ""
	}
	_, value, ok := strings.Cut(query, "=")
	if !ok {
		return ""
	}
	if amp := strings.IndexByte(value, '&'); amp >= 0 {
		value = value[:amp]
	}
	return value
}
