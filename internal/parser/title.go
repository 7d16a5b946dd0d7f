package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minTitleLength is the shortest string accepted as an event title.
const minTitleLength = 3

// titleStrategy is one self-contained extraction attempt. It returns an
// empty string when it finds nothing usable.
type titleStrategy func(card *goquery.Selection) string

// titleStrategies are tried in order; the first result of at least
// minTitleLength characters wins.
var titleStrategies = []titleStrategy{
	titleFromHeadings,
	titleFromClass,
	titleFromLinks,
	titleFromImageAlt,
	titleFromAriaLabel,
}

// ExtractTitle extracts the event title from a card. The second return value
// is false when every strategy fails; such cards produce no event.
func ExtractTitle(card *goquery.Selection) (string, bool) {
	for _, strategy := range titleStrategies {
		if title := strategy(card); len(title) >= minTitleLength {
			return title, true
		}
	}
	return "", false
}

func titleFromHeadings(card *goquery.Selection) string {
	heading := card.Find("h1, h2, h3, h4, h5, h6").First()
	return strings.TrimSpace(heading.Text())
}

func titleFromClass(card *goquery.Selection) string {
	el := card.Find("[class*='title'], [class*='Title'], [class*='name'], [class*='Name']").First()
	return strings.TrimSpace(el.Text())
}

// titleFromLinks scans event links for one with real text, skipping
// empty or icon-only anchors rather than giving up on the first.
func titleFromLinks(card *goquery.Selection) string {
	var title string
	card.Find("a[href*='/event/']").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := strings.TrimSpace(link.Text())
		if len(text) > minTitleLength {
			title = text
			return false
		}
		return true
	})
	return title
}

func titleFromImageAlt(card *goquery.Selection) string {
	alt := strings.TrimSpace(card.Find("img[alt]").First().AttrOr("alt", ""))
	if len(alt) > minTitleLength {
		return alt
	}
	return ""
}

func titleFromAriaLabel(card *goquery.Selection) string {
	var title string
	card.Find("a[aria-label]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		label := strings.TrimSpace(link.AttrOr("aria-label", ""))
		if len(label) > minTitleLength {
			title = label
			return false
		}
		return true
	})
	return title
}
