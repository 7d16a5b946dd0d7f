package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractDate returns the card's display date text, or an empty string when
// no date element is present. The text is stored verbatim; no date parsing
// or validation is attempted.
func ExtractDate(card *goquery.Selection) string {
	el := card.Find("time, [class*='date'], [class*='Date']").First()
	return strings.TrimSpace(el.Text())
}
