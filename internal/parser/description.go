package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaFields are the structured sub-fields pulled from a block-meta
// container, in output order. Region is last and gets no trailing space.
var metaFields = []struct {
	selector      string
	trailingSpace bool
}{
	{"[class*='dateInfo'], [class*='date-info']", true},
	{"[class*='times'], time", true},
	{"[class*='location']", true},
	{"[class*='region']", false},
}

// ExtractDescription extracts the card's description text.
//
// Tier 1 reads the structured block-meta container: each sub-field found is
// wrapped with a line-break marker and the pieces joined with single spaces.
// Any non-empty tier-1 result wins outright, even a partial one. Tier 2 is
// the generic fallback: the first paragraph, description, or excerpt element.
func ExtractDescription(card *goquery.Selection) string {
	if desc := descriptionFromBlockMeta(card); desc != "" {
		return desc
	}
	return descriptionFallback(card)
}

func descriptionFromBlockMeta(card *goquery.Selection) string {
	blockMeta := card.Find("div.block-meta, [class*='block-meta']").First()
	if blockMeta.Length() == 0 {
		return ""
	}

	var b strings.Builder
	for _, field := range metaFields {
		text := strings.TrimSpace(blockMeta.Find(field.selector).First().Text())
		if text == "" {
			continue
		}
		b.WriteString("<br/>")
		b.WriteString(text)
		if field.trailingSpace {
			b.WriteString(" ")
		}
	}

	return strings.TrimSpace(b.String())
}

func descriptionFallback(card *goquery.Selection) string {
	el := card.Find("p, [class*='description'], [class*='excerpt']").First()
	return strings.TrimSpace(el.Text())
}
