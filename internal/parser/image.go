package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
)

// minImageURLLength filters out tracking pixels and other junk src values;
// a usable image URL must be strictly longer than this.
const minImageURLLength = 20

// ExtractImageURL returns the absolute URL of the card's first image, or an
// empty string when the card has no image or the image is filtered out.
// Icon and logo URLs are rejected by case-sensitive substring match, unlike
// the class heuristics elsewhere in this package. There is no fallback to a
// second image.
func ExtractImageURL(doc *htmldoc.Document, card *goquery.Selection) string {
	img := card.Find("img[src]").First()
	if img.Length() == 0 {
		return ""
	}

	src := doc.AbsAttr(img, "src")
	if strings.Contains(src, "icon") || strings.Contains(src, "logo") {
		return ""
	}
	if len(src) <= minImageURLLength {
		return ""
	}

	return src
}
