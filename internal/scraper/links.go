package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
)

// eventLinkMarker pre-filters anchors before the stricter URL checks run.
const eventLinkMarker = "a[href*='/event/']"

// LinkDiscoverer finds candidate event links on a single listing page.
// It holds no cross-page state; deduplication across pages is the scrape
// loop's job via the identity set.
type LinkDiscoverer struct {
	urlPattern *regexp.Regexp
	hostFilter string
	log        zerolog.Logger
}

// NewLinkDiscoverer creates a discoverer that accepts URLs matching
// urlPattern and containing hostFilter.
func NewLinkDiscoverer(urlPattern *regexp.Regexp, hostFilter string, logger zerolog.Logger) *LinkDiscoverer {
	return &LinkDiscoverer{
		urlPattern: urlPattern,
		hostFilter: hostFilter,
		log:        logger,
	}
}

// Discover returns the event link elements of one page in document order.
// An anchor is kept when its absolute URL has not been seen on this page,
// contains the host filter, and matches the event URL pattern.
func (d *LinkDiscoverer) Discover(doc *htmldoc.Document) []*goquery.Selection {
	anchors := doc.Find(eventLinkMarker)
	d.log.Debug().Int("count", anchors.Length()).Msg("anchors matching event link marker")

	var links []*goquery.Selection
	seen := make(map[string]bool)

	anchors.Each(func(_ int, link *goquery.Selection) {
		href := doc.AbsAttr(link, "href")
		if !d.shouldKeep(href, seen) {
			return
		}
		seen[href] = true
		links = append(links, link)
		d.log.Debug().Str("url", href).Msg("discovered event link")
	})

	d.log.Info().Int("count", len(links)).Msg("unique event links on page")
	return links
}

func (d *LinkDiscoverer) shouldKeep(href string, seen map[string]bool) bool {
	if seen[href] {
		return false
	}
	if !strings.Contains(href, d.hostFilter) {
		return false
	}
	return d.urlPattern.MatchString(href)
}
