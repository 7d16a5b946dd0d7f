package parser

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/event"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
)

// Parser assembles event records from discovered event links.
type Parser struct {
	log zerolog.Logger
}

// New creates a Parser that logs extraction details to logger.
func New(logger zerolog.Logger) *Parser {
	return &Parser{log: logger}
}

// ParseEvent assembles one event from its link element. The second return
// value is false when the event must be skipped: the link has no resolvable
// URL, or no title could be extracted from its card. Partial events are
// never emitted.
func (p *Parser) ParseEvent(doc *htmldoc.Document, link *goquery.Selection) (event.Item, bool) {
	eventURL := doc.AbsAttr(link, "href")
	p.log.Debug().Str("url", eventURL).Msg("parsing event link")

	id, ok := extractEventID(eventURL)
	if !ok {
		p.log.Debug().Str("url", eventURL).Msg("skipping link with no usable URL")
		return event.Item{}, false
	}
	if id == event.UnknownID {
		p.log.Warn().Str("url", eventURL).Msg("unable to parse event ID from URL")
	}

	card := FindCard(link)

	title, ok := ExtractTitle(card)
	if !ok {
		p.log.Debug().Str("url", eventURL).Msg("skipping event with no valid title")
		return event.Item{}, false
	}

	dateText := ExtractDate(card)
	description := ExtractDescription(card)
	imageURL := ExtractImageURL(doc, card)

	item := event.Item{
		ID:          id,
		GUID:        eventURL,
		Title:       fullTitle(title, dateText),
		Description: description,
		Link:        eventURL,
		ImageURL:    imageURL,
		DateText:    dateText,
	}

	p.log.Debug().Str("title", item.Title).Int("id", item.ID).Msg("parsed event")
	return item, true
}

// extractEventID parses the last non-empty path segment of an event URL as
// the numeric event ID. A non-numeric segment yields the UnknownID sentinel
// with ok still true, so the event is emitted regardless. Only a URL with no
// segments at all fails.
func extractEventID(eventURL string) (int, bool) {
	var last string
	for _, segment := range strings.Split(eventURL, "/") {
		if segment != "" {
			last = segment
		}
	}
	if last == "" {
		return 0, false
	}

	id, err := strconv.Atoi(last)
	if err != nil {
		return event.UnknownID, true
	}
	return id, true
}

// fullTitle annotates the title with the display date when one was found.
func fullTitle(title, dateText string) string {
	if dateText == "" {
		return title
	}
	return title + " (" + dateText + ")"
}
