package feed

import (
	"encoding/xml"
	"fmt"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/event"
)

// channelLanguage is fixed; the feed serves one site in one language.
const channelLanguage = "en-us"

// enclosureType is the advertised MIME type for event images.
const enclosureType = "image/jpeg"

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	GUID        string        `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// newItem converts a scraped event into a feed item with the given
// publication timestamp.
func newItem(ev event.Item, pubDate string) rssItem {
	item := rssItem{
		Title:       ev.Title,
		Link:        ev.Link,
		Description: ev.Description,
		GUID:        ev.GUID,
		PubDate:     pubDate,
	}
	if ev.ImageURL != "" {
		item.Enclosure = &rssEnclosure{URL: ev.ImageURL, Type: enclosureType}
	}
	return item
}

// marshal renders the document with the XML declaration and stable
// two-space indentation.
func (d rssDoc) marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling RSS: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
