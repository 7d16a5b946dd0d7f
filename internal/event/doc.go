// Package event provides the event record type shared by the scraper and feed layers.
//
// An Item is an immutable snapshot of one event scraped from the Visit Raleigh
// listing pages. The event's canonical URL doubles as its RSS GUID and as the
// deduplication key across scrape runs. Items carry a numeric ID parsed from
// the URL's trailing path segment; -1 marks an unparsable ID.
package event
