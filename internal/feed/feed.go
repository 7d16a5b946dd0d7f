package feed

import (
	"fmt"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/event"
)

// ChannelMetadata describes the feed's channel element.
type ChannelMetadata struct {
	Title       string
	Link        string
	Description string
}

// Manager owns the persisted RSS feed: it loads the identity keys before a
// scrape and rewrites the feed afterwards.
type Manager struct {
	filter ageFilter
	now    func() time.Time
	log    zerolog.Logger
}

// NewManager creates a Manager that drops carried-forward items older than
// dropOlderThanDays.
func NewManager(dropOlderThanDays int, logger zerolog.Logger) *Manager {
	return &Manager{
		filter: ageFilter{dropOlderThanDays: dropOlderThanDays},
		now:    time.Now,
		log:    logger,
	}
}

// LoadExistingGUIDs returns the GUIDs of every item in the feed at path.
// A missing file is a normal first run and yields an empty set; a feed that
// exists but cannot be parsed is a hard failure.
func (m *Manager) LoadExistingGUIDs(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		m.log.Info().Str("path", path).Msg("no existing RSS feed found")
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()

	parsed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", path, err)
	}

	guids := make(map[string]bool, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.GUID != "" {
			guids[item.GUID] = true
		}
	}

	m.log.Info().Int("count", len(guids)).Msg("loaded existing event GUIDs from feed")
	return guids, nil
}

// Generate rewrites the feed at path: newEvents sorted by ID descending come
// first, each stamped with the current time, followed by the surviving items
// of the previous feed in their original order with their original
// timestamps. The write is atomic from the feed reader's point of view only
// in that it happens once, at the end.
func (m *Manager) Generate(path string, newEvents []event.Item, meta ChannelMetadata) error {
	now := m.now()
	m.log.Info().Int("new_events", len(newEvents)).Msg("generating RSS feed")

	doc := rssDoc{
		Version: "2.0",
		Channel: rssChannel{
			Title:         meta.Title,
			Link:          meta.Link,
			Description:   meta.Description,
			Language:      channelLanguage,
			LastBuildDate: now.Format(time.RFC1123),
		},
	}

	// One timestamp for the whole batch, not a per-item clock read.
	pubDate := now.Format(time.RFC1123)
	var pubDates []*time.Time

	event.SortByIDDescending(newEvents)
	for _, ev := range newEvents {
		doc.Channel.Items = append(doc.Channel.Items, newItem(ev, pubDate))
		t := now
		pubDates = append(pubDates, &t)
	}

	dropped, err := m.carryForward(path, now, &doc, &pubDates)
	if err != nil {
		return err
	}

	var oldest *time.Time
	if n := len(pubDates); n > 0 {
		oldest = pubDates[n-1]
	}
	m.filter.logStatistics(m.log, len(doc.Channel.Items), dropped, oldest, now)

	out, err := doc.marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing feed %s: %w", path, err)
	}

	m.log.Info().Str("path", path).Msg("RSS feed written")
	return nil
}

// carryForward appends the age-filtered items of the previous feed to doc,
// returning how many were dropped. Carried items keep their original pubDate
// text and GUID untouched.
func (m *Manager) carryForward(path string, now time.Time, doc *rssDoc, pubDates *[]*time.Time) (int, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("opening previous feed: %w", err)
	}
	defer f.Close()

	parsed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return 0, fmt.Errorf("parsing previous feed %s: %w", path, err)
	}

	m.log.Info().Int("count", len(parsed.Items)).Msg("importing existing events from feed")

	dropped := 0
	for _, old := range parsed.Items {
		if !m.filter.keep(old.PublishedParsed, now) {
			dropped++
			continue
		}

		item := rssItem{
			Title:       old.Title,
			Link:        old.Link,
			Description: old.Description,
			GUID:        old.GUID,
			PubDate:     old.Published,
		}
		for _, enc := range old.Enclosures {
			if enc.URL != "" {
				item.Enclosure = &rssEnclosure{URL: enc.URL, Type: enc.Type}
				break
			}
		}

		doc.Channel.Items = append(doc.Channel.Items, item)
		*pubDates = append(*pubDates, old.PublishedParsed)
	}

	return dropped, nil
}
