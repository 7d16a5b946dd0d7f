package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/config"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/event"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/parser"
)

// PageLoader fetches one listing page and returns it parsed. Implementations
// wrap a browser (or, in tests, a fixture directory). A load failure aborts
// the whole scrape run; there are no retries at this layer.
type PageLoader interface {
	LoadPage(ctx context.Context, url string, page int) (*htmldoc.Document, error)
}

// Scraper walks the paginated event listings and accumulates events whose
// GUID is not yet known.
type Scraper struct {
	cfg        config.Config
	loader     PageLoader
	parser     *parser.Parser
	pagination *PaginationResolver
	links      *LinkDiscoverer
	log        zerolog.Logger
}

// New wires up a Scraper with the site's pagination and link settings.
func New(cfg config.Config, loader PageLoader, p *parser.Parser, logger zerolog.Logger) *Scraper {
	return &Scraper{
		cfg:        cfg,
		loader:     loader,
		parser:     p,
		pagination: NewPaginationResolver(config.LastPageLinkSelector, config.NumPagesPattern, config.DefaultNumPages, logger),
		links:      NewLinkDiscoverer(config.EventURLPattern, config.HostFilter, logger),
		log:        logger,
	}
}

// ScrapeEvents visits every listing page and returns the events not present
// in existingGUIDs, in discovery order. existingGUIDs is grown in place as
// new events are found, so duplicates within the run are dropped too. The
// page count is fixed once, read from page 1 only.
func (s *Scraper) ScrapeEvents(ctx context.Context, existingGUIDs map[string]bool) ([]event.Item, error) {
	s.log.Info().Str("base_url", config.BaseURL).Msg("starting event scrape")

	var newEvents []event.Item
	duplicates := 0
	now := time.Now()

	page := 1
	numPages := 1
	for page <= numPages {
		url := s.cfg.PageURL(page, now)
		s.log.Info().Int("page", page).Str("url", url).Msg("scraping page")

		doc, err := s.loader.LoadPage(ctx, url, page)
		if err != nil {
			return nil, fmt.Errorf("loading page %d: %w", page, err)
		}

		if page == 1 {
			numPages = s.pagination.NumPages(doc)
			s.log.Info().Int("pages", numPages).Msg("resolved total page count")
		}

		added, dupes := s.scrapePage(doc, existingGUIDs, &newEvents)
		duplicates += dupes
		s.log.Info().Int("page", page).Int("of", numPages).Int("new", added).
			Int("total_new", len(newEvents)).Msg("page scraped")

		page++
	}

	s.log.Info().Int("new_events", len(newEvents)).Int("duplicates", duplicates).
		Int("pages", numPages).Msg("scrape complete")
	return newEvents, nil
}

// scrapePage assembles the events of one page and folds them into the
// accumulator, returning how many were added and how many were duplicates.
func (s *Scraper) scrapePage(doc *htmldoc.Document, existingGUIDs map[string]bool, newEvents *[]event.Item) (added, duplicates int) {
	for _, link := range s.links.Discover(doc) {
		item, ok := s.parser.ParseEvent(doc, link)
		if !ok {
			continue
		}

		if existingGUIDs[item.GUID] {
			duplicates++
			s.log.Info().Str("title", item.Title).Msg("found existing event")
			continue
		}

		existingGUIDs[item.GUID] = true
		*newEvents = append(*newEvents, item)
		added++
		s.log.Info().Str("title", item.Title).Msg("found new event")
	}
	return added, duplicates
}
