package cli

import (
	"github.com/spf13/cobra"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/browser"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/config"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/feed"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/logger"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/parser"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/scraper"
)

var channelMeta = feed.ChannelMetadata{
	Title:       "Visit Raleigh Events",
	Link:        config.BaseURL,
	Description: "Events from Visit Raleigh",
}

var flagDebug bool

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvester <rss-file-path>",
		Short: "Harvest Visit Raleigh events into an incrementally-updated RSS feed",
		Long: `Scrapes the visitraleigh.com events calendar with a headless browser and
merges newly discovered events into the RSS feed at the given path. Events
already in the feed keep their original publication dates; entries older
than the configured threshold are pruned.`,
		Args: cobra.ExactArgs(1),
		RunE: runHarvest,
	}

	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and save page 1 HTML")

	return cmd
}

// runHarvest is the main command logic.
func runHarvest(cmd *cobra.Command, args []string) error {
	rssPath := args[0]

	cfg := config.FromEnv()
	if flagDebug {
		cfg.Debug = true
	}
	log := logger.New(cfg.Debug)
	log.Info().Str("output", rssPath).Msg("starting Visit Raleigh events harvester")

	// Ignore errors from here on: they are already actionable without usage help.
	cmd.SilenceUsage = true

	feedMgr := feed.NewManager(cfg.DropEventsOlderThanDays, log)

	log.Info().Msg("phase 1: loading existing feed")
	existingGUIDs, err := feedMgr.LoadExistingGUIDs(rssPath)
	if err != nil {
		return err
	}

	log.Info().Msg("phase 2: scraping events")
	loader := browser.New(cmd.Context(), cfg, log)
	defer loader.Close()

	sc := scraper.New(cfg, loader, parser.New(log), log)
	newEvents, err := sc.ScrapeEvents(cmd.Context(), existingGUIDs)
	if err != nil {
		return err
	}

	log.Info().Msg("phase 3: generating RSS feed")
	if err := feedMgr.Generate(rssPath, newEvents, channelMeta); err != nil {
		return err
	}

	log.Info().Int("new_events", len(newEvents)).Msg("RSS feed generated successfully")
	return nil
}
