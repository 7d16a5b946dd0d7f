package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Site-specific constants for visitraleigh.com.
const (
	BaseURL         = "https://www.visitraleigh.com/events/"
	DefaultNumPages = 10

	// LastPageLinkSelector matches the "jump to last page" pagination
	// control. It doubles as the page-ready selector the browser waits on.
	LastPageLinkSelector = "li.arrow.arrow-next.arrow-double"

	// HostFilter must appear in every accepted event URL.
	HostFilter = "visitraleigh.com/event/"

	PageLoadTimeout = 10 * time.Second

	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"

	WindowWidth  = 1920
	WindowHeight = 1080
)

var (
	// NumPagesPattern captures the page number from a pagination href.
	NumPagesPattern = regexp.MustCompile(`(?:^|[?&])page=(\d+)`)

	// EventURLPattern validates a well-formed event detail URL.
	EventURLPattern = regexp.MustCompile(`/event/[^/]+/\d+/?$`)
)

// Default values for the environment overrides.
const (
	DefaultDaysIntoFuture          = 30
	DefaultDropEventsOlderThanDays = 30
)

// Config captures the tunable settings for one harvest run.
type Config struct {
	DaysIntoFuture          int
	DropEventsOlderThanDays int
	Debug                   bool
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset or invalid values.
func FromEnv() Config {
	return Config{
		DaysIntoFuture:          intFromEnv("DAYS_INTO_FUTURE", DefaultDaysIntoFuture),
		DropEventsOlderThanDays: intFromEnv("DROP_EVENTS_OLDER_THAN_DAYS", DefaultDropEventsOlderThanDays),
		Debug:                   os.Getenv("HARVESTER_DEBUG") == "1" || os.Getenv("HARVESTER_DEBUG") == "true",
	}
}

// PageURL builds the listing URL for one page, bounded by the configured
// end date (now + DaysIntoFuture, formatted as the site expects).
func (c Config) PageURL(page int, now time.Time) string {
	endDate := now.AddDate(0, 0, c.DaysIntoFuture).Format("01/02/2006")
	return fmt.Sprintf("%s?page=%d&endDate=%s", BaseURL, page, endDate)
}

func intFromEnv(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("name", name).Str("value", raw).Int("default", fallback).
			Msg("invalid integer environment value, using default")
		return fallback
	}
	return n
}
