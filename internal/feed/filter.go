package feed

import (
	"time"

	"github.com/rs/zerolog"
)

// ageFilter decides which carried-forward items are too old to keep.
type ageFilter struct {
	dropOlderThanDays int
}

// keep reports whether an item with the given publication time survives the
// age cutoff. The inequality is strict: an item dated exactly at the cutoff
// is dropped. A nil publication time always survives: a missing or
// unparsable date is never grounds for removal.
func (f ageFilter) keep(pubDate *time.Time, now time.Time) bool {
	if pubDate == nil {
		return true
	}
	cutoff := now.AddDate(0, 0, -f.dropOlderThanDays)
	return pubDate.After(cutoff)
}

// logStatistics reports aggregate feed counts after reconciliation.
// oldest is the publication time of the feed's last item, when known.
func (f ageFilter) logStatistics(log zerolog.Logger, totalItems, dropped int, oldest *time.Time, now time.Time) {
	if totalItems == 0 {
		log.Info().Msg("RSS feed contains 0 events")
	} else if oldest != nil {
		days := int(now.Sub(*oldest).Hours() / 24)
		log.Info().Int("total", totalItems).Int("oldest_age_days", days).
			Msg("RSS feed statistics")
	} else {
		log.Info().Int("total", totalItems).Msg("RSS feed statistics")
	}

	if dropped > 0 {
		log.Info().Int("dropped", dropped).Int("older_than_days", f.dropOlderThanDays).
			Msg("dropped old events from feed")
	}
}
