// Package config holds the Visit Raleigh site constants and the
// environment-variable overrides that tune a harvest run.
//
// Site-specific values (base URL, pagination selector, URL patterns, browser
// settings) are fixed constants; the date window for scraping and the age
// threshold for pruning feed entries can be overridden via DAYS_INTO_FUTURE
// and DROP_EVENTS_OLDER_THAN_DAYS. Invalid overrides log a warning and fall
// back to the defaults.
package config
