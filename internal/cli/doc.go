// Package cli defines the harvester command line interface.
//
// The root command takes a single positional argument, the path of the RSS
// feed file to update, and runs the full harvest: load existing GUIDs from
// the feed, scrape the listing pages through the headless browser, and
// rewrite the feed with the merged result.
package cli
