// Package feed reconciles scraped events with the persisted RSS 2.0 feed.
//
// The feed file is the sole durable store: its GUIDs are the identity keys
// loaded before a scrape, and reconciliation rewrites the whole file on every
// run. New events are sorted by ID descending and stamped with a shared
// publication time; previously published items are carried forward with their
// original timestamps, except those older than the configured age threshold,
// which are dropped. Items whose timestamp is missing or unparsable are
// always kept.
package feed
