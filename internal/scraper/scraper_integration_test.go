package scraper

import (
	"context"
	"os"
	"testing"
)

// TestScrapeEventsFromFixture runs the whole pipeline (discovery, card
// location, field extraction, assembly, deduplication) against a captured
// listing page. The fixture's pagination advertises four pages and the
// loader serves the same page for each, so cross-page deduplication is
// exercised too.
func TestScrapeEventsFromFixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/listing_page.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	pages := map[int]string{}
	for i := 1; i <= 4; i++ {
		pages[i] = string(data)
	}

	events, err := newTestScraper(&fixtureLoader{pages: pages}).ScrapeEvents(context.Background(), map[string]bool{})
	if err != nil {
		t.Fatalf("ScrapeEvents failed: %v", err)
	}

	// Four links are discovered per page, but the untitled card produces no
	// event and repeat pages add nothing.
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(events), events)
	}

	bluegrass := events[0]
	if bluegrass.ID != 48213 {
		t.Errorf("expected ID 48213, got %d", bluegrass.ID)
	}
	if bluegrass.Title != "Wide Open Bluegrass (Sep 25 - Sep 27)" {
		t.Errorf("unexpected title: %q", bluegrass.Title)
	}
	wantDesc := "<br/>Sep 25 - Sep 27 <br/>12:00 PM - 11:00 PM <br/>Fayetteville Street <br/>Downtown Raleigh"
	if bluegrass.Description != wantDesc {
		t.Errorf("unexpected description: %q", bluegrass.Description)
	}
	if bluegrass.ImageURL != "https://www.visitraleigh.com/images/events/bluegrass-hero-1200x630.jpg" {
		t.Errorf("unexpected image URL: %q", bluegrass.ImageURL)
	}

	nightMarket := events[1]
	if nightMarket.ID != 51002 {
		t.Errorf("expected ID 51002, got %d", nightMarket.ID)
	}
	if nightMarket.Title != "Downtown Night Market (Oct 3)" {
		t.Errorf("expected title from aria-label with date suffix, got %q", nightMarket.Title)
	}
	if nightMarket.Description != "Local makers, food trucks, and live music after dark." {
		t.Errorf("unexpected fallback description: %q", nightMarket.Description)
	}
	if nightMarket.ImageURL != "" {
		t.Errorf("expected no image, got %q", nightMarket.ImageURL)
	}

	rodeo := events[2]
	if rodeo.ID != 47550 {
		t.Errorf("expected ID 47550, got %d", rodeo.ID)
	}
	if rodeo.Title != "Food Truck Rodeo (Oct 12, 2026)" {
		t.Errorf("unexpected title: %q", rodeo.Title)
	}
}
