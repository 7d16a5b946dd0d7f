package event

import "sort"

// UnknownID is the sentinel ID for events whose URL has no trailing numeric
// path segment. Such events are still emitted; the sentinel only affects sort
// placement.
const UnknownID = -1

// Item represents a single scraped event.
type Item struct {
	ID          int    `json:"id"`
	GUID        string `json:"guid"` // canonical event URL, also the dedup key
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
	ImageURL    string `json:"image_url,omitempty"`
	DateText    string `json:"date_text,omitempty"` // raw, unparsed display date
}

// SortByIDDescending orders items by numeric ID, newest (highest) first.
// The sort is stable so items sharing an ID keep their discovery order.
func SortByIDDescending(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ID > items[j].ID
	})
}
