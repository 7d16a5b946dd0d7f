// Package parser extracts structured event data from Visit Raleigh listing markup.
//
// The listing pages are not controlled by this project and their markup varies
// from card to card, so extraction is heuristic throughout. Starting from an
// event link, the parser walks upward to the smallest enclosing "card"
// container, then runs an ordered chain of extraction strategies for each
// field (title, date, description, image), stopping at the first strategy
// that produces a valid value. A card that yields no usable title produces
// no event at all; every other field degrades to an empty string.
package parser
