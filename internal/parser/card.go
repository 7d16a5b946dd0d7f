package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxTraversalDepth bounds the upward walk from an event link to its card
// container, so pathological nesting can't send us to the document root.
const maxTraversalDepth = 10

// containerClassHints are class-name fragments that mark an element as an
// event card container. Matching is case-insensitive.
var containerClassHints = []string{"event", "card", "result", "listing", "item"}

// FindCard walks up from an event link to the smallest ancestor that looks
// like the event's card container. The first matching parent wins. If no
// ancestor matches within the depth bound, the deepest element reached is
// returned, so the caller always has something to extract from.
func FindCard(link *goquery.Selection) *goquery.Selection {
	current := link

	for i := 0; i < maxTraversalDepth; i++ {
		parent := current.Parent()
		if parent.Length() == 0 {
			break
		}
		if isCardContainer(parent) {
			return parent
		}
		current = parent
	}

	return current
}

func isCardContainer(sel *goquery.Selection) bool {
	class := strings.ToLower(sel.AttrOr("class", ""))
	for _, hint := range containerClassHints {
		if strings.Contains(class, hint) {
			return true
		}
	}
	return goquery.NodeName(sel) == "article"
}
