package parser

import (
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
)

const testPageURL = "https://www.visitraleigh.com/events/"

// mustParse parses an HTML snippet bound to the listing page URL.
func mustParse(t *testing.T, html string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(html, testPageURL)
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

// firstMatch returns the first element matching selector, failing the test
// if nothing matches.
func firstMatch(t *testing.T, doc *htmldoc.Document, selector string) *goquery.Selection {
	t.Helper()
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		t.Fatalf("no element matches %q in test HTML", selector)
	}
	return sel
}
