package htmldoc

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML page bound to its source URL.
type Document struct {
	doc  *goquery.Document
	base *url.URL
}

// Parse parses raw HTML and binds it to pageURL for URL resolution.
func Parse(htmlSrc, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing page URL %q: %w", pageURL, err)
	}

	return &Document{doc: doc, base: base}, nil
}

// Find selects elements matching the CSS selector across the whole document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// AbsURL resolves ref against the document's source URL. It returns an empty
// string when ref is empty or unparsable, never an error.
func (d *Document) AbsURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return d.base.ResolveReference(u).String()
}

// AbsAttr reads the named attribute from the first element of sel and
// resolves it to absolute form. Missing attributes yield an empty string.
func (d *Document) AbsAttr(sel *goquery.Selection, attr string) string {
	val, ok := sel.Attr(attr)
	if !ok {
		return ""
	}
	return d.AbsURL(val)
}
