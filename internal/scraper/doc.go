// Package scraper drives the paginated harvest of Visit Raleigh event listings.
//
// A single scrape run walks the listing pages sequentially: the total page
// count is resolved once from page 1's pagination controls, event links are
// discovered and deduplicated per page, and each link is handed to the parser
// for assembly. Events whose GUID is already known, from the persisted feed
// or from earlier in the same run, are counted and discarded. Page loading
// goes through the PageLoader interface so tests can run from HTML fixtures
// without a browser.
package scraper
