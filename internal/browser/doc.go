// Package browser loads listing pages through headless Chrome.
//
// The event calendar is JavaScript-rendered, so plain HTTP fetches return an
// empty shell. The Loader drives a chromedp browser session: navigate, wait
// for the pagination control to appear in the DOM, then hand the rendered
// HTML to htmldoc for parsing. One browser instance is reused across all
// pages of a run.
package browser
