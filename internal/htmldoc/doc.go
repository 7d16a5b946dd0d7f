// Package htmldoc wraps a goquery document together with the URL it was
// loaded from, so relative href and src attributes can be resolved to
// absolute form during extraction.
package htmldoc
