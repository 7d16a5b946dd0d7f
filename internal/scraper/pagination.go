package scraper

import (
	"regexp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
)

// PaginationResolver determines the total page count from a listing page's
// "jump to last page" control. Every failure path degrades to the configured
// default; resolution never errors.
type PaginationResolver struct {
	selector     string
	pagePattern  *regexp.Regexp
	defaultPages int
	log          zerolog.Logger
}

// NewPaginationResolver creates a resolver for the given last-page control
// selector and page-number capture pattern.
func NewPaginationResolver(selector string, pagePattern *regexp.Regexp, defaultPages int, logger zerolog.Logger) *PaginationResolver {
	return &PaginationResolver{
		selector:     selector,
		pagePattern:  pagePattern,
		defaultPages: defaultPages,
		log:          logger,
	}
}

// NumPages extracts the page count from doc. The control's first child
// element carries the last-page href; the page number is captured out of
// that href. Missing control, missing href, or an unparsable number all
// fall back to the default.
func (r *PaginationResolver) NumPages(doc *htmldoc.Document) int {
	control := doc.Find(r.selector).First()
	if control.Length() == 0 {
		r.log.Debug().Int("default", r.defaultPages).Msg("no pagination control found, using default")
		return r.defaultPages
	}

	href := control.Children().First().AttrOr("href", "")
	if href == "" {
		r.log.Debug().Int("default", r.defaultPages).Msg("pagination control has no href, using default")
		return r.defaultPages
	}

	m := r.pagePattern.FindStringSubmatch(href)
	if m == nil {
		r.log.Debug().Str("href", href).Int("default", r.defaultPages).Msg("no page parameter in href, using default")
		return r.defaultPages
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		r.log.Warn().Str("captured", m[1]).Int("default", r.defaultPages).Msg("failed to parse page number, using default")
		return r.defaultPages
	}

	r.log.Debug().Int("pages", n).Msg("resolved page count from pagination")
	return n
}
