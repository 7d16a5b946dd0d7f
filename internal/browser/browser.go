package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/mckelvym/visitraleigh.events.harvester/internal/config"
	"github.com/mckelvym/visitraleigh.events.harvester/internal/htmldoc"
)

// debugPagePath is where page 1's rendered HTML lands in debug mode.
const debugPagePath = "debug-page.html"

// Loader fetches and parses listing pages with a shared headless Chrome
// instance. Close must be called when the run is finished.
type Loader struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc

	timeout      time.Duration
	waitSelector string
	debug        bool
	log          zerolog.Logger
}

// New starts a headless browser session configured with the site's user
// agent and window size. The session lives until Close.
func New(ctx context.Context, cfg config.Config, logger zerolog.Logger) *Loader {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(config.UserAgent),
		chromedp.WindowSize(config.WindowWidth, config.WindowHeight),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	return &Loader{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		timeout:       config.PageLoadTimeout,
		waitSelector:  config.LastPageLinkSelector,
		debug:         cfg.Debug,
		log:           logger,
	}
}

// LoadPage navigates to url, waits for the ready selector, and returns the
// rendered page parsed and bound to url. Navigation and wait share one
// timeout; any failure aborts the caller's run.
func (l *Loader) LoadPage(ctx context.Context, url string, page int) (*htmldoc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	l.log.Debug().Str("url", url).Msg("loading page")

	runCtx, cancel := context.WithTimeout(l.browserCtx, l.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(l.waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", url, err)
	}

	l.log.Debug().Dur("elapsed", time.Since(start)).Msg("page loaded")
	l.savePageIfDebug(html, page)

	return htmldoc.Parse(html, url)
}

// Close shuts down the browser session.
func (l *Loader) Close() {
	l.browserCancel()
	l.allocCancel()
}

// savePageIfDebug dumps page 1's HTML for troubleshooting. Only the first
// page is saved to avoid littering the working directory.
func (l *Loader) savePageIfDebug(html string, page int) {
	if !l.debug || page != 1 {
		return
	}
	if err := os.WriteFile(debugPagePath, []byte(html), 0644); err != nil {
		l.log.Warn().Err(err).Msg("failed to save debug page")
		return
	}
	l.log.Debug().Str("path", debugPagePath).Int("length", len(html)).Msg("debug page saved")
}
