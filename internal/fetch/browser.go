package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length for a static fetch to
// count as successful. Anything shorter is almost certainly a
// JavaScript-rendered shell.
const MinContentLength = 500

const (
	defaultRenderTimeout = 30 * time.Second

	// selectorWait bounds how long Render waits for the posting-body
	// selector before falling back to a settle delay.
	selectorWait = 8 * time.Second
	settleDelay  = 3 * time.Second
)

// ShouldUseBrowser reports whether the statically extracted text is too short
// to be a real posting, meaning the page needs browser rendering.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// RenderOptions tunes a headless-browser render.
type RenderOptions struct {
	// Timeout bounds the whole render. Zero means 30 seconds.
	Timeout time.Duration
	// WaitFor is a CSS selector to wait for after navigation, normally the
	// platform's posting-body selector. Empty falls back to a fixed settle
	// delay after the body is ready.
	WaitFor string
	Verbose bool
}

// Render loads a page in headless Chrome and returns the rendered HTML.
// Requires Chrome or Chromium on the system.
func Render(ctx context.Context, url string, opts RenderOptions) (string, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultRenderTimeout
	}
	if opts.Verbose {
		log.Printf("[BROWSER] Rendering %s (wait for %q)", url, opts.WaitFor)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		waitForContent(opts.WaitFor),
		dismissConsentBanner(),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if opts.Verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}

// waitForContent waits for the posting-body selector to appear. Pages that
// never produce it (selector drift, unexpected layout) get a settle delay
// instead of failing the render.
func waitForContent(selector string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if selector == "" {
			return chromedp.Sleep(settleDelay).Do(ctx)
		}

		waitCtx, cancel := context.WithTimeout(ctx, selectorWait)
		defer cancel()
		if err := chromedp.WaitReady(selector).Do(waitCtx); err != nil {
			return chromedp.Sleep(settleDelay).Do(ctx)
		}
		return nil
	})
}

// dismissConsentBanner clicks the usual accept buttons so consent overlays do
// not end up in the extracted text. Missing buttons are not an error.
func dismissConsentBanner() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		clickCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = chromedp.Click(
			`button[id*="accept"], button[class*="accept"], button[id*="consent"], [aria-label*="accept"]`,
			chromedp.NodeVisible,
		).Do(clickCtx)
		return nil
	})
}
