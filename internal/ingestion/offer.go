package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/cv-optimizer/internal/fetch"
)

var (
	// ErrFetchFailed wraps download failures.
	ErrFetchFailed = errors.New("offer download failed")
	// ErrContentExtractionFailed wraps HTML parsing failures.
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// OfferOptions tune IngestOffer.
type OfferOptions struct {
	// UseBrowser renders the page in headless Chrome when the plain
	// download yields too little text.
	UseBrowser bool
	Fetch      *fetch.Options
	Logger     *logrus.Logger
}

// IngestOffer downloads a job offer page and returns its cleaned
// description text.
func IngestOffer(ctx context.Context, rawURL string, opts OfferOptions) (string, *Metadata, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	platform := fetch.DetectPlatform(rawURL)
	log := logger.WithFields(logrus.Fields{"url": rawURL, "platform": platform})

	page, err := fetch.URL(ctx, rawURL, opts.Fetch)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	log.WithField("bytes", len(page.HTML)).Debug("Fetched offer page")

	content := fetch.ContentSelectors(platform)
	noise := fetch.NoiseSelectors(platform)
	html := page.HTML

	text, err := fetch.ExtractMainText(html, content, noise...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	rendered := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		log.WithField("chars", len(text)).Info("Offer text too short, rendering with browser")
		browserHTML, err := fetch.Render(ctx, rawURL, fetch.DefaultBrowserTimeout, logger)
		if err != nil {
			log.WithError(err).Warn("Browser rendering failed, keeping downloaded content")
		} else if browserText, err := fetch.ExtractMainText(browserHTML, content, noise...); err != nil {
			log.WithError(err).Warn("Browser content extraction failed")
		} else {
			html, text, rendered = browserHTML, browserText, true
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w: no text found at %s", ErrContentExtractionFailed, rawURL)
	}

	meta := NewMetadata(cleaned, rawURL)
	meta.Kind = KindOffer
	meta.Format = "html"
	meta.Platform = string(platform)
	meta.Title = fetch.ExtractTitle(html)
	meta.Browser = rendered
	log.WithField("chars", meta.Chars).Info("Ingested offer")
	return cleaned, meta, nil
}
