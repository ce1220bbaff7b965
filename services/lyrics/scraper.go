// Package lyrics resolves song lyrics through a cache backed by a
// page scraper.
package lyrics

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/stats"
)

// Lyrics pages reject the default Go http client UA.
const scrapeUserAgent = "Mozilla/5.0"

// Scraper fetches lyrics pages over HTTP and extracts their text.
type Scraper struct {
	httpClient *http.Client
}

// NewScraper builds a scraper. A zero timeout means no timeout.
func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Scrape fetches a lyrics page and extracts the lyrics text. Absence is
// not an error: a failed request, a non-200 status and a page without a
// lyrics container all return ok=false and are told apart in the logs.
func (s *Scraper) Scrape(ctx context.Context, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Warnf("%s Failed to create request for %s: %v", logcolors.LogScrape, url, err)
		stats.Get().RecordScrape("error")
		return "", false
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	log.Infof("%s Fetching %s", logcolors.LogScrape, url)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Warnf("%s Request failed for %s: %v", logcolors.LogScrape, url, err)
		stats.Get().RecordScrape("error")
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("%s Page returned status %d for %s", logcolors.LogScrape, resp.StatusCode, url)
		stats.Get().RecordScrape("blocked")
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Warnf("%s Failed to parse page %s: %v", logcolors.LogScrape, url, err)
		stats.Get().RecordScrape("error")
		return "", false
	}

	text, found := extractLyrics(doc)
	if !found {
		log.Infof("%s No lyrics container on %s", logcolors.LogScrape, url)
		stats.Get().RecordScrape("miss")
		return "", false
	}
	if text == "" {
		log.Infof("%s Empty lyrics container on %s", logcolors.LogScrape, url)
		stats.Get().RecordScrape("miss")
		return "", false
	}

	stats.Get().RecordScrape("success")
	return text, true
}
