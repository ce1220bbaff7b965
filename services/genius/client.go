// Package genius is a thin client for the Genius song search API.
package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/logcolors"
	"github.com/snypenet/rate-my-music/stats"
)

const defaultSearchURL = "https://api.genius.com/search"

// SongSummary is one search result row with the nested upstream
// fields flattened out.
type SongSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Thumbnail string `json:"thumbnail"`
}

// UpstreamError reports a non-success status from the search API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("genius search returned status %d", e.StatusCode)
}

// searchResponse mirrors the wire shape. Hits with missing fields
// decode to zero values rather than failing.
type searchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				ID            int64  `json:"id"`
				Title         string `json:"title"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
				SongArtImageThumbnailURL string `json:"song_art_image_thumbnail_url"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// Client queries the search API with a bearer token.
type Client struct {
	accessToken string
	searchURL   string
	httpClient  *http.Client
}

// NewClient builds a search client. An empty searchURL falls back to the
// public Genius endpoint. A zero timeout means no timeout.
func NewClient(accessToken, searchURL string, timeout time.Duration) *Client {
	if searchURL == "" {
		searchURL = defaultSearchURL
	}
	return &Client{
		accessToken: accessToken,
		searchURL:   searchURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Search runs a song search and returns one summary per hit. An empty
// result set returns an empty, non-nil slice.
func (c *Client) Search(ctx context.Context, query string) ([]SongSummary, error) {
	params := url.Values{}
	params.Add("q", query)
	requestURL := c.searchURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	log.Infof("%s Searching for %q", logcolors.LogSearch, query)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		stats.Get().RecordSearchFailure()
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		stats.Get().RecordSearchFailure()
		log.Warnf("%s Upstream returned status %d for %q", logcolors.LogSearch, resp.StatusCode, query)
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]SongSummary, 0, len(parsed.Response.Hits))
	for _, hit := range parsed.Response.Hits {
		results = append(results, SongSummary{
			ID:        hit.Result.ID,
			Title:     hit.Result.Title,
			Artist:    hit.Result.PrimaryArtist.Name,
			Thumbnail: hit.Result.SongArtImageThumbnailURL,
		})
	}

	log.Infof("%s Found %d results for %q", logcolors.LogSearch, len(results), query)
	return results, nil
}
