package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper fetches a fashion-search results page and pulls out the first image.
type Scraper struct {
	httpClient *http.Client
	searchURL  string
}

func NewScraper(searchURL string, timeout time.Duration) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
		searchURL:  searchURL,
	}
}

// FirstImageURL searches for query and returns the src of the first <img> on
// the results page. An empty src or a page without images is an error; the
// caller decides on a placeholder.
func (s *Scraper) FirstImageURL(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search request returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse search page: %w", err)
	}

	src, exists := doc.Find("img").First().Attr("src")
	if !exists || src == "" {
		return "", fmt.Errorf("no image found on search page")
	}
	return src, nil
}
