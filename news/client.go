package news

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/mmcdole/gofeed"
)

const (
	// DefaultFeedURL is the news search feed endpoint.
	DefaultFeedURL = "https://news.google.com/rss/search"
	// DefaultUserAgent is sent instead of the client default, which the feed rejects.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	// DefaultTimeout bounds one feed round-trip.
	DefaultTimeout = 10 * time.Second
	// MaxArticles caps the number of items returned per query.
	MaxArticles = 5
)

// Client searches the news feed. News is supplementary: every failure
// degrades to an empty result.
type Client struct {
	feedURL   string
	userAgent string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewClient creates a news client. Empty or non-positive arguments fall
// back to the defaults above.
func NewClient(feedURL, userAgent string, timeout time.Duration) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		feedURL:   feedURL,
		userAgent: userAgent,
		timeout:   timeout,
		logger:    slog.Default().With("component", "news"),
	}
}

// FetchArticles returns at most MaxArticles summaries related to the drug
// and condition terms, in feed order. It never fails.
func (c *Client) FetchArticles(ctx context.Context, drugTerm, conditionTerm string) []ArticleSummary {
	terms := SearchTerms(drugTerm, conditionTerm)
	if len(terms) == 0 {
		return []ArticleSummary{}
	}
	if ctx.Err() != nil {
		return []ArticleSummary{}
	}

	searchURL := SearchURL(c.feedURL, terms)

	body, err := c.fetch(searchURL)
	if err != nil {
		c.logger.Warn("news fetch failed", "url", searchURL, "error", err)
		return []ArticleSummary{}
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("news feed parse failed", "url", searchURL, "error", err)
		return []ArticleSummary{}
	}

	articles := Summarize(feed, MaxArticles)
	c.logger.Info("news search completed", "terms", terms, "count", len(articles))
	return articles
}

// fetch downloads the feed body with a fresh collector per call, so repeated
// searches for the same URL are never skipped as already visited.
func (c *Client) fetch(searchURL string) ([]byte, error) {
	collector := colly.NewCollector(
		colly.UserAgent(c.userAgent),
		colly.AllowURLRevisit(),
		colly.MaxDepth(1),
	)
	collector.SetRequestTimeout(c.timeout)

	var body []byte
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	var fetchErr error
	collector.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
	})

	if err := collector.Visit(searchURL); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, fmt.Errorf("failed to visit: %w", err)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	return body, nil
}

// Summarize converts the first limit feed items into article summaries.
func Summarize(feed *gofeed.Feed, limit int) []ArticleSummary {
	articles := []ArticleSummary{}
	if feed == nil {
		return articles
	}

	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}
		if item == nil {
			continue
		}
		articles = append(articles, ArticleSummary{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
			Summary:   CleanSummary(item.Description),
		})
	}
	return articles
}
