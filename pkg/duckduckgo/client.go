// Package duckduckgo queries the DuckDuckGo Instant Answer API.
package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint = "https://api.duckduckgo.com/"
	userAgent       = "Mozilla/5.0 (compatible; conversational-assistant/1.0)"
	maxTitleLen     = 100
	maxBodyBytes    = 2 << 20
)

// Result is one instant-answer entry.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Client is a DuckDuckGo Instant Answer client.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a client. An empty endpoint uses DefaultEndpoint.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search returns at most limit results: the abstract first, then related topics.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("duckduckgo api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("duckduckgo: invalid JSON response")
	}

	return parse(body, limit), nil
}

func parse(body []byte, limit int) []Result {
	doc := gjson.ParseBytes(body)
	results := make([]Result, 0, limit)

	if abstract := doc.Get("AbstractText").String(); abstract != "" && limit > 0 {
		results = append(results, Result{
			Title:   doc.Get("Heading").String(),
			URL:     doc.Get("AbstractURL").String(),
			Snippet: abstract,
		})
	}

	add := func(topic gjson.Result) bool {
		if len(results) >= limit {
			return false
		}
		text, link := topic.Get("Text").String(), topic.Get("FirstURL").String()
		if text != "" && link != "" {
			results = append(results, Result{Title: truncate(text, maxTitleLen), URL: link, Snippet: text})
		}
		return true
	}

	// Related topics are either entries or named groups of entries.
	doc.Get("RelatedTopics").ForEach(func(_, topic gjson.Result) bool {
		if group := topic.Get("Topics"); group.Exists() {
			cont := true
			group.ForEach(func(_, t gjson.Result) bool {
				cont = add(t)
				return cont
			})
			return cont
		}
		return add(topic)
	})

	return results
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
