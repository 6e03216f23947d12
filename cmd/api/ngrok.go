package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultNgrokAttempts = 10
	ngrokRetryInterval   = 3 * time.Second
)

// detectNgrokURL asks the ngrok local API for a public tunnel URL, preferring
// HTTPS. ngrok may start after us, so it polls up to attempts times.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string, attempts int) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchNgrokURL(ctx, client, ngrokAPIBase+"/api/tunnels")
		if err == nil && publicURL != "" {
			return publicURL, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("ngrok has no active tunnels")
		}

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokRetryInterval):
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", attempts, lastErr)
}

func fetchNgrokURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ngrok API response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("ngrok API returned invalid JSON")
	}

	tunnels := gjson.GetBytes(body, "tunnels")
	if https := tunnels.Get(`#(proto=="https").public_url`); https.Exists() {
		return https.String(), nil
	}
	return tunnels.Get("0.public_url").String(), nil
}
