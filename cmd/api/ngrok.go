package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokMaxAttempts   = 10
	ngrokRetryInterval = 3 * time.Second
)

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns a public tunnel URL,
// preferring HTTPS. Retries while ngrok is still starting up.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	endpoint := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryInterval):
			}
		}

		url, err := fetchTunnelURL(ctx, client, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		return url, nil
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokMaxAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Tunnels []ngrokTunnel `json:"tunnels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode ngrok API response: %w", err)
	}

	for _, t := range payload.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(payload.Tunnels) > 0 {
		return payload.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
