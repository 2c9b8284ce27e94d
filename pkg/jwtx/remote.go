package jwtx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RemoteKeySet keeps a KeySet in sync with a JWKS URL. Refresh is called
// once at startup; Start then re-fetches on Interval until Stop.
type RemoteKeySet struct {
	URL      string
	Client   *http.Client
	Interval time.Duration
	Keys     *KeySet
	Logger   *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// Refresh fetches the JWKS once and swaps it into Keys.
func (r *RemoteKeySet) Refresh(ctx context.Context) error {
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return fmt.Errorf("jwtx: build jwks request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("jwtx: decode jwks: %w", err)
	}
	if len(set.Keys) == 0 {
		return fmt.Errorf("jwtx: jwks at %s has no keys", r.URL)
	}
	return r.Keys.ResetFromJWKS(set)
}

// Start begins periodic refreshes in the background. Failures are logged
// and the previous keys stay in use.
func (r *RemoteKeySet) Start() {
	if r.Interval <= 0 {
		return
	}
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})

	go func() {
		defer close(r.doneCh)

		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := r.Refresh(ctx); err != nil {
					r.logger().Warn("jwks refresh failed", "url", r.URL, "err", err)
				}
				cancel()
			case <-r.stopCh:
				return
			}
		}
	}()
}

// Stop ends the refresh loop and waits for it to exit.
func (r *RemoteKeySet) Stop() {
	if r.stopCh == nil {
		return
	}
	close(r.stopCh)
	<-r.doneCh
	r.stopCh = nil
}

func (r *RemoteKeySet) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
