package wailsapp

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// probeLogger implements the retryablehttp.LeveledLogger interface,
// funneling retry noise through the shell logger at debug level.
type probeLogger struct{}

func (l *probeLogger) Error(msg string, keysAndValues ...interface{}) {
	wailsLogger.Debug().Msgf("probe: %s %v", msg, keysAndValues)
}

func (l *probeLogger) Info(msg string, keysAndValues ...interface{})  {}
func (l *probeLogger) Debug(msg string, keysAndValues ...interface{}) {}

func (l *probeLogger) Warn(msg string, keysAndValues ...interface{}) {
	wailsLogger.Debug().Msgf("probe: %s %v", msg, keysAndValues)
}

// waitForBridge probes the companion WebSocket bridge until it accepts
// connections. Any HTTP response counts as reachable; a plain WebSocket
// server answers a GET with a handshake rejection, which is still proof
// of life. The probe is advisory: callers navigate regardless.
func waitForBridge(ctx context.Context, port uint16, retries int) error {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 1 * time.Second
	client.HTTPClient.Timeout = 2 * time.Second
	client.Logger = &probeLogger{}

	url := fmt.Sprintf("http://127.0.0.1:%d/", port)
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("bridge on port %d not reachable: %w", port, err)
	}
	resp.Body.Close()
	return nil
}
