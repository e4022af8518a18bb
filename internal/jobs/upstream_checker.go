package jobs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// StatusSink receives reachability results. *metrics.Recorder satisfies it.
type StatusSink interface {
	SetUpstreamUp(host string, up bool)
}

// UpstreamChecker periodically checks that the dictionary API and media hosts
// answer HTTP requests.
type UpstreamChecker struct {
	targets  []string
	interval time.Duration
	sink     StatusSink
	client   *http.Client

	mu      sync.RWMutex
	healthy map[string]bool
	checked bool
}

// NewUpstreamChecker creates a checker for the hosts of the given URLs.
func NewUpstreamChecker(targets []string, interval time.Duration, sink StatusSink) *UpstreamChecker {
	return &UpstreamChecker{
		targets:  targets,
		interval: interval,
		sink:     sink,
		healthy:  make(map[string]bool, len(targets)),
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start begins the background check loop. It returns when ctx is done.
func (u *UpstreamChecker) Start(ctx context.Context) {
	slog.Info("upstream checker started", "interval", u.interval, "targets", len(u.targets))

	// Run immediately on start
	u.CheckAll(ctx)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("upstream checker stopped")
			return
		case <-ticker.C:
			u.CheckAll(ctx)
		}
	}
}

// CheckAll checks every target once.
func (u *UpstreamChecker) CheckAll(ctx context.Context) {
	for _, target := range u.targets {
		// Check context before each target
		select {
		case <-ctx.Done():
			return
		default:
		}

		host := hostOf(target)
		up := u.checkURL(ctx, target)
		if !up {
			slog.Warn("upstream unreachable", "host", host)
		}

		u.mu.Lock()
		u.healthy[host] = up
		u.checked = true
		u.mu.Unlock()

		if u.sink != nil {
			u.sink.SetUpstreamUp(host, up)
		}
	}
}

// Healthy reports whether every host passed its last check. Before the first
// check completes it reports true so startup is not blocked on the network.
func (u *UpstreamChecker) Healthy() bool {
	if u == nil {
		return true
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	if !u.checked {
		return true
	}
	for _, up := range u.healthy {
		if !up {
			return false
		}
	}
	return true
}

// checkURL performs a HEAD request against the target's origin.
// Any HTTP response means the host is reachable.
func (u *UpstreamChecker) checkURL(ctx context.Context, target string) bool {
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		return false
	}
	origin := parsed.Scheme + "://" + parsed.Host + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, origin, nil)
	if err != nil {
		return false
	}

	req.Header.Set("User-Agent", "wordlookup-UpstreamChecker/1.0")

	resp, err := u.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return true
}

func hostOf(target string) string {
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		return target
	}
	return parsed.Host
}
