package favicon

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nikbrunner/tabdeck/internal/tile"
)

// Status represents whether a favicon can be displayed.
type Status int

const (
	Loaded Status = iota // 2xx response with a body
	Failed               // error status, empty body, or connection failure
)

// Result holds the probe result for one host.
type Result struct {
	Host       string
	URL        string
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // normalized error for failed probes
}

// Options configures a Prober.
type Options struct {
	Concurrency int
	Timeout     time.Duration
	Logger      *zap.Logger
}

// Prober checks which favicons load, standing in for the browser's image
// load/failure events.
type Prober struct {
	client      *http.Client
	concurrency int
	logger      *zap.Logger
}

// NewProber creates a Prober with the given options.
func NewProber(opts Options) *Prober {
	if opts.Concurrency < 1 {
		opts.Concurrency = 8
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Prober{
		client: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		concurrency: opts.Concurrency,
		logger:      opts.Logger,
	}
}

// Probe checks the favicon of every distinct host among tiles that are
// still showing their primary icon. Results come back in first-seen order.
func (p *Prober) Probe(ctx context.Context, tiles []tile.Tile) ([]Result, error) {
	var targets []Result
	seen := make(map[string]bool)
	for _, t := range tiles {
		if t.Icon != tile.IconPrimary || t.Host == "" || seen[t.Host] {
			continue
		}
		seen[t.Host] = true
		targets = append(targets, Result{Host: t.Host, URL: t.IconURL})
	}
	if len(targets) == 0 {
		return nil, nil
	}

	results := make([]Result, len(targets))
	var mu sync.Mutex
	failed := 0

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)

	for i := range targets {
		i := i
		eg.Go(func() error {
			r := p.check(egCtx, targets[i])
			results[i] = r
			if r.Status == Failed {
				mu.Lock()
				failed++
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("favicon probe finished",
		zap.Int("hosts", len(results)),
		zap.Int("failed", failed))

	return results, nil
}

// check fetches one favicon URL.
func (p *Prober) check(ctx context.Context, target Result) Result {
	result := target
	result.Status = Failed

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		result.Error = normalizeError(err.Error())
		return result
	}

	resp, err := p.client.Do(req)
	if err != nil {
		result.Error = normalizeError(err.Error())
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		result.Error = http.StatusText(resp.StatusCode)
	case resp.ContentLength == 0:
		result.Error = "Empty image"
	default:
		result.Status = Loaded
	}
	return result
}

// FailedHosts returns the hosts whose favicon did not load.
func FailedHosts(results []Result) []string {
	var hosts []string
	for _, r := range results {
		if r.Status == Failed {
			hosts = append(hosts, r.Host)
		}
	}
	return hosts
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"),
		strings.Contains(lower, "tls:"):
		return "TLS error"
	case strings.Contains(lower, "context canceled"):
		return "Cancelled"
	default:
		return errStr
	}
}
