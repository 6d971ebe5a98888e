package mapsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type LoadState int

const (
	StateLoading LoadState = iota
	StatePresent
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StatePresent:
		return "present"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

type LoaderConfig struct {
	Name       string
	URL        string
	Retries    int
	RetryDelay time.Duration
	// RecheckAfter re-probes a failed SDK after this delay. Zero disables it.
	RecheckAfter time.Duration
}

// Loader probes a provider's SDK script URL and exposes the outcome as the
// presence and load-failed signals.
type Loader struct {
	cfg        LoaderConfig
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.RWMutex
	state LoadState
}

func NewLoader(cfg LoaderConfig, httpClient *http.Client, logger *zap.Logger) *Loader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Loader{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.Named("sdk").With(zap.String("provider", cfg.Name)),
	}
}

func (l *Loader) Present() bool {
	return l.State() == StatePresent
}

func (l *Loader) Failed() bool {
	return l.State() == StateFailed
}

func (l *Loader) State() LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Loader) setState(s LoadState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// Run loads the SDK and, when configured, re-probes after failures until ctx
// is cancelled.
func (l *Loader) Run(ctx context.Context) {
	for {
		l.Load(ctx)
		if l.State() != StateFailed || l.cfg.RecheckAfter <= 0 {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.cfg.RecheckAfter):
		}
	}
}

// Load performs one load attempt with the configured retry budget.
func (l *Loader) Load(ctx context.Context) LoadState {
	l.setState(StateLoading)

	for attempt := 0; ; attempt++ {
		permanent, err := l.probe(ctx)
		if err == nil {
			l.logger.Info("sdk loaded")
			l.setState(StatePresent)
			return StatePresent
		}

		if permanent || attempt >= l.cfg.Retries || ctx.Err() != nil {
			l.logger.Warn("sdk load failed", zap.Int("attempts", attempt+1), zap.Error(err))
			l.setState(StateFailed)
			return StateFailed
		}

		l.logger.Debug("sdk probe failed, retrying", zap.Int("attempt", attempt+1), zap.Error(err))
		select {
		case <-ctx.Done():
			l.setState(StateFailed)
			return StateFailed
		case <-time.After(l.cfg.RetryDelay):
		}
	}
}

// probe fetches the script once. permanent is true for client errors, which
// retrying will not fix.
func (l *Loader) probe(ctx context.Context) (permanent bool, err error) {
	if l.cfg.URL == "" {
		return true, fmt.Errorf("no sdk url configured for %s", l.cfg.Name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return true, fmt.Errorf("building sdk request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetching sdk: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		return false, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return true, fmt.Errorf("HTTP %d from sdk url", resp.StatusCode)
	default:
		return false, fmt.Errorf("HTTP %d from sdk url", resp.StatusCode)
	}
}

// StaticSignal is a fixed presence signal for providers that skip probing.
type StaticSignal struct {
	present bool
	failed  bool
}

func Available() StaticSignal {
	return StaticSignal{present: true}
}

func Unavailable() StaticSignal {
	return StaticSignal{failed: true}
}

func (s StaticSignal) Present() bool { return s.present }
func (s StaticSignal) Failed() bool  { return s.failed }
