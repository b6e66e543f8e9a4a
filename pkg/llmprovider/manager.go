package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"maatricare/pkg/apimonitor"
	"maatricare/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
type Manager struct {
	providers []Provider
	config    *Config
	monitor   *apimonitor.Monitor
	logger    log.Logger
}

// Config defines configuration for the provider Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // total attempts per provider, including the first
	RetryDelay      time.Duration // base delay, multiplied per attempt
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new provider Manager. The monitor is optional; when set,
// recent rate-limit pressure delays the next call proactively.
func NewManager(providers []Provider, config *Config, monitor *apimonitor.Monitor, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		monitor:   monitor,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	m.throttleIfNeeded(ctx)

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global timeout exceeded: %v", ErrProviderTimeout, ctx.Err())
		default:
		}

		start := time.Now()
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.record(apimonitor.StatusSuccess, time.Since(start))
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.record(classifyError(err), time.Since(start))
		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry attempts one provider with bounded retries and linear backoff.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// throttleIfNeeded pauses before the call when the monitor reports rate-limit
// pressure, without exceeding the caller's deadline.
func (m *Manager) throttleIfNeeded(ctx context.Context) {
	if m.monitor == nil || !m.monitor.ShouldThrottle() {
		return
	}

	delay := m.monitor.RecommendedDelay()
	if delay <= 0 {
		return
	}

	m.logger.Infof(ctx, "llmprovider: proactive throttling, waiting %v based on recent API usage", delay)
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}

func (m *Manager) record(status apimonitor.Status, elapsed time.Duration) {
	if m.monitor != nil {
		m.monitor.LogRequest(status, elapsed)
	}
}

// classifyError maps a provider error onto a monitor status.
func classifyError(err error) apimonitor.Status {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return apimonitor.StatusRateLimited
	case strings.Contains(msg, "context deadline exceeded") || strings.Contains(msg, "timeout"):
		return apimonitor.StatusTimeout
	default:
		return apimonitor.StatusServerError
	}
}

// logSuccess logs successful generation with metrics.
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "llmprovider: generation successful provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

// logFailure logs failed generation attempts.
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider: generation failed provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
