package apimonitor

import (
	"sync"
	"time"
)

// Status classifies the outcome of one upstream API request.
type Status string

const (
	StatusSuccess     Status = "success"
	StatusRateLimited Status = "rate_limit"
	StatusServerError Status = "server_error"
	StatusTimeout     Status = "timeout"
)

// Monitor tracks upstream API usage over a sliding window and recommends
// proactive throttling when recent failures suggest pressure on the provider.
type Monitor struct {
	mu     sync.Mutex
	window time.Duration
	log    []entry

	// Lifetime counters.
	totalRequests  int
	successCount   int
	rateLimitCount int
	serverErrCount int
	timeoutCount   int
}

type entry struct {
	at           time.Time
	status       Status
	responseTime time.Duration
}

// Stats is a snapshot of recent usage.
type Stats struct {
	WindowRequests   int
	WindowRateLimits int
	TotalRequests    int
	SuccessRate      float64
	AvgResponseTime  time.Duration
}

// New creates a Monitor with the given sliding window.
func New(window time.Duration) *Monitor {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Monitor{window: window}
}

// LogRequest records the outcome of one request.
func (m *Monitor) LogRequest(status Status, responseTime time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prune(time.Now())
	m.log = append(m.log, entry{at: time.Now(), status: status, responseTime: responseTime})
	m.totalRequests++

	switch status {
	case StatusSuccess:
		m.successCount++
	case StatusRateLimited:
		m.rateLimitCount++
	case StatusServerError:
		m.serverErrCount++
	case StatusTimeout:
		m.timeoutCount++
	}
}

// CurrentStats returns a snapshot of the current window plus lifetime counters.
func (m *Monitor) CurrentStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prune(time.Now())

	s := Stats{
		WindowRequests: len(m.log),
		TotalRequests:  m.totalRequests,
	}

	var totalRT time.Duration
	var rtCount int
	for _, e := range m.log {
		if e.status == StatusRateLimited {
			s.WindowRateLimits++
		}
		if e.responseTime > 0 {
			totalRT += e.responseTime
			rtCount++
		}
	}
	if rtCount > 0 {
		s.AvgResponseTime = totalRT / time.Duration(rtCount)
	}
	if m.totalRequests > 0 {
		s.SuccessRate = float64(m.successCount) / float64(m.totalRequests)
	}

	return s
}

// ShouldThrottle reports whether recent rate-limit responses warrant slowing down
// before the next request.
func (m *Monitor) ShouldThrottle() bool {
	stats := m.CurrentStats()
	return stats.WindowRateLimits >= 2
}

// RecommendedDelay returns a pause proportional to recent rate-limit pressure,
// capped at 10 seconds.
func (m *Monitor) RecommendedDelay() time.Duration {
	stats := m.CurrentStats()
	if stats.WindowRateLimits == 0 {
		return 0
	}

	delay := time.Duration(stats.WindowRateLimits) * 2 * time.Second
	if delay > 10*time.Second {
		delay = 10 * time.Second
	}
	return delay
}

// prune drops entries older than the window. Caller must hold the lock.
func (m *Monitor) prune(now time.Time) {
	cutoff := now.Add(-m.window)
	firstLive := 0
	for firstLive < len(m.log) && m.log[firstLive].at.Before(cutoff) {
		firstLive++
	}
	if firstLive > 0 {
		m.log = append([]entry(nil), m.log[firstLive:]...)
	}
}
