package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"maatricare/pkg/apimonitor"
	"maatricare/pkg/llmprovider"
)

// fakeProvider is a function-field mock for the Provider interface.
type fakeProvider struct {
	name     string
	generate func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return f.generate(ctx, req)
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return "test-model" }

type nopLogger struct{}

func (nopLogger) Debug(_ context.Context, _ ...interface{})            {}
func (nopLogger) Debugf(_ context.Context, _ string, _ ...interface{}) {}
func (nopLogger) Info(_ context.Context, _ ...interface{})             {}
func (nopLogger) Infof(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Warn(_ context.Context, _ ...interface{})             {}
func (nopLogger) Warnf(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Error(_ context.Context, _ ...interface{})            {}
func (nopLogger) Errorf(_ context.Context, _ string, _ ...interface{}) {}

func okResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Text: text},
		Usage:   &llmprovider.Usage{InputTokens: 1, OutputTokens: 1, TotalTokens: 2},
	}
}

func TestManagerGenerateContent(t *testing.T) {
	req := &llmprovider.Request{Messages: []llmprovider.Message{{Role: "user", Text: "hello"}}}

	t.Run("No Providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, &llmprovider.Config{}, nil, nopLogger{})
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			return okResponse("hi"), nil
		}}
		secondary := &fakeProvider{name: "secondary", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			t.Error("secondary should not be called when primary succeeds")
			return nil, errors.New("unreachable")
		}}

		m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1}, nil, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text != "hi" {
			t.Errorf("unexpected response text %q", resp.Content.Text)
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, errors.New("boom")
		}}
		secondary := &fakeProvider{name: "secondary", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			return okResponse("fallback"), nil
		}}

		m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1}, nil, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text != "fallback" {
			t.Errorf("expected fallback response, got %q", resp.Content.Text)
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		calls := 0
		primary := &fakeProvider{name: "primary", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, errors.New("boom")
		}}
		secondary := &fakeProvider{name: "secondary", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			calls++
			return okResponse("nope"), nil
		}}

		m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1}, nil, nopLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if calls != 0 {
			t.Errorf("secondary provider should not have been called, got %d calls", calls)
		}
	})

	t.Run("Retry Then Succeed", func(t *testing.T) {
		attempts := 0
		provider := &fakeProvider{name: "flaky", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("transient")
			}
			return okResponse("recovered"), nil
		}}

		m := llmprovider.NewManager([]llmprovider.Provider{provider},
			&llmprovider.Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, nil, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempts != 2 {
			t.Errorf("expected 2 attempts, got %d", attempts)
		}
		if resp.Content.Text != "recovered" {
			t.Errorf("unexpected response %q", resp.Content.Text)
		}
	})

	t.Run("Global Timeout", func(t *testing.T) {
		slow := &fakeProvider{name: "slow", generate: func(ctx context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			select {
			case <-time.After(time.Second):
				return okResponse("too late"), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}}

		m := llmprovider.NewManager([]llmprovider.Provider{slow},
			&llmprovider.Config{RetryAttempts: 1, MaxTotalTimeout: 20 * time.Millisecond}, nil, nopLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatal("expected timeout error")
		}
	})

	t.Run("Monitor Records Outcomes", func(t *testing.T) {
		monitor := apimonitor.New(time.Minute)
		provider := &fakeProvider{name: "ok", generate: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			return okResponse("done"), nil
		}}

		m := llmprovider.NewManager([]llmprovider.Provider{provider},
			&llmprovider.Config{RetryAttempts: 1}, monitor, nopLogger{})

		if _, err := m.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats := monitor.CurrentStats(); stats.TotalRequests != 1 {
			t.Errorf("expected monitor to record 1 request, got %d", stats.TotalRequests)
		}
	})
}
