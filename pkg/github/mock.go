package github

import (
	"context"
	"sync/atomic"
)

// MockFetcher implements Fetcher for testing and for the -use-mocks
// flag. It returns a fixed payload or error and counts calls.
type MockFetcher struct {
	profile   string
	err       error
	callCount atomic.Int64
}

// MockFetcherOption configures a MockFetcher.
type MockFetcherOption func(*MockFetcher)

// WithProfile sets the payload returned by FetchProfile.
func WithProfile(profile string) MockFetcherOption {
	return func(m *MockFetcher) { m.profile = profile }
}

// WithError sets the error returned by FetchProfile.
func WithError(err error) MockFetcherOption {
	return func(m *MockFetcher) { m.err = err }
}

// NewMockFetcher creates a mock fetcher. Without options it returns a
// small canned profile payload.
func NewMockFetcher(opts ...MockFetcherOption) *MockFetcher {
	m := &MockFetcher{
		profile: `{"login":"mock-user","name":"Mock User","public_repos":12}`,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FetchProfile returns the configured payload and error, incrementing
// the call counter.
func (m *MockFetcher) FetchProfile(_ context.Context, _ string) (string, error) {
	m.callCount.Add(1)
	if m.err != nil {
		return "", m.err
	}
	return m.profile, nil
}

// CallCount returns how many times FetchProfile has been called.
func (m *MockFetcher) CallCount() int64 {
	return m.callCount.Load()
}
