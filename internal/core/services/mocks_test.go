package services

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// mockProvider is a scripted translation provider that counts external
// calls so cache behavior can be asserted.
type mockProvider struct {
	mu             sync.Mutex
	detectLang     string
	translations   map[string]string
	err            error
	detectCalls    int
	translateCalls int
}

func newMockProvider(detectLang string) *mockProvider {
	return &mockProvider{
		detectLang:   detectLang,
		translations: make(map[string]string),
	}
}

func (m *mockProvider) Detect(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detectCalls++
	if m.err != nil {
		return "", m.err
	}
	return m.detectLang, nil
}

func (m *mockProvider) Translate(_ context.Context, text, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.translateCalls++
	if m.err != nil {
		return "", m.err
	}
	if out, ok := m.translations[text]; ok {
		return out, nil
	}
	return strings.ToUpper(text), nil
}

func (m *mockProvider) calls() (detect, translate int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detectCalls, m.translateCalls
}

// mockLoader serves a fixed corpus and annotation set.
type mockLoader struct {
	docs        []string
	annotations map[string][]int
	loadErr     error
	loadCalls   int
}

func (m *mockLoader) Load(_ context.Context) ([]string, error) {
	m.loadCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.docs, nil
}

func (m *mockLoader) Annotations(_ context.Context) (map[string][]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.annotations, nil
}

var errProviderDown = errors.New("provider unreachable")
