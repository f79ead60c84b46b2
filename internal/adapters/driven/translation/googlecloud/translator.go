// Package googlecloud provides a translation provider adapter using the
// Google Cloud Translation v2 REST API.
package googlecloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.TranslationProvider = (*Provider)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://translation.googleapis.com/language/translate/v2"
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit caps outbound calls per second. The v2 API allows
	// far more, but retrieval queries never need bursts.
	DefaultRateLimit = 10
)

// Config holds configuration for the translation provider.
type Config struct {
	// APIKey is the Cloud Translation API key (required).
	APIKey string

	// BaseURL is the API base URL (default: the public v2 endpoint).
	// Can be changed for testing or proxying.
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RateLimit caps requests per second (default: 10).
	RateLimit float64
}

// Provider translates text through the Cloud Translation API.
type Provider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// translateResponse is the API response format for translate calls.
type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
		} `json:"translations"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

// detectResponse is the API response format for detect calls.
type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
		} `json:"detections"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewProvider creates a new Cloud Translation provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("googlecloud: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}

	return &Provider{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}, nil
}

// Detect identifies the language of the given text.
func (p *Provider) Detect(ctx context.Context, text string) (string, error) {
	body, err := p.post(ctx, "/detect", map[string]any{"q": text})
	if err != nil {
		return "", err
	}

	var detectResp detectResponse
	if err := json.Unmarshal(body, &detectResp); err != nil {
		return "", fmt.Errorf("googlecloud: decode detect response: %w", domain.ErrTranslationUnavailable)
	}
	if detectResp.Error != nil {
		return "", fmt.Errorf("googlecloud: %s: %w", detectResp.Error.Message, domain.ErrTranslationUnavailable)
	}
	if len(detectResp.Data.Detections) == 0 || len(detectResp.Data.Detections[0]) == 0 {
		return "", fmt.Errorf("googlecloud: no detection returned: %w", domain.ErrTranslationUnavailable)
	}

	return detectResp.Data.Detections[0][0].Language, nil
}

// Translate converts text from source to target language. source may be
// empty to let the API detect it.
func (p *Provider) Translate(ctx context.Context, text, source, target string) (string, error) {
	payload := map[string]any{
		"q":      text,
		"target": target,
		"format": "text",
	}
	if source != "" && source != domain.LangAuto {
		payload["source"] = source
	}

	body, err := p.post(ctx, "", payload)
	if err != nil {
		return "", err
	}

	var translateResp translateResponse
	if err := json.Unmarshal(body, &translateResp); err != nil {
		return "", fmt.Errorf("googlecloud: decode translate response: %w", domain.ErrTranslationUnavailable)
	}
	if translateResp.Error != nil {
		return "", fmt.Errorf("googlecloud: %s: %w", translateResp.Error.Message, domain.ErrTranslationUnavailable)
	}
	if len(translateResp.Data.Translations) == 0 {
		return "", fmt.Errorf("googlecloud: no translation returned: %w", domain.ErrTranslationUnavailable)
	}

	return translateResp.Data.Translations[0].TranslatedText, nil
}

// post sends one rate-limited API call and returns the raw body. Every
// transport failure wraps domain.ErrTranslationUnavailable so callers can
// treat the provider as offline.
func (p *Provider) post(ctx context.Context, path string, payload map[string]any) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("googlecloud: rate limiter: %w", err)
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("googlecloud: marshal request: %w", err)
	}

	endpoint := p.baseURL + path + "?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("googlecloud: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("googlecloud: send request: %v: %w", err, domain.ErrTranslationUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("googlecloud: read response: %v: %w", err, domain.ErrTranslationUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlecloud: API returned status %d: %s: %w",
			resp.StatusCode, string(body), domain.ErrTranslationUnavailable)
	}

	return body, nil
}
