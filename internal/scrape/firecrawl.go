package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/comigor/mishmish-go/internal/config"
	"github.com/comigor/mishmish-go/internal/logger"
)

const maxResponseBytes = 16 << 20

// Firecrawl is a Client for the Firecrawl v1 scrape API.
type Firecrawl struct {
	baseURL   string
	verifyURL string
	client    *http.Client
}

// NewFirecrawl creates a Firecrawl client from the scrape configuration.
func NewFirecrawl(cfg config.ScrapeConfig) *Firecrawl {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = "https://example.com"
	}
	return &Firecrawl{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// Name returns the provider name
func (f *Firecrawl) Name() string { return "firecrawl" }

type scrapeRequest struct {
	URL         string   `json:"url"`
	Formats     []string `json:"formats,omitempty"`
	IncludeTags []string `json:"includeTags,omitempty"`
	ExcludeTags []string `json:"excludeTags,omitempty"`
	WaitFor     int64    `json:"waitFor,omitempty"`
}

type scrapeResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Scrape posts a scrape request and decodes the page content.
func (f *Firecrawl) Scrape(ctx context.Context, apiKey, url string, opts Options) (*Result, error) {
	body, err := json.Marshal(scrapeRequest{
		URL:         url,
		Formats:     opts.Formats,
		IncludeTags: opts.IncludeTags,
		ExcludeTags: opts.ExcludeTags,
		WaitFor:     opts.WaitFor.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new scrape request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.L.Debug("scrape request", "provider", f.Name(), "url", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read scrape response: %w", err)
	}

	var decoded scrapeResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := decoded.Error
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode scrape response: %w", decodeErr)
	}
	if !decoded.Success {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: decoded.Error}
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return nil, ErrNoResponse
	}

	var result Result
	if err := json.Unmarshal(decoded.Data, &result); err != nil {
		return nil, fmt.Errorf("decode scrape data: %w", err)
	}
	if result.Empty() {
		return nil, ErrNoResponse
	}
	result.Raw = decoded.Data
	return &result, nil
}

// Verify scrapes a known page with apiKey; any error means the key is unusable.
func (f *Firecrawl) Verify(ctx context.Context, apiKey string) bool {
	result, err := f.Scrape(ctx, apiKey, f.verifyURL, Options{})
	if err != nil {
		logger.L.Warn("api key verification failed", "provider", f.Name(), "error", err)
		return false
	}
	return !result.Empty()
}
