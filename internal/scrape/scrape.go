// Package scrape talks to the third-party page scraping provider.
package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comigor/mishmish-go/internal/config"
)

// ErrNoResponse is returned when the provider answers without page content.
var ErrNoResponse = errors.New("scrape: provider returned no content")

// ProviderError carries a failure reported by the provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("scrape: provider status %d", e.StatusCode)
	}
	return fmt.Sprintf("scrape: provider status %d: %s", e.StatusCode, e.Message)
}

// Options configures a single scrape request.
type Options struct {
	Formats     []string
	IncludeTags []string
	ExcludeTags []string
	WaitFor     time.Duration
}

// DefaultOptions returns the catalog page configuration: markdown and HTML,
// content tags only, no scripts/styles/navigation, 3s settle time.
func DefaultOptions() Options {
	return Options{
		Formats:     []string{"markdown", "html"},
		IncludeTags: []string{"img", "a", "h1", "h2", "h3", "p", "span", "div"},
		ExcludeTags: []string{"script", "style", "nav", "footer"},
		WaitFor:     3000 * time.Millisecond,
	}
}

// OptionsFromConfig returns the catalog request options from cfg, falling
// back to DefaultOptions for unset fields.
func OptionsFromConfig(cfg config.ScrapeConfig) Options {
	opts := DefaultOptions()
	if len(cfg.Formats) > 0 {
		opts.Formats = cfg.Formats
	}
	if len(cfg.IncludeTags) > 0 {
		opts.IncludeTags = cfg.IncludeTags
	}
	if len(cfg.ExcludeTags) > 0 {
		opts.ExcludeTags = cfg.ExcludeTags
	}
	if cfg.WaitFor > 0 {
		opts.WaitFor = cfg.WaitFor
	}
	return opts
}

// Result is the page content returned by the provider.
type Result struct {
	Markdown string          `json:"markdown"`
	HTML     string          `json:"html"`
	Metadata map[string]any  `json:"metadata,omitempty"`
	Raw      json.RawMessage `json:"-"`
}

// Empty reports whether the result carries no page content at all.
func (r *Result) Empty() bool {
	return r == nil || (r.Markdown == "" && r.HTML == "" && len(r.Metadata) == 0)
}

// Client is the scraping provider contract used by the widget.
type Client interface {
	Name() string
	// Scrape fetches url with the given options using apiKey.
	Scrape(ctx context.Context, apiKey, url string, opts Options) (*Result, error)
	// Verify checks apiKey with one live request. Any failure is false.
	Verify(ctx context.Context, apiKey string) bool
}
