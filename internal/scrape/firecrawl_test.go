package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comigor/mishmish-go/internal/config"
)

func newTestFirecrawl(t *testing.T, handler http.HandlerFunc) *Firecrawl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewFirecrawl(config.ScrapeConfig{
		BaseURL:   server.URL + "/",
		VerifyURL: "https://verify.example",
		Timeout:   5 * time.Second,
	})
}

func TestFirecrawlScrape_SendsCatalogOptions(t *testing.T) {
	var got scrapeRequest
	f := newTestFirecrawl(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/scrape", r.URL.Path)
		require.Equal(t, "Bearer fc-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"markdown":"# Shoes","html":"<h1>Shoes</h1>","metadata":{"title":"Shoe Shop"}}}`))
	})

	result, err := f.Scrape(context.Background(), "fc-123", "https://shop.example/shoes", DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, "https://shop.example/shoes", got.URL)
	require.Equal(t, []string{"markdown", "html"}, got.Formats)
	require.Equal(t, []string{"img", "a", "h1", "h2", "h3", "p", "span", "div"}, got.IncludeTags)
	require.Equal(t, []string{"script", "style", "nav", "footer"}, got.ExcludeTags)
	require.EqualValues(t, 3000, got.WaitFor)

	require.Equal(t, "# Shoes", result.Markdown)
	require.Equal(t, "<h1>Shoes</h1>", result.HTML)
	require.Equal(t, "Shoe Shop", result.Metadata["title"])
	require.NotEmpty(t, result.Raw)
}

func TestFirecrawlScrape_ProviderErrorStatus(t *testing.T) {
	f := newTestFirecrawl(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized: Invalid token"}`))
	})

	_, err := f.Scrape(context.Background(), "bad", "https://shop.example", DefaultOptions())
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, http.StatusUnauthorized, perr.StatusCode)
	require.Equal(t, "Unauthorized: Invalid token", perr.Message)
}

func TestFirecrawlScrape_NonJSONError(t *testing.T) {
	f := newTestFirecrawl(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	})

	_, err := f.Scrape(context.Background(), "k", "https://shop.example", DefaultOptions())
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "gateway down", perr.Message)
}

func TestFirecrawlScrape_SuccessFalse(t *testing.T) {
	f := newTestFirecrawl(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"blocked"}`))
	})

	_, err := f.Scrape(context.Background(), "k", "https://shop.example", DefaultOptions())
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "blocked", perr.Message)
}

func TestFirecrawlScrape_NoContent(t *testing.T) {
	for _, body := range []string{`{"success":true}`, `{"success":true,"data":null}`, `{"success":true,"data":{}}`} {
		f := newTestFirecrawl(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		_, err := f.Scrape(context.Background(), "k", "https://shop.example", DefaultOptions())
		require.True(t, errors.Is(err, ErrNoResponse), body)
	}
}

func TestFirecrawlVerify(t *testing.T) {
	f := newTestFirecrawl(t, func(w http.ResponseWriter, r *http.Request) {
		var req scrapeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "https://verify.example", req.URL)
		require.Empty(t, req.Formats)
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"markdown":"Example Domain"}}`))
	})

	require.True(t, f.Verify(context.Background(), "good"))
	require.False(t, f.Verify(context.Background(), "bad"))
}

func TestFirecrawlVerify_Unreachable(t *testing.T) {
	f := NewFirecrawl(config.ScrapeConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	require.False(t, f.Verify(context.Background(), "k"))
}

func TestOptionsFromConfig(t *testing.T) {
	require.Equal(t, DefaultOptions(), OptionsFromConfig(config.ScrapeConfig{}))

	opts := OptionsFromConfig(config.ScrapeConfig{
		Formats: []string{"markdown"},
		WaitFor: 500 * time.Millisecond,
	})
	require.Equal(t, []string{"markdown"}, opts.Formats)
	require.Equal(t, 500*time.Millisecond, opts.WaitFor)
	require.Equal(t, DefaultOptions().IncludeTags, opts.IncludeTags)
}
