package main

import (
	"fmt"

	"github.com/comigor/mishmish-go/internal/catalog"
	"github.com/comigor/mishmish-go/internal/config"
	"github.com/comigor/mishmish-go/internal/keys"
	"github.com/comigor/mishmish-go/internal/matcher"
	"github.com/comigor/mishmish-go/internal/scrape"
	"github.com/comigor/mishmish-go/internal/storage"
	"github.com/comigor/mishmish-go/internal/widget"
)

type app struct {
	store  *storage.KV
	keys   *keys.Manager
	widget *widget.Widget
}

func newApp(cfg *config.Config) (*app, error) {
	if cfg.Scrape.Provider != "" && cfg.Scrape.Provider != "firecrawl" {
		return nil, fmt.Errorf("unsupported scrape provider %q", cfg.Scrape.Provider)
	}

	store := storage.Open(cfg.Storage.Path)
	scraper := scrape.NewFirecrawl(cfg.Scrape)

	km, err := keys.NewManager(store, scraper, cfg.Keys.Secret)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("key manager: %w", err)
	}

	lookup := catalog.NewLookup(km, scraper, scrape.OptionsFromConfig(cfg.Scrape))
	m := matcher.New(matcher.WithContextWindow(cfg.Chat.ContextWindow))

	return &app{
		store:  store,
		keys:   km,
		widget: widget.New(m, lookup, km, cfg.Chat),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
