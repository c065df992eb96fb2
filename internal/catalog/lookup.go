// Package catalog turns a shop link found in a chat message into a catalog
// snapshot using the scraping provider.
package catalog

import (
	"context"
	"errors"

	"github.com/comigor/mishmish-go/internal/logger"
	"github.com/comigor/mishmish-go/internal/scrape"
)

// Fixed replies for the three lookup outcomes.
const (
	AnalysisReply  = "I've had a look through that catalog! 🛍️ Based on what's there, I'd pair one statement piece with soft neutral basics and repeat a single accent color in your accessories for a polished, balanced look. ✨"
	ApologyReply   = "Sorry, I couldn't open that catalog page right now. 😿 Let's keep styling anyway - tell me what look you're going for!"
	KeyPromptReply = "I'd love to analyze that catalog! 🔑 I need a Firecrawl API key first - add one and then send me the link again."
)

// Outcome classifies a lookup.
type Outcome int

const (
	OutcomeFetched Outcome = iota
	OutcomeKeyRequired
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFetched:
		return "fetched"
	case OutcomeKeyRequired:
		return "key_required"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// KeySource returns the stored provider key.
type KeySource interface {
	Get(ctx context.Context) (string, bool)
}

// Result is what a lookup produced. Snapshot is only set when Outcome is
// OutcomeFetched.
type Result struct {
	Outcome  Outcome
	Reply    string
	Snapshot *Snapshot
	Err      error
}

// Lookup scrapes catalog pages with the configured provider.
type Lookup struct {
	keys    KeySource
	scraper scrape.Client
	opts    scrape.Options
}

// NewLookup creates a Lookup using opts for every request.
func NewLookup(keys KeySource, scraper scrape.Client, opts scrape.Options) *Lookup {
	return &Lookup{keys: keys, scraper: scraper, opts: opts}
}

// Run fetches pageURL. Without a stored key no request is made.
func (l *Lookup) Run(ctx context.Context, pageURL string) Result {
	key, ok := l.keys.Get(ctx)
	if !ok {
		logger.L.Info("catalog lookup needs an api key", "url", pageURL)
		return Result{Outcome: OutcomeKeyRequired, Reply: KeyPromptReply}
	}

	res, err := l.scraper.Scrape(ctx, key, pageURL, l.opts)
	if err == nil && res.Empty() {
		err = scrape.ErrNoResponse
	}
	if err != nil {
		logger.L.Error("catalog scrape failed", "url", pageURL, "provider", l.scraper.Name(), "error", err)
		return Result{Outcome: OutcomeFailed, Reply: ApologyReply, Err: err}
	}

	logger.L.Info("catalog scrape succeeded", "url", pageURL, "provider", l.scraper.Name())
	return Result{
		Outcome:  OutcomeFetched,
		Reply:    AnalysisReply,
		Snapshot: NewSnapshot(pageURL, res, l.opts.IncludeTags),
	}
}

// IsProviderError reports whether err came from the provider itself rather
// than the network.
func IsProviderError(err error) bool {
	var perr *scrape.ProviderError
	return errors.As(err, &perr)
}
