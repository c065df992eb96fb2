package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comigor/mishmish-go/internal/scrape"
)

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Name() string { return "mock" }

func (m *mockScraper) Scrape(ctx context.Context, apiKey, url string, opts scrape.Options) (*scrape.Result, error) {
	args := m.Called(ctx, apiKey, url, opts)
	var res *scrape.Result
	if v := args.Get(0); v != nil {
		res = v.(*scrape.Result)
	}
	return res, args.Error(1)
}

func (m *mockScraper) Verify(ctx context.Context, apiKey string) bool {
	return m.Called(ctx, apiKey).Bool(0)
}

type staticKeys struct {
	key string
}

func (s staticKeys) Get(context.Context) (string, bool) { return s.key, s.key != "" }

func TestLookup_NoKeyMakesNoRequest(t *testing.T) {
	scraper := &mockScraper{}
	l := NewLookup(staticKeys{}, scraper, scrape.DefaultOptions())

	res := l.Run(context.Background(), "https://shop.example")
	require.Equal(t, OutcomeKeyRequired, res.Outcome)
	require.Equal(t, KeyPromptReply, res.Reply)
	require.Nil(t, res.Snapshot)
	scraper.AssertNotCalled(t, "Scrape", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLookup_Success(t *testing.T) {
	scraper := &mockScraper{}
	opts := scrape.DefaultOptions()
	scraper.On("Scrape", mock.Anything, "fc-key", "https://shop.example", opts).
		Return(&scrape.Result{Markdown: "# Shop"}, nil).Once()
	l := NewLookup(staticKeys{key: "fc-key"}, scraper, opts)

	res := l.Run(context.Background(), "https://shop.example")
	require.Equal(t, OutcomeFetched, res.Outcome)
	require.Equal(t, AnalysisReply, res.Reply)
	require.NotNil(t, res.Snapshot)
	require.Equal(t, "# Shop", res.Snapshot.Markdown)
	require.NoError(t, res.Err)
	scraper.AssertExpectations(t)
}

func TestLookup_Failure(t *testing.T) {
	cases := map[string]struct {
		res *scrape.Result
		err error
	}{
		"provider error": {nil, &scrape.ProviderError{StatusCode: 500, Message: "down"}},
		"network error":  {nil, errors.New("dial tcp: refused")},
		"empty result":   {&scrape.Result{}, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			scraper := &mockScraper{}
			scraper.On("Scrape", mock.Anything, "k", "https://shop.example", mock.Anything).Return(tc.res, tc.err).Once()
			l := NewLookup(staticKeys{key: "k"}, scraper, scrape.DefaultOptions())

			res := l.Run(context.Background(), "https://shop.example")
			require.Equal(t, OutcomeFailed, res.Outcome)
			require.Equal(t, ApologyReply, res.Reply)
			require.Nil(t, res.Snapshot)
			require.Error(t, res.Err)
		})
	}
}

func TestIsProviderError(t *testing.T) {
	require.True(t, IsProviderError(&scrape.ProviderError{StatusCode: 401}))
	require.False(t, IsProviderError(errors.New("timeout")))
	require.False(t, IsProviderError(scrape.ErrNoResponse))
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "fetched", OutcomeFetched.String())
	require.Equal(t, "key_required", OutcomeKeyRequired.String())
	require.Equal(t, "failed", OutcomeFailed.String())
}
