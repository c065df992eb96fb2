// Package matcher picks a canned style answer for a chat message.
//
// Rules are ordered slices and the first match wins, so overlapping keywords
// always resolve to the rule listed first. Nothing here is stored in a map.
package matcher

import (
	"math/rand/v2"
	"strings"
	"sync"
	"unicode"

	"github.com/comigor/mishmish-go/internal/transcript"
)

// Rule pairs a keyword predicate with a fixed reply.
type Rule struct {
	Name     string
	Keywords []string
	// Words restricts matching to whole words, for short keywords that
	// would otherwise hit inside longer ones ("red" in "colored").
	Words bool
	Reply string
}

// Matches reports whether the lower-cased input triggers the rule.
func (r Rule) Matches(lower string) bool {
	if r.Words {
		return containsWord(lower, r.Keywords)
	}
	return containsAny(lower, r.Keywords)
}

// Rand is the source used to pick a default response.
type Rand interface {
	IntN(n int) int
}

// Matcher evaluates the color bucket, then the style bucket, then the room
// context of recent messages, then falls back to a random default.
type Matcher struct {
	colorRules    []Rule
	styleRules    []Rule
	roomRules     []Rule
	defaults      []string
	contextWindow int

	mu  sync.Mutex
	rnd Rand
}

// Option customises a Matcher.
type Option func(*Matcher)

// WithRand injects the random source used for default responses.
func WithRand(r Rand) Option {
	return func(m *Matcher) { m.rnd = r }
}

// WithContextWindow sets how many prior messages the room rules inspect.
func WithContextWindow(n int) Option {
	return func(m *Matcher) { m.contextWindow = n }
}

// New returns a Matcher with the built-in rule tables.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		colorRules:    colorRules,
		styleRules:    styleRules,
		roomRules:     roomRules,
		defaults:      DefaultResponses,
		contextWindow: 4,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m
}

// ContextWindow is how many prior messages Respond looks at for room context.
func (m *Matcher) ContextWindow() int { return m.contextWindow }

// Respond returns the reply for input. history holds the messages that came
// before input, oldest first.
func (m *Matcher) Respond(input string, history []transcript.Message) string {
	lower := strings.ToLower(input)

	if reply, ok := m.matchColor(lower); ok {
		return reply
	}
	if reply, ok := firstMatch(m.styleRules, lower); ok {
		return reply
	}
	if reply, ok := m.matchContext(lower, history); ok {
		return reply
	}
	return m.pickDefault()
}

func (m *Matcher) matchColor(lower string) (string, bool) {
	if !containsAny(lower, colorGate) {
		return "", false
	}
	return firstMatch(m.colorRules, lower)
}

// matchContext looks for a room name in the input and then in the most
// recent prior messages, newest first.
func (m *Matcher) matchContext(lower string, history []transcript.Message) (string, bool) {
	if reply, ok := firstMatch(m.roomRules, lower); ok {
		return reply, true
	}
	start := len(history) - m.contextWindow
	if start < 0 {
		start = 0
	}
	for i := len(history) - 1; i >= start; i-- {
		if reply, ok := firstMatch(m.roomRules, strings.ToLower(history[i].Text)); ok {
			return reply, true
		}
	}
	return "", false
}

func (m *Matcher) pickDefault() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaults[m.rnd.IntN(len(m.defaults))]
}

func firstMatch(rules []Rule, lower string) (string, bool) {
	for _, r := range rules {
		if r.Matches(lower) {
			return r.Reply, true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsWord(s string, words []string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
