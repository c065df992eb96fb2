// Package keys stores and verifies the scraping provider API key.
//
// There is at most one key. Saving overwrites it; it never expires.
package keys

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/comigor/mishmish-go/internal/logger"
)

// StorageName is the fixed name the key is stored under.
const StorageName = "firecrawl_api_key"

var (
	ErrEmptyKey    = errors.New("api key is empty")
	ErrReservedKey = errors.New("api key must not start with \"" + encPrefix + "\"")
	ErrNotFound    = errors.New("api key not found")
)

// Store is the persistence used by the Manager.
type Store interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Put(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// Verifier checks a key against the provider.
type Verifier interface {
	Verify(ctx context.Context, apiKey string) bool
}

// Manager saves, reads, verifies and clears the API key.
type Manager struct {
	store    Store
	verifier Verifier
	secret   []byte
}

// NewManager builds a Manager. A non-empty secret enables encryption at
// rest; it must be 32 bytes raw or base64-encoded.
func NewManager(store Store, verifier Verifier, secret string) (*Manager, error) {
	m := &Manager{store: store, verifier: verifier}
	if secret != "" {
		parsed, err := ParseSecret(secret)
		if err != nil {
			return nil, err
		}
		m.secret = parsed
	}
	return m, nil
}

// Validate checks that key can be stored. Values carrying the ciphertext
// prefix are refused so they are never mistaken for an encrypted key.
func Validate(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	if strings.HasPrefix(key, encPrefix) {
		return ErrReservedKey
	}
	return nil
}

// Save persists key, replacing any previous value.
func (m *Manager) Save(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if err := Validate(key); err != nil {
		return err
	}
	value := key
	if m.secret != nil {
		enc, err := encrypt(m.secret, key)
		if err != nil {
			return fmt.Errorf("encrypt api key: %w", err)
		}
		value = enc
	}
	if err := m.store.Put(ctx, StorageName, value); err != nil {
		return fmt.Errorf("store api key: %w", err)
	}
	logger.L.Info("api key saved", "encrypted", m.secret != nil)
	return nil
}

// Get returns the stored key. A value that cannot be read back is logged and
// treated as absent.
func (m *Manager) Get(ctx context.Context) (string, bool) {
	key, err := m.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.L.Warn("failed to read api key", "error", err)
		}
		return "", false
	}
	return key, true
}

// Load is Get with the failure reason.
func (m *Manager) Load(ctx context.Context) (string, error) {
	value, ok, err := m.store.Get(ctx, StorageName)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}
	if !ok || value == "" {
		return "", ErrNotFound
	}
	if !strings.HasPrefix(value, encPrefix) {
		return value, nil
	}
	if m.secret == nil {
		return "", errors.New("api key is encrypted but no secret is configured")
	}
	plain, err := decrypt(m.secret, strings.TrimPrefix(value, encPrefix))
	if err != nil {
		return "", fmt.Errorf("decrypt api key: %w", err)
	}
	return plain, nil
}

// Clear removes the stored key.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, StorageName); err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	logger.L.Info("api key cleared")
	return nil
}

// Verify runs one live provider round trip with key.
func (m *Manager) Verify(ctx context.Context, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || m.verifier == nil {
		return false
	}
	return m.verifier.Verify(ctx, key)
}

// Hint returns the last four characters of the stored key, if any.
func (m *Manager) Hint(ctx context.Context) string {
	key, ok := m.Get(ctx)
	if !ok || len(key) < 4 {
		return ""
	}
	return key[len(key)-4:]
}
