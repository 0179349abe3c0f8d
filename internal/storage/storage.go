// Package storage provides the key-value persistence primitive behind the
// cart and the order ledger. Every key holds one whole JSON document; there
// are no partial updates and no transactions.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a key-value store of opaque byte values.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into dest.
// It reports false without error when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode value for key %s: %w", key, err)
	}

	return true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// prefixStore namespaces every key with a fixed prefix.
type prefixStore struct {
	next   Store
	prefix string
}

// WithPrefix returns a Store that prepends prefix to every key before
// delegating to next.
func WithPrefix(next Store, prefix string) Store {
	if prefix == "" {
		return next
	}
	return &prefixStore{next: next, prefix: prefix}
}

func (s *prefixStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *prefixStore) Set(ctx context.Context, key string, value []byte) error {
	return s.next.Set(ctx, s.prefix+key, value)
}

func (s *prefixStore) Remove(ctx context.Context, key string) error {
	return s.next.Remove(ctx, s.prefix+key)
}
