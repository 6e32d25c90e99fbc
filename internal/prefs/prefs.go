package prefs

import (
	"context"
	"strings"
	"sync"
)

// KeySOSPhone holds the configured emergency number.
const KeySOSPhone = "sos_phone"

// Store is a private string key/value store. Get reports ok=false for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

type scoped struct {
	s      Store
	prefix string
}

// Scoped returns a view of s where every key lives under namespace.
func Scoped(s Store, namespace string) Store {
	return scoped{s: s, prefix: strings.TrimSuffix(namespace, "/") + "/"}
}

// DeviceNamespace is the namespace holding one device's preferences.
func DeviceNamespace(deviceID string) string {
	return "device/" + deviceID
}

func (p scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return p.s.Get(ctx, p.prefix+key)
}

func (p scoped) Set(ctx context.Context, key, value string) error {
	return p.s.Set(ctx, p.prefix+key, value)
}

func (p scoped) Remove(ctx context.Context, key string) error {
	return p.s.Remove(ctx, p.prefix+key)
}
