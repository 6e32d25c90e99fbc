package prefs

import (
	"context"
	"fmt"

	"github.com/DoyleJ11/sosphone-backend/internal/prefs/postgres"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs/sqlite"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	_ Store = (*Memory)(nil)
	_ Store = (*sqlite.Store)(nil)
	_ Store = (*postgres.Store)(nil)
)

type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
}

// Open builds the backend named by opts.Driver. The returned close func is never nil.
func Open(ctx context.Context, opts Options) (Store, func() error, error) {
	noop := func() error { return nil }

	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), noop, nil

	case DriverSQLite:
		s, err := sqlite.Open(opts.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite prefs: %w", err)
		}
		return s, s.Close, nil

	case DriverPostgres:
		s, err := postgres.New(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres prefs: %w", err)
		}
		return s, func() error { s.Close(); return nil }, nil

	default:
		return nil, noop, fmt.Errorf("unknown prefs driver %q", opts.Driver)
	}
}
