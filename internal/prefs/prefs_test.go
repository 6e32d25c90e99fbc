package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, ok, err := s.Get(ctx, KeySOSPhone)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeySOSPhone, "+34612345678"))
	v, ok, err := s.Get(ctx, KeySOSPhone)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "+34612345678", v)

	require.NoError(t, s.Remove(ctx, KeySOSPhone))
	_, ok, err = s.Get(ctx, KeySOSPhone)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemory().Set(ctx, KeySOSPhone, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoped_IsolatesDevices(t *testing.T) {
	ctx := context.Background()
	base := NewMemory()
	a := Scoped(base, DeviceNamespace("a"))
	b := Scoped(base, DeviceNamespace("b"))

	require.NoError(t, a.Set(ctx, KeySOSPhone, "111"))
	_, ok, err := b.Get(ctx, KeySOSPhone)
	require.NoError(t, err)
	assert.False(t, ok)

	raw, ok, err := base.Get(ctx, "device/a/"+KeySOSPhone)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "111", raw)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, Options{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, Options{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "prefs.db")})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeySOSPhone, "612345678"))
	assert.NoError(t, closeFn())

	_, _, err = Open(ctx, Options{Driver: "redis"})
	assert.Error(t, err)
}
