package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "612345678", "--region", "ES")
	require.NoError(t, err)
	assert.Equal(t, "valid (ES): +34612345678\n", out)

	out, err = run(t, "validate", "123", "--region", "ES")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "invalid (ES)"), out)
}

func TestNumber_SetGetReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prefs.db")
	base := []string{"--store", "sqlite", "--sqlite", db, "--region", "ES", "--device", "dev1"}
	with := func(args ...string) []string { return append(append([]string{}, args...), base...) }

	out, err := run(t, with("number", "get")...)
	require.NoError(t, err)
	assert.Equal(t, "no number configured\n", out)

	_, err = run(t, with("number", "set", "123")...)
	require.Error(t, err)

	out, err = run(t, with("number", "set", "+34612345678")...)
	require.NoError(t, err)
	assert.Equal(t, "stored\n", out)

	out, err = run(t, with("number", "get")...)
	require.NoError(t, err)
	assert.Equal(t, "+34612345678\n", out)

	_, err = run(t, with("number", "reset")...)
	require.NoError(t, err)

	out, err = run(t, with("number", "get")...)
	require.NoError(t, err)
	assert.Equal(t, "no number configured\n", out)
}

func TestNumber_RequiresDevice(t *testing.T) {
	_, err := run(t, "number", "get", "--store", "memory")
	assert.ErrorIs(t, err, errNoDevice)
}

func TestRoll(t *testing.T) {
	out, err := run(t, "roll", "10", "--step", "1ms", "--store", "memory", "--locale", "en")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "1: "))
	assert.True(t, strings.HasPrefix(lines[4], "5: "))
	last := lines[5]
	assert.True(t, strings.HasPrefix(last, "Congratulations!") || strings.HasPrefix(last, "You missed."), last)

	_, err = run(t, "roll", "19", "--store", "memory")
	assert.Error(t, err)
}
