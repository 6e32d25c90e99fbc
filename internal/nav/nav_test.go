package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchPushesFreshEntries(t *testing.T) {
	var s Stack
	_, fresh, _ := s.Launch(Intent{Target: ScreenEntry})
	require.True(t, fresh)

	top, fresh, popped := s.Launch(Intent{Target: ScreenMain, PhoneNumber: "+34612345678", ClearTop: true})
	require.True(t, fresh, "clear top without an existing instance pushes")
	assert.Empty(t, popped)
	assert.Equal(t, ScreenMain, top.Screen)
	assert.Equal(t, "+34612345678", top.Intent.PhoneNumber)
	assert.Equal(t, []Screen{ScreenEntry, ScreenMain}, s.Screens())
}

func TestLaunchClearTopResumesExisting(t *testing.T) {
	var s Stack
	s.Launch(Intent{Target: ScreenEntry})
	s.Launch(Intent{Target: ScreenDice, ClearTop: true})
	s.Launch(Intent{Target: ScreenResult, ResultMessage: "win"})

	top, fresh, popped := s.Launch(Intent{Target: ScreenEntry, ResetFlag: true, ClearTop: true})

	assert.False(t, fresh)
	assert.Equal(t, ScreenEntry, top.Screen)
	assert.True(t, top.Intent.ResetFlag, "new intent replaces the old one")
	require.Len(t, popped, 2)
	assert.Equal(t, ScreenResult, popped[0].Screen)
	assert.Equal(t, ScreenDice, popped[1].Screen)
	assert.Equal(t, 1, s.Len())
}

func TestBackNeverPopsRoot(t *testing.T) {
	var s Stack
	s.Launch(Intent{Target: ScreenEntry})
	s.Launch(Intent{Target: ScreenForm})

	top, popped, ok := s.Back()
	require.True(t, ok)
	assert.Equal(t, ScreenForm, popped.Screen)
	assert.Equal(t, ScreenEntry, top.Screen)

	top, _, ok = s.Back()
	assert.False(t, ok)
	assert.Equal(t, ScreenEntry, top.Screen)
}

func TestTakeResetConsumesOnce(t *testing.T) {
	in := Intent{Target: ScreenEntry, ResetFlag: true}
	assert.True(t, in.TakeReset())
	assert.False(t, in.TakeReset())
}
