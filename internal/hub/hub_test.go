package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/sosphone-backend/internal/clock"
	"github.com/DoyleJ11/sosphone-backend/internal/device"
	"github.com/DoyleJ11/sosphone-backend/internal/phone"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
)

func testFactory(store prefs.Store) Factory {
	return func(ctx context.Context, id string) *device.Device {
		return device.NewDevice(ctx, id, device.Deps{
			Store:     prefs.Scoped(store, prefs.DeviceNamespace(id)),
			Validator: phone.NewValidator(),
			Region:    "ES",
			Locale:    "en",
			Clock:     clock.NewVirtual(),
		})
	}
}

func TestHub_Ensure_Get_SamePointer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, testFactory(prefs.NewMemory()))
	reply := make(chan *device.Device, 1)

	h.Inbox() <- GetDevice{ID: "a", Reply: reply}
	assert.Nil(t, <-reply)

	h.Inbox() <- EnsureDevice{ID: "a", Reply: reply}
	d1 := <-reply

	h.Inbox() <- GetDevice{ID: "a", Reply: reply}
	d2 := <-reply

	require.NotNil(t, d1)
	assert.Same(t, d1, d2)
	assert.Equal(t, "a", d1.ID())
}

func TestHub_Remove_ShutsDeviceDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, testFactory(prefs.NewMemory()))

	d, err := h.Ensure(ctx, "a")
	require.NoError(t, err)

	h.Inbox() <- RemoveDevice{ID: "a"}
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatalf("device still running after remove")
	}

	count := make(chan int, 1)
	h.Inbox() <- CountDevices{Reply: count}
	assert.Equal(t, 0, <-count)
}

func TestHub_DevicesKeepSeparateNumbers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := prefs.NewMemory()
	require.NoError(t, prefs.Scoped(store, prefs.DeviceNamespace("a")).Set(ctx, prefs.KeySOSPhone, "+34612345678"))
	h := NewHub(ctx, testFactory(store))

	views := map[string]device.View{}
	for _, id := range []string{"a", "b"} {
		d, err := h.Ensure(ctx, id)
		require.NoError(t, err)
		reply := make(chan device.Status, 1)
		d.Inbox() <- device.GetState{Reply: reply}
		views[id] = (<-reply).View
	}

	assert.Equal(t, "main", string(views["a"].Screen))
	assert.Equal(t, "entry", string(views["b"].Screen))
}

func TestHub_Shutdown(t *testing.T) {
	h := NewHub(context.Background(), testFactory(prefs.NewMemory()))
	d, err := h.Ensure(context.Background(), "a")
	require.NoError(t, err)

	h.Inbox() <- ShutdownHub{}
	for _, done := range []<-chan struct{}{h.Done(), d.Done()} {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("shutdown did not complete")
		}
	}
}
