package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DoyleJ11/sosphone-backend/internal/clock"
	"github.com/DoyleJ11/sosphone-backend/internal/device"
	"github.com/DoyleJ11/sosphone-backend/internal/form"
	"github.com/DoyleJ11/sosphone-backend/internal/hub"
	"github.com/DoyleJ11/sosphone-backend/internal/phone"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
	"github.com/DoyleJ11/sosphone-backend/internal/types"
)

func TestToDeviceCommand(t *testing.T) {
	cases := []struct {
		name string
		in   types.ClientMessage
		want device.Command
		ok   bool
	}{
		{
			name: "submit phone",
			in:   types.ClientMessage{Type: "SubmitPhone", Phone: "612345678"},
			want: device.Command{Type: device.CmdSubmitPhone, Phone: "612345678"},
			ok:   true,
		},
		{
			name: "roll keeps raw text",
			in:   types.ClientMessage{Type: "RollDice", Target: "abc"},
			want: device.Command{Type: device.CmdRollDice, Target: "abc"},
			ok:   true,
		},
		{
			name: "form",
			in:   types.ClientMessage{Type: "SubmitForm", Name: "Ana", Text: "hola", Option: "option2"},
			want: device.Command{Type: device.CmdSubmitForm, Form: form.Fields{Name: "Ana", Text: "hola", Option: form.OptionTwo}},
			ok:   true,
		},
		{
			name: "fields of other commands are ignored",
			in:   types.ClientMessage{Type: "Back", Phone: "1"},
			want: device.Command{Type: device.CmdBack},
			ok:   true,
		},
		{
			name: "unknown",
			in:   types.ClientMessage{Type: "LockPick"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toDeviceCommand(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandler_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := hub.NewHub(ctx, func(ctx context.Context, id string) *device.Device {
		return device.NewDevice(ctx, id, device.Deps{
			Store:     prefs.NewMemory(),
			Validator: phone.NewValidator(),
			Region:    "ES",
			Locale:    "en",
			Clock:     clock.NewVirtual(),
		})
	})
	srv := httptest.NewServer(Handler(h, zap.NewNop()))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?device=" + uuid.NewString()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	read := func() types.ServerMessage {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var msg types.ServerMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	first := read()
	assert.Equal(t, "Snapshot", first.Type)
	require.NotNil(t, first.View)
	assert.Equal(t, "entry", string(first.View.Screen))

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"SubmitPhone","phone":"+34612345678"}`)))
	snap := read()
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, "main", string(snap.View.Screen))

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"Nope"}`)))
	assert.Equal(t, types.ServerMessage{Type: "Error", Error: "unknown type"}, read())
}

func TestHandler_RejectsMissingDevice(t *testing.T) {
	h := hub.NewHub(context.Background(), nil)
	defer func() { h.Inbox() <- hub.ShutdownHub{} }()

	rec := httptest.NewRecorder()
	Handler(h, zap.NewNop())(rec, httptest.NewRequest("GET", "/ws?device=nope", nil))
	assert.Equal(t, 400, rec.Code)
}
