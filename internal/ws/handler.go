package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/sosphone-backend/internal/device"
	"github.com/DoyleJ11/sosphone-backend/internal/form"
	"github.com/DoyleJ11/sosphone-backend/internal/hub"
	"github.com/DoyleJ11/sosphone-backend/internal/types"
)

const (
	writeTimeout = 3 * time.Second
	readTimeout  = 5 * time.Minute
)

func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	log = log.Named("ws")
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.URL.Query().Get("device"))
		if err != nil {
			http.Error(w, "missing or malformed device", http.StatusBadRequest)
			return
		}

		d, err := h.Ensure(r.Context(), id.String())
		if err != nil {
			http.Error(w, "device unavailable", http.StatusServiceUnavailable)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			log.Debug("accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan device.Snapshot, 8)
		clientID := uuid.NewString()
		log := log.With(zap.String("device", d.ID()), zap.String("client", clientID))
		log.Info("client connected")

		d.Inbox() <- device.Join{ClientID: clientID, Outbox: out}
		defer func() {
			select {
			case d.Inbox() <- device.Leave{ClientID: clientID}:
			case <-d.Done():
			}
			log.Info("client disconnected")
		}()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case snap, ok := <-out:
					if !ok {
						// Device dropped us or shut down.
						conn.Close(websocket.StatusGoingAway, "device closed")
						return
					}
					write(writeCtx, conn, types.ServerMessage{Type: "Snapshot", Version: snap.Version, View: &snap.View})
				case <-writeCtx.Done():
					return
				}
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					log.Debug("read failed", zap.Error(err))
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				write(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "bad json"})
				continue
			}

			cmd, ok := toDeviceCommand(cm)
			if !ok {
				write(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "unknown type"})
				continue
			}

			reply := make(chan error, 1)
			select {
			case d.Inbox() <- device.FromClient{Cmd: cmd, Reply: reply}:
			case <-d.Done():
				return
			}
			select {
			case err := <-reply:
				if err != nil {
					write(r.Context(), conn, types.ServerMessage{Type: "Error", Error: err.Error()})
				}
			case <-d.Done():
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_ = conn.Write(ctx, websocket.MessageText, payload)
}

func toDeviceCommand(m types.ClientMessage) (device.Command, bool) {
	cmd := device.Command{Type: device.CommandType(m.Type)}
	switch cmd.Type {
	case device.CmdSubmitPhone:
		cmd.Phone = m.Phone
	case device.CmdRollDice:
		cmd.Target = m.Target
	case device.CmdCall, device.CmdPermissionResult:
		cmd.Granted = m.Granted
	case device.CmdSubmitForm:
		cmd.Form = form.Fields{
			Name:   m.Name,
			Text:   m.Text,
			Option: form.Option(m.Option),
			Checks: m.Checks,
			Switch: m.Switch,
		}
	case device.CmdOpenDice, device.CmdOpenForm, device.CmdChangePhone, device.CmdOpenWeb,
		device.CmdSurprise, device.CmdSetAlarm, device.CmdDiceBack, device.CmdFormBack,
		device.CmdDismissResult, device.CmdBack:
	default:
		return device.Command{}, false
	}
	return cmd, true
}
