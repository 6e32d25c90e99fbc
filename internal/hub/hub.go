package hub

import (
	"context"

	"github.com/DoyleJ11/sosphone-backend/internal/device"
)

// Factory builds the actor for a device id. The device must stop when ctx is cancelled.
type Factory func(ctx context.Context, id string) *device.Device

type HubMsg interface{ isHubMsg() }

type GetDevice struct {
	ID    string
	Reply chan *device.Device
}

type EnsureDevice struct {
	ID    string
	Reply chan *device.Device
}

type RemoveDevice struct {
	ID string
}

type CountDevices struct {
	Reply chan int
}

type ShutdownHub struct{}

func (GetDevice) isHubMsg()    {}
func (EnsureDevice) isHubMsg() {}
func (RemoveDevice) isHubMsg() {}
func (CountDevices) isHubMsg() {}
func (ShutdownHub) isHubMsg()  {}

type Hub struct {
	inbox   chan HubMsg
	devices map[string]*device.Device
	build   Factory
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context, build Factory) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		devices: make(map[string]*device.Device),
		build:   build,
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Done is closed once the hub has stopped.
func (h *Hub) Done() <-chan struct{} { return h.ctx.Done() }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case GetDevice:
				msg.Reply <- h.devices[msg.ID] // May be nil

			case EnsureDevice:
				if d := h.devices[msg.ID]; d != nil {
					msg.Reply <- d
					break
				}
				d := h.build(h.ctx, msg.ID)
				h.devices[msg.ID] = d
				msg.Reply <- d

			case RemoveDevice:
				if d := h.devices[msg.ID]; d != nil {
					d.Inbox() <- device.Shutdown{}
					delete(h.devices, msg.ID)
				}

			case CountDevices:
				msg.Reply <- len(h.devices)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, d := range h.devices {
		select {
		case d.Inbox() <- device.Shutdown{}:
		case <-d.Done():
		}
	}
	clear(h.devices)
	h.cancel()
}

// Ensure returns the actor for id, creating it on first use.
func (h *Hub) Ensure(ctx context.Context, id string) (*device.Device, error) {
	reply := make(chan *device.Device, 1)
	select {
	case h.inbox <- EnsureDevice{ID: id, Reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case d := <-reply:
		return d, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
