package device

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/DoyleJ11/sosphone-backend/internal/clock"
	"github.com/DoyleJ11/sosphone-backend/internal/conf"
	"github.com/DoyleJ11/sosphone-backend/internal/i18n"
	"github.com/DoyleJ11/sosphone-backend/internal/nav"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
	"github.com/DoyleJ11/sosphone-backend/internal/result"
	"github.com/DoyleJ11/sosphone-backend/internal/reveal"
	"github.com/DoyleJ11/sosphone-backend/internal/sos"
)

type Msg interface{ isDeviceMsg() }

type FromClient struct {
	Cmd Command
	// Reply, if set, receives the outcome of Cmd. It must be buffered.
	Reply chan<- error
}

func (FromClient) isDeviceMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isDeviceMsg() {}

type Leave struct{ ClientID string }

func (Leave) isDeviceMsg() {}

type Shutdown struct{}

func (Shutdown) isDeviceMsg() {}

type GetState struct {
	Reply chan Status
}

func (GetState) isDeviceMsg() {}

// timerFired carries a scheduler callback onto the device goroutine.
type timerFired struct{ fn func() }

func (timerFired) isDeviceMsg() {}

type Snapshot struct {
	Version int
	View    View
}

type Status struct {
	Version    int
	NumClients int
	View       View
}

// Deps is what a device needs from the outside world. Store must already be scoped to the device.
type Deps struct {
	Store     prefs.Store
	Validator conf.Validator
	Region    string
	Locale    string
	Log       *zap.Logger
	Clock     clock.Scheduler
	Source    reveal.Source
	Unit      time.Duration
	Now       func() time.Time
}

type Device struct {
	id    string
	inbox chan Msg
	log   *zap.Logger
	p     *message.Printer
	now   func() time.Time
	src   reveal.Source

	ctrl  *conf.Controller
	seq   *reveal.Sequencer
	stack nav.Stack

	entry  EntryView
	main   MainView
	dice   DiceView
	form   FormView
	result result.Screen

	toasts  []string
	actions []sos.Action
	dirty   bool

	version int
	clients map[string]chan Snapshot
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewDevice(parent context.Context, id string, deps Deps) *Device {
	ctx, cancel := context.WithCancel(parent)

	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("device").With(zap.String("device", id))
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Source == nil {
		deps.Source = reveal.NewRandSource()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	d := &Device{
		id:      id,
		inbox:   make(chan Msg, 64),
		log:     log,
		p:       i18n.Printer(deps.Locale),
		now:     deps.Now,
		src:     deps.Source,
		ctrl:    conf.NewController(deps.Store, deps.Validator, deps.Region, log),
		clients: make(map[string]chan Snapshot),
		ctx:     ctx,
		cancel:  cancel,
	}
	d.seq = reveal.NewSequencer(clock.Posted(deps.Clock, d.post), deps.Source, deps.Unit, d.observe)

	if err := d.launch(nav.Intent{Target: nav.ScreenEntry}); err != nil {
		d.report(err)
	}

	go d.loop()
	return d
}

func (d *Device) loop() {
	for {
		select {
		case <-d.ctx.Done():
			d.shutdown()
			return

		case m := <-d.inbox:
			switch msg := m.(type) {
			case Join:
				d.clients[msg.ClientID] = msg.Outbox
				d.sendTo(msg.ClientID, msg.Outbox, Snapshot{Version: d.version, View: d.view()})
				d.clearOneShots()

			case Leave:
				delete(d.clients, msg.ClientID)

			case FromClient:
				err := d.handle(msg.Cmd)
				if err != nil {
					d.report(err)
				}
				if msg.Reply != nil {
					select {
					case msg.Reply <- err:
					default:
					}
				}
				d.publish()

			case timerFired:
				d.dirty = false
				msg.fn()
				if d.dirty {
					d.publish()
				}

			case GetState:
				msg.Reply <- Status{
					Version:    d.version,
					NumClients: len(d.clients),
					View:       d.view(),
				}

			case Shutdown:
				d.shutdown()
				return
			}
		}
	}
}

// post hands a due scheduler callback to the loop. It runs on the timer's goroutine.
func (d *Device) post(fn func()) {
	select {
	case d.inbox <- timerFired{fn: fn}:
	case <-d.ctx.Done():
	}
}

func (d *Device) publish() {
	d.version++
	d.broadcast(Snapshot{Version: d.version, View: d.view()})
	d.clearOneShots()
}

func (d *Device) shutdown() {
	d.seq.Stop()
	for id, ch := range d.clients {
		close(ch) // Tell client no more snapshots
		delete(d.clients, id)
	}
	d.cancel()
}

func (d *Device) broadcast(snap Snapshot) {
	for id, ch := range d.clients {
		d.sendTo(id, ch, snap)
	}
}

func (d *Device) sendTo(id string, ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
	default:
		// Client is slow/full - drop them.
		d.log.Warn("dropping slow client", zap.String("client", id))
		close(ch)
		delete(d.clients, id)
	}
}

func (d *Device) clearOneShots() {
	d.toasts = nil
	d.actions = nil
}

func (d *Device) toast(key string, args ...any) {
	d.toasts = append(d.toasts, d.p.Sprintf(key, args...))
}

func (d *Device) ID() string { return d.id }

func (d *Device) Inbox() chan<- Msg { return d.inbox }

// Done is closed once the device has shut down.
func (d *Device) Done() <-chan struct{} { return d.ctx.Done() }
