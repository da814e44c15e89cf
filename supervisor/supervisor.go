// Package supervisor owns the registry of live device sessions, keyed by
// serial: it runs one reconnect loop per registered device, dispatches
// host-originated actions to the right session by name, and marshals
// state-change notifications for the host boundary. Grounded on the
// original daemon's devices class (register/unregister/doAction/
// notificationCmd) and the teacher's envsrv.Envmon ticker-plus-select
// runner shape.
package supervisor

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/session"
)

const (
	// DefaultReconnectPeriod is how often the reconnect loop retries a
	// device that isn't currently connected.
	DefaultReconnectPeriod = 60 * time.Second
)

// NotifyFunc is invoked once per state-change notification a session
// fires, already carrying the owning device's name alongside the
// session that produced it.
type NotifyFunc func(name string, s *session.Session, def avr.CommandDef, value avr.Cell)

// EventFunc is invoked once per session lifecycle event, plus the
// synthetic "register"/"unregister" events the supervisor itself emits.
// serial is always populated; session lifecycle events additionally
// carry the Session they originated from.
type EventFunc func(name, serial string, s *session.Session, kind avr.EventKind)

// device is the registry entry for one configured AVR: its identity, its
// reconnect task's cancellation, and its live session if currently
// connected.
type device struct {
	name   string
	serial string
	host   string
	port   int

	cancel context.CancelFunc
	done   chan struct{}

	sess *session.Session
}

// Supervisor is the process-wide registry and reconnect orchestrator. All
// exported methods are safe for concurrent use: the host-IPC goroutine,
// the reconnect loops and any diagnostics reader may all call in at once.
type Supervisor struct {
	mu      sync.RWMutex
	devices map[string]*device

	reconnectPeriod time.Duration
	timeout         time.Duration
	pingPeriod      time.Duration

	notifyMu sync.RWMutex
	onNotify NotifyFunc
	onEvent  EventFunc
}

// New constructs a Supervisor. Zero durations fall back to session's own
// defaults for timeout/pingPeriod, and DefaultReconnectPeriod for the
// reconnect cadence.
func New(reconnectPeriod, timeout, pingPeriod time.Duration) *Supervisor {
	if reconnectPeriod <= 0 {
		reconnectPeriod = DefaultReconnectPeriod
	}
	return &Supervisor{
		devices:         make(map[string]*device),
		reconnectPeriod: reconnectPeriod,
		timeout:         timeout,
		pingPeriod:      pingPeriod,
	}
}

// NotifyMe registers the supervisor-level callbacks forwarded to every
// session it creates. Either argument may be nil to leave the existing
// callback in place.
func (sup *Supervisor) NotifyMe(onNotify NotifyFunc, onEvent EventFunc) {
	sup.notifyMu.Lock()
	defer sup.notifyMu.Unlock()
	if onNotify != nil {
		sup.onNotify = onNotify
	}
	if onEvent != nil {
		sup.onEvent = onEvent
	}
}

func (sup *Supervisor) notify(name string, s *session.Session, def avr.CommandDef, value avr.Cell) {
	sup.notifyMu.RLock()
	cb := sup.onNotify
	sup.notifyMu.RUnlock()
	if cb != nil {
		cb(name, s, def, value)
	}
}

func (sup *Supervisor) event(name, serial string, s *session.Session, kind avr.EventKind) {
	sup.notifyMu.RLock()
	cb := sup.onEvent
	sup.notifyMu.RUnlock()
	if cb != nil {
		cb(name, serial, s, kind)
	}
}

// Register adds a device to the registry and starts its reconnect loop.
// serial is normalised to lowercase, matching the original daemon's
// registration behaviour. A serial already registered is a no-op.
func (sup *Supervisor) Register(name, serial, host string, port int) {
	serial = strings.ToLower(serial)

	sup.mu.Lock()
	if _, exists := sup.devices[serial]; exists {
		sup.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &device{
		name:   name,
		serial: serial,
		host:   host,
		port:   port,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	sup.devices[serial] = d
	sup.mu.Unlock()

	log.Printf("supervisor: registering %q (%s) at %s", name, serial, host)
	sup.event(name, serial, nil, avr.EventRegister)
	go sup.reconnectLoop(ctx, d)
}

// Unregister cancels serial's reconnect loop, closes its live session if
// any, and removes it from the registry.
func (sup *Supervisor) Unregister(serial string) {
	serial = strings.ToLower(serial)

	sup.mu.Lock()
	d, ok := sup.devices[serial]
	if !ok {
		sup.mu.Unlock()
		return
	}
	delete(sup.devices, serial)
	sup.mu.Unlock()

	log.Printf("supervisor: unregistering %q (%s)", d.name, serial)
	d.cancel()
	<-d.done
	if d.sess != nil {
		d.sess.Close()
	}
	sup.event(d.name, serial, nil, avr.EventUnregister)
}

// UnregisterAll tears down every registered device, e.g. on daemon
// shutdown.
func (sup *Supervisor) UnregisterAll() {
	sup.mu.RLock()
	serials := make([]string, 0, len(sup.devices))
	for s := range sup.devices {
		serials = append(serials, s)
	}
	sup.mu.RUnlock()
	for _, s := range serials {
		sup.Unregister(s)
	}
}

// Session returns the live session for serial, if currently connected.
func (sup *Supervisor) Session(serial string) (*session.Session, bool) {
	sup.mu.RLock()
	defer sup.mu.RUnlock()
	d, ok := sup.devices[strings.ToLower(serial)]
	if !ok || d.sess == nil {
		return nil, false
	}
	return d.sess, true
}

// DoAction resolves action against the registry of device-bound action
// handlers and invokes it on serial's live session. Unknown actions and
// unregistered/disconnected serials are logged and ignored, matching the
// original daemon's doAction: it never propagates a handler error back
// to the host beyond a log line, since the host boundary has no
// synchronous response channel.
func (sup *Supervisor) DoAction(serial, action string, zone avr.Zone, value string) {
	serial = strings.ToLower(serial)
	sess, ok := sup.Session(serial)
	if !ok {
		log.Printf("supervisor: doAction %s for unknown/disconnected serial %q", action, serial)
		return
	}
	handler, ok := actionHandlers[action]
	if !ok {
		log.Printf("supervisor: unknown action %q", action)
		return
	}
	log.Printf("supervisor: %s(%v, %v) on %q", action, zone, value, serial)
	if err := handler(sess, zone, value); err != nil {
		log.Printf("supervisor: action %s on %q failed: %v", action, serial, err)
	}
}

// reconnectLoop mirrors the original daemon's setDevice task and the
// teacher's Envmon.runner ticker-plus-select shape: on every tick, install
// a session if none is live, drop one that has died, or do nothing if
// it's still alive.
func (sup *Supervisor) reconnectLoop(ctx context.Context, d *device) {
	defer close(d.done)
	ticker := time.NewTicker(sup.reconnectPeriod)
	defer ticker.Stop()

	sup.tryConnect(d)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sup.tryConnect(d)
		}
	}
}

func (sup *Supervisor) tryConnect(d *device) {
	sup.mu.Lock()
	sess := d.sess
	if sess != nil && !sess.Alive() {
		d.sess = nil
		sess = nil
	}
	sup.mu.Unlock()
	if sess != nil {
		return
	}

	newSess, err := session.New(d.serial, d.host, d.port, sup.timeout, sup.pingPeriod)
	if err != nil {
		log.Printf("supervisor: could not connect to %q (%s) at %s: %v; retrying in %s",
			d.name, d.serial, d.host, err, sup.reconnectPeriod)
		return
	}

	name := d.name
	newSess.NotifyMe(
		func(s *session.Session, def avr.CommandDef, value avr.Cell) { sup.notify(name, s, def, value) },
		func(s *session.Session, kind avr.EventKind) { sup.event(name, s.Serial, s, kind) },
	)

	sup.mu.Lock()
	d.sess = newSess
	sup.mu.Unlock()
	log.Printf("supervisor: %q (%s) connected at %s", name, d.serial, d.host)
}
