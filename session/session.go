// Package session implements the per-device state machine: a full-duplex
// transport over a stream connection, a serialised command queue with
// minimum inter-send spacing, a line-framed parser over the AVR's command
// vocabulary, liveness detection via periodic probes, and ownership of the
// cached device state.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/comm"
	"golang.org/x/time/rate"
)

// State is one of the four states a Session moves through over its
// lifetime: Connecting -> Live -> Closing -> Closed. There is no
// half-open state; a declared timeout moves straight to Closing.
type State int

const (
	StateConnecting State = iota
	StateLive
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "Connecting"
	case StateLive:
		return "Live"
	case StateClosing:
		return "Closing"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

const (
	// DefaultTimeout is the default probe-silence timeout and connect
	// timeout.
	DefaultTimeout = 3 * time.Second
	// DefaultPingPeriod is the default interval between keep-alive probes.
	DefaultPingPeriod = 30 * time.Second
	// DefaultPort is the AVR's control port, used whenever a device is
	// registered without an explicit port.
	DefaultPort = 23
	// writeSpacing is the minimum time between two outbound flushes; the
	// device misbehaves under faster streams.
	writeSpacing = 1 * time.Second
	// defaultMaxVolume is used until an MV MAX reply overrides it.
	defaultMaxVolume = 98.0
)

// CommandCallback is invoked once per state change, after the cell has
// been updated (whether or not the value actually differed from what was
// cached — the device's reply is itself an observable event).
type CommandCallback func(s *Session, def avr.CommandDef, value avr.Cell)

// EventCallback is invoked for session lifecycle events (Init, Ping,
// TimeOut, Close).
type EventCallback func(s *Session, kind avr.EventKind)

type writeItem struct {
	mnemonic string
	payload  string
}

// Session binds one TCP connection to one device and owns its cached
// state. Exactly one reader, one writer and one prober goroutine exist
// per live Session; all three terminate when the session closes.
type Session struct {
	Serial string
	Host   string
	Port   int

	timeout    time.Duration
	pingPeriod time.Duration

	conn         *comm.Conn
	writeLimiter *rate.Limiter

	// statusMu guards status, maxVolume, sources, sourcesNotUsed and
	// sourcesName. Only the reader goroutine ever writes through these
	// fields (spec: "no other context writes its status cells"); the
	// mutex exists purely so other goroutines (the supervisor, a
	// diagnostics endpoint) may safely read them concurrently.
	statusMu       sync.RWMutex
	status         map[string]avr.Cell
	maxVolume      float64
	sources        []avr.InputSource
	sourcesNotUsed []avr.InputSource
	sourcesName    map[avr.InputSource]string

	// parser-only aggregation state; touched exclusively by the reader
	// goroutine, so no lock is needed.
	cvAggregating    bool
	pendingChans     map[avr.Channel]float64
	sslevAggregating bool
	pendingLevels    map[avr.Channel]float64
	pendingMicro     map[avr.MicroCodeType]string
	pendingPresets   map[int]string

	lastInboundMu sync.RWMutex
	lastInbound   time.Time

	timeoutCount int

	writeQueue chan writeItem

	stateMu sync.RWMutex
	state   State

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeOnce sync.Once

	notifyMu  sync.RWMutex
	onCommand CommandCallback
	onEvent   EventCallback
}

// New dials host:port and, on success, returns a live Session that has
// started its reader, writer and prober goroutines and issued a full
// refresh. serial is normalised to lowercase by the caller (the
// supervisor), not here, matching spec.md's description of Register.
func New(serial, host string, port int, timeout, pingPeriod time.Duration) (*Session, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if pingPeriod <= 0 {
		pingPeriod = DefaultPingPeriod
	}
	if port <= 0 {
		port = DefaultPort
	}
	addr := addrWithPort(host, port)
	conn, err := comm.Dial(addr, timeout)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		Serial:      serial,
		Host:        host,
		Port:        port,
		timeout:     timeout,
		pingPeriod:  pingPeriod,
		conn:         conn,
		writeLimiter: newWriteLimiter(),
		status:      make(map[string]avr.Cell, len(avr.Catalog)),
		maxVolume:   defaultMaxVolume,
		sourcesName: make(map[avr.InputSource]string),
		lastInbound: time.Now(),
		writeQueue:  make(chan writeItem, 256),
		state:       StateConnecting,
		ctx:         ctx,
		cancel:      cancel,
	}
	s.setState(StateLive)

	s.wg.Add(3)
	go s.readLoop()
	go s.writeLoop()
	go s.probeLoop()

	s.Refresh()
	s.emit(avr.EventInit)
	return s, nil
}

func addrWithPort(host string, port int) string {
	return host + ":" + itoa(port)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// NotifyMe registers callbacks for state-change commands and lifecycle
// events. Either argument may be nil to leave that callback unchanged.
func (s *Session) NotifyMe(onCommand CommandCallback, onEvent EventCallback) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if onCommand != nil {
		s.onCommand = onCommand
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

func (s *Session) notify(def avr.CommandDef, value avr.Cell) {
	s.notifyMu.RLock()
	cb := s.onCommand
	s.notifyMu.RUnlock()
	if cb != nil {
		cb(s, def, value)
	}
}

func (s *Session) emit(kind avr.EventKind) {
	s.notifyMu.RLock()
	cb := s.onEvent
	s.notifyMu.RUnlock()
	if cb != nil {
		cb(s, kind)
	}
}

func (s *Session) setState(st State) {
	s.stateMu.Lock()
	s.state = st
	s.stateMu.Unlock()
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Alive reports whether the session is in the Live state, i.e. whether
// the supervisor's reconnect loop should leave it alone.
func (s *Session) Alive() bool {
	return s.State() == StateLive
}

// MaxVolume returns the last MV MAX value seen, or the 98.0 dB default.
func (s *Session) MaxVolume() float64 {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.maxVolume
}

// Status returns a snapshot of the cell cached for mnemonic code, and
// whether it has ever been populated.
func (s *Session) Status(code string) (avr.Cell, bool) {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	c, ok := s.status[code]
	return c, ok && c.Set()
}

// Snapshot returns a copy of the full status map, for diagnostics and
// notification marshaling.
func (s *Session) Snapshot() map[string]avr.Cell {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	out := make(map[string]avr.Cell, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	return out
}

// Refresh re-enqueues every distinct, refreshable query form exactly
// once.
func (s *Session) Refresh() {
	for _, form := range avr.RefreshForms() {
		s.enqueueRaw(form)
	}
}

// enqueue writes mnemonic+payload to the write queue. It never blocks
// indefinitely: the queue is generously buffered (256 items) because a
// full refresh sweep enqueues on the order of 60 items at once.
func (s *Session) enqueue(mnemonic, payload string) {
	select {
	case s.writeQueue <- writeItem{mnemonic: mnemonic, payload: payload}:
	case <-s.ctx.Done():
	}
}

// enqueueRaw enqueues a pre-formed line (used for query forms, which
// already carry their own "?" and any leading space).
func (s *Session) enqueueRaw(line string) {
	s.enqueue(line, "")
}

// Close marks the session dead, closes the transport and cancels the
// reader/writer/prober goroutines, then emits a Close event. It is safe
// to call more than once; only the first call has an effect.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.setState(StateClosing)
		s.cancel()
		if s.conn != nil {
			s.conn.Close()
		}
		s.wg.Wait()
		s.setState(StateClosed)
		log.Printf("session %s: closed", s.Serial)
		s.emit(avr.EventClose)
	})
}
