package hostipc

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
)

// DefaultBatchPeriod is how often queued notifications are flushed to
// the callback URL, matching the original daemon's `_cycle` constant
// (the outer poll/send loop in avrd.py's main()).
const DefaultBatchPeriod = 1 * time.Second

// Sink batches outbound notifications and POSTs them to a configured
// callback URL as a single JSON object keyed by notification key,
// retrying transient failures with the same exponential-backoff shape
// the teacher's comm.RemoteDevice.Open uses for connection retry
// (InitialInterval 25ms, Multiplier 2, capped at 1s, giving up after a
// bounded elapsed time so one stuck batch can't wedge the sink forever).
type Sink struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	pending map[string]interface{}

	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// NewSink constructs a Sink that flushes on DefaultBatchPeriod.
func NewSink(url string) *Sink {
	return &Sink{
		url:     url,
		client:  &http.Client{Timeout: 5 * time.Second},
		pending: make(map[string]interface{}),
		ticker:  time.NewTicker(DefaultBatchPeriod),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Add queues one key/payload pair for the next flush. A key added twice
// before a flush keeps only the latest payload, matching the original's
// add_changes semantics (a dict keyed by change key).
func (s *Sink) Add(key string, payload interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = payload
}

// Run flushes on every tick until Stop is called. Intended to run on its
// own goroutine for the daemon's lifetime.
func (s *Sink) Run() {
	defer close(s.done)
	for {
		select {
		case <-s.ticker.C:
			s.flush()
		case <-s.stop:
			s.flush()
			return
		}
	}
}

// Stop halts the ticker, flushes once more, and waits for Run to return.
func (s *Sink) Stop() {
	close(s.stop)
	<-s.done
	s.ticker.Stop()
}

func (s *Sink) flush() {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.pending
	s.pending = make(map[string]interface{}, len(batch))
	s.mu.Unlock()

	s.post(batch)
}

// SendImmediate bypasses the batch entirely and posts a single key/
// payload pair right away, for the daemon-level Listening/Shutdown
// events the original daemon sends via send_change_immediate rather
// than through the batched add_changes path.
func (s *Sink) SendImmediate(key string, payload interface{}) {
	s.post(map[string]interface{}{key: payload})
}

func (s *Sink) post(batch map[string]interface{}) {
	body, err := json.Marshal(batch)
	if err != nil {
		log.Printf("hostipc: encoding notification batch: %v", err)
		return
	}

	op := func() error {
		resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(body))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return errStatus(resp.StatusCode)
		}
		return nil
	}
	bo := &backoff.ExponentialBackOff{
		InitialInterval:     25 * time.Millisecond,
		RandomizationFactor: 0.5,
		Multiplier:          2,
		MaxInterval:         1 * time.Second,
		MaxElapsedTime:      3 * time.Second,
		Clock:               backoff.SystemClock,
	}
	if err := backoff.Retry(op, bo); err != nil {
		log.Printf("hostipc: delivering notification to %s failed: %v", s.url, err)
	}
}

type errStatus int

func (e errStatus) Error() string {
	return "callback returned server error status"
}

// DaemonEvent is the payload shape for the "daemon" key's Listening/
// Shutdown/Ping events.
type DaemonEvent struct {
	Event string `json:"event"`
}
