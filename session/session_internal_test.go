package session

import (
	"context"

	"github.com/hcavr/avrd/avr"
)

// newTestSession builds a Session with no live transport, for exercising
// the parser and command API directly: both only touch the in-memory
// status/queue state, never conn, so a real TCP connection adds nothing
// but flakiness to these tests.
func newTestSession() *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		Serial:      "test",
		timeout:     DefaultTimeout,
		pingPeriod:  DefaultPingPeriod,
		status:      make(map[string]avr.Cell),
		maxVolume:   defaultMaxVolume,
		sourcesName: make(map[avr.InputSource]string),
		writeQueue:  make(chan writeItem, 64),
		state:       StateLive,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// drain reads every item currently queued without blocking, for
// asserting what a command enqueued.
func (s *Session) drain() []writeItem {
	var out []writeItem
	for {
		select {
		case item := <-s.writeQueue:
			out = append(out, item)
		default:
			return out
		}
	}
}
