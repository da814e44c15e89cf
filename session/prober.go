package session

import (
	"time"

	"github.com/hcavr/avrd/avr"
)

// probeLoop periodically queries power state as a keep-alive. pingPeriod
// after the previous probe (or session start) it sends "PW?" and emits a
// Ping event; timeout seconds later it compares the time since the last
// inbound line against timeout. Silence beyond that single check declares
// the session dead immediately — there is no multi-strike grace period,
// matching the wire contract exactly (a missed reply means the link is
// down, not merely slow).
func (s *Session) probeLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.emit(avr.EventPing)
			s.enqueueRaw("PW?")

			select {
			case <-s.ctx.Done():
				return
			case <-time.After(s.timeout):
			}

			if s.sinceInbound() > s.timeout {
				s.bumpTimeout()
				s.emit(avr.EventTimeOut)
				go s.Close()
				return
			}
			s.resetTimeouts()
		}
	}
}

// bumpTimeout increments the consecutive-timeout counter.
func (s *Session) bumpTimeout() {
	s.stateMu.Lock()
	s.timeoutCount++
	s.stateMu.Unlock()
}
