package session

import (
	"log"

	"github.com/hcavr/avrd/avr"
	"golang.org/x/time/rate"
)

// buildLine turns a queued item into the exact wire line to send. When
// payload is empty, mnemonic already carries the full line (a query form
// produced by Refresh, or a probe); otherwise mnemonic and payload are
// joined with a space when the catalogue says the device expects one,
// and glued directly together otherwise.
func buildLine(item writeItem) string {
	if item.payload == "" {
		return item.mnemonic
	}
	if avr.NeedsSpace[item.mnemonic] {
		return item.mnemonic + " " + item.payload
	}
	return item.mnemonic + item.payload
}

// newWriteLimiter builds the rate limiter writeLoop waits on before every
// send: one token per writeSpacing, burst 1, so the first write after a
// quiet period goes out immediately and every one after it is paced.
func newWriteLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(writeSpacing), 1)
}

// writeLoop drains the write queue in FIFO order, sending at most one
// line per writeSpacing interval. The device's firmware drops or
// garbles commands sent back-to-back without this pacing (Property: "no
// two lines are written to the same connection less than 1.0s apart").
func (s *Session) writeLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case item := <-s.writeQueue:
			if err := s.writeLimiter.Wait(s.ctx); err != nil {
				return
			}
			line := buildLine(item)
			if err := s.conn.WriteLine(line); err != nil {
				log.Printf("session %s: write %q: %v", s.Serial, line, err)
				go s.Close()
				return
			}
		}
	}
}
