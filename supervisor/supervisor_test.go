package supervisor

import (
	"testing"
	"time"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/session"
)

func TestNewAppliesReconnectDefault(t *testing.T) {
	sup := New(0, 0, 0)
	if sup.reconnectPeriod != DefaultReconnectPeriod {
		t.Fatalf("got %v, want %v", sup.reconnectPeriod, DefaultReconnectPeriod)
	}
}

func TestNewKeepsExplicitReconnectPeriod(t *testing.T) {
	sup := New(5*time.Second, 0, 0)
	if sup.reconnectPeriod != 5*time.Second {
		t.Fatalf("got %v, want 5s", sup.reconnectPeriod)
	}
}

func TestSessionUnknownSerial(t *testing.T) {
	sup := New(time.Minute, 0, 0)
	if _, ok := sup.Session("nope"); ok {
		t.Fatal("expected no session for an unregistered serial")
	}
}

func TestUnregisterUnknownSerialIsNoop(t *testing.T) {
	sup := New(time.Minute, 0, 0)
	sup.Unregister("nope") // must not panic or block
}

func TestDoActionUnknownSerialIsNoop(t *testing.T) {
	sup := New(time.Minute, 0, 0)
	sup.DoAction("nope", "TurnAVROn", avr.ZoneUndefined, "") // must not panic
}

func TestRegisterIsCaseInsensitiveAndIdempotent(t *testing.T) {
	sup := New(time.Hour, 50*time.Millisecond, time.Hour)
	sup.Register("Living Room", "ABC123", "127.0.0.1", 1)
	defer sup.UnregisterAll()

	sup.mu.RLock()
	_, lower := sup.devices["abc123"]
	count := len(sup.devices)
	sup.mu.RUnlock()
	if !lower {
		t.Fatal("expected the serial to be normalised to lowercase")
	}

	// Registering the same serial again (any case) must be a no-op.
	sup.Register("Duplicate", "abc123", "127.0.0.1", 2)
	sup.mu.RLock()
	newCount := len(sup.devices)
	name := sup.devices["abc123"].name
	sup.mu.RUnlock()
	if newCount != count {
		t.Fatalf("duplicate registration changed device count: %d -> %d", count, newCount)
	}
	if name != "Living Room" {
		t.Fatalf("duplicate registration must not overwrite the original entry, got name %q", name)
	}
}

func TestRegisterEmitsRegisterEvent(t *testing.T) {
	sup := New(time.Hour, 50*time.Millisecond, time.Hour)
	events := make(chan avr.EventKind, 4)
	sup.NotifyMe(nil, func(name, serial string, s *session.Session, kind avr.EventKind) {
		events <- kind
	})
	sup.Register("Living Room", "abc123", "127.0.0.1", 1)
	defer sup.UnregisterAll()

	select {
	case kind := <-events:
		if kind != avr.EventRegister {
			t.Fatalf("got event %v, want EventRegister", kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the register event")
	}
}
