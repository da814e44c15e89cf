package supervisor

import (
	"testing"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/session"
)

func TestBuildNotificationZoneUndefined(t *testing.T) {
	s := &session.Session{Serial: "device123"}
	def := avr.CommandDef{Code: "MS", Label: "Surround Mode", Zone: avr.ZoneUndefined}
	n := BuildNotification("living-room", s, def, avr.EnumCell("STEREO"))

	if n.Zone != "" {
		t.Errorf("zone-undefined mnemonic must omit zone, got %q", n.Zone)
	}
	if n.Key != "devices::device123::UNDEFINED::MS" {
		t.Errorf("got key %q", n.Key)
	}
	if n.Value != "STEREO" {
		t.Errorf("got value %v", n.Value)
	}
}

func TestBuildNotificationZoneScoped(t *testing.T) {
	s := &session.Session{Serial: "device123"}
	def := avr.CommandDef{Code: "Z2MV", Label: "Volume", Zone: avr.Zone2}
	n := BuildNotification("living-room", s, def, avr.FloatCell(42.5))

	if n.Zone != "2" {
		t.Errorf("got zone %q, want \"2\"", n.Zone)
	}
	if n.Key != "devices::device123::2::Z2MV" {
		t.Errorf("got key %q", n.Key)
	}
}

func TestBuildEvent(t *testing.T) {
	e := BuildEvent("living-room", "device123", avr.EventTimeOut)
	if e.Key != "devices::device123::UNDEFINED::event" {
		t.Errorf("got key %q", e.Key)
	}
	if e.Value != "TimeOut" {
		t.Errorf("got value %q", e.Value)
	}
}
